package questions

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/abha2510/Orion-Backend/internal/api"
	"github.com/abha2510/Orion-Backend/internal/database"
	"github.com/abha2510/Orion-Backend/internal/middleware"
	"github.com/abha2510/Orion-Backend/internal/model"
	"github.com/abha2510/Orion-Backend/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	createQuestion  = store.CreateQuestion
	getQuestionByID = store.GetQuestionByID
	listQuestions   = store.ListQuestions
	createAnswer    = store.CreateAnswer
)

// @Summary     Create a question
// @Description 建立待審核的問題，被停權的使用者不可發問
// @Tags        questions
// @Accept      json
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       body body api.CreateQuestionRequest true "問題內容"
// @Success     201  {object} api.QuestionResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     403  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /questions [post]
func CreateQuestionHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := middleware.CurrentIdentity(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "please login"})
		}
		if id.Banned {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "banned, cannot post"})
		}

		var req api.CreateQuestionRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		userID := id.UserID
		q, err := createQuestion(c.Request().Context(), db, &model.Question{
			Text:   req.Text,
			UserID: &userID,
		})
		if err != nil {
			c.Logger().Errorf("create question: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
		}

		return c.JSON(http.StatusCreated, api.NewQuestionResponse(*q))
	}
}

// @Summary     List questions
// @Description 一般使用者只看得到已審核且作者未被停權的問題；管理員看得到全部
// @Tags        questions
// @Produce     json
// @Param       searchText query string false "不分大小寫的關鍵字"
// @Success     200 {array}  api.QuestionResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /questions [get]
func ListQuestionsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := middleware.CurrentIdentity(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "please login"})
		}

		filter := store.QuestionFilter{
			ApprovedOnly:         !id.IsAdmin(),
			ExcludeBannedAuthors: !id.IsAdmin(),
			Search:               strings.TrimSpace(c.QueryParam("searchText")),
		}
		list, err := listQuestions(c.Request().Context(), db, filter)
		if err != nil {
			c.Logger().Errorf("list questions: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
		}
		if len(list) == 0 {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "questions not found"})
		}

		return c.JSON(http.StatusOK, api.NewQuestionResponses(list))
	}
}

// @Summary     Get a question
// @Description 未審核的問題僅管理員可讀取
// @Tags        questions
// @Produce     json
// @Param       id  path     int true "Question ID"
// @Success     200 {object} api.QuestionResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /questions/{id} [get]
func GetQuestionHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := middleware.CurrentIdentity(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "please login"})
		}
		questionID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid question id"})
		}

		q, err := getQuestionByID(c.Request().Context(), db, questionID)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "question not found"})
		}
		if err != nil {
			c.Logger().Errorf("get question: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
		}
		if !q.Approved && !id.IsAdmin() {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "question not approved"})
		}

		return c.JSON(http.StatusOK, api.NewQuestionResponse(*q))
	}
}

// @Summary     Answer a question
// @Description 對指定問題建立待審核的回答
// @Tags        questions
// @Accept      json
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       id   path int                     true "Question ID"
// @Param       body body api.CreateAnswerRequest true "回答內容"
// @Success     201  {object} api.AnswerResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /questions/{id}/answers [post]
func CreateAnswerHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := middleware.CurrentIdentity(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "please login"})
		}
		questionID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid question id"})
		}

		var req api.CreateAnswerRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		_, err = getQuestionByID(ctx, db, questionID)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "question not found"})
		}
		if err != nil {
			c.Logger().Errorf("load question: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
		}

		a, err := createAnswer(ctx, db, &model.Answer{
			Text:       req.Text,
			QuestionID: questionID,
			UserID:     id.UserID,
		})
		if err != nil {
			c.Logger().Errorf("create answer: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
		}

		return c.JSON(http.StatusCreated, api.NewAnswerResponse(*a))
	}
}
