package answers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/abha2510/Orion-Backend/internal/api"
	"github.com/abha2510/Orion-Backend/internal/database"
	"github.com/abha2510/Orion-Backend/internal/middleware"
	"github.com/abha2510/Orion-Backend/internal/model"
	"github.com/abha2510/Orion-Backend/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	listAnswers         = store.ListAnswers
	getAnswerByID       = store.GetAnswerByID
	updateAnswerRatings = store.UpdateAnswerRatings
)

// @Summary     List answers
// @Description 帶出所屬問題與作者；一般使用者只看得到已審核且作者未被停權的回答
// @Tags        answers
// @Produce     json
// @Success     200 {array}  api.AnswerDetailResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /answers [get]
func ListAnswersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := middleware.CurrentIdentity(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "please login"})
		}

		list, err := listAnswers(c.Request().Context(), db, store.AnswerFilter{
			ApprovedOnly:         !id.IsAdmin(),
			ExcludeBannedAuthors: !id.IsAdmin(),
		})
		if err != nil {
			c.Logger().Errorf("list answers: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
		}
		if len(list) == 0 {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "no answers found"})
		}

		return c.JSON(http.StatusOK, api.NewAnswerDetailResponses(list))
	}
}

// RateAnswerHandler 每位使用者對同一回答只保留最後一次評分
// @Summary     Rate an answer
// @Description 評分 1 到 5，重複評分會覆寫自己先前的分數；score 為目前所有評分的平均
// @Tags        answers
// @Accept      json
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       id   path int                   true "Answer ID"
// @Param       body body api.RateAnswerRequest true "評分"
// @Success     200  {object} api.AnswerResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /answers/{id}/rate [patch]
// @Router      /answers/{id}/rate [post]
func RateAnswerHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := middleware.CurrentIdentity(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "please login"})
		}
		answerID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid answer id"})
		}

		var req api.RateAnswerRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		answer, err := getAnswerByID(ctx, db, answerID)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "answer not found"})
		}
		if err != nil {
			c.Logger().Errorf("load answer: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
		}

		// 讀取後整份寫回，沒有版本檢查；同時評分可能遺失其中一筆
		ratings := make(model.Ratings, len(answer.Ratings)+1)
		for uid, v := range answer.Ratings {
			ratings[uid] = v
		}
		ratings[id.UserID] = req.Value

		updated, err := updateAnswerRatings(ctx, db, answerID, ratings)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "answer not found"})
		}
		if err != nil {
			c.Logger().Errorf("rate answer: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
		}

		return c.JSON(http.StatusOK, api.NewAnswerResponse(*updated))
	}
}
