// File: internal/handler/admin/moderation.go
package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/abha2510/Orion-Backend/internal/api"
	"github.com/abha2510/Orion-Backend/internal/database"
	"github.com/abha2510/Orion-Backend/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	approveQuestion = store.ApproveQuestion
	approveAnswer   = store.ApproveAnswer
	deleteQuestion  = store.DeleteQuestion
	deleteAnswer    = store.DeleteAnswer
	setUserBanned   = store.SetUserBanned
)

func internalError(c echo.Context, op string, err error) error {
	c.Logger().Errorf("%s: %v", op, err)
	return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
}

// @Summary     Approve a question
// @Tags        admin
// @Produce     json
// @Param       id  path     int true "Question ID"
// @Success     200 {object} api.QuestionResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /questions/{id}/approve [patch]
func ApproveQuestionHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid question id"})
		}
		q, err := approveQuestion(c.Request().Context(), db, id)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "question not found"})
		}
		if err != nil {
			return internalError(c, "approve question", err)
		}
		return c.JSON(http.StatusOK, api.NewQuestionResponse(*q))
	}
}

// @Summary     Approve an answer
// @Tags        admin
// @Produce     json
// @Param       id  path     int true "Answer ID"
// @Success     200 {object} api.AnswerResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /answers/{id}/approve [patch]
func ApproveAnswerHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid answer id"})
		}
		a, err := approveAnswer(c.Request().Context(), db, id)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "answer not found"})
		}
		if err != nil {
			return internalError(c, "approve answer", err)
		}
		return c.JSON(http.StatusOK, api.NewAnswerResponse(*a))
	}
}

// @Summary     Delete a question
// @Description 永久刪除問題，其回答一併刪除
// @Tags        admin
// @Produce     json
// @Param       id  path     int true "Question ID"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /questions/{id} [delete]
func DeleteQuestionHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid question id"})
		}
		err = deleteQuestion(c.Request().Context(), db, id)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "question not found"})
		}
		if err != nil {
			return internalError(c, "delete question", err)
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "question deleted successfully"})
	}
}

// @Summary     Delete an answer
// @Tags        admin
// @Produce     json
// @Param       id  path     int true "Answer ID"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /answers/{id} [delete]
func DeleteAnswerHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid answer id"})
		}
		err = deleteAnswer(c.Request().Context(), db, id)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "answer not found"})
		}
		if err != nil {
			return internalError(c, "delete answer", err)
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "answer deleted successfully"})
	}
}

// @Summary     Ban a user
// @Description 停權後該使用者不能發問，其內容也不再出現在一般使用者的列表
// @Tags        admin
// @Produce     json
// @Param       userId path     int true "User ID"
// @Success     200    {object} api.MessageResponse
// @Failure     400    {object} api.ErrorResponse
// @Failure     403    {object} api.ErrorResponse
// @Failure     404    {object} api.ErrorResponse
// @Failure     500    {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /{userId}/ban [patch]
func BanUserHandler(db database.DB) echo.HandlerFunc {
	return banHandler(db, true, "user banned successfully")
}

// @Summary     Unban a user
// @Tags        admin
// @Produce     json
// @Param       userId path     int true "User ID"
// @Success     200    {object} api.MessageResponse
// @Failure     400    {object} api.ErrorResponse
// @Failure     403    {object} api.ErrorResponse
// @Failure     404    {object} api.ErrorResponse
// @Failure     500    {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /{userId}/unban [patch]
func UnbanUserHandler(db database.DB) echo.HandlerFunc {
	return banHandler(db, false, "user unbanned successfully")
}

func banHandler(db database.DB, banned bool, okMsg string) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("userId"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user id"})
		}
		err = setUserBanned(c.Request().Context(), db, id, banned)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		}
		if err != nil {
			return internalError(c, "set banned", err)
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: okMsg})
	}
}
