// File: internal/handler/admin/dashboard.go
package admin

import (
	"context"
	"net/http"

	"github.com/abha2510/Orion-Backend/internal/api"
	"github.com/abha2510/Orion-Backend/internal/database"
	"github.com/abha2510/Orion-Backend/internal/model"
	"github.com/abha2510/Orion-Backend/internal/store"
	"github.com/abha2510/Orion-Backend/internal/worker"

	"github.com/labstack/echo/v4"
)

var (
	listUnapprovedQuestions = store.ListUnapprovedQuestions
	listUnapprovedAnswers   = store.ListUnapprovedAnswers
	listUsersByRole         = store.ListUsersByRole
)

// DashboardHandler 於 worker pool 上同時查詢待審內容與一般使用者清單
// @Summary     Admin dashboard
// @Description 回傳所有待審問題、待審回答與所有 role=user 的帳號，不分頁
// @Tags        admin
// @Produce     json
// @Success     200 {object} api.DashboardResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /adminDashboard [get]
func DashboardHandler(db database.DB, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var (
			questions []model.Question
			answers   []model.Answer
			users     []model.User
		)

		err := wp.Do(c.Request().Context(),
			func(ctx context.Context) (err error) {
				questions, err = listUnapprovedQuestions(ctx, db)
				return err
			},
			func(ctx context.Context) (err error) {
				answers, err = listUnapprovedAnswers(ctx, db)
				return err
			},
			func(ctx context.Context) (err error) {
				users, err = listUsersByRole(ctx, db, model.RoleUser)
				return err
			},
		)
		if err != nil {
			c.Logger().Errorf("admin dashboard: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
		}

		return c.JSON(http.StatusOK, api.DashboardResponse{
			PendingQuestions: api.NewQuestionResponses(questions),
			PendingAnswers:   api.NewAnswerResponses(answers),
			UserList:         api.NewUserResponses(users),
		})
	}
}
