// File: internal/router/router.go
package router

import (
	"net/http"

	"github.com/abha2510/Orion-Backend/internal/cache"
	"github.com/abha2510/Orion-Backend/internal/database"
	"github.com/abha2510/Orion-Backend/internal/handler"
	"github.com/abha2510/Orion-Backend/internal/handler/admin"
	"github.com/abha2510/Orion-Backend/internal/handler/answers"
	"github.com/abha2510/Orion-Backend/internal/handler/auth"
	"github.com/abha2510/Orion-Backend/internal/handler/questions"
	"github.com/abha2510/Orion-Backend/internal/handler/users"
	"github.com/abha2510/Orion-Backend/internal/middleware"
	"github.com/abha2510/Orion-Backend/internal/service"
	"github.com/abha2510/Orion-Backend/internal/worker"

	"github.com/labstack/echo/v4"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, cch cache.Cache, tokens *service.TokenService, wp worker.Pool) {
	revocations := cache.NewRevocations(cch)
	requireAuth := middleware.RequireAuth(tokens, db, revocations)

	// 註冊與登入
	e.POST("/signup", auth.SignupHandler(db))
	e.POST("/login", auth.LoginHandler(db, tokens))

	// 以下皆需登入
	e.POST("/logout", auth.LogoutHandler(revocations), requireAuth)
	e.GET("/ping", handler.PingHandler(db, cch), requireAuth)

	e.GET("/", users.GetProfileHandler(db), requireAuth)
	e.PATCH("/profile", users.UpdateProfileHandler(db), requireAuth)

	e.POST("/questions", questions.CreateQuestionHandler(db), requireAuth)
	e.GET("/questions", questions.ListQuestionsHandler(db), requireAuth)
	e.GET("/questions/:id", questions.GetQuestionHandler(db), requireAuth)
	e.POST("/questions/:id/answers", questions.CreateAnswerHandler(db), requireAuth)

	e.GET("/answers", answers.ListAnswersHandler(db), requireAuth)
	e.Match([]string{http.MethodPatch, http.MethodPost}, "/answers/:id/rate", answers.RateAnswerHandler(db), requireAuth)

	// 管理員專屬，RequireAdmin 必須在 requireAuth 之後
	e.GET("/adminDashboard", admin.DashboardHandler(db, wp), requireAuth, middleware.RequireAdmin)
	e.PATCH("/questions/:id/approve", admin.ApproveQuestionHandler(db), requireAuth, middleware.RequireAdmin)
	e.PATCH("/answers/:id/approve", admin.ApproveAnswerHandler(db), requireAuth, middleware.RequireAdmin)
	e.DELETE("/questions/:id", admin.DeleteQuestionHandler(db), requireAuth, middleware.RequireAdmin)
	e.DELETE("/answers/:id", admin.DeleteAnswerHandler(db), requireAuth, middleware.RequireAdmin)
	e.PATCH("/:userId/ban", admin.BanUserHandler(db), requireAuth, middleware.RequireAdmin)
	e.PATCH("/:userId/unban", admin.UnbanUserHandler(db), requireAuth, middleware.RequireAdmin)
}
