// File: internal/handler/auth/login.go
package auth

import (
	"errors"
	"net/http"

	"github.com/abha2510/Orion-Backend/internal/api"
	"github.com/abha2510/Orion-Backend/internal/database"
	"github.com/abha2510/Orion-Backend/internal/service"
	"github.com/abha2510/Orion-Backend/internal/store"

	"github.com/labstack/echo/v4"
)

// LoginHandler 使用 Username/Password 驗證並回傳 JWT
// @Summary     登入使用者
// @Description 使用 Username 與 Password 進行驗證，回傳一小時有效的存取令牌
// @Tags        auth
// @Accept      json
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       body body api.LoginRequest true "登入資料"
// @Success     200  {object} api.LoginResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /login [post]
func LoginHandler(db database.DB, tokens *service.TokenService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		user, err := getUserByName(ctx, db, req.Username)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid credentials"})
		}
		if err != nil {
			c.Logger().Errorf("login lookup: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
		}

		// 帳號不存在與密碼錯誤回應相同
		if err := authenticateUser(ctx, *user, req.Password); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid credentials"})
		}

		token, expiresAt, err := tokens.Issue(*user)
		if err != nil {
			c.Logger().Errorf("issue token: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
		}

		return c.JSON(http.StatusOK, api.LoginResponse{
			Message:   "Login Successfully!",
			Token:     token,
			ExpiresAt: expiresAt,
		})
	}
}
