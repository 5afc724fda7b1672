// File: internal/handler/auth/logout.go
package auth

import (
	"net/http"

	"github.com/abha2510/Orion-Backend/internal/api"
	"github.com/abha2510/Orion-Backend/internal/cache"
	"github.com/abha2510/Orion-Backend/internal/middleware"

	"github.com/labstack/echo/v4"
)

// LogoutHandler 將目前的 token 加入黑名單，帳號本身不受影響
// @Summary     登出
// @Description 撤銷目前使用的存取令牌直到其原本的到期時間
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.MessageResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /logout [post]
func LogoutHandler(revocations *cache.Revocations) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := middleware.CurrentIdentity(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "please login"})
		}
		if err := revocations.Revoke(c.Request().Context(), id.TokenID, id.ExpiresAt); err != nil {
			c.Logger().Errorf("revoke token: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Logged out successfully"})
	}
}
