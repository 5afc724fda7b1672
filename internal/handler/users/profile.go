// File: internal/handler/users/profile.go
package users

import (
	"errors"
	"net/http"
	"strings"

	"github.com/abha2510/Orion-Backend/internal/api"
	"github.com/abha2510/Orion-Backend/internal/database"
	"github.com/abha2510/Orion-Backend/internal/middleware"
	"github.com/abha2510/Orion-Backend/internal/service"
	"github.com/abha2510/Orion-Backend/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	hashPassword = service.HashPassword
	getUserByID  = store.GetUserByID
	updateUser   = store.UpdateUser
)

// GetProfileHandler 取得當前登入使用者資料
// @Summary     Get my profile
// @Description 取得目前登入使用者的帳號資料
// @Tags        users
// @Produce     json
// @Success     200 {object} api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      / [get]
func GetProfileHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := middleware.CurrentIdentity(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "please login"})
		}

		user, err := getUserByID(c.Request().Context(), db, id.UserID)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		}
		if err != nil {
			c.Logger().Errorf("get profile: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
		}

		return c.JSON(http.StatusOK, api.NewUserResponse(*user))
	}
}

// UpdateProfileHandler 更新當前登入使用者資料，空白欄位維持原值
// @Summary     Update my profile
// @Description 更新使用者名稱、Email 或密碼 (Email 會自動轉小寫)
// @Tags        users
// @Accept      json
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       body body api.UpdateProfileRequest true "欲更新的欄位"
// @Success     200  {object} api.UserResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /profile [patch]
func UpdateProfileHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := middleware.CurrentIdentity(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "please login"})
		}

		var req api.UpdateProfileRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		user, err := getUserByID(ctx, db, id.UserID)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		}
		if err != nil {
			c.Logger().Errorf("load profile: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
		}

		if req.Username != "" {
			user.Username = req.Username
		}
		if req.Email != "" {
			user.Email = strings.ToLower(req.Email)
		}
		if req.Password != "" {
			hash, err := hashPassword(req.Password)
			if err != nil {
				c.Logger().Errorf("hash password: %v", err)
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
			}
			user.PasswordHash = hash
		}

		err = updateUser(ctx, db, user)
		switch {
		case errors.Is(err, store.ErrConflict):
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "username or email already exists"})
		case errors.Is(err, store.ErrNotFound):
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		case err != nil:
			c.Logger().Errorf("update profile: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
		}

		return c.JSON(http.StatusOK, api.NewUserResponse(*user))
	}
}
