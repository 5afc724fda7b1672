// File: internal/handler/auth/signup.go
package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/abha2510/Orion-Backend/internal/api"
	"github.com/abha2510/Orion-Backend/internal/database"
	"github.com/abha2510/Orion-Backend/internal/model"
	"github.com/abha2510/Orion-Backend/internal/service"
	"github.com/abha2510/Orion-Backend/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	hashPassword     = service.HashPassword
	authenticateUser = service.AuthenticateUser
	createUser       = store.CreateUser
	getUserByName    = store.GetUserByName
)

// SignupHandler 註冊新帳號
// @Summary     註冊使用者
// @Description 建立新帳號 (Email 會自動轉小寫)，回應不含密碼雜湊
// @Tags        auth
// @Accept      json
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       body body api.SignupRequest true "註冊資料"
// @Success     201  {object} api.SignupResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /signup [post]
func SignupHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.SignupRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		if req.Role == "" {
			req.Role = model.RoleUser
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			c.Logger().Errorf("hash password: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			Username:     req.Username,
			Email:        strings.ToLower(req.Email),
			PasswordHash: hash,
			Role:         req.Role,
		})
		if errors.Is(err, store.ErrConflict) {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "username or email already exists"})
		}
		if err != nil {
			c.Logger().Errorf("create user: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
		}

		return c.JSON(http.StatusCreated, api.SignupResponse{
			Message: "User Registered successfully",
			User:    api.NewUserResponse(*user),
		})
	}
}
