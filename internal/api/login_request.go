// File: internal/api/login_request.go
package api

import "time"

// swagger:model api.LoginRequest
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required" example:"alice"`
	Password string `json:"password" form:"password" validate:"required" example:"Secret123!"`
}

// swagger:model api.LoginResponse
type LoginResponse struct {
	Message   string    `json:"msg" example:"Login Successfully!"`
	Token     string    `json:"token" example:"eyJhbGciOi..."`
	ExpiresAt time.Time `json:"expires_at" example:"2025-05-09T15:04:05Z"`
}
