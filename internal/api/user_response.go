// File: internal/api/user_response.go
package api

import (
	"time"

	"github.com/abha2510/Orion-Backend/internal/model"
)

// UserResponse 對外的使用者資料，不含密碼雜湊
// swagger:model api.UserResponse
type UserResponse struct {
	ID        int       `json:"id" example:"1"`
	Username  string    `json:"username" example:"alice"`
	Email     string    `json:"email" example:"alice@example.com"`
	Role      string    `json:"role" example:"user"`
	Banned    bool      `json:"banned" example:"false"`
	CreatedAt time.Time `json:"created_at" example:"2025-05-01T15:04:05Z"`
}

func NewUserResponse(u model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		Banned:    u.Banned,
		CreatedAt: u.CreatedAt,
	}
}

func NewUserResponses(users []model.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}

// swagger:model api.UpdateProfileRequest
type UpdateProfileRequest struct {
	Username string `json:"username" form:"username" example:"alice2"`
	Email    string `json:"email" form:"email" validate:"omitempty,email" example:"alice2@example.com"`
	Password string `json:"password" form:"password" example:"NewSecret456!"`
}
