// File: internal/api/signup_request.go
package api

// swagger:model api.SignupRequest
type SignupRequest struct {
	Username string `json:"username" form:"username" validate:"required" example:"alice"`
	Email    string `json:"email" form:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" form:"password" validate:"required" example:"Secret123!"`
	// 未指定時為 user
	Role string `json:"role" form:"role" validate:"omitempty,oneof=user admin" example:"user"`
}

// swagger:model api.SignupResponse
type SignupResponse struct {
	Message string       `json:"msg" example:"User Registered successfully"`
	User    UserResponse `json:"newUser"`
}
