// File: internal/api/dashboard_response.go
package api

// swagger:model api.DashboardResponse
type DashboardResponse struct {
	PendingQuestions []QuestionResponse `json:"pendingQuestions"`
	PendingAnswers   []AnswerResponse   `json:"pendingAnswers"`
	UserList         []UserResponse     `json:"userList"`
}
