// File: internal/api/question.go
package api

import (
	"time"

	"github.com/abha2510/Orion-Backend/internal/model"
)

// swagger:model api.CreateQuestionRequest
type CreateQuestionRequest struct {
	Text string `json:"text" form:"text" validate:"required" example:"How do I reset my password?"`
}

// swagger:model api.QuestionResponse
type QuestionResponse struct {
	ID        int       `json:"id" example:"1"`
	Text      string    `json:"text" example:"How do I reset my password?"`
	UserID    *int      `json:"user_id,omitempty" example:"2"`
	Approved  bool      `json:"approved" example:"false"`
	CreatedAt time.Time `json:"created_at"`
}

func NewQuestionResponse(q model.Question) QuestionResponse {
	return QuestionResponse{
		ID:        q.ID,
		Text:      q.Text,
		UserID:    q.UserID,
		Approved:  q.Approved,
		CreatedAt: q.CreatedAt,
	}
}

func NewQuestionResponses(list []model.Question) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(list))
	for _, q := range list {
		out = append(out, NewQuestionResponse(q))
	}
	return out
}
