// File: internal/api/answer.go
package api

import (
	"time"

	"github.com/abha2510/Orion-Backend/internal/model"
)

// swagger:model api.CreateAnswerRequest
type CreateAnswerRequest struct {
	Text string `json:"text" form:"text" validate:"required" example:"Use the forgot password link."`
}

// swagger:model api.RateAnswerRequest
type RateAnswerRequest struct {
	Value int `json:"value" form:"value" validate:"required,min=1,max=5" example:"4"`
}

// swagger:model api.AnswerResponse
type AnswerResponse struct {
	ID          int       `json:"id" example:"1"`
	Text        string    `json:"text" example:"Use the forgot password link."`
	QuestionID  int       `json:"question_id" example:"1"`
	UserID      int       `json:"user_id" example:"2"`
	Approved    bool      `json:"approved" example:"false"`
	Score       float64   `json:"score" example:"4.5"`
	RatingCount int       `json:"rating_count" example:"2"`
	CreatedAt   time.Time `json:"created_at"`
}

// AuthorSummary 列表中帶出的作者資訊
// swagger:model api.AuthorSummary
type AuthorSummary struct {
	ID       int    `json:"id" example:"2"`
	Username string `json:"username" example:"bob"`
	Email    string `json:"email" example:"bob@example.com"`
}

// swagger:model api.AnswerDetailResponse
type AnswerDetailResponse struct {
	AnswerResponse
	Question QuestionResponse `json:"question"`
	Author   AuthorSummary    `json:"author"`
}

func NewAnswerResponse(a model.Answer) AnswerResponse {
	return AnswerResponse{
		ID:          a.ID,
		Text:        a.Text,
		QuestionID:  a.QuestionID,
		UserID:      a.UserID,
		Approved:    a.Approved,
		Score:       a.Ratings.Score(),
		RatingCount: len(a.Ratings),
		CreatedAt:   a.CreatedAt,
	}
}

func NewAnswerResponses(list []model.Answer) []AnswerResponse {
	out := make([]AnswerResponse, 0, len(list))
	for _, a := range list {
		out = append(out, NewAnswerResponse(a))
	}
	return out
}

func NewAnswerDetailResponses(list []model.AnswerDetail) []AnswerDetailResponse {
	out := make([]AnswerDetailResponse, 0, len(list))
	for _, d := range list {
		out = append(out, AnswerDetailResponse{
			AnswerResponse: NewAnswerResponse(d.Answer),
			Question:       NewQuestionResponse(d.Question),
			Author: AuthorSummary{
				ID:       d.UserID,
				Username: d.AuthorUsername,
				Email:    d.AuthorEmail,
			},
		})
	}
	return out
}
