// File: internal/model/answer.go
package model

import (
	"math"
	"time"
)

// Ratings 以 user id 對應該使用者最後一次給的分數，同一使用者重複評分會覆寫
type Ratings map[int]int

// Score 目前所有評分的平均值 (小數兩位)，未評分為 0
func (r Ratings) Score() float64 {
	if len(r) == 0 {
		return 0
	}
	sum := 0
	for _, v := range r {
		sum += v
	}
	return math.Round(float64(sum)/float64(len(r))*100) / 100
}

type Answer struct {
	ID         int       `db:"id" json:"id"`
	Text       string    `db:"text" json:"text"`
	QuestionID int       `db:"question_id" json:"question_id"`
	UserID     int       `db:"user_id" json:"user_id"`
	Approved   bool      `db:"approved" json:"approved"`
	Ratings    Ratings   `db:"ratings" json:"ratings"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// AnswerDetail 是 Answer 連同所屬問題與作者摘要
type AnswerDetail struct {
	Answer
	Question       Question
	AuthorUsername string
	AuthorEmail    string
}
