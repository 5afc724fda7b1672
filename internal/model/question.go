// File: internal/model/question.go
package model

import "time"

type Question struct {
	ID        int       `db:"id" json:"id"`
	Text      string    `db:"text" json:"text"`
	UserID    *int      `db:"user_id" json:"user_id,omitempty"`
	Approved  bool      `db:"approved" json:"approved"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
