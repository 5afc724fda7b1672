package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/abha2510/Orion-Backend/internal/database"
	"github.com/abha2510/Orion-Backend/internal/model"

	"github.com/jackc/pgx/v5"
)

const answerColumns = `a.id, a.text, a.question_id, a.user_id, a.approved, a.ratings, a.created_at`

// AnswerFilter 控制 ListAnswers 的可見範圍
type AnswerFilter struct {
	ApprovedOnly         bool
	ExcludeBannedAuthors bool
}

func answerDest(a *model.Answer) []any {
	return []any{&a.ID, &a.Text, &a.QuestionID, &a.UserID, &a.Approved, &a.Ratings, &a.CreatedAt}
}

func scanAnswer(row pgx.Row, a *model.Answer) error {
	if err := row.Scan(answerDest(a)...); err != nil {
		return err
	}
	if a.Ratings == nil {
		a.Ratings = model.Ratings{}
	}
	return nil
}

func CreateAnswer(ctx context.Context, db database.DB, a *model.Answer) (*model.Answer, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO answers (text, question_id, user_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, approved, created_at`,
		a.Text,
		a.QuestionID,
		a.UserID,
	)
	if err := row.Scan(&a.ID, &a.Approved, &a.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateAnswer: %w", err)
	}
	a.Ratings = model.Ratings{}
	return a, nil
}

func GetAnswerByID(ctx context.Context, db database.DB, id int) (*model.Answer, error) {
	row := db.QueryRow(ctx,
		`SELECT `+answerColumns+` FROM answers a WHERE a.id = $1`,
		id,
	)
	a := &model.Answer{}
	if err := scanAnswer(row, a); err != nil {
		return nil, fmt.Errorf("GetAnswerByID: %w", classify(err))
	}
	return a, nil
}

// ListAnswers 回傳答案並帶出所屬問題與作者 username/email
func ListAnswers(ctx context.Context, db database.DB, f AnswerFilter) ([]model.AnswerDetail, error) {
	var where []string
	if f.ApprovedOnly {
		where = append(where, `a.approved`)
	}
	if f.ExcludeBannedAuthors {
		where = append(where, `NOT u.banned`)
	}

	sql := `SELECT ` + answerColumns + `, ` + questionColumns + `, u.username, u.email
		FROM answers a
		JOIN questions q ON q.id = a.question_id
		JOIN users u ON u.id = a.user_id`
	if len(where) > 0 {
		sql += "\n\t\tWHERE " + strings.Join(where, " AND ")
	}
	sql += "\n\t\tORDER BY a.id"

	rows, err := db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("ListAnswers: %w", err)
	}
	defer rows.Close()

	out := []model.AnswerDetail{}
	for rows.Next() {
		var d model.AnswerDetail
		dest := append(answerDest(&d.Answer),
			&d.Question.ID, &d.Question.Text, &d.Question.UserID, &d.Question.Approved, &d.Question.CreatedAt,
			&d.AuthorUsername, &d.AuthorEmail,
		)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("ListAnswers: %w", err)
		}
		if d.Ratings == nil {
			d.Ratings = model.Ratings{}
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListAnswers: %w", err)
	}
	return out, nil
}

func ListUnapprovedAnswers(ctx context.Context, db database.DB) ([]model.Answer, error) {
	rows, err := db.Query(ctx,
		`SELECT `+answerColumns+` FROM answers a WHERE NOT a.approved ORDER BY a.id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListUnapprovedAnswers: %w", err)
	}
	defer rows.Close()

	out := []model.Answer{}
	for rows.Next() {
		var a model.Answer
		if err := scanAnswer(rows, &a); err != nil {
			return nil, fmt.Errorf("ListUnapprovedAnswers: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListUnapprovedAnswers: %w", err)
	}
	return out, nil
}

// ApproveAnswer 將答案設為已審核，重複呼叫結果相同
func ApproveAnswer(ctx context.Context, db database.DB, id int) (*model.Answer, error) {
	row := db.QueryRow(ctx,
		`UPDATE answers AS a SET approved = TRUE
		 WHERE a.id = $1
		 RETURNING `+answerColumns,
		id,
	)
	a := &model.Answer{}
	if err := scanAnswer(row, a); err != nil {
		return nil, fmt.Errorf("ApproveAnswer: %w", classify(err))
	}
	return a, nil
}

// UpdateAnswerRatings 以整份 ratings 文件覆寫，不做版本檢查
func UpdateAnswerRatings(ctx context.Context, db database.DB, id int, ratings model.Ratings) (*model.Answer, error) {
	row := db.QueryRow(ctx,
		`UPDATE answers AS a SET ratings = $1
		 WHERE a.id = $2
		 RETURNING `+answerColumns,
		ratings,
		id,
	)
	a := &model.Answer{}
	if err := scanAnswer(row, a); err != nil {
		return nil, fmt.Errorf("UpdateAnswerRatings: %w", classify(err))
	}
	return a, nil
}

func DeleteAnswer(ctx context.Context, db database.DB, id int) error {
	tag, err := db.Exec(ctx, `DELETE FROM answers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("DeleteAnswer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteAnswer: %w", ErrNotFound)
	}
	return nil
}
