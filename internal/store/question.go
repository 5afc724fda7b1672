package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/abha2510/Orion-Backend/internal/database"
	"github.com/abha2510/Orion-Backend/internal/model"

	"github.com/jackc/pgx/v5"
)

const questionColumns = `q.id, q.text, q.user_id, q.approved, q.created_at`

// QuestionFilter 控制 ListQuestions 的可見範圍
type QuestionFilter struct {
	ApprovedOnly         bool
	ExcludeBannedAuthors bool
	// Search 以不分大小寫的子字串比對 text，空字串表示不過濾
	Search string
}

func scanQuestion(row pgx.Row, q *model.Question) error {
	return row.Scan(&q.ID, &q.Text, &q.UserID, &q.Approved, &q.CreatedAt)
}

func collectQuestions(rows pgx.Rows) ([]model.Question, error) {
	defer rows.Close()
	out := []model.Question{}
	for rows.Next() {
		var q model.Question
		if err := scanQuestion(rows, &q); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

// escapeLike 讓使用者輸入在 ILIKE 中被當作字面字串
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func CreateQuestion(ctx context.Context, db database.DB, q *model.Question) (*model.Question, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO questions (text, user_id)
		 VALUES ($1, $2)
		 RETURNING id, approved, created_at`,
		q.Text,
		q.UserID,
	)
	if err := row.Scan(&q.ID, &q.Approved, &q.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateQuestion: %w", err)
	}
	return q, nil
}

func GetQuestionByID(ctx context.Context, db database.DB, id int) (*model.Question, error) {
	row := db.QueryRow(ctx,
		`SELECT `+questionColumns+` FROM questions q WHERE q.id = $1`,
		id,
	)
	q := &model.Question{}
	if err := scanQuestion(row, q); err != nil {
		return nil, fmt.Errorf("GetQuestionByID: %w", classify(err))
	}
	return q, nil
}

func ListQuestions(ctx context.Context, db database.DB, f QuestionFilter) ([]model.Question, error) {
	var (
		where []string
		args  []any
	)
	if f.ApprovedOnly {
		where = append(where, `q.approved`)
	}
	if f.ExcludeBannedAuthors {
		where = append(where, `(u.id IS NULL OR NOT u.banned)`)
	}
	if f.Search != "" {
		args = append(args, escapeLike(f.Search))
		where = append(where, fmt.Sprintf(`q.text ILIKE '%%' || $%d || '%%'`, len(args)))
	}

	sql := `SELECT ` + questionColumns + `
		FROM questions q
		LEFT JOIN users u ON u.id = q.user_id`
	if len(where) > 0 {
		sql += "\n\t\tWHERE " + strings.Join(where, " AND ")
	}
	sql += "\n\t\tORDER BY q.id"

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("ListQuestions: %w", err)
	}
	list, err := collectQuestions(rows)
	if err != nil {
		return nil, fmt.Errorf("ListQuestions: %w", err)
	}
	return list, nil
}

func ListUnapprovedQuestions(ctx context.Context, db database.DB) ([]model.Question, error) {
	rows, err := db.Query(ctx,
		`SELECT `+questionColumns+` FROM questions q WHERE NOT q.approved ORDER BY q.id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListUnapprovedQuestions: %w", err)
	}
	list, err := collectQuestions(rows)
	if err != nil {
		return nil, fmt.Errorf("ListUnapprovedQuestions: %w", err)
	}
	return list, nil
}

// ApproveQuestion 將問題設為已審核，重複呼叫結果相同
func ApproveQuestion(ctx context.Context, db database.DB, id int) (*model.Question, error) {
	row := db.QueryRow(ctx,
		`UPDATE questions AS q SET approved = TRUE
		 WHERE q.id = $1
		 RETURNING `+questionColumns,
		id,
	)
	q := &model.Question{}
	if err := scanQuestion(row, q); err != nil {
		return nil, fmt.Errorf("ApproveQuestion: %w", classify(err))
	}
	return q, nil
}

func DeleteQuestion(ctx context.Context, db database.DB, id int) error {
	tag, err := db.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("DeleteQuestion: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteQuestion: %w", ErrNotFound)
	}
	return nil
}
