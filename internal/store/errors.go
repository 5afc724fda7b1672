package store

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound 查無資料
	ErrNotFound = errors.New("record not found")
	// ErrConflict 違反唯一性限制 (username / email 重複)
	ErrConflict = errors.New("record already exists")
)

const uniqueViolation = "23505"

// classify 將 pgx 錯誤轉為 store 的哨兵錯誤，其餘原樣回傳
func classify(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrConflict
	}
	return err
}
