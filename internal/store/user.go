package store

import (
	"context"
	"fmt"

	"github.com/abha2510/Orion-Backend/internal/database"
	"github.com/abha2510/Orion-Backend/internal/model"

	"github.com/jackc/pgx/v5"
)

const userColumns = `id, username, email, password_hash, role, banned, created_at`

func scanUser(row pgx.Row, u *model.User) error {
	return row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.Banned,
		&u.CreatedAt,
	)
}

func GetUserByID(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		userID,
	)
	u := &model.User{}
	if err := scanUser(row, u); err != nil {
		return nil, fmt.Errorf("GetUserByID: %w", classify(err))
	}
	return u, nil
}

func GetUserByName(ctx context.Context, db database.DB, username string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1`,
		username,
	)
	u := &model.User{}
	if err := scanUser(row, u); err != nil {
		return nil, fmt.Errorf("GetUserByName: %w", classify(err))
	}
	return u, nil
}

func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (username, email, password_hash, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, banned, created_at`,
		u.Username,
		u.Email,
		u.PasswordHash,
		u.Role,
	)
	if err := row.Scan(&u.ID, &u.Banned, &u.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateUser: %w", classify(err))
	}
	return u, nil
}

// UpdateUser 更新 username、email 與密碼雜湊
func UpdateUser(ctx context.Context, db database.DB, u *model.User) error {
	tag, err := db.Exec(ctx,
		`UPDATE users SET username = $1, email = $2, password_hash = $3
		 WHERE id = $4`,
		u.Username,
		u.Email,
		u.PasswordHash,
		u.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateUser: %w", classify(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("UpdateUser: %w", ErrNotFound)
	}
	return nil
}

func SetUserBanned(ctx context.Context, db database.DB, userID int, banned bool) error {
	tag, err := db.Exec(ctx,
		`UPDATE users SET banned = $1 WHERE id = $2`,
		banned,
		userID,
	)
	if err != nil {
		return fmt.Errorf("SetUserBanned: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("SetUserBanned: %w", ErrNotFound)
	}
	return nil
}

func ListUsersByRole(ctx context.Context, db database.DB, role string) ([]model.User, error) {
	rows, err := db.Query(ctx,
		`SELECT `+userColumns+` FROM users WHERE role = $1 ORDER BY id`,
		role,
	)
	if err != nil {
		return nil, fmt.Errorf("ListUsersByRole: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := scanUser(rows, &u); err != nil {
			return nil, fmt.Errorf("ListUsersByRole: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListUsersByRole: %w", err)
	}
	return users, nil
}
