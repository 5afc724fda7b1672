package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	require.ErrorIs(t, classify(pgx.ErrNoRows), ErrNotFound)
	require.ErrorIs(t, classify(fmt.Errorf("wrap: %w", pgx.ErrNoRows)), ErrNotFound)
	require.ErrorIs(t, classify(&pgconn.PgError{Code: "23505"}), ErrConflict)

	other := &pgconn.PgError{Code: "23503"}
	require.Same(t, other, classify(other))

	plain := errors.New("boom")
	require.Equal(t, plain, classify(plain))
}

func TestEscapeLike(t *testing.T) {
	require.Equal(t, `go`, escapeLike(`go`))
	require.Equal(t, `100\%`, escapeLike(`100%`))
	require.Equal(t, `a\_b`, escapeLike(`a_b`))
	require.Equal(t, `c:\\dir`, escapeLike(`c:\dir`))
}
