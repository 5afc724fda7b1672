package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abha2510/Orion-Backend/internal/database"
	"github.com/abha2510/Orion-Backend/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func questionValues(q model.Question) []any {
	return []any{q.ID, q.Text, q.UserID, q.Approved, q.CreatedAt}
}

func TestCreateAndGetQuestion(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	p := &database.FakeDB{
		QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
			require.Equal(t, "why?", args[0])
			require.Equal(t, 3, *args[1].(*int))
			return &fakeRow{values: []any{10, false, now}}
		},
	}
	q, err := CreateQuestion(ctx, p, &model.Question{Text: "why?", UserID: intPtr(3)})
	require.NoError(t, err)
	require.Equal(t, 10, q.ID)
	require.False(t, q.Approved)

	p.QueryRowFn = func(context.Context, string, ...any) pgx.Row { return &fakeRow{scanErr: errors.New("db")} }
	_, err = CreateQuestion(ctx, p, &model.Question{Text: "x"})
	require.Error(t, err)

	stored := model.Question{ID: 10, Text: "why?", UserID: nil, Approved: true, CreatedAt: now}
	p.QueryRowFn = func(_ context.Context, _ string, args ...any) pgx.Row {
		require.Equal(t, []any{10}, args)
		return &fakeRow{values: questionValues(stored)}
	}
	got, err := GetQuestionByID(ctx, p, 10)
	require.NoError(t, err)
	require.Equal(t, stored, *got)
	require.Nil(t, got.UserID)

	p.QueryRowFn = func(context.Context, string, ...any) pgx.Row { return &fakeRow{scanErr: pgx.ErrNoRows} }
	_, err = GetQuestionByID(ctx, p, 11)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListQuestionsBuildsFilter(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name     string
		filter   QuestionFilter
		contains []string
		absent   []string
		args     []any
	}{
		{
			name:   "admin sees everything",
			filter: QuestionFilter{},
			absent: []string{"WHERE"},
		},
		{
			name:     "non admin",
			filter:   QuestionFilter{ApprovedOnly: true, ExcludeBannedAuthors: true},
			contains: []string{"WHERE q.approved AND (u.id IS NULL OR NOT u.banned)"},
		},
		{
			name:     "search escapes wildcards",
			filter:   QuestionFilter{ApprovedOnly: true, Search: "50%_off"},
			contains: []string{"q.approved AND q.text ILIKE '%' || $1 || '%'"},
			args:     []any{`50\%\_off`},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var gotSQL string
			var gotArgs []any
			p := &database.FakeDB{
				QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
					gotSQL, gotArgs = sql, args
					return &fakeRows{}, nil
				},
			}
			list, err := ListQuestions(ctx, p, tc.filter)
			require.NoError(t, err)
			require.Empty(t, list)
			require.NotNil(t, list)
			for _, s := range tc.contains {
				require.Contains(t, gotSQL, s)
			}
			for _, s := range tc.absent {
				require.NotContains(t, gotSQL, s)
			}
			require.Equal(t, tc.args, gotArgs)
		})
	}
}

func TestListQuestionsRows(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	a := model.Question{ID: 1, Text: "a", UserID: intPtr(2), Approved: true, CreatedAt: now}
	b := model.Question{ID: 2, Text: "b", Approved: false, CreatedAt: now}

	p := &database.FakeDB{
		QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
			return &fakeRows{data: [][]any{questionValues(a), questionValues(b)}}, nil
		},
	}
	list, err := ListQuestions(ctx, p, QuestionFilter{})
	require.NoError(t, err)
	require.Equal(t, []model.Question{a, b}, list)

	pending, err := ListUnapprovedQuestions(ctx, p)
	require.NoError(t, err)
	require.Len(t, pending, 2)

	p.QueryFn = func(context.Context, string, ...any) (pgx.Rows, error) { return nil, errors.New("q") }
	_, err = ListQuestions(ctx, p, QuestionFilter{})
	require.Error(t, err)
	_, err = ListUnapprovedQuestions(ctx, p)
	require.Error(t, err)

	p.QueryFn = func(context.Context, string, ...any) (pgx.Rows, error) {
		return &fakeRows{data: [][]any{questionValues(a)}, scanErr: errors.New("scan")}, nil
	}
	_, err = ListQuestions(ctx, p, QuestionFilter{})
	require.Error(t, err)
	_, err = ListUnapprovedQuestions(ctx, p)
	require.Error(t, err)
}

func TestApproveQuestion(t *testing.T) {
	ctx := context.Background()
	approved := model.Question{ID: 5, Text: "t", Approved: true, CreatedAt: time.Now().UTC()}
	p := &database.FakeDB{
		QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
			require.Contains(t, sql, "SET approved = TRUE")
			require.Equal(t, []any{5}, args)
			return &fakeRow{values: questionValues(approved)}
		},
	}
	for i := 0; i < 2; i++ {
		q, err := ApproveQuestion(ctx, p, 5)
		require.NoError(t, err)
		require.True(t, q.Approved)
	}

	p.QueryRowFn = func(context.Context, string, ...any) pgx.Row { return &fakeRow{scanErr: pgx.ErrNoRows} }
	_, err := ApproveQuestion(ctx, p, 6)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteQuestion(t *testing.T) {
	ctx := context.Background()
	p := &database.FakeDB{
		ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag("DELETE 1"), nil
		},
	}
	require.NoError(t, DeleteQuestion(ctx, p, 1))

	p.ExecFn = func(context.Context, string, ...any) (pgconn.CommandTag, error) {
		return pgconn.NewCommandTag("DELETE 0"), nil
	}
	require.ErrorIs(t, DeleteQuestion(ctx, p, 1), ErrNotFound)

	p.ExecFn = func(context.Context, string, ...any) (pgconn.CommandTag, error) {
		return pgconn.CommandTag{}, errors.New("fail delete")
	}
	require.Error(t, DeleteQuestion(ctx, p, 1))
}
