package admin

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/abha2510/Orion-Backend/internal/database"
	"github.com/abha2510/Orion-Backend/internal/model"
	"github.com/abha2510/Orion-Backend/internal/store"
	"github.com/abha2510/Orion-Backend/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newParamCtx(e *echo.Echo, method, name, val string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if name != "" {
		c.SetParamNames(name)
		c.SetParamValues(val)
	}
	return c, rec
}

func restore() {
	listUnapprovedQuestions = store.ListUnapprovedQuestions
	listUnapprovedAnswers = store.ListUnapprovedAnswers
	listUsersByRole = store.ListUsersByRole
	approveQuestion = store.ApproveQuestion
	approveAnswer = store.ApproveAnswer
	deleteQuestion = store.DeleteQuestion
	deleteAnswer = store.DeleteAnswer
	setUserBanned = store.SetUserBanned
}

func TestDashboardHandler(t *testing.T) {
	e := echo.New()
	wp := worker.NewPool(3)
	t.Cleanup(wp.Stop)

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		var calls int32
		listUnapprovedQuestions = func(context.Context, database.DB) ([]model.Question, error) {
			atomic.AddInt32(&calls, 1)
			return []model.Question{{ID: 1, Text: "pending q"}}, nil
		}
		listUnapprovedAnswers = func(context.Context, database.DB) ([]model.Answer, error) {
			atomic.AddInt32(&calls, 1)
			return []model.Answer{{ID: 2, Text: "pending a", Ratings: model.Ratings{}}}, nil
		}
		listUsersByRole = func(_ context.Context, _ database.DB, role string) ([]model.User, error) {
			atomic.AddInt32(&calls, 1)
			require.Equal(t, model.RoleUser, role)
			return []model.User{{ID: 3, Username: "erin", PasswordHash: "hash"}}, nil
		}
		ctx, rec := newParamCtx(e, http.MethodGet, "", "")
		require.NoError(t, DashboardHandler(nil, wp)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.EqualValues(t, 3, atomic.LoadInt32(&calls))
		body := rec.Body.String()
		require.Contains(t, body, `"pendingQuestions":[{"id":1`)
		require.Contains(t, body, `"pendingAnswers":[{"id":2`)
		require.Contains(t, body, `"userList":[{"id":3`)
		require.NotContains(t, body, "hash")
	})

	t.Run("empty lists", func(t *testing.T) {
		t.Cleanup(restore)
		listUnapprovedQuestions = func(context.Context, database.DB) ([]model.Question, error) { return nil, nil }
		listUnapprovedAnswers = func(context.Context, database.DB) ([]model.Answer, error) { return nil, nil }
		listUsersByRole = func(context.Context, database.DB, string) ([]model.User, error) { return nil, nil }
		ctx, rec := newParamCtx(e, http.MethodGet, "", "")
		require.NoError(t, DashboardHandler(nil, wp)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"pendingQuestions":[],"pendingAnswers":[],"userList":[]}`, rec.Body.String())
	})

	t.Run("one query fails", func(t *testing.T) {
		t.Cleanup(restore)
		listUnapprovedQuestions = func(context.Context, database.DB) ([]model.Question, error) { return nil, nil }
		listUnapprovedAnswers = func(context.Context, database.DB) ([]model.Answer, error) {
			return nil, errors.New("answers table locked")
		}
		listUsersByRole = func(context.Context, database.DB, string) ([]model.User, error) { return nil, nil }
		ctx, rec := newParamCtx(e, http.MethodGet, "", "")
		require.NoError(t, DashboardHandler(nil, wp)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.NotContains(t, rec.Body.String(), "locked")
	})

	t.Run("stopped pool", func(t *testing.T) {
		stopped := worker.NewPool(1)
		stopped.Stop()
		ctx, rec := newParamCtx(e, http.MethodGet, "", "")
		require.NoError(t, DashboardHandler(nil, stopped)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestApproveHandlers(t *testing.T) {
	e := echo.New()

	t.Run("question invalid id", func(t *testing.T) {
		ctx, rec := newParamCtx(e, http.MethodPatch, "id", "x")
		require.NoError(t, ApproveQuestionHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("question not found", func(t *testing.T) {
		t.Cleanup(restore)
		approveQuestion = func(context.Context, database.DB, int) (*model.Question, error) {
			return nil, fmt.Errorf("ApproveQuestion: %w", store.ErrNotFound)
		}
		ctx, rec := newParamCtx(e, http.MethodPatch, "id", "5")
		require.NoError(t, ApproveQuestionHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("question approved", func(t *testing.T) {
		t.Cleanup(restore)
		approveQuestion = func(_ context.Context, _ database.DB, id int) (*model.Question, error) {
			return &model.Question{ID: id, Approved: true}, nil
		}
		ctx, rec := newParamCtx(e, http.MethodPatch, "id", "5")
		require.NoError(t, ApproveQuestionHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"approved":true`)
	})

	t.Run("question approve twice", func(t *testing.T) {
		t.Cleanup(restore)
		approved := map[int]bool{}
		approveQuestion = func(_ context.Context, _ database.DB, id int) (*model.Question, error) {
			approved[id] = true
			return &model.Question{ID: id, Text: "same", Approved: approved[id]}, nil
		}
		for i := 0; i < 2; i++ {
			ctx, rec := newParamCtx(e, http.MethodPatch, "id", "5")
			require.NoError(t, ApproveQuestionHandler(nil)(ctx))
			require.Equal(t, http.StatusOK, rec.Code)
			require.Contains(t, rec.Body.String(), `"approved":true`)
			require.Contains(t, rec.Body.String(), `"text":"same"`)
		}
		require.Equal(t, map[int]bool{5: true}, approved)
	})

	t.Run("answer approve twice", func(t *testing.T) {
		t.Cleanup(restore)
		approved := map[int]bool{}
		approveAnswer = func(_ context.Context, _ database.DB, id int) (*model.Answer, error) {
			approved[id] = true
			return &model.Answer{ID: id, Approved: approved[id], Ratings: model.Ratings{}}, nil
		}
		for i := 0; i < 2; i++ {
			ctx, rec := newParamCtx(e, http.MethodPatch, "id", "8")
			require.NoError(t, ApproveAnswerHandler(nil)(ctx))
			require.Equal(t, http.StatusOK, rec.Code)
			require.Contains(t, rec.Body.String(), `"approved":true`)
		}
		require.Equal(t, map[int]bool{8: true}, approved)
	})

	t.Run("answer not found", func(t *testing.T) {
		t.Cleanup(restore)
		approveAnswer = func(context.Context, database.DB, int) (*model.Answer, error) {
			return nil, fmt.Errorf("ApproveAnswer: %w", store.ErrNotFound)
		}
		ctx, rec := newParamCtx(e, http.MethodPatch, "id", "5")
		require.NoError(t, ApproveAnswerHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("answer store error", func(t *testing.T) {
		t.Cleanup(restore)
		approveAnswer = func(context.Context, database.DB, int) (*model.Answer, error) {
			return nil, errors.New("db")
		}
		ctx, rec := newParamCtx(e, http.MethodPatch, "id", "5")
		require.NoError(t, ApproveAnswerHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("answer approved", func(t *testing.T) {
		t.Cleanup(restore)
		approveAnswer = func(_ context.Context, _ database.DB, id int) (*model.Answer, error) {
			return &model.Answer{ID: id, Approved: true, Ratings: model.Ratings{}}, nil
		}
		ctx, rec := newParamCtx(e, http.MethodPatch, "id", "8")
		require.NoError(t, ApproveAnswerHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"id":8`)
	})
}

func TestDeleteHandlers(t *testing.T) {
	e := echo.New()

	t.Run("question deleted", func(t *testing.T) {
		t.Cleanup(restore)
		var got int
		deleteQuestion = func(_ context.Context, _ database.DB, id int) error { got = id; return nil }
		ctx, rec := newParamCtx(e, http.MethodDelete, "id", "12")
		require.NoError(t, DeleteQuestionHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, 12, got)
	})

	t.Run("question missing", func(t *testing.T) {
		t.Cleanup(restore)
		deleteQuestion = func(context.Context, database.DB, int) error {
			return fmt.Errorf("DeleteQuestion: %w", store.ErrNotFound)
		}
		ctx, rec := newParamCtx(e, http.MethodDelete, "id", "12")
		require.NoError(t, DeleteQuestionHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("answer missing", func(t *testing.T) {
		t.Cleanup(restore)
		deleteAnswer = func(context.Context, database.DB, int) error {
			return fmt.Errorf("DeleteAnswer: %w", store.ErrNotFound)
		}
		ctx, rec := newParamCtx(e, http.MethodDelete, "id", "4")
		require.NoError(t, DeleteAnswerHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("answer invalid id", func(t *testing.T) {
		ctx, rec := newParamCtx(e, http.MethodDelete, "id", "-")
		require.NoError(t, DeleteAnswerHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("answer deleted", func(t *testing.T) {
		t.Cleanup(restore)
		deleteAnswer = func(context.Context, database.DB, int) error { return nil }
		ctx, rec := newParamCtx(e, http.MethodDelete, "id", "4")
		require.NoError(t, DeleteAnswerHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "answer deleted successfully")
	})
}

func TestBanHandlers(t *testing.T) {
	e := echo.New()

	t.Run("ban", func(t *testing.T) {
		t.Cleanup(restore)
		setUserBanned = func(_ context.Context, _ database.DB, id int, banned bool) error {
			require.Equal(t, 3, id)
			require.True(t, banned)
			return nil
		}
		ctx, rec := newParamCtx(e, http.MethodPatch, "userId", "3")
		require.NoError(t, BanUserHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "user banned successfully")
	})

	t.Run("unban", func(t *testing.T) {
		t.Cleanup(restore)
		setUserBanned = func(_ context.Context, _ database.DB, _ int, banned bool) error {
			require.False(t, banned)
			return nil
		}
		ctx, rec := newParamCtx(e, http.MethodPatch, "userId", "3")
		require.NoError(t, UnbanUserHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "user unbanned successfully")
	})

	t.Run("missing user", func(t *testing.T) {
		t.Cleanup(restore)
		setUserBanned = func(context.Context, database.DB, int, bool) error {
			return fmt.Errorf("SetUserBanned: %w", store.ErrNotFound)
		}
		ctx, rec := newParamCtx(e, http.MethodPatch, "userId", "99")
		require.NoError(t, BanUserHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, rec.Body.String(), "user not found")
	})

	t.Run("invalid id", func(t *testing.T) {
		ctx, rec := newParamCtx(e, http.MethodPatch, "userId", "bob")
		require.NoError(t, UnbanUserHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("store error", func(t *testing.T) {
		t.Cleanup(restore)
		setUserBanned = func(context.Context, database.DB, int, bool) error { return errors.New("db") }
		ctx, rec := newParamCtx(e, http.MethodPatch, "userId", "3")
		require.NoError(t, BanUserHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
