package main

import (
	"context"
	"errors"
	"testing"

	"github.com/abha2510/Orion-Backend/internal/cache"
	"github.com/abha2510/Orion-Backend/internal/config"
	"github.com/abha2510/Orion-Backend/internal/database"
	"github.com/abha2510/Orion-Backend/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func restoreGlobals() {
	loadConfig = config.Load
	newPgxPool = database.NewPgxPool
	newRedisClient = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	rollbackAllFn = database.RollbackAll
	startServer = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	newWorkerPool = worker.NewPool
	exitFunc = func(code int) {}
}

func setEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DATABASE_URL", "postgres://db")
	t.Setenv("REDIS_ADDR", "127.0.0.1:6379")
	t.Setenv("REDIS_PASSWORD", "pw")
	t.Setenv("REDIS_DB", "1")
	t.Setenv("WORKER_COUNT", "2")
	t.Setenv("PORT", "9090")
	t.Setenv("MIGRATE_DOWN", "")
}

func stubDeps() {
	newPgxPool = func(context.Context, string) (database.DB, error) { return &database.FakeDB{}, nil }
	newRedisClient = func(string, string, int) (cache.Cache, error) { return &cache.FakeCache{}, nil }
	runMigrationsFn = func(string) error { return nil }
	rollbackAllFn = func(string) error { return errors.New("rollback not expected") }
	startServer = func(*echo.Echo, string) error { return nil }
}

type stoppedPool struct {
	worker.Pool
	stopped bool
}

func (p *stoppedPool) Stop() {
	p.stopped = true
	p.Pool.Stop()
}

func TestCustomValidator(t *testing.T) {
	cv := &CustomValidator{validator: validator.New()}
	type s struct {
		Name string `validate:"required"`
	}
	require.NoError(t, cv.Validate(&s{Name: "ok"}))
	require.Error(t, cv.Validate(&s{}))
}

func TestRunSuccess(t *testing.T) {
	t.Cleanup(restoreGlobals)
	setEnv(t)
	called := make(map[string]bool)
	newPgxPool = func(ctx context.Context, url string) (database.DB, error) {
		called["pgx"] = true
		require.Equal(t, "postgres://db", url)
		return &database.FakeDB{CloseFn: func() { called["dbClose"] = true }}, nil
	}
	newRedisClient = func(addr, pwd string, db int) (cache.Cache, error) {
		called["redis"] = true
		require.Equal(t, "127.0.0.1:6379", addr)
		require.Equal(t, "pw", pwd)
		require.Equal(t, 1, db)
		return &cache.FakeCache{CloseFn: func() error { called["redisClose"] = true; return nil }}, nil
	}
	runMigrationsFn = func(url string) error { called["migrate"] = true; return nil }
	var pool *stoppedPool
	newWorkerPool = func(n int) worker.Pool {
		require.Equal(t, 2, n)
		pool = &stoppedPool{Pool: worker.NewPool(n)}
		return pool
	}
	startServer = func(e *echo.Echo, addr string) error {
		called["start"] = true
		require.Equal(t, ":9090", addr)
		paths := map[string]bool{}
		for _, r := range e.Routes() {
			paths[r.Method+" "+r.Path] = true
		}
		require.True(t, paths["GET /swagger/*"])
		require.True(t, paths["POST /signup"])
		return nil
	}

	require.NoError(t, run())
	for _, k := range []string{"pgx", "redis", "migrate", "start", "dbClose", "redisClose"} {
		require.True(t, called[k], k)
	}
	require.True(t, pool.stopped)
}

func TestRunErrors(t *testing.T) {
	t.Cleanup(restoreGlobals)
	stubDeps()

	t.Setenv("JWT_SECRET", "")
	require.Error(t, run())

	setEnv(t)
	t.Setenv("WORKER_COUNT", "0")
	require.Error(t, run())
	t.Setenv("WORKER_COUNT", "2")

	runMigrationsFn = func(string) error { return errors.New("migrate") }
	require.ErrorContains(t, run(), "Migration")
	runMigrationsFn = func(string) error { return nil }

	newPgxPool = func(context.Context, string) (database.DB, error) { return nil, errors.New("db") }
	require.ErrorContains(t, run(), "DB")
	newPgxPool = func(context.Context, string) (database.DB, error) { return &database.FakeDB{}, nil }

	newRedisClient = func(string, string, int) (cache.Cache, error) { return nil, errors.New("redis") }
	require.ErrorContains(t, run(), "Redis")
	newRedisClient = func(string, string, int) (cache.Cache, error) { return &cache.FakeCache{}, nil }

	startServer = func(*echo.Echo, string) error { return errors.New("start") }
	require.ErrorContains(t, run(), "start")
}

func TestMainFunction(t *testing.T) {
	t.Cleanup(restoreGlobals)
	setEnv(t)
	stubDeps()
	exitCode := -1
	exitFunc = func(code int) { exitCode = code }
	main()
	require.Equal(t, -1, exitCode)
}

func TestMainExit(t *testing.T) {
	t.Cleanup(restoreGlobals)
	exitCode := 0
	exitFunc = func(code int) { exitCode = code }
	loadConfig = func() (*config.Config, error) { return nil, errors.New("fail") }
	main()
	require.Equal(t, 1, exitCode)
}

func TestRunMigrateDown(t *testing.T) {
	t.Cleanup(restoreGlobals)
	setEnv(t)
	stubDeps()

	var order []string
	rollbackAllFn = func(url string) error {
		require.Equal(t, "postgres://db", url)
		order = append(order, "down")
		return nil
	}
	runMigrationsFn = func(string) error {
		order = append(order, "up")
		return nil
	}

	require.NoError(t, run())
	require.Equal(t, []string{"up"}, order)

	order = nil
	t.Setenv("MIGRATE_DOWN", "true")
	require.NoError(t, run())
	require.Equal(t, []string{"down", "up"}, order)

	rollbackAllFn = func(string) error { return errors.New("down failed") }
	require.ErrorContains(t, run(), "RollbackAll")
}
