package worker

import (
	"context"
	"errors"
	"sync"
)

// Task represents a unit of work executed by the pool.
type Task func(ctx context.Context) error

// Pool runs tasks on a fixed set of goroutines.
type Pool interface {
	// Do runs every task on the pool and blocks until all of them return.
	// The returned error joins every task error.
	Do(ctx context.Context, tasks ...Task) error
	Stop()
}

// ErrStopped is returned by Do after Stop.
var ErrStopped = errors.New("worker pool stopped")

// NewPool creates a pool with n workers. n<=0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan func())}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				job()
			}
		}()
	}
	return p
}

type pool struct {
	mu      sync.RWMutex
	stopped bool
	jobs    chan func()
	wg      sync.WaitGroup
}

func (p *pool) Do(ctx context.Context, tasks ...Task) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return ErrStopped
	}

	errs := make([]error, len(tasks))
	var wg sync.WaitGroup
	for i, t := range tasks {
		if t == nil {
			continue
		}
		wg.Add(1)
		i, t := i, t
		job := func() {
			defer wg.Done()
			errs[i] = t(ctx)
		}
		select {
		case p.jobs <- job:
		case <-ctx.Done():
			wg.Done()
			errs[i] = ctx.Err()
		}
	}
	wg.Wait()
	return errors.Join(errs...)
}

func (p *pool) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stopped {
		return
	}
	p.stopped = true
	close(p.jobs)
	p.wg.Wait()
}
