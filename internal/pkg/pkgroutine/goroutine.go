package pkgroutine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
)

// DefaultMaxGoroutine is used when NewManager receives a non-positive limit.
const DefaultMaxGoroutine int = 10

// ErrPanic marks errors recovered from a panicking task.
var ErrPanic = errors.New("goroutine panicked")

// Manager runs functions in goroutines with a configurable concurrency limit.
type Manager struct {
	mu   sync.Mutex
	errs []error
	wg   sync.WaitGroup
	sema chan struct{}
}

// NewManager creates a new Manager with the provided maximum concurrency.
func NewManager(maxGoroutine int) *Manager {
	if maxGoroutine < 1 {
		maxGoroutine = DefaultMaxGoroutine
	}

	return &Manager{
		sema: make(chan struct{}, maxGoroutine),
	}
}

// Go schedules f once a slot is free.
//
// It blocks while the manager is at capacity and gives up when pCtx is done
// before a slot frees up.
func (g *Manager) Go(pCtx context.Context, f func(ctx context.Context) error) {
	select {
	case g.sema <- struct{}{}:
	case <-pCtx.Done():
		slog.WarnContext(pCtx, "goroutine canceled before start", "because", pCtx.Err())
		return
	}

	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		defer func() { <-g.sema }()
		defer func() {
			if rvr := recover(); rvr != nil {
				slog.ErrorContext(pCtx, "panic occurred in goroutine", "because", rvr, "stack", string(debug.Stack()))
				g.collect(fmt.Errorf("%w: %v", ErrPanic, rvr))
			}
		}()

		if err := pCtx.Err(); err != nil {
			slog.WarnContext(pCtx, "goroutine canceled", "because", err)
			return
		}

		if err := f(pCtx); err != nil {
			g.collect(err)
		}
	}()
}

// Wait blocks until all scheduled goroutines finish and returns the collected errors.
func (g *Manager) Wait() error {
	g.wg.Wait()

	g.mu.Lock()
	defer g.mu.Unlock()
	return errors.Join(g.errs...)
}

func (g *Manager) collect(err error) {
	g.mu.Lock()
	g.errs = append(g.errs, err)
	g.mu.Unlock()
}
