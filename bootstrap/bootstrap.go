// Package bootstrap runs the service until it is told to stop.
package bootstrap

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

const defaultShutdownTimeout = 10 * time.Second

// App runs a blocking function and tears down registered resources afterwards.
type App struct {
	// ShutdownTimeout bounds the time given to shutdown hooks.
	ShutdownTimeout time.Duration

	mu    sync.Mutex
	hooks []func(ctx context.Context) error
}

func New() *App {
	return &App{ShutdownTimeout: defaultShutdownTimeout}
}

// AddShutdownHook registers fn to run on shutdown. Hooks run in reverse
// registration order. Safe for concurrent use.
func (a *App) AddShutdownHook(fn func(ctx context.Context) error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hooks = append(a.hooks, fn)
}

// Run calls run with a context cancelled on SIGINT or SIGTERM. The shutdown
// hooks run exactly once: when the context ends, or when run returns first.
// After a signal, Run waits for run to return before reporting.
func (a *App) Run(ctx context.Context, run func(ctx context.Context) error) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(ctx)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancelShutdown := context.WithTimeout(context.WithoutCancel(ctx), a.timeout())
		defer cancelShutdown()
		err := a.shutdown(shutdownCtx)
		return errors.Join(<-errCh, err)
	case err := <-errCh:
		shutdownCtx, cancelShutdown := context.WithTimeout(context.WithoutCancel(ctx), a.timeout())
		defer cancelShutdown()
		return errors.Join(err, a.shutdown(shutdownCtx))
	}
}

func (a *App) timeout() time.Duration {
	if a.ShutdownTimeout <= 0 {
		return defaultShutdownTimeout
	}
	return a.ShutdownTimeout
}

func (a *App) shutdown(ctx context.Context) error {
	a.mu.Lock()
	hooks := a.hooks
	a.hooks = nil
	a.mu.Unlock()

	var errs []error
	for i := len(hooks) - 1; i >= 0; i-- {
		if err := hooks[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
