package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

// Start serves HTTP in the background. The returned channel is closed once a
// termination signal arrives.
func (a *App) Start() <-chan struct{} {
	slog.Info("flight gateway starting",
		"address", a.httpServer.Addr,
		"modules", a.modules,
		"routes", a.router.Routes(),
	)

	go func() {
		if err := a.httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server stopped unexpectedly", "address", a.httpServer.Addr, "error", err)
			os.Exit(1)
		}
	}()

	done := make(chan struct{})
	go func() {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
		defer stop()

		<-ctx.Done()
		slog.Info("termination signal received")
		close(done)
	}()

	return done
}

// Stop drains in-flight requests, then releases resources in reverse
// registration order so spans recorded during the drain are still exported.
func (a *App) Stop(ctx context.Context) error {
	var errs []error

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to drain http server", "error", err)
		errs = append(errs, err)
	}

	for i := len(a.closers) - 1; i >= 0; i-- {
		c := a.closers[i]
		if err := c.fn(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to release resource", "name", c.name, "error", err)
			errs = append(errs, err)
		}
	}

	slog.InfoContext(ctx, "flight gateway stopped")
	return errors.Join(errs...)
}
