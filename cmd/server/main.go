// Command server exposes one payments engine instance over HTTP: transaction
// ingestion, account summaries, health and metrics.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/mkravchenko/payments-engine/internal/api"
	"github.com/mkravchenko/payments-engine/internal/infra/logging"
	"github.com/mkravchenko/payments-engine/internal/infra/metrics"
	ledgermem "github.com/mkravchenko/payments-engine/internal/repos/ledger/memory"
	"github.com/mkravchenko/payments-engine/internal/services/engine"
	"github.com/mkravchenko/payments-engine/pkg/envconf"
	"github.com/mkravchenko/payments-engine/pkg/shutdownqueue"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error running server: %v", err)
		//nolint:gocritic
		os.Exit(1)
	}
}

func run(ctx context.Context) (retErr error) {
	cfg := new(serverConfig)

	err := envconf.Load(cfg)
	if err != nil {
		return fmt.Errorf("init config: %w", err)
	}

	logging.SetupJSON(cfg.LogLevel)

	queue := new(shutdownqueue.Queue)

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		serr := queue.Shutdown(shutdownCtx)
		if serr != nil {
			retErr = errors.Join(retErr, serr)
		}
	}()

	// --- Engine + HTTP server ---
	eng := engine.New(ledgermem.New(), slog.Default())
	collector := metrics.NewCollector()
	handler := api.NewHandler(eng, collector)
	srv := api.NewServer(cfg.Port, api.NewRouter(handler, collector.Handler()))

	queue.Add(func(c context.Context) error {
		slog.Info("Shut down server")

		err := srv.Shutdown(c)
		if err != nil {
			return fmt.Errorf("shutdown srv: %w", err)
		}

		return nil
	})

	errCh := make(chan error, 1)

	go func() {
		serr := srv.ListenAndServe()
		// http.ErrServerClosed is the normal path during Shutdown
		if serr != nil && !errors.Is(serr, http.ErrServerClosed) {
			errCh <- serr
			return
		}

		errCh <- nil
	}()

	slog.Info("Payments API started", "port", cfg.Port)

	// --- Wait until either context cancels or server errors out ---
	select {
	case <-ctx.Done():
		// graceful path; the deferred queue.Shutdown will run
		return nil
	case serr := <-errCh:
		if serr != nil {
			return fmt.Errorf("server error: %w", serr)
		}

		return nil
	}
}
