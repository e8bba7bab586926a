package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpadapter "github.com/couchcryptid/chicago-health-atlas/internal/adapter/http"
	"github.com/couchcryptid/chicago-health-atlas/internal/observability"
	"github.com/couchcryptid/chicago-health-atlas/internal/render"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the generated artifacts over HTTP for local preview",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	metrics := observability.NewMetrics()

	ready := artifactChecker{dir: cfg.OutDir}
	srv := httpadapter.NewServer(cfg.HTTPAddr, cfg.OutDir, ready, logger, metrics)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("preview server: %w", err)
	case <-ctx.Done():
	}
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("preview server shutdown: %w", err)
	}
	return nil
}

// artifactChecker reports ready once a generate run has produced the poster.
type artifactChecker struct {
	dir string
}

func (c artifactChecker) CheckReadiness(_ context.Context) error {
	path := filepath.Join(c.dir, render.PosterName)
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("no generated artifacts at %s (run atlas generate first)", c.dir)
	}
	return nil
}
