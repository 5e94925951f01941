package sandbox

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/devdhirendra/enhanced-ns-sub000/internal/config"

	"go.uber.org/zap"
)

// Run seeds a store from cfg and serves until ctx is done.
func Run(ctx context.Context, cfg config.Sandbox, logger *zap.Logger) error {
	store := NewStore()
	if err := Seed(store, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		return fmt.Errorf("seed sandbox: %w", err)
	}

	srv, err := New(store, Options{
		JWTSecret:      cfg.JWTSecret,
		LoginLimit:     cfg.LoginLimit,
		LoginWindow:    cfg.LoginWindow,
		RequestTimeout: cfg.RequestTimeout,
		Logger:         logger,
	})
	if err != nil {
		return err
	}
	defer srv.Close()

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("sandbox listening", zap.String("addr", cfg.Addr), zap.String("admin", cfg.AdminEmail))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("sandbox server: %w", err)
	case <-ctx.Done():
	}

	srv.Health.SetStatus("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("sandbox shutdown: %w", err)
	}
	logger.Info("sandbox stopped")
	return nil
}
