// Package app wires configuration, storage, services, and transport into a
// running HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/aromabase/aromabase-backend/internal/adapter/postgres"
	"github.com/aromabase/aromabase-backend/internal/adapter/postgres/entity"
	"github.com/aromabase/aromabase-backend/internal/adapter/postgres/perfume"
	"github.com/aromabase/aromabase-backend/internal/config"
	"github.com/aromabase/aromabase-backend/internal/service/catalog"
	"github.com/aromabase/aromabase-backend/internal/service/registry"
	"github.com/aromabase/aromabase-backend/internal/transport/middleware"
	"github.com/aromabase/aromabase-backend/internal/transport/rest"
)

// Run starts the API server and blocks until SIGINT/SIGTERM or a fatal error.
func Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := NewLogger(cfg.Log)
	log.Info("starting", "version", BuildVersion())

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	entityRepo := entity.New(pool)
	perfumeRepo := perfume.New(pool)
	txManager := postgres.NewTxManager(pool)

	registryService := registry.NewService(log, entityRepo, perfumeRepo, registry.PageLimits{
		DefaultPageSize: cfg.Catalog.DefaultPageSize,
		MaxPageSize:     cfg.Catalog.MaxPageSize,
	})
	catalogService := catalog.NewService(log, perfumeRepo, registryService, txManager, catalog.PageLimits{
		DefaultPageSize: cfg.Catalog.DefaultPageSize,
		MaxPageSize:     cfg.Catalog.MaxPageSize,
	})

	router := rest.NewRouter(
		rest.NewHealthHandler(pool),
		rest.NewRegistryHandler(log, registryService),
		rest.NewCatalogHandler(log, catalogService),
	)

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(log),
		middleware.Logger(log),
		middleware.CORS(cfg.CORS),
	)(router)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down", "timeout", cfg.Server.ShutdownTimeout.String())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("stopped")
	return nil
}
