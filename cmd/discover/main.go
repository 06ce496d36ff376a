// Command discover scans the catalog and registers every brand, perfumer,
// and note name that has no canonical entry yet. It is idempotent and meant
// to be run from cron or manually after bulk imports.
//
// Exit codes: 0 on success, 1 on any failure.
package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/aromabase/aromabase-backend/internal/adapter/postgres"
	"github.com/aromabase/aromabase-backend/internal/adapter/postgres/entity"
	"github.com/aromabase/aromabase-backend/internal/adapter/postgres/perfume"
	"github.com/aromabase/aromabase-backend/internal/app"
	"github.com/aromabase/aromabase-backend/internal/config"
	"github.com/aromabase/aromabase-backend/internal/domain"
	"github.com/aromabase/aromabase-backend/internal/service/registry"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "discover: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Catalog.DiscoverTimeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	service := registry.NewService(log, entity.New(pool), perfume.New(pool), registry.PageLimits{
		DefaultPageSize: cfg.Catalog.DefaultPageSize,
		MaxPageSize:     cfg.Catalog.MaxPageSize,
	})

	g, ctx := errgroup.WithContext(ctx)
	for _, kind := range domain.Kinds() {
		g.Go(func() error {
			discovered, err := service.Discover(ctx, kind)
			if err != nil {
				return fmt.Errorf("%s: %w", kind, err)
			}
			log.Info("kind done", "kind", kind.String(), "discovered", len(discovered))
			return nil
		})
	}
	return g.Wait()
}
