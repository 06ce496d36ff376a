// Package catalog implements search and ranking over the denormalized
// catalog records, plus the rating write path that feeds the popularity sort.
package catalog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/aromabase/aromabase-backend/internal/domain"
)

type perfumeRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Perfume, error)
	Search(ctx context.Context, f domain.PerfumeFilter) ([]domain.Perfume, int, error)

	UpsertRating(ctx context.Context, perfumeID, userID uuid.UUID, s domain.CategoryScores) error
	CategoryAverages(ctx context.Context, perfumeID uuid.UUID) (scent, longevity, sillage, packaging, value float64, count int, err error)
	UpdateRatingAggregate(ctx context.Context, s domain.RatingSummary) error
}

// registryResolver resolves slug-addressed filters to canonical entities.
type registryResolver interface {
	GetBySlug(ctx context.Context, kind domain.EntityKind, slug string) (domain.CanonicalEntity, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.CanonicalEntity, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// PageLimits bounds search pagination. Zero values fall back to the package
// defaults.
type PageLimits struct {
	DefaultPageSize int
	MaxPageSize     int
}

func (l PageLimits) withDefaults() PageLimits {
	if l.DefaultPageSize < 1 {
		l.DefaultPageSize = defaultPageSize
	}
	if l.MaxPageSize < 1 {
		l.MaxPageSize = maxPageSize
	}
	return l
}

// Service provides catalog search and rating operations.
type Service struct {
	perfumes perfumeRepo
	registry registryResolver
	tx       txManager
	limits   PageLimits
	log      *slog.Logger
}

// NewService creates a new catalog service.
func NewService(log *slog.Logger, perfumes perfumeRepo, registry registryResolver, tx txManager, limits PageLimits) *Service {
	return &Service{
		perfumes: perfumes,
		registry: registry,
		tx:       tx,
		limits:   limits.withDefaults(),
		log:      log.With("service", "catalog"),
	}
}
