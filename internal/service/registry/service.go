// Package registry manages the canonical entity registry: brands, perfumers,
// and notes with stable slugs, plus the propagation of renames and deletes
// into the denormalized catalog records.
package registry

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/aromabase/aromabase-backend/internal/domain"
)

type entityRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.CanonicalEntity, error)
	GetBySlug(ctx context.Context, kind domain.EntityKind, slug string) (domain.CanonicalEntity, error)
	ListByInitial(ctx context.Context, kind domain.EntityKind, initial string) ([]domain.CanonicalEntity, error)
	Search(ctx context.Context, kind domain.EntityKind, variants []string, limit, offset int) ([]domain.CanonicalEntity, int, error)
	Insert(ctx context.Context, e domain.CanonicalEntity) error
	PutIfAbsent(ctx context.Context, e domain.CanonicalEntity) (domain.CanonicalEntity, bool, error)
	UpdateNames(ctx context.Context, id uuid.UUID, originalName, localizedName, slug *string) (domain.CanonicalEntity, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type catalogRepo interface {
	DistinctBrands(ctx context.Context) ([]string, error)
	DistinctPerfumers(ctx context.Context) ([]domain.PerfumerName, error)
	DistinctNotes(ctx context.Context) ([]string, error)

	CountByBrand(ctx context.Context, name string) (int64, error)
	CountByPerfumer(ctx context.Context, en string) (int64, error)
	CountByNote(ctx context.Context, name string) (int64, error)

	RenameBrand(ctx context.Context, oldName, newName string) (int64, error)
	RenamePerfumer(ctx context.Context, oldEN string, newEN, newRU *string) (int64, error)
	RenameNote(ctx context.Context, oldName, newName string) (int64, error)

	DeleteByBrand(ctx context.Context, name string) (int64, error)
	DeleteByPerfumer(ctx context.Context, en string) (int64, error)
	RemoveNote(ctx context.Context, name string) (int64, error)
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

// Service provides canonical entity operations.
type Service struct {
	entities entityRepo
	catalog  catalogRepo
	limits   PageLimits
	log      *slog.Logger
}

// NewService creates a new registry service.
func NewService(log *slog.Logger, entities entityRepo, catalog catalogRepo, limits PageLimits) *Service {
	return &Service{
		entities: entities,
		catalog:  catalog,
		limits:   limits.withDefaults(),
		log:      log.With("service", "registry"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
