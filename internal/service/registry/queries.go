package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/aromabase/aromabase-backend/internal/domain"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// GetByID returns the entity by primary key.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (domain.CanonicalEntity, error) {
	if id == uuid.Nil {
		return domain.CanonicalEntity{}, domain.NewValidationError("id", "required")
	}
	return s.entities.GetByID(ctx, id)
}

// GetBySlug returns the entity of the given kind addressed by its slug.
func (s *Service) GetBySlug(ctx context.Context, kind domain.EntityKind, slug string) (domain.CanonicalEntity, error) {
	if !kind.IsValid() {
		return domain.CanonicalEntity{}, domain.NewValidationError("kind", "must be brand, perfumer, or note")
	}
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return domain.CanonicalEntity{}, domain.NewValidationError("slug", "required")
	}
	return s.entities.GetBySlug(ctx, kind, slug)
}

// GetByInitial returns all entities of a kind whose original name starts
// with the given initial, alphabetically. For perfumers the localized name
// counts too, so Cyrillic initials reach Latin-named entities. An unknown
// initial yields an empty list, not an error.
func (s *Service) GetByInitial(ctx context.Context, kind domain.EntityKind, initial string) ([]domain.CanonicalEntity, error) {
	if !kind.IsValid() {
		return nil, domain.NewValidationError("kind", "must be brand, perfumer, or note")
	}
	initial = strings.TrimSpace(initial)
	if len([]rune(initial)) != 1 {
		return nil, domain.NewValidationError("initial", "must be a single character")
	}
	return s.entities.ListByInitial(ctx, kind, initial)
}

// Search returns one page of entities matching the query in either name
// form. A Cyrillic query also matches against its transliteration, so
// searching "Шанель" finds an entity registered as "Chanel"'s localized name
// or "shanel"-like originals. A blank query yields an empty page.
func (s *Service) Search(ctx context.Context, input SearchInput) (*domain.Page[domain.CanonicalEntity], error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = s.limits.DefaultPageSize
	}
	if limit > s.limits.MaxPageSize {
		limit = s.limits.MaxPageSize
	}

	variants := domain.QueryVariants(input.Query)
	if len(variants) == 0 {
		return domain.NewPage([]domain.CanonicalEntity{}, page, limit, 0), nil
	}

	items, total, err := s.entities.Search(ctx, input.Kind, variants, limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("search %s entities: %w", input.Kind, err)
	}

	return domain.NewPage(items, page, limit, total), nil
}
