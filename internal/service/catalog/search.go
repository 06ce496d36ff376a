package catalog

import (
	"context"
	"fmt"

	"github.com/aromabase/aromabase-backend/internal/domain"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Search returns one page of catalog records. The free-text query matches
// name, localized name, and brand in its normalized, transliterated, and raw
// lowercased forms; entity filters are resolved through the registry first so
// an unknown slug fails loudly instead of silently matching nothing. An empty
// result is a valid page, never an error.
func (s *Service) Search(ctx context.Context, input SearchInput) (*domain.Page[domain.Perfume], error) {
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

	filter, err := s.buildFilter(ctx, input, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	// Nothing to match on: neither query nor filters. Return an empty page
	// rather than dumping the whole catalog.
	if len(filter.QueryVariants) == 0 && filter.Brand == nil && filter.Perfumer == nil &&
		filter.Note == nil && filter.Gender == nil && filter.ReleaseYear == nil {
		return domain.NewPage([]domain.Perfume{}, page, limit, 0), nil
	}

	items, total, err := s.perfumes.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search perfumes: %w", err)
	}

	return domain.NewPage(items, page, limit, total), nil
}

// buildFilter resolves slug/id filters against the registry and derives the
// query variants.
func (s *Service) buildFilter(ctx context.Context, input SearchInput, limit, offset int) (domain.PerfumeFilter, error) {
	filter := domain.PerfumeFilter{
		QueryVariants: domain.QueryVariants(input.Query),
		ExactVariants: domain.ExactVariants(input.Query),
		Gender:        input.Gender,
		ReleaseYear:   input.ReleaseYear,
		Sort:          input.Sort,
		Limit:         limit,
		Offset:        offset,
	}

	if input.BrandSlug != nil {
		e, err := s.registry.GetBySlug(ctx, domain.KindBrand, *input.BrandSlug)
		if err != nil {
			return domain.PerfumeFilter{}, fmt.Errorf("resolve brand slug %q: %w", *input.BrandSlug, err)
		}
		name := e.OriginalName
		filter.Brand = &name
	}

	if input.PerfumerSlug != nil {
		e, err := s.registry.GetBySlug(ctx, domain.KindPerfumer, *input.PerfumerSlug)
		if err != nil {
			return domain.PerfumeFilter{}, fmt.Errorf("resolve perfumer slug %q: %w", *input.PerfumerSlug, err)
		}
		filter.Perfumer = &domain.PerfumerRef{EN: e.OriginalName, RU: e.LocalizedName}
	}

	if input.NoteID != nil {
		e, err := s.registry.GetByID(ctx, *input.NoteID)
		if err != nil {
			return domain.PerfumeFilter{}, fmt.Errorf("resolve note id %s: %w", *input.NoteID, err)
		}
		if e.Kind != domain.KindNote {
			return domain.PerfumeFilter{}, domain.NewValidationError("note_id", "entity is not a note")
		}
		name := e.OriginalName
		filter.Note = &name
	}

	return filter, nil
}

// GetByID returns a single catalog record.
func (s *Service) GetByID(ctx context.Context, input GetByIDInput) (domain.Perfume, error) {
	if err := input.Validate(); err != nil {
		return domain.Perfume{}, err
	}
	return s.perfumes.GetByID(ctx, input.ID)
}
