package registry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aromabase/aromabase-backend/internal/domain"
)

// Rename updates the entity's names and synchronously rewrites every
// denormalized copy in the catalog. Unsupplied fields stay untouched; the
// slug changes only when supplied explicitly, never derived from the new
// name. The registry row is committed before propagation
// starts; if the bulk rewrite then fails or under-applies, the returned
// error is a *domain.PartialPropagationError carrying the attempted and
// confirmed counts, alongside the already-updated entity.
func (s *Service) Rename(ctx context.Context, input RenameInput) (domain.CanonicalEntity, int64, error) {
	if err := input.Validate(); err != nil {
		return domain.CanonicalEntity{}, 0, err
	}

	current, err := s.entities.GetByID(ctx, input.ID)
	if err != nil {
		return domain.CanonicalEntity{}, 0, fmt.Errorf("load entity: %w", err)
	}

	newOriginal := trimOrNil(input.OriginalName)
	newLocalized := trimOrNil(input.LocalizedName)

	attempted, err := s.countAffected(ctx, current, newOriginal, newLocalized)
	if err != nil {
		return domain.CanonicalEntity{}, 0, fmt.Errorf("count affected records: %w", err)
	}

	updated, err := s.entities.UpdateNames(ctx, input.ID, newOriginal, newLocalized, input.Slug)
	if err != nil {
		return domain.CanonicalEntity{}, 0, fmt.Errorf("update entity names: %w", err)
	}

	confirmed, err := s.propagateRename(ctx, current, newOriginal, newLocalized)
	if err != nil || confirmed != attempted {
		s.log.ErrorContext(ctx, "rename propagation incomplete",
			slog.String("kind", string(current.Kind)),
			slog.String("entity_id", current.ID.String()),
			slog.Int64("attempted", attempted),
			slog.Int64("confirmed", confirmed),
			slog.Any("error", err),
		)
		return updated, confirmed, &domain.PartialPropagationError{
			Kind:      current.Kind,
			EntityID:  current.ID,
			Attempted: attempted,
			Confirmed: confirmed,
			Err:       err,
		}
	}

	s.log.InfoContext(ctx, "entity renamed",
		slog.String("kind", string(current.Kind)),
		slog.String("entity_id", current.ID.String()),
		slog.Int64("records_updated", confirmed),
	)

	return updated, confirmed, nil
}

// countAffected pre-counts the records the rename will touch so a partial
// failure can report both sides. Renames that change no denormalized value
// (localized-only renames of brands and notes) touch nothing.
func (s *Service) countAffected(ctx context.Context, current domain.CanonicalEntity, newOriginal, newLocalized *string) (int64, error) {
	switch current.Kind {
	case domain.KindBrand:
		if newOriginal == nil {
			return 0, nil
		}
		return s.catalog.CountByBrand(ctx, current.OriginalName)
	case domain.KindPerfumer:
		if newOriginal == nil && newLocalized == nil {
			return 0, nil
		}
		return s.catalog.CountByPerfumer(ctx, current.OriginalName)
	default: // domain.KindNote
		if newOriginal == nil {
			return 0, nil
		}
		return s.catalog.CountByNote(ctx, current.OriginalName)
	}
}

func (s *Service) propagateRename(ctx context.Context, current domain.CanonicalEntity, newOriginal, newLocalized *string) (int64, error) {
	switch current.Kind {
	case domain.KindBrand:
		if newOriginal == nil {
			return 0, nil
		}
		return s.catalog.RenameBrand(ctx, current.OriginalName, *newOriginal)
	case domain.KindPerfumer:
		if newOriginal == nil && newLocalized == nil {
			return 0, nil
		}
		return s.catalog.RenamePerfumer(ctx, current.OriginalName, newOriginal, newLocalized)
	default: // domain.KindNote
		if newOriginal == nil {
			return 0, nil
		}
		return s.catalog.RenameNote(ctx, current.OriginalName, *newOriginal)
	}
}
