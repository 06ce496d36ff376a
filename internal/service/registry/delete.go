package registry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/aromabase/aromabase-backend/internal/domain"
)

// Delete removes the entity and cascades into the catalog: deleting a brand
// or perfumer deletes every record carrying it, deleting a note only pulls
// the note out of the records' pyramid layers. The registry delete commits
// first; a failed or incomplete cascade surfaces as a
// *domain.PartialPropagationError with both counts.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	if id == uuid.Nil {
		return 0, domain.NewValidationError("id", "required")
	}

	current, err := s.entities.GetByID(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("load entity: %w", err)
	}

	attempted, err := s.countCarriers(ctx, current)
	if err != nil {
		return 0, fmt.Errorf("count affected records: %w", err)
	}

	if err := s.entities.Delete(ctx, id); err != nil {
		return 0, fmt.Errorf("delete entity: %w", err)
	}

	confirmed, err := s.propagateDelete(ctx, current)
	if err != nil || confirmed != attempted {
		s.log.ErrorContext(ctx, "delete propagation incomplete",
			slog.String("kind", string(current.Kind)),
			slog.String("entity_id", current.ID.String()),
			slog.Int64("attempted", attempted),
			slog.Int64("confirmed", confirmed),
			slog.Any("error", err),
		)
		return confirmed, &domain.PartialPropagationError{
			Kind:      current.Kind,
			EntityID:  current.ID,
			Attempted: attempted,
			Confirmed: confirmed,
			Err:       err,
		}
	}

	s.log.InfoContext(ctx, "entity deleted",
		slog.String("kind", string(current.Kind)),
		slog.String("entity_id", current.ID.String()),
		slog.Int64("records_affected", confirmed),
	)

	return confirmed, nil
}

func (s *Service) countCarriers(ctx context.Context, e domain.CanonicalEntity) (int64, error) {
	switch e.Kind {
	case domain.KindBrand:
		return s.catalog.CountByBrand(ctx, e.OriginalName)
	case domain.KindPerfumer:
		return s.catalog.CountByPerfumer(ctx, e.OriginalName)
	default: // domain.KindNote
		return s.catalog.CountByNote(ctx, e.OriginalName)
	}
}

func (s *Service) propagateDelete(ctx context.Context, e domain.CanonicalEntity) (int64, error) {
	switch e.Kind {
	case domain.KindBrand:
		return s.catalog.DeleteByBrand(ctx, e.OriginalName)
	case domain.KindPerfumer:
		return s.catalog.DeleteByPerfumer(ctx, e.OriginalName)
	default: // domain.KindNote
		return s.catalog.RemoveNote(ctx, e.OriginalName)
	}
}
