package registry

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aromabase/aromabase-backend/internal/domain"
)

// Create registers a new canonical entity. A name or slug already present
// within the kind returns domain.ErrAlreadyExists.
func (s *Service) Create(ctx context.Context, input CreateInput) (domain.CanonicalEntity, error) {
	if err := input.Validate(); err != nil {
		return domain.CanonicalEntity{}, err
	}

	name := strings.TrimSpace(input.OriginalName)
	e := domain.NewCanonicalEntity(input.Kind, name, trimOrNil(input.LocalizedName))
	if e.Slug == "" {
		return domain.CanonicalEntity{}, domain.NewValidationError("original_name", "yields an empty slug")
	}

	if err := s.entities.Insert(ctx, e); err != nil {
		return domain.CanonicalEntity{}, fmt.Errorf("create %s: %w", input.Kind, err)
	}

	s.log.InfoContext(ctx, "entity created",
		slog.String("kind", string(e.Kind)),
		slog.String("entity_id", e.ID.String()),
		slog.String("slug", e.Slug),
	)

	return e, nil
}
