package registry

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aromabase/aromabase-backend/internal/domain"
)

// Discover scans the denormalized catalog fields for one kind and registers
// every value not yet present, first writer wins. Failures on individual
// values are logged and skipped, so a partial run still registers the rest.
// The call is re-entrant: re-running over an already-registered catalog is a
// no-op that returns the existing entities.
func (s *Service) Discover(ctx context.Context, kind domain.EntityKind) ([]domain.CanonicalEntity, error) {
	if !kind.IsValid() {
		return nil, domain.NewValidationError("kind", "must be brand, perfumer, or note")
	}

	candidates, err := s.collectCandidates(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("collect %s candidates: %w", kind, err)
	}

	discovered := make([]domain.CanonicalEntity, 0, len(candidates))
	var created, skipped int
	for _, c := range candidates {
		if c.Slug == "" {
			skipped++
			s.log.WarnContext(ctx, "candidate yields empty slug, skipping",
				slog.String("kind", string(kind)),
				slog.String("name", c.OriginalName),
			)
			continue
		}

		e, wasCreated, err := s.entities.PutIfAbsent(ctx, c)
		if err != nil {
			skipped++
			s.log.WarnContext(ctx, "failed to register candidate, skipping",
				slog.String("kind", string(kind)),
				slog.String("name", c.OriginalName),
				slog.Any("error", err),
			)
			continue
		}
		if wasCreated {
			created++
		}
		discovered = append(discovered, e)
	}

	s.log.InfoContext(ctx, "discovery finished",
		slog.String("kind", string(kind)),
		slog.Int("scanned", len(candidates)),
		slog.Int("created", created),
		slog.Int("skipped", skipped),
	)

	return discovered, nil
}

// collectCandidates builds unregistered entity candidates from the distinct
// denormalized values of one kind.
func (s *Service) collectCandidates(ctx context.Context, kind domain.EntityKind) ([]domain.CanonicalEntity, error) {
	switch kind {
	case domain.KindBrand:
		names, err := s.catalog.DistinctBrands(ctx)
		if err != nil {
			return nil, err
		}
		return candidatesFromNames(kind, names), nil

	case domain.KindPerfumer:
		pairs, err := s.catalog.DistinctPerfumers(ctx)
		if err != nil {
			return nil, err
		}
		// Pairs sharing an EN name (differing RU or case) collapse to one
		// candidate, first pair wins, so the discovered set carries no
		// duplicates after the upserts converge.
		seen := make(map[string]struct{}, len(pairs))
		candidates := make([]domain.CanonicalEntity, 0, len(pairs))
		for _, p := range pairs {
			key := strings.ToLower(p.EN)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			var localized *string
			if p.RU != "" {
				ru := p.RU
				localized = &ru
			}
			candidates = append(candidates, domain.NewCanonicalEntity(kind, p.EN, localized))
		}
		return candidates, nil

	default: // domain.KindNote
		names, err := s.catalog.DistinctNotes(ctx)
		if err != nil {
			return nil, err
		}
		return candidatesFromNames(kind, names), nil
	}
}

// candidatesFromNames builds candidates from distinct values, collapsing
// case variants ("Chanel"/"CHANEL") to the first occurrence.
func candidatesFromNames(kind domain.EntityKind, names []string) []domain.CanonicalEntity {
	seen := make(map[string]struct{}, len(names))
	candidates := make([]domain.CanonicalEntity, 0, len(names))
	for _, name := range names {
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		candidates = append(candidates, domain.NewCanonicalEntity(kind, name, nil))
	}
	return candidates
}
