package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aromabase/aromabase-backend/internal/domain"
)

// SubmitRating stores one user's five category scores and recomputes the
// record's aggregate rating in the same transaction, so the popularity sort
// never observes a submission without its recompute. Resubmitting replaces
// the user's previous scores instead of double counting.
func (s *Service) SubmitRating(ctx context.Context, input SubmitRatingInput) (domain.RatingSummary, error) {
	if err := input.Validate(); err != nil {
		return domain.RatingSummary{}, err
	}

	// Fail fast on unknown records before opening a transaction.
	if _, err := s.perfumes.GetByID(ctx, input.PerfumeID); err != nil {
		return domain.RatingSummary{}, fmt.Errorf("load perfume: %w", err)
	}

	var summary domain.RatingSummary
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.perfumes.UpsertRating(txCtx, input.PerfumeID, input.UserID, input.Scores); err != nil {
			return fmt.Errorf("upsert rating: %w", err)
		}

		scent, longevity, sillage, packaging, value, count, err := s.perfumes.CategoryAverages(txCtx, input.PerfumeID)
		if err != nil {
			return fmt.Errorf("recompute averages: %w", err)
		}

		summary = domain.RatingSummary{
			PerfumeID: input.PerfumeID,
			Value:     domain.RatingValue(scent, longevity, sillage, packaging, value),
			Count:     count,
		}

		if err := s.perfumes.UpdateRatingAggregate(txCtx, summary); err != nil {
			return fmt.Errorf("store aggregate: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.RatingSummary{}, err
	}

	s.log.InfoContext(ctx, "rating submitted",
		slog.String("perfume_id", input.PerfumeID.String()),
		slog.String("user_id", input.UserID.String()),
		slog.Int("rating_count", summary.Count),
	)

	return summary, nil
}
