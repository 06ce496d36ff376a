package perfume

import (
	"github.com/aromabase/aromabase-backend/internal/domain"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// filter wraps the domain filter with normalized pagination values.
type filter struct {
	domain.PerfumeFilter
}

// normalize applies defaults and clamps values.
func (f *filter) normalize() {
	if !f.Sort.IsValid() {
		f.Sort = domain.SortPopular
	}
	// Relevance ordering needs a query to rank against.
	if f.Sort == domain.SortRelevance && len(f.ExactVariants) == 0 {
		f.Sort = domain.SortPopular
	}

	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}

	if f.Offset < 0 {
		f.Offset = 0
	}
}

// orderBy returns the ORDER BY clauses for the sort policy. The relevance
// clause is produced separately because it carries a bind argument.
func (f *filter) orderBy() []string {
	switch f.Sort {
	case domain.SortAZ:
		return []string{"lower(name) ASC", "id ASC"}
	case domain.SortZA:
		return []string{"lower(name) DESC", "id ASC"}
	case domain.SortUnpopular:
		return []string{"rating_count ASC", "rating_value ASC", "lower(name) ASC"}
	case domain.SortNewest:
		return []string{"release_year DESC NULLS LAST", "created_at DESC", "id ASC"}
	default: // popular, and the tail ordering under relevance
		return []string{"rating_count DESC", "rating_value DESC", "lower(name) ASC"}
	}
}
