package catalog

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/aromabase/aromabase-backend/internal/domain"
)

// SearchInput holds the catalog search parameters. Entity filters address
// the registry by slug (brand, perfumer) or by id (note); unknown slugs and
// ids surface as domain.ErrNotFound, an empty result does not.
type SearchInput struct {
	Query        string
	BrandSlug    *string
	PerfumerSlug *string
	NoteID       *uuid.UUID
	Gender       *domain.Gender
	ReleaseYear  *int
	Sort         domain.SortPolicy
	Page         int
	Limit        int
}

// Validate checks all fields and collects all errors.
func (i SearchInput) Validate() error {
	var errs []domain.FieldError

	if i.Sort != "" && !i.Sort.IsValid() {
		errs = append(errs, domain.FieldError{Field: "sort", Message: "unknown sort policy"})
	}
	if i.Gender != nil && !i.Gender.IsValid() {
		errs = append(errs, domain.FieldError{Field: "gender", Message: "must be male, female, or unisex"})
	}
	if i.ReleaseYear != nil && (*i.ReleaseYear < 1700 || *i.ReleaseYear > time.Now().Year()+1) {
		errs = append(errs, domain.FieldError{Field: "release_year", Message: "out of range"})
	}
	// Zero means unset; the service substitutes the defaults.
	if i.Page < 0 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must not be negative"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// GetByIDInput addresses one catalog record.
type GetByIDInput struct {
	ID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i GetByIDInput) Validate() error {
	if i.ID == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	return nil
}

// SubmitRatingInput holds one user's category scores for a record.
type SubmitRatingInput struct {
	PerfumeID uuid.UUID
	UserID    uuid.UUID
	Scores    domain.CategoryScores
}

// Validate checks all fields and collects all errors.
func (i SubmitRatingInput) Validate() error {
	var errs []domain.FieldError

	if i.PerfumeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "perfume_id", Message: "required"})
	}
	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if err := i.Scores.Validate(); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			errs = append(errs, verr.Errors...)
		} else {
			errs = append(errs, domain.FieldError{Field: "scores", Message: err.Error()})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
