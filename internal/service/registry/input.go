package registry

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/aromabase/aromabase-backend/internal/domain"
)

// CreateInput holds the parameters for creating a canonical entity.
type CreateInput struct {
	Kind          domain.EntityKind
	OriginalName  string
	LocalizedName *string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be brand, perfumer, or note"})
	}

	name := strings.TrimSpace(i.OriginalName)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "original_name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > 200 {
		errs = append(errs, domain.FieldError{Field: "original_name", Message: "max 200 characters"})
	}
	if i.LocalizedName != nil && utf8.RuneCountInString(*i.LocalizedName) > 200 {
		errs = append(errs, domain.FieldError{Field: "localized_name", Message: "max 200 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RenameInput holds the parameters for renaming a canonical entity.
// Nil fields stay untouched. The slug is never re-derived from a new name;
// it changes only when Slug is supplied explicitly, because external links
// address entities by the old slug.
type RenameInput struct {
	ID            uuid.UUID
	OriginalName  *string
	LocalizedName *string
	Slug          *string
}

// Validate checks all fields and collects all errors.
func (i RenameInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.OriginalName == nil && i.LocalizedName == nil && i.Slug == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.OriginalName != nil {
		name := strings.TrimSpace(*i.OriginalName)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "original_name", Message: "required"})
		}
		if utf8.RuneCountInString(name) > 200 {
			errs = append(errs, domain.FieldError{Field: "original_name", Message: "max 200 characters"})
		}
	}
	if i.LocalizedName != nil && utf8.RuneCountInString(*i.LocalizedName) > 200 {
		errs = append(errs, domain.FieldError{Field: "localized_name", Message: "max 200 characters"})
	}
	if i.Slug != nil && (*i.Slug == "" || domain.Slugify(*i.Slug) != *i.Slug) {
		errs = append(errs, domain.FieldError{Field: "slug", Message: "must be a lowercase hyphen-separated token"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SearchInput holds the parameters for searching the registry.
type SearchInput struct {
	Kind  domain.EntityKind
	Query string
	Page  int
	Limit int
}

// Validate checks all fields and collects all errors.
func (i SearchInput) Validate() error {
	var errs []domain.FieldError

	if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be brand, perfumer, or note"})
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
