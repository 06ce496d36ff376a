package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s — %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// PartialPropagationError reports a rename or delete that was committed to the
// registry but whose catalog bulk-update could not be confirmed. Attempted is
// the pre-counted number of matching catalog records; Confirmed is how many
// the bulk operation actually touched before failing. The registry side is
// already durable when this error is returned — re-running the propagation is
// the caller's decision.
type PartialPropagationError struct {
	Kind      EntityKind
	EntityID  uuid.UUID
	Attempted int64
	Confirmed int64
	Err       error
}

func (e *PartialPropagationError) Error() string {
	return fmt.Sprintf("partial propagation for %s %s: confirmed %d of %d: %v",
		e.Kind, e.EntityID, e.Confirmed, e.Attempted, e.Err)
}

func (e *PartialPropagationError) Unwrap() error { return e.Err }
