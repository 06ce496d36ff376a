package domain

import (
	"time"

	"github.com/google/uuid"
)

// PerfumerName pairs the English and Russian renditions of one person's name.
// The source data kept these as two parallel string arrays indexed by
// position; modelling the pair structurally makes index desync
// unrepresentable while keeping the externally observable values identical.
type PerfumerName struct {
	EN string `json:"en"`
	RU string `json:"ru"`
}

// Notes holds the four pyramid layers of a fragrance. Every element
// denormalizes a note CanonicalEntity's OriginalName by value.
type Notes struct {
	Top        []string
	Heart      []string
	Base       []string
	Additional []string
}

// Layer returns the slice for the given layer.
func (n Notes) Layer(l NoteLayer) []string {
	switch l {
	case NoteLayerTop:
		return n.Top
	case NoteLayerHeart:
		return n.Heart
	case NoteLayerBase:
		return n.Base
	default:
		return n.Additional
	}
}

// Contains reports whether any layer holds the exact note name.
func (n Notes) Contains(name string) bool {
	for _, layer := range NoteLayers() {
		for _, v := range n.Layer(layer) {
			if v == name {
				return true
			}
		}
	}
	return false
}

// Perfume is the catalog record. Brand, Perfumers, and Notes denormalize
// canonical-entity names by value and are kept consistent with the registry
// through synchronous propagation on rename/delete.
type Perfume struct {
	ID          uuid.UUID
	Name        string
	NameRu      *string
	Brand       string
	Perfumers   []PerfumerName
	Notes       Notes
	Gender      Gender
	ReleaseYear *int
	RatingValue float64
	RatingCount int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CategoryScores is one user's rating of a record: five independent 0–5
// scores.
type CategoryScores struct {
	Scent     int
	Longevity int
	Sillage   int
	Packaging int
	Value     int
}

// Validate checks every category is within [0, 5].
func (c CategoryScores) Validate() error {
	var errs []FieldError
	for _, f := range []struct {
		name string
		v    int
	}{
		{"scent", c.Scent},
		{"longevity", c.Longevity},
		{"sillage", c.Sillage},
		{"packaging", c.Packaging},
		{"value", c.Value},
	} {
		if f.v < 0 || f.v > 5 {
			errs = append(errs, FieldError{Field: f.name, Message: "must be between 0 and 5"})
		}
	}
	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// RatingValue derives the record's 0–10 rating from the five per-category
// averages: mean of the averages, doubled. Each input is an average over all
// submitted scores of that category, so it lies in [0, 5] and the result in
// [0, 10] without explicit clamping.
func RatingValue(scent, longevity, sillage, packaging, value float64) float64 {
	return (scent + longevity + sillage + packaging + value) / 5 * 2
}

// RatingSummary is the recomputed aggregate stored back on the record.
type RatingSummary struct {
	PerfumeID uuid.UUID
	Value     float64
	Count     int
}
