package domain

import (
	"time"

	"github.com/google/uuid"
)

// CanonicalEntity is the single authoritative record for a brand, perfumer,
// or note name. Catalog records denormalize OriginalName (and, for perfumers,
// LocalizedName) by value; the registry is a derived index over those copies
// and may legitimately become orphaned when the last referencing record is
// deleted.
//
// Slug is derived from OriginalName at creation time and never changes
// implicitly — a rename keeps the old slug unless the caller supplies a new
// one, because external links address entities by slug.
type CanonicalEntity struct {
	ID            uuid.UUID
	Kind          EntityKind
	OriginalName  string
	LocalizedName *string
	Slug          string
	CreatedAt     time.Time
}

// NewCanonicalEntity builds an entity with a derived slug and a fresh ID.
func NewCanonicalEntity(kind EntityKind, originalName string, localizedName *string) CanonicalEntity {
	return CanonicalEntity{
		ID:            uuid.New(),
		Kind:          kind,
		OriginalName:  originalName,
		LocalizedName: localizedName,
		Slug:          Slugify(originalName),
		CreatedAt:     time.Now().UTC(),
	}
}
