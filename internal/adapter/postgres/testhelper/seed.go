package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aromabase/aromabase-backend/internal/domain"
)

// UniqueSuffix returns a short unique string for generating non-conflicting test data.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedEntity inserts a canonical entity of the given kind and returns it.
func SeedEntity(t *testing.T, pool *pgxpool.Pool, kind domain.EntityKind, originalName string, localizedName *string) domain.CanonicalEntity {
	t.Helper()
	ctx := context.Background()

	e := domain.NewCanonicalEntity(kind, originalName, localizedName)
	e.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)

	_, err := pool.Exec(ctx,
		`INSERT INTO canonical_entities (id, kind, original_name, localized_name, slug, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		e.ID, e.Kind, e.OriginalName, e.LocalizedName, e.Slug, e.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEntity insert: %v", err)
	}
	return e
}

// PerfumeOpts customizes SeedPerfume. Zero values fall back to generated
// defaults.
type PerfumeOpts struct {
	Name        string
	NameRu      *string
	Brand       string
	Perfumers   []domain.PerfumerName
	Notes       domain.Notes
	Gender      domain.Gender
	ReleaseYear *int
	RatingValue float64
	RatingCount int
}

// SeedPerfume inserts a catalog record and returns it.
func SeedPerfume(t *testing.T, pool *pgxpool.Pool, opts PerfumeOpts) domain.Perfume {
	t.Helper()
	ctx := context.Background()

	suffix := UniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)

	p := domain.Perfume{
		ID:          uuid.New(),
		Name:        opts.Name,
		NameRu:      opts.NameRu,
		Brand:       opts.Brand,
		Perfumers:   opts.Perfumers,
		Notes:       opts.Notes,
		Gender:      opts.Gender,
		ReleaseYear: opts.ReleaseYear,
		RatingValue: opts.RatingValue,
		RatingCount: opts.RatingCount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if p.Name == "" {
		p.Name = "Perfume " + suffix
	}
	if p.Brand == "" {
		p.Brand = "Brand " + suffix
	}
	if p.Gender == "" {
		p.Gender = domain.GenderUnisex
	}
	if p.Perfumers == nil {
		p.Perfumers = []domain.PerfumerName{}
	}
	// The notes columns are NOT NULL; nil slices would encode as NULL.
	if p.Notes.Top == nil {
		p.Notes.Top = []string{}
	}
	if p.Notes.Heart == nil {
		p.Notes.Heart = []string{}
	}
	if p.Notes.Base == nil {
		p.Notes.Base = []string{}
	}
	if p.Notes.Additional == nil {
		p.Notes.Additional = []string{}
	}

	perfumersJSON, err := json.Marshal(p.Perfumers)
	if err != nil {
		t.Fatalf("testhelper: SeedPerfume marshal perfumers: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO perfumes (id, name, name_ru, brand, perfumers,
		                       notes_top, notes_heart, notes_base, notes_additional,
		                       gender, release_year, rating_value, rating_count, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		p.ID, p.Name, p.NameRu, p.Brand, perfumersJSON,
		p.Notes.Top, p.Notes.Heart, p.Notes.Base, p.Notes.Additional,
		p.Gender, p.ReleaseYear, p.RatingValue, p.RatingCount, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPerfume insert: %v", err)
	}
	return p
}

// SeedRating inserts one user's category scores for a record.
func SeedRating(t *testing.T, pool *pgxpool.Pool, perfumeID, userID uuid.UUID, s domain.CategoryScores) {
	t.Helper()
	ctx := context.Background()

	_, err := pool.Exec(ctx,
		`INSERT INTO perfume_ratings (perfume_id, user_id, scent, longevity, sillage, packaging, value, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())`,
		perfumeID, userID, s.Scent, s.Longevity, s.Sillage, s.Packaging, s.Value,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRating insert: %v", err)
	}
}
