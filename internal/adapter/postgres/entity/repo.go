// Package entity implements the canonical entity registry repository using
// PostgreSQL. One table holds brands, perfumers, and notes, discriminated by
// the kind column.
package entity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/aromabase/aromabase-backend/internal/adapter/postgres"
	"github.com/aromabase/aromabase-backend/internal/domain"
)

// Repo provides canonical entity persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new canonical entity repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const entityColumns = `id, kind, original_name, localized_name, slug, created_at`

const getByIDSQL = `
SELECT ` + entityColumns + `
FROM canonical_entities
WHERE id = $1`

const getBySlugSQL = `
SELECT ` + entityColumns + `
FROM canonical_entities
WHERE kind = $1 AND slug = $2`

const getByNameSQL = `
SELECT ` + entityColumns + `
FROM canonical_entities
WHERE kind = $1 AND lower(original_name) = lower($2)`

const listByInitialSQL = `
SELECT ` + entityColumns + `
FROM canonical_entities
WHERE kind = $1 AND lower(left(original_name, 1)) = lower($2)
ORDER BY lower(original_name)`

// Perfumers are browsable by the localized name's initial too, so a Cyrillic
// letter reaches entities whose original name is Latin-script.
const listPerfumerByInitialSQL = `
SELECT ` + entityColumns + `
FROM canonical_entities
WHERE kind = $1 AND (lower(left(original_name, 1)) = lower($2)
   OR lower(left(localized_name, 1)) = lower($2))
ORDER BY lower(original_name)`

const insertSQL = `
INSERT INTO canonical_entities (id, kind, original_name, localized_name, slug, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

const putIfAbsentSQL = insertSQL + `
ON CONFLICT (kind, lower(original_name)) DO NOTHING`

const updateNamesSQL = `
UPDATE canonical_entities
SET original_name  = COALESCE($2, original_name),
    localized_name = COALESCE($3, localized_name),
    slug           = COALESCE($4, slug)
WHERE id = $1
RETURNING ` + entityColumns

const deleteSQL = `
DELETE FROM canonical_entities
WHERE id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a canonical entity by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.CanonicalEntity, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanEntity(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return domain.CanonicalEntity{}, mapError(err, "canonical_entity", id)
	}
	return e, nil
}

// GetBySlug returns the entity of the given kind addressed by its slug.
func (r *Repo) GetBySlug(ctx context.Context, kind domain.EntityKind, slug string) (domain.CanonicalEntity, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanEntity(q.QueryRow(ctx, getBySlugSQL, kind, slug))
	if err != nil {
		return domain.CanonicalEntity{}, mapError(err, "canonical_entity", uuid.Nil)
	}
	return e, nil
}

// GetByName returns the entity of the given kind whose original name matches
// case-insensitively.
func (r *Repo) GetByName(ctx context.Context, kind domain.EntityKind, name string) (domain.CanonicalEntity, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanEntity(q.QueryRow(ctx, getByNameSQL, kind, name))
	if err != nil {
		return domain.CanonicalEntity{}, mapError(err, "canonical_entity", uuid.Nil)
	}
	return e, nil
}

// ListByInitial returns all entities of a kind whose original name starts
// with the given initial, ordered alphabetically. For perfumers the localized
// name's initial matches as well.
func (r *Repo) ListByInitial(ctx context.Context, kind domain.EntityKind, initial string) ([]domain.CanonicalEntity, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql := listByInitialSQL
	if kind == domain.KindPerfumer {
		sql = listPerfumerByInitialSQL
	}
	rows, err := q.Query(ctx, sql, kind, initial)
	if err != nil {
		return nil, fmt.Errorf("list canonical_entities by initial: %w", err)
	}
	defer rows.Close()

	return collectEntities(rows)
}

// Search returns entities of a kind whose original or localized name contains
// any of the query variants, with the total match count for pagination.
// Matches on the original name rank before localized-only matches.
func (r *Repo) Search(ctx context.Context, kind domain.EntityKind, variants []string, limit, offset int) ([]domain.CanonicalEntity, int, error) {
	if len(variants) == 0 {
		return []domain.CanonicalEntity{}, 0, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	where, args := searchPredicate(kind, variants)

	var total int
	countSQL := `SELECT count(*) FROM canonical_entities WHERE ` + where
	if err := q.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count canonical_entities: %w", err)
	}

	// Primary-name prefix matches first, then the rest alphabetically.
	searchSQL := `SELECT ` + entityColumns + `
FROM canonical_entities
WHERE ` + where + `
ORDER BY (lower(original_name) LIKE $` + fmt.Sprint(len(args)+1) + ` || '%') DESC, lower(original_name)
LIMIT $` + fmt.Sprint(len(args)+2) + ` OFFSET $` + fmt.Sprint(len(args)+3)
	args = append(args, variants[0], limit, offset)

	rows, err := q.Query(ctx, searchSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("search canonical_entities: %w", err)
	}
	defer rows.Close()

	items, err := collectEntities(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// searchPredicate builds the WHERE clause matching any query variant against
// either name column, as a substring, case-insensitively.
func searchPredicate(kind domain.EntityKind, variants []string) (string, []any) {
	args := []any{kind}
	clauses := make([]string, 0, len(variants))
	for _, v := range variants {
		args = append(args, "%"+v+"%")
		n := len(args)
		clauses = append(clauses, fmt.Sprintf("(original_name ILIKE $%d OR localized_name ILIKE $%d)", n, n))
	}
	return "kind = $1 AND (" + strings.Join(clauses, " OR ") + ")", args
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Insert persists a new entity. A duplicate name or slug within the kind
// returns domain.ErrAlreadyExists.
func (r *Repo) Insert(ctx context.Context, e domain.CanonicalEntity) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, insertSQL, e.ID, e.Kind, e.OriginalName, e.LocalizedName, e.Slug, e.CreatedAt)
	if err != nil {
		return mapError(err, "canonical_entity", e.ID)
	}
	return nil
}

// PutIfAbsent inserts the entity unless one with the same kind and
// case-insensitive original name already exists, and returns the surviving
// row. The bool reports whether this call created it. Concurrent callers
// racing on the same name all converge on the first writer's row.
func (r *Repo) PutIfAbsent(ctx context.Context, e domain.CanonicalEntity) (domain.CanonicalEntity, bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, putIfAbsentSQL, e.ID, e.Kind, e.OriginalName, e.LocalizedName, e.Slug, e.CreatedAt)
	if err != nil {
		return domain.CanonicalEntity{}, false, mapError(err, "canonical_entity", e.ID)
	}
	if tag.RowsAffected() == 1 {
		return e, true, nil
	}

	existing, err := r.GetByName(ctx, e.Kind, e.OriginalName)
	if err != nil {
		return domain.CanonicalEntity{}, false, err
	}
	return existing, false, nil
}

// UpdateNames rewrites the entity's names and, when supplied, its slug.
// Nil fields keep their current value. A slug colliding within the kind
// returns domain.ErrAlreadyExists.
func (r *Repo) UpdateNames(ctx context.Context, id uuid.UUID, originalName, localizedName, slug *string) (domain.CanonicalEntity, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanEntity(q.QueryRow(ctx, updateNamesSQL, id, originalName, localizedName, slug))
	if err != nil {
		return domain.CanonicalEntity{}, mapError(err, "canonical_entity", id)
	}
	return e, nil
}

// Delete removes the entity. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return mapError(err, "canonical_entity", id)
	}
	if tag.RowsAffected() == 0 {
		return mapError(pgx.ErrNoRows, "canonical_entity", id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanEntity(row pgx.Row) (domain.CanonicalEntity, error) {
	var e domain.CanonicalEntity
	err := row.Scan(&e.ID, &e.Kind, &e.OriginalName, &e.LocalizedName, &e.Slug, &e.CreatedAt)
	if err != nil {
		return domain.CanonicalEntity{}, err
	}
	return e, nil
}

func collectEntities(rows pgx.Rows) ([]domain.CanonicalEntity, error) {
	entities := []domain.CanonicalEntity{}
	for rows.Next() {
		var e domain.CanonicalEntity
		if err := rows.Scan(&e.ID, &e.Kind, &e.OriginalName, &e.LocalizedName, &e.Slug, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan canonical_entity: %w", err)
		}
		entities = append(entities, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate canonical_entities: %w", err)
	}
	return entities, nil
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
