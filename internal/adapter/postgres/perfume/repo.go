// Package perfume implements the catalog record repository using PostgreSQL.
// Fixed-shape queries use raw SQL constants; the search query is assembled
// dynamically with squirrel.
package perfume

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/aromabase/aromabase-backend/internal/adapter/postgres"
	"github.com/aromabase/aromabase-backend/internal/domain"
)

// Repo provides perfume persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new perfume repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const perfumeColumns = `id, name, name_ru, brand, perfumers,
       notes_top, notes_heart, notes_base, notes_additional,
       gender, release_year, rating_value, rating_count, created_at, updated_at`

const getByIDSQL = `
SELECT ` + perfumeColumns + `
FROM perfumes
WHERE id = $1`

const createSQL = `
INSERT INTO perfumes (id, name, name_ru, brand, perfumers,
                      notes_top, notes_heart, notes_base, notes_additional,
                      gender, release_year, rating_value, rating_count, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

// hasPerfumer matches records where any perfumers element has the given
// English name. hasPerfumerEither also accepts the localized rendition, for
// records imported with only the RU name filled in.
const hasPerfumer = `EXISTS (
  SELECT 1 FROM jsonb_array_elements(perfumers) e WHERE e->>'en' = %s)`

const hasPerfumerEither = `EXISTS (
  SELECT 1 FROM jsonb_array_elements(perfumers) e WHERE e->>'en' = %s OR e->>'ru' = %s)`

// hasNote matches records carrying the note in any pyramid layer.
const hasNote = `(%[1]s = ANY(notes_top) OR %[1]s = ANY(notes_heart)
  OR %[1]s = ANY(notes_base) OR %[1]s = ANY(notes_additional))`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a catalog record by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Perfume, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanPerfume(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return domain.Perfume{}, mapError(err, "perfume", id)
	}
	return p, nil
}

// Search returns one page of catalog records matching the filter plus the
// total match count.
func (r *Repo) Search(ctx context.Context, df domain.PerfumeFilter) ([]domain.Perfume, int, error) {
	f := filter{PerfumeFilter: df}
	f.normalize()

	q := postgres.QuerierFromCtx(ctx, r.pool)
	where := searchConditions(f)

	countSQL, countArgs, err := psql.Select("count(*)").From("perfumes").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count perfumes: %w", err)
	}

	sel := psql.Select(perfumeColumns).From("perfumes").Where(where)
	if f.Sort == domain.SortRelevance {
		sel = sel.OrderByClause(
			"(lower(name) = ANY(?) OR lower(name_ru) = ANY(?) OR lower(brand) = ANY(?)) DESC",
			f.ExactVariants, f.ExactVariants, f.ExactVariants)
	}
	sel = sel.OrderBy(f.orderBy()...).
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset))

	searchSQL, args, err := sel.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build search query: %w", err)
	}

	rows, err := q.Query(ctx, searchSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("search perfumes: %w", err)
	}
	defer rows.Close()

	items, err := collectPerfumes(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// searchConditions translates the filter into a squirrel conjunction.
func searchConditions(f filter) sq.And {
	cond := sq.And{}

	if len(f.QueryVariants) > 0 {
		variants := sq.Or{}
		for _, v := range f.QueryVariants {
			pat := "%" + v + "%"
			variants = append(variants, sq.Or{
				sq.ILike{"name": pat},
				sq.ILike{"name_ru": pat},
				sq.ILike{"brand": pat},
			})
		}
		cond = append(cond, variants)
	}
	if f.Brand != nil {
		cond = append(cond, sq.Eq{"brand": *f.Brand})
	}
	if f.Perfumer != nil {
		if f.Perfumer.RU != nil {
			cond = append(cond, sq.Expr(fmt.Sprintf(hasPerfumerEither, "?", "?"), f.Perfumer.EN, *f.Perfumer.RU))
		} else {
			cond = append(cond, sq.Expr(fmt.Sprintf(hasPerfumer, "?"), f.Perfumer.EN))
		}
	}
	if f.Note != nil {
		cond = append(cond, sq.Expr(fmt.Sprintf(hasNote, "?"), *f.Note))
	}
	if f.Gender != nil {
		cond = append(cond, sq.Eq{"gender": *f.Gender})
	}
	if f.ReleaseYear != nil {
		cond = append(cond, sq.Eq{"release_year": *f.ReleaseYear})
	}
	if len(cond) == 0 {
		cond = append(cond, sq.Expr("TRUE"))
	}
	return cond
}

// ---------------------------------------------------------------------------
// Distinct value discovery
// ---------------------------------------------------------------------------

const distinctBrandsSQL = `
SELECT DISTINCT brand FROM perfumes ORDER BY brand`

const distinctPerfumersSQL = `
SELECT DISTINCT e->>'en', COALESCE(e->>'ru', '')
FROM perfumes, jsonb_array_elements(perfumers) e
ORDER BY 1`

const distinctNotesSQL = `
SELECT DISTINCT note FROM (
  SELECT unnest(notes_top) AS note FROM perfumes
  UNION SELECT unnest(notes_heart) FROM perfumes
  UNION SELECT unnest(notes_base) FROM perfumes
  UNION SELECT unnest(notes_additional) FROM perfumes
) n
ORDER BY note`

// DistinctBrands returns every brand name present in the catalog.
func (r *Repo) DistinctBrands(ctx context.Context) ([]string, error) {
	return r.distinctStrings(ctx, distinctBrandsSQL, "brands")
}

// DistinctPerfumers returns every perfumer name pair present in the catalog.
func (r *Repo) DistinctPerfumers(ctx context.Context) ([]domain.PerfumerName, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, distinctPerfumersSQL)
	if err != nil {
		return nil, fmt.Errorf("distinct perfumers: %w", err)
	}
	defer rows.Close()

	names := []domain.PerfumerName{}
	for rows.Next() {
		var n domain.PerfumerName
		if err := rows.Scan(&n.EN, &n.RU); err != nil {
			return nil, fmt.Errorf("scan perfumer name: %w", err)
		}
		names = append(names, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate perfumers: %w", err)
	}
	return names, nil
}

// DistinctNotes returns every note name present in any pyramid layer.
func (r *Repo) DistinctNotes(ctx context.Context) ([]string, error) {
	return r.distinctStrings(ctx, distinctNotesSQL, "notes")
}

func (r *Repo) distinctStrings(ctx context.Context, sql, what string) ([]string, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("distinct %s: %w", what, err)
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan %s: %w", what, err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", what, err)
	}
	return values, nil
}

// ---------------------------------------------------------------------------
// Propagation counts
// ---------------------------------------------------------------------------

const countByBrandSQL = `
SELECT count(*) FROM perfumes WHERE lower(brand) = lower($1)`

const countByPerfumerSQL = `
SELECT count(*) FROM perfumes WHERE EXISTS (
  SELECT 1 FROM jsonb_array_elements(perfumers) e WHERE e->>'en' = $1)`

const countByNoteSQL = `
SELECT count(*) FROM perfumes
WHERE $1 = ANY(notes_top) OR $1 = ANY(notes_heart)
   OR $1 = ANY(notes_base) OR $1 = ANY(notes_additional)`

// CountByBrand returns how many records carry the brand name,
// case-insensitively. Perfumer and note matching stays exact: those values
// live in arrays the bulk rewrites replace element-wise.
func (r *Repo) CountByBrand(ctx context.Context, name string) (int64, error) {
	return r.count(ctx, countByBrandSQL, name)
}

// CountByPerfumer returns how many records list the perfumer by English name.
func (r *Repo) CountByPerfumer(ctx context.Context, en string) (int64, error) {
	return r.count(ctx, countByPerfumerSQL, en)
}

// CountByNote returns how many records carry the note in any layer.
func (r *Repo) CountByNote(ctx context.Context, name string) (int64, error) {
	return r.count(ctx, countByNoteSQL, name)
}

func (r *Repo) count(ctx context.Context, sql string, arg any) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int64
	if err := q.QueryRow(ctx, sql, arg).Scan(&n); err != nil {
		return 0, fmt.Errorf("count perfumes: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Rename propagation
// ---------------------------------------------------------------------------

const renameBrandSQL = `
UPDATE perfumes
SET brand = $2, updated_at = now()
WHERE lower(brand) = lower($1)`

// renamePerfumerSQL rewrites only the matching array elements. Passing NULL
// for $2 or $3 keeps that language's current value.
const renamePerfumerSQL = `
UPDATE perfumes
SET perfumers = (
      SELECT COALESCE(jsonb_agg(
        CASE WHEN e->>'en' = $1
             THEN jsonb_build_object('en', COALESCE($2, e->>'en'),
                                     'ru', COALESCE($3, e->>'ru'))
             ELSE e
        END), '[]'::jsonb)
      FROM jsonb_array_elements(perfumers) e),
    updated_at = now()
WHERE EXISTS (
  SELECT 1 FROM jsonb_array_elements(perfumers) e WHERE e->>'en' = $1)`

const renameNoteSQL = `
UPDATE perfumes
SET notes_top        = array_replace(notes_top, $1, $2),
    notes_heart      = array_replace(notes_heart, $1, $2),
    notes_base       = array_replace(notes_base, $1, $2),
    notes_additional = array_replace(notes_additional, $1, $2),
    updated_at       = now()
WHERE $1 = ANY(notes_top) OR $1 = ANY(notes_heart)
   OR $1 = ANY(notes_base) OR $1 = ANY(notes_additional)`

// RenameBrand rewrites the denormalized brand name on every record matching
// case-insensitively and returns the number of records updated.
func (r *Repo) RenameBrand(ctx context.Context, oldName, newName string) (int64, error) {
	return r.exec(ctx, renameBrandSQL, oldName, newName)
}

// RenamePerfumer rewrites the perfumer's name on every matching record,
// keyed by the English name. Nil arguments leave that language untouched.
func (r *Repo) RenamePerfumer(ctx context.Context, oldEN string, newEN, newRU *string) (int64, error) {
	return r.exec(ctx, renamePerfumerSQL, oldEN, newEN, newRU)
}

// RenameNote rewrites the note name across all four pyramid layers.
func (r *Repo) RenameNote(ctx context.Context, oldName, newName string) (int64, error) {
	return r.exec(ctx, renameNoteSQL, oldName, newName)
}

// ---------------------------------------------------------------------------
// Delete propagation
// ---------------------------------------------------------------------------

const deleteByBrandSQL = `
DELETE FROM perfumes WHERE lower(brand) = lower($1)`

const deleteByPerfumerSQL = `
DELETE FROM perfumes WHERE EXISTS (
  SELECT 1 FROM jsonb_array_elements(perfumers) e WHERE e->>'en' = $1)`

const removeNoteSQL = `
UPDATE perfumes
SET notes_top        = array_remove(notes_top, $1),
    notes_heart      = array_remove(notes_heart, $1),
    notes_base       = array_remove(notes_base, $1),
    notes_additional = array_remove(notes_additional, $1),
    updated_at       = now()
WHERE $1 = ANY(notes_top) OR $1 = ANY(notes_heart)
   OR $1 = ANY(notes_base) OR $1 = ANY(notes_additional)`

// DeleteByBrand removes every record of the brand, matched
// case-insensitively, and returns the count.
func (r *Repo) DeleteByBrand(ctx context.Context, name string) (int64, error) {
	return r.exec(ctx, deleteByBrandSQL, name)
}

// DeleteByPerfumer removes every record listing the perfumer.
func (r *Repo) DeleteByPerfumer(ctx context.Context, en string) (int64, error) {
	return r.exec(ctx, deleteByPerfumerSQL, en)
}

// RemoveNote strips the note from every layer of every record carrying it.
// Records themselves survive.
func (r *Repo) RemoveNote(ctx context.Context, name string) (int64, error) {
	return r.exec(ctx, removeNoteSQL, name)
}

func (r *Repo) exec(ctx context.Context, sql string, args ...any) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, mapError(err, "perfume", uuid.Nil)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new catalog record. Nil note layers and perfumer lists
// are stored as empty, never NULL.
func (r *Repo) Create(ctx context.Context, p domain.Perfume) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if p.Perfumers == nil {
		p.Perfumers = []domain.PerfumerName{}
	}

	_, err := q.Exec(ctx, createSQL,
		p.ID, p.Name, p.NameRu, p.Brand, p.Perfumers,
		notesOrEmpty(p.Notes.Top), notesOrEmpty(p.Notes.Heart),
		notesOrEmpty(p.Notes.Base), notesOrEmpty(p.Notes.Additional),
		p.Gender, p.ReleaseYear, p.RatingValue, p.RatingCount, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return mapError(err, "perfume", p.ID)
	}
	return nil
}

func notesOrEmpty(layer []string) []string {
	if layer == nil {
		return []string{}
	}
	return layer
}

// ---------------------------------------------------------------------------
// Ratings
// ---------------------------------------------------------------------------

const upsertRatingSQL = `
INSERT INTO perfume_ratings (perfume_id, user_id, scent, longevity, sillage, packaging, value, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
ON CONFLICT (perfume_id, user_id) DO UPDATE
SET scent = EXCLUDED.scent, longevity = EXCLUDED.longevity, sillage = EXCLUDED.sillage,
    packaging = EXCLUDED.packaging, value = EXCLUDED.value, updated_at = now()`

const categoryAveragesSQL = `
SELECT COALESCE(avg(scent), 0), COALESCE(avg(longevity), 0), COALESCE(avg(sillage), 0),
       COALESCE(avg(packaging), 0), COALESCE(avg(value), 0), count(*)
FROM perfume_ratings
WHERE perfume_id = $1`

const updateAggregateSQL = `
UPDATE perfumes
SET rating_value = $2, rating_count = $3, updated_at = now()
WHERE id = $1`

// UpsertRating stores one user's category scores, replacing any previous
// submission by the same user.
func (r *Repo) UpsertRating(ctx context.Context, perfumeID, userID uuid.UUID, s domain.CategoryScores) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, upsertRatingSQL,
		perfumeID, userID, s.Scent, s.Longevity, s.Sillage, s.Packaging, s.Value)
	if err != nil {
		return mapError(err, "perfume_rating", perfumeID)
	}
	return nil
}

// CategoryAverages returns the per-category score averages and the number of
// submissions for a record. Zero submissions yield all-zero averages.
func (r *Repo) CategoryAverages(ctx context.Context, perfumeID uuid.UUID) (scent, longevity, sillage, packaging, value float64, count int, err error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	err = q.QueryRow(ctx, categoryAveragesSQL, perfumeID).
		Scan(&scent, &longevity, &sillage, &packaging, &value, &count)
	if err != nil {
		err = mapError(err, "perfume_rating", perfumeID)
	}
	return
}

// UpdateRatingAggregate writes the recomputed rating back onto the record.
func (r *Repo) UpdateRatingAggregate(ctx context.Context, s domain.RatingSummary) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, updateAggregateSQL, s.PerfumeID, s.Value, s.Count)
	if err != nil {
		return mapError(err, "perfume", s.PerfumeID)
	}
	if tag.RowsAffected() == 0 {
		return mapError(pgx.ErrNoRows, "perfume", s.PerfumeID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanPerfume(row pgx.Row) (domain.Perfume, error) {
	var p domain.Perfume
	err := row.Scan(
		&p.ID, &p.Name, &p.NameRu, &p.Brand, &p.Perfumers,
		&p.Notes.Top, &p.Notes.Heart, &p.Notes.Base, &p.Notes.Additional,
		&p.Gender, &p.ReleaseYear, &p.RatingValue, &p.RatingCount, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return domain.Perfume{}, err
	}
	return p, nil
}

func collectPerfumes(rows pgx.Rows) ([]domain.Perfume, error) {
	perfumes := []domain.Perfume{}
	for rows.Next() {
		var p domain.Perfume
		err := rows.Scan(
			&p.ID, &p.Name, &p.NameRu, &p.Brand, &p.Perfumers,
			&p.Notes.Top, &p.Notes.Heart, &p.Notes.Base, &p.Notes.Additional,
			&p.Gender, &p.ReleaseYear, &p.RatingValue, &p.RatingCount, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan perfume: %w", err)
		}
		perfumes = append(perfumes, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate perfumes: %w", err)
	}
	return perfumes, nil
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
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
