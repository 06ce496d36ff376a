package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/aromabase/aromabase-backend/internal/domain"
	"github.com/aromabase/aromabase-backend/internal/service/catalog"
)

type catalogService interface {
	Search(ctx context.Context, input catalog.SearchInput) (*domain.Page[domain.Perfume], error)
	GetByID(ctx context.Context, input catalog.GetByIDInput) (domain.Perfume, error)
	SubmitRating(ctx context.Context, input catalog.SubmitRatingInput) (domain.RatingSummary, error)
}

// CatalogHandler serves the perfume catalog endpoints.
type CatalogHandler struct {
	service catalogService
	log     *slog.Logger
}

func NewCatalogHandler(log *slog.Logger, service catalogService) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With("handler", "catalog"),
	}
}

func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	input, err := parseSearchQuery(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	page, err := h.service.Search(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	respond(w, http.StatusOK, pageDTO[perfumeDTO]{
		Items:      toPerfumeDTOs(page.Items),
		Page:       page.Page,
		TotalPages: page.TotalPages,
		TotalItems: page.TotalItems,
	})
}

func (h *CatalogHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, r, h.log, domain.NewValidationError("id", "must be a UUID"))
		return
	}

	perfume, err := h.service.GetByID(r.Context(), catalog.GetByIDInput{ID: id})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	respond(w, http.StatusOK, toPerfumeDTO(perfume))
}

type submitRatingRequest struct {
	UserID uuid.UUID `json:"user_id"`
	Scores struct {
		Scent     int `json:"scent"`
		Longevity int `json:"longevity"`
		Sillage   int `json:"sillage"`
		Packaging int `json:"packaging"`
		Value     int `json:"value"`
	} `json:"scores"`
}

func (h *CatalogHandler) SubmitRating(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, r, h.log, domain.NewValidationError("id", "must be a UUID"))
		return
	}

	var req submitRatingRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	summary, err := h.service.SubmitRating(r.Context(), catalog.SubmitRatingInput{
		PerfumeID: id,
		UserID:    req.UserID,
		Scores: domain.CategoryScores{
			Scent:     req.Scores.Scent,
			Longevity: req.Scores.Longevity,
			Sillage:   req.Scores.Sillage,
			Packaging: req.Scores.Packaging,
			Value:     req.Scores.Value,
		},
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	respond(w, http.StatusOK, ratingSummaryDTO{
		PerfumeID:   summary.PerfumeID,
		RatingValue: summary.Value,
		RatingCount: summary.Count,
	})
}

// parseSearchQuery maps URL query parameters onto the catalog search input.
// Absent optional filters stay nil so the service can distinguish "not
// filtered" from a zero value.
func parseSearchQuery(r *http.Request) (catalog.SearchInput, error) {
	q := r.URL.Query()

	input := catalog.SearchInput{
		Query: q.Get("q"),
		Sort:  domain.SortPolicy(q.Get("sort")),
		Page:  queryInt(r, "page"),
		Limit: queryInt(r, "limit"),
	}

	if v := q.Get("brand"); v != "" {
		input.BrandSlug = &v
	}
	if v := q.Get("perfumer"); v != "" {
		input.PerfumerSlug = &v
	}
	if v := q.Get("note_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return catalog.SearchInput{}, domain.NewValidationError("note_id", "must be a UUID")
		}
		input.NoteID = &id
	}
	if v := q.Get("gender"); v != "" {
		g := domain.Gender(v)
		input.Gender = &g
	}
	if v := q.Get("release_year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return catalog.SearchInput{}, domain.NewValidationError("release_year", "must be an integer")
		}
		input.ReleaseYear = &year
	}

	return input, nil
}
