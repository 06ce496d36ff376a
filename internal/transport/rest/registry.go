package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/aromabase/aromabase-backend/internal/domain"
	"github.com/aromabase/aromabase-backend/internal/service/registry"
)

type registryService interface {
	Create(ctx context.Context, input registry.CreateInput) (domain.CanonicalEntity, error)
	GetBySlug(ctx context.Context, kind domain.EntityKind, slug string) (domain.CanonicalEntity, error)
	GetByInitial(ctx context.Context, kind domain.EntityKind, initial string) ([]domain.CanonicalEntity, error)
	Search(ctx context.Context, input registry.SearchInput) (*domain.Page[domain.CanonicalEntity], error)
	Rename(ctx context.Context, input registry.RenameInput) (domain.CanonicalEntity, int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

// RegistryHandler serves the canonical-entity endpoints.
type RegistryHandler struct {
	service registryService
	log     *slog.Logger
}

func NewRegistryHandler(log *slog.Logger, service registryService) *RegistryHandler {
	return &RegistryHandler{
		service: service,
		log:     log.With("handler", "registry"),
	}
}

type createEntityRequest struct {
	OriginalName  string  `json:"original_name"`
	LocalizedName *string `json:"localized_name"`
}

func (h *RegistryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEntityRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	entity, err := h.service.Create(r.Context(), registry.CreateInput{
		Kind:          domain.EntityKind(r.PathValue("kind")),
		OriginalName:  req.OriginalName,
		LocalizedName: req.LocalizedName,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	respond(w, http.StatusCreated, toEntityDTO(entity))
}

func (h *RegistryHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	kind := domain.EntityKind(r.PathValue("kind"))
	entity, err := h.service.GetBySlug(r.Context(), kind, r.PathValue("slug"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	respond(w, http.StatusOK, toEntityDTO(entity))
}

// List serves both alphabet browsing (?initial=a) and free-text search (?q=).
func (h *RegistryHandler) List(w http.ResponseWriter, r *http.Request) {
	kind := domain.EntityKind(r.PathValue("kind"))

	if initial := r.URL.Query().Get("initial"); initial != "" {
		items, err := h.service.GetByInitial(r.Context(), kind, initial)
		if err != nil {
			respondError(w, r, h.log, err)
			return
		}
		respond(w, http.StatusOK, map[string][]entityDTO{"items": toEntityDTOs(items)})
		return
	}

	page, err := h.service.Search(r.Context(), registry.SearchInput{
		Kind:  kind,
		Query: r.URL.Query().Get("q"),
		Page:  queryInt(r, "page"),
		Limit: queryInt(r, "limit"),
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	respond(w, http.StatusOK, pageDTO[entityDTO]{
		Items:      toEntityDTOs(page.Items),
		Page:       page.Page,
		TotalPages: page.TotalPages,
		TotalItems: page.TotalItems,
	})
}

type renameEntityRequest struct {
	OriginalName  *string `json:"original_name"`
	LocalizedName *string `json:"localized_name"`
	Slug          *string `json:"slug"`
}

type renameEntityResponse struct {
	Entity          entityDTO `json:"entity"`
	AffectedRecords int64     `json:"affected_records"`
}

func (h *RegistryHandler) Rename(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, r, h.log, domain.NewValidationError("id", "must be a UUID"))
		return
	}

	var req renameEntityRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	entity, affected, err := h.service.Rename(r.Context(), registry.RenameInput{
		ID:            id,
		OriginalName:  req.OriginalName,
		LocalizedName: req.LocalizedName,
		Slug:          req.Slug,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	respond(w, http.StatusOK, renameEntityResponse{
		Entity:          toEntityDTO(entity),
		AffectedRecords: affected,
	})
}

func (h *RegistryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, r, h.log, domain.NewValidationError("id", "must be a UUID"))
		return
	}

	affected, err := h.service.Delete(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	respond(w, http.StatusOK, map[string]int64{"affected_records": affected})
}

func queryInt(r *http.Request, name string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return v
}
