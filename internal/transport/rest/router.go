package rest

import "net/http"

// NewRouter registers all REST routes on a fresh mux.
func NewRouter(health *HealthHandler, registry *RegistryHandler, catalog *CatalogHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health/live", health.Live)
	mux.HandleFunc("GET /health/ready", health.Ready)

	mux.HandleFunc("POST /api/v1/registry/{kind}", registry.Create)
	mux.HandleFunc("GET /api/v1/registry/{kind}", registry.List)
	mux.HandleFunc("GET /api/v1/registry/{kind}/{slug}", registry.GetBySlug)
	mux.HandleFunc("PATCH /api/v1/entities/{id}", registry.Rename)
	mux.HandleFunc("DELETE /api/v1/entities/{id}", registry.Delete)

	mux.HandleFunc("GET /api/v1/perfumes", catalog.Search)
	mux.HandleFunc("GET /api/v1/perfumes/{id}", catalog.GetByID)
	mux.HandleFunc("PUT /api/v1/perfumes/{id}/rating", catalog.SubmitRating)

	return mux
}
