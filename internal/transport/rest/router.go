package rest

import "net/http"

// Handlers groups everything the router mounts.
type Handlers struct {
	Prompts   *PromptHandler
	Templates *TemplateHandler
	Taxonomy  *TaxonomyHandler
	Impex     *ImpexHandler
	Health    *HealthHandler
}

// NewRouter mounts all REST routes on a fresh ServeMux using method+path
// patterns. Middleware is applied by the caller around the returned mux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/prompts", h.Prompts.Create)
	mux.HandleFunc("GET /api/v1/prompts", h.Prompts.List)
	mux.HandleFunc("GET /api/v1/prompts/{id}", h.Prompts.Get)
	mux.HandleFunc("PUT /api/v1/prompts/{id}", h.Prompts.Update)
	mux.HandleFunc("DELETE /api/v1/prompts/{id}", h.Prompts.Delete)
	mux.HandleFunc("GET /api/v1/prompts/{id}/versions", h.Prompts.ListVersions)
	mux.HandleFunc("POST /api/v1/prompts/{id}/versions/{versionId}/restore", h.Prompts.Restore)

	mux.HandleFunc("POST /api/v1/templates", h.Templates.Create)
	mux.HandleFunc("GET /api/v1/templates", h.Templates.List)
	mux.HandleFunc("GET /api/v1/templates/{id}", h.Templates.Get)
	mux.HandleFunc("PUT /api/v1/templates/{id}", h.Templates.Update)
	mux.HandleFunc("DELETE /api/v1/templates/{id}", h.Templates.Delete)

	mux.HandleFunc("GET /api/v1/categories", h.Taxonomy.Categories)
	mux.HandleFunc("GET /api/v1/tags", h.Taxonomy.Tags)

	mux.HandleFunc("GET /api/v1/export", h.Impex.Export)
	mux.HandleFunc("POST /api/v1/import", h.Impex.Import)

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /live", h.Health.Live)

	return mux
}
