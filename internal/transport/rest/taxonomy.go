package rest

import (
	"context"
	"log/slog"
	"net/http"
)

// taxonomyService defines the minimal interface needed by TaxonomyHandler.
type taxonomyService interface {
	Categories(ctx context.Context) ([]string, error)
	Tags(ctx context.Context) ([]string, error)
}

// TaxonomyHandler serves the category and tag lookup endpoints.
type TaxonomyHandler struct {
	svc taxonomyService
	log *slog.Logger
}

// NewTaxonomyHandler creates a TaxonomyHandler.
func NewTaxonomyHandler(svc taxonomyService, logger *slog.Logger) *TaxonomyHandler {
	return &TaxonomyHandler{svc: svc, log: logger.With("handler", "taxonomy")}
}

// Categories handles GET /api/v1/categories.
func (h *TaxonomyHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.Categories(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"categories": categories})
}

// Tags handles GET /api/v1/tags.
func (h *TaxonomyHandler) Tags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.svc.Tags(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"tags": tags})
}
