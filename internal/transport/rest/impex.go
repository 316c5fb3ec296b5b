package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/promptstash/promptstash-backend/internal/service/impex"
)

// impexService defines the minimal interface needed by ImpexHandler.
type impexService interface {
	Export(ctx context.Context) (*impex.Document, error)
	Import(ctx context.Context, doc *impex.Document) (impex.ImportResult, error)
}

// ImpexHandler serves the library export and import endpoints.
type ImpexHandler struct {
	svc impexService
	log *slog.Logger
}

// NewImpexHandler creates an ImpexHandler.
func NewImpexHandler(svc impexService, logger *slog.Logger) *ImpexHandler {
	return &ImpexHandler{svc: svc, log: logger.With("handler", "impex")}
}

type importResponse struct {
	PromptsCreated   int `json:"promptsCreated"`
	TemplatesCreated int `json:"templatesCreated"`
}

// Export handles GET /api/v1/export. The response body is the import format.
func (h *ImpexHandler) Export(w http.ResponseWriter, r *http.Request) {
	doc, err := h.svc.Export(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="promptstash-export.json"`)
	writeJSON(w, http.StatusOK, doc)
}

// Import handles POST /api/v1/import. The whole batch is validated before
// anything is written; a bad record rejects the request with 400 and the
// record's index in the field errors.
func (h *ImpexHandler) Import(w http.ResponseWriter, r *http.Request) {
	var doc impex.Document
	if err := decodeJSON(r, &doc); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result, err := h.svc.Import(r.Context(), &doc)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, importResponse{
		PromptsCreated:   result.PromptsCreated,
		TemplatesCreated: result.TemplatesCreated,
	})
}
