package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/promptstash/promptstash-backend/internal/domain"
	"github.com/promptstash/promptstash-backend/internal/service/template"
)

// templateService defines the minimal interface needed by TemplateHandler.
type templateService interface {
	CreateTemplate(ctx context.Context, input template.CreateTemplateInput) (*domain.Template, error)
	GetTemplate(ctx context.Context, id uuid.UUID) (*domain.Template, error)
	UpdateTemplate(ctx context.Context, input template.UpdateTemplateInput) (*domain.Template, error)
	DeleteTemplate(ctx context.Context, input template.DeleteTemplateInput) error
	ListTemplates(ctx context.Context) ([]*domain.Template, error)
}

// TemplateHandler serves template REST endpoints.
type TemplateHandler struct {
	svc templateService
	log *slog.Logger
}

// NewTemplateHandler creates a TemplateHandler.
func NewTemplateHandler(svc templateService, logger *slog.Logger) *TemplateHandler {
	return &TemplateHandler{svc: svc, log: logger.With("handler", "template")}
}

type templateRequest struct {
	Label    string   `json:"label"`
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Content  string   `json:"content"`
	Tags     []string `json:"tags"`
}

type templateResponse struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	IsCustom  bool      `json:"isCustom"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Create handles POST /api/v1/templates.
func (h *TemplateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req templateRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	created, err := h.svc.CreateTemplate(r.Context(), template.CreateTemplateInput{
		Label:    req.Label,
		Title:    req.Title,
		Category: req.Category,
		Content:  req.Content,
		Tags:     req.Tags,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTemplateResponse(created))
}

// Get handles GET /api/v1/templates/{id}.
func (h *TemplateHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	t, err := h.svc.GetTemplate(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTemplateResponse(t))
}

// List handles GET /api/v1/templates.
func (h *TemplateHandler) List(w http.ResponseWriter, r *http.Request) {
	templates, err := h.svc.ListTemplates(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]templateResponse, 0, len(templates))
	for _, t := range templates {
		resp = append(resp, toTemplateResponse(t))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Update handles PUT /api/v1/templates/{id}.
func (h *TemplateHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req templateRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	updated, err := h.svc.UpdateTemplate(r.Context(), template.UpdateTemplateInput{
		TemplateID: id,
		Label:      req.Label,
		Title:      req.Title,
		Category:   req.Category,
		Content:    req.Content,
		Tags:       req.Tags,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTemplateResponse(updated))
}

// Delete handles DELETE /api/v1/templates/{id}.
func (h *TemplateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteTemplate(r.Context(), template.DeleteTemplateInput{TemplateID: id}); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toTemplateResponse(t *domain.Template) templateResponse {
	return templateResponse{
		ID:        t.ID.String(),
		Label:     t.Label,
		Title:     t.Title,
		Category:  t.Category,
		Content:   t.Content,
		Tags:      t.Tags,
		IsCustom:  t.IsCustom,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
