package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/promptstash/promptstash-backend/internal/domain"
	"github.com/promptstash/promptstash-backend/internal/service/prompt"
)

// promptService defines the minimal interface needed by PromptHandler.
type promptService interface {
	CreatePrompt(ctx context.Context, input prompt.CreatePromptInput) (*domain.Prompt, error)
	GetPrompt(ctx context.Context, promptID uuid.UUID) (*domain.Prompt, error)
	UpdatePrompt(ctx context.Context, input prompt.UpdatePromptInput) (*domain.Prompt, error)
	DeletePrompt(ctx context.Context, input prompt.DeletePromptInput) error
	ListPrompts(ctx context.Context, filter domain.PromptFilter) ([]*domain.Prompt, error)
	ListVersions(ctx context.Context, promptID uuid.UUID) ([]*domain.Version, error)
	RestoreVersion(ctx context.Context, input prompt.RestoreVersionInput) (prompt.RestoreResult, error)
}

// PromptHandler serves prompt REST endpoints.
type PromptHandler struct {
	svc promptService
	log *slog.Logger
}

// NewPromptHandler creates a PromptHandler.
func NewPromptHandler(svc promptService, logger *slog.Logger) *PromptHandler {
	return &PromptHandler{svc: svc, log: logger.With("handler", "prompt")}
}

type promptRequest struct {
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Content  string   `json:"content"`
	Tags     []string `json:"tags"`
}

type promptResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type versionResponse struct {
	ID        string    `json:"id"`
	PromptID  string    `json:"promptId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type restoreResponse struct {
	Restored bool           `json:"restored"`
	Prompt   promptResponse `json:"prompt"`
}

// Create handles POST /api/v1/prompts.
func (h *PromptHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req promptRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	created, err := h.svc.CreatePrompt(r.Context(), prompt.CreatePromptInput{
		Title:    req.Title,
		Category: req.Category,
		Content:  req.Content,
		Tags:     req.Tags,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPromptResponse(created))
}

// Get handles GET /api/v1/prompts/{id}.
func (h *PromptHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := h.svc.GetPrompt(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPromptResponse(p))
}

// List handles GET /api/v1/prompts with optional category, tag, search,
// limit, and offset query parameters. Results come newest-updated first.
func (h *PromptHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.PromptFilter{
		Category: q.Get("category"),
		Tag:      q.Get("tag"),
		Search:   q.Get("search"),
	}
	filter.Limit = queryInt(q.Get("limit"))
	filter.Offset = queryInt(q.Get("offset"))

	prompts, err := h.svc.ListPrompts(r.Context(), filter)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]promptResponse, 0, len(prompts))
	for _, p := range prompts {
		resp = append(resp, toPromptResponse(p))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Update handles PUT /api/v1/prompts/{id}.
func (h *PromptHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req promptRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	updated, err := h.svc.UpdatePrompt(r.Context(), prompt.UpdatePromptInput{
		PromptID: id,
		Title:    req.Title,
		Category: req.Category,
		Content:  req.Content,
		Tags:     req.Tags,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPromptResponse(updated))
}

// Delete handles DELETE /api/v1/prompts/{id}.
func (h *PromptHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeletePrompt(r.Context(), prompt.DeletePromptInput{PromptID: id}); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListVersions handles GET /api/v1/prompts/{id}/versions.
func (h *PromptHandler) ListVersions(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	versions, err := h.svc.ListVersions(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]versionResponse, 0, len(versions))
	for _, v := range versions {
		resp = append(resp, versionResponse{
			ID:        v.ID.String(),
			PromptID:  v.PromptID.String(),
			Content:   v.Content,
			CreatedAt: v.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Restore handles POST /api/v1/prompts/{id}/versions/{versionId}/restore.
// A no-op restore (the prompt already holds that content) returns 200 with
// restored=false rather than an error.
func (h *PromptHandler) Restore(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	versionID, err := pathID(r, "versionId")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result, err := h.svc.RestoreVersion(r.Context(), prompt.RestoreVersionInput{
		PromptID:  id,
		VersionID: versionID,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := h.svc.GetPrompt(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, restoreResponse{
		Restored: result.Restored,
		Prompt:   toPromptResponse(p),
	})
}

func toPromptResponse(p *domain.Prompt) promptResponse {
	return promptResponse{
		ID:        p.ID.String(),
		Title:     p.Title,
		Category:  p.Category,
		Content:   p.Content,
		Tags:      p.Tags,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func queryInt(raw string) int {
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
