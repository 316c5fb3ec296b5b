// Package prompt implements the prompt service: CRUD with automatic content
// versioning, cascading delete, and restore-from-version. It is the sole
// writer of prompt and version state.
package prompt

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/promptstash/promptstash-backend/internal/config"
	"github.com/promptstash/promptstash-backend/internal/domain"
)

type promptRepo interface {
	Create(ctx context.Context, p *domain.Prompt, now time.Time) (*domain.Prompt, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Prompt, error)
	Update(ctx context.Context, id uuid.UUID, params domain.PromptUpdateParams, now time.Time) (*domain.Prompt, error)
	UpdateContent(ctx context.Context, id uuid.UUID, content string, now time.Time) (*domain.Prompt, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter domain.PromptFilter) ([]*domain.Prompt, error)
	Count(ctx context.Context) (int, error)
}

type versionRepo interface {
	Create(ctx context.Context, promptID uuid.UUID, content string, now time.Time) (*domain.Version, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Version, error)
	Latest(ctx context.Context, promptID uuid.UUID) (*domain.Version, error)
	ListByPromptID(ctx context.Context, promptID uuid.UUID) ([]*domain.Version, error)
	ExistsWithContent(ctx context.Context, promptID uuid.UUID, content string) (bool, error)
	DeleteByPromptID(ctx context.Context, promptID uuid.UUID) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides prompt management operations.
type Service struct {
	prompts  promptRepo
	versions versionRepo
	tx       txManager
	cfg      config.PromptsConfig
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new Prompt service.
func NewService(
	log *slog.Logger,
	prompts promptRepo,
	versions versionRepo,
	tx txManager,
	cfg config.PromptsConfig,
) *Service {
	return &Service{
		prompts:  prompts,
		versions: versions,
		tx:       tx,
		cfg:      cfg,
		log:      log.With("service", "prompt"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// RestoreResult reports whether a restore actually changed anything.
// Restored=false means the prompt already held the target content and the
// call was a no-op (a success outcome, not an error).
type RestoreResult struct {
	Restored bool
}

// normalizeTags trims whitespace, drops empties, and removes duplicates
// while preserving first-occurrence order (display order is significant).
func normalizeTags(tags []string) []string {
	result := []string{}
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		result = append(result, tag)
	}
	return result
}
