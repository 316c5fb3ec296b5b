// Package impex implements JSON export and import of the user's library.
// Export produces a single document with all prompts and custom templates;
// import validates every record up front and writes in chunked transactions.
package impex

import (
	"context"
	"log/slog"
	"time"

	"github.com/promptstash/promptstash-backend/internal/config"
	"github.com/promptstash/promptstash-backend/internal/domain"
)

type promptRepo interface {
	Create(ctx context.Context, p *domain.Prompt, now time.Time) (*domain.Prompt, error)
	List(ctx context.Context, filter domain.PromptFilter) ([]*domain.Prompt, error)
	Count(ctx context.Context) (int, error)
}

type templateRepo interface {
	Create(ctx context.Context, t *domain.Template, now time.Time) (*domain.Template, error)
	List(ctx context.Context) ([]*domain.Template, error)
	SeedDefaults(ctx context.Context, templates []*domain.Template, now time.Time) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides library export and import.
type Service struct {
	prompts   promptRepo
	templates templateRepo
	tx        txManager
	cfg       config.PromptsConfig
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new Impex service.
func NewService(
	log *slog.Logger,
	prompts promptRepo,
	templates templateRepo,
	tx txManager,
	cfg config.PromptsConfig,
) *Service {
	return &Service{
		prompts:   prompts,
		templates: templates,
		tx:        tx,
		cfg:       cfg,
		log:       log.With("service", "impex"),
		now:       func() time.Time { return time.Now().UTC() },
	}
}
