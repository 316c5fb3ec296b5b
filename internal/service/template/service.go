// Package template implements template management. Seeded templates ship with
// the application and are read-only; user-created ones are fully mutable.
package template

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/promptstash/promptstash-backend/internal/domain"
)

type templateRepo interface {
	Create(ctx context.Context, t *domain.Template, now time.Time) (*domain.Template, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Template, error)
	Update(ctx context.Context, id uuid.UUID, params domain.TemplateUpdateParams, now time.Time) (*domain.Template, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*domain.Template, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides template management operations.
type Service struct {
	templates templateRepo
	tx        txManager
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new Template service.
func NewService(log *slog.Logger, templates templateRepo, tx txManager) *Service {
	return &Service{
		templates: templates,
		tx:        tx,
		log:       log.With("service", "template"),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// mutable returns ErrImmutable for seeded templates. Only user-created
// templates (IsCustom=true) may be updated or deleted.
func mutable(t *domain.Template) error {
	if !t.IsCustom {
		return domain.ErrImmutable
	}
	return nil
}
