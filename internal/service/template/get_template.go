package template

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/promptstash/promptstash-backend/internal/domain"
)

// GetTemplate returns a single template by id.
func (s *Service) GetTemplate(ctx context.Context, id uuid.UUID) (*domain.Template, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("template_id", "required")
	}

	t, err := s.templates.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get template: %w", err)
	}

	return t, nil
}
