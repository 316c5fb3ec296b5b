package template

import (
	"context"
	"fmt"

	"github.com/promptstash/promptstash-backend/internal/domain"
)

// ListTemplates returns all templates, seeded and custom, ordered by label.
func (s *Service) ListTemplates(ctx context.Context) ([]*domain.Template, error) {
	templates, err := s.templates.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	return templates, nil
}
