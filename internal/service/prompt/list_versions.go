package prompt

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/promptstash/promptstash-backend/internal/domain"
)

// ListVersions returns a prompt's history, newest snapshot first.
// Returns ErrNotFound when the prompt does not exist; a prompt that exists
// but has never been edited yields an empty slice.
func (s *Service) ListVersions(ctx context.Context, promptID uuid.UUID) ([]*domain.Version, error) {
	if promptID == uuid.Nil {
		return nil, domain.NewValidationError("prompt_id", "required")
	}

	if _, err := s.prompts.GetByID(ctx, promptID); err != nil {
		return nil, fmt.Errorf("get prompt: %w", err)
	}

	versions, err := s.versions.ListByPromptID(ctx, promptID)
	if err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}

	return versions, nil
}
