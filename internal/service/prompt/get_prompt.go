package prompt

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/promptstash/promptstash-backend/internal/domain"
)

// GetPrompt returns a single prompt by id.
func (s *Service) GetPrompt(ctx context.Context, promptID uuid.UUID) (*domain.Prompt, error) {
	if promptID == uuid.Nil {
		return nil, domain.NewValidationError("prompt_id", "required")
	}

	p, err := s.prompts.GetByID(ctx, promptID)
	if err != nil {
		return nil, fmt.Errorf("get prompt: %w", err)
	}

	return p, nil
}
