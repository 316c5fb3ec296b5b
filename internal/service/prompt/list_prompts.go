package prompt

import (
	"context"
	"fmt"

	"github.com/promptstash/promptstash-backend/internal/domain"
)

// ListPrompts returns prompts ordered by recency (updated_at descending),
// optionally narrowed by category, tag, or a title search.
func (s *Service) ListPrompts(ctx context.Context, filter domain.PromptFilter) ([]*domain.Prompt, error) {
	prompts, err := s.prompts.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list prompts: %w", err)
	}

	return prompts, nil
}
