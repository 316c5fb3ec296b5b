package prompt

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/promptstash/promptstash-backend/internal/domain"
)

// CreatePrompt creates a new prompt. A blank category defaults to
// "Uncategorized". No version is recorded: there is no prior content
// to snapshot yet.
func (s *Service) CreatePrompt(ctx context.Context, input CreatePromptInput) (*domain.Prompt, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	count, err := s.prompts.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count prompts: %w", err)
	}
	if count >= s.cfg.MaxPrompts {
		return nil, domain.NewValidationError("prompts", fmt.Sprintf("limit reached (max %d)", s.cfg.MaxPrompts))
	}

	var created *domain.Prompt
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.prompts.Create(txCtx, &domain.Prompt{
			Title:    strings.TrimSpace(input.Title),
			Category: domain.NormalizeCategory(strings.TrimSpace(input.Category)),
			Content:  input.Content,
			Tags:     normalizeTags(input.Tags),
		}, s.now())
		if createErr != nil {
			return fmt.Errorf("create prompt: %w", createErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "prompt created",
		slog.String("prompt_id", created.ID.String()),
		slog.String("category", created.Category),
	)

	return created, nil
}
