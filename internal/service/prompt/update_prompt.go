package prompt

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/promptstash/promptstash-backend/internal/domain"
)

// UpdatePrompt overwrites a prompt's fields and bumps updated_at.
//
// The versioning rule: when the stored content differs from the new content
// (exact string inequality), the OLD content is snapshotted as a version
// before the prompt row is overwritten. Both writes happen inside one
// transaction, so the snapshot is durable by the time the overwrite commits.
// An update that changes only title, category, or tags records no version.
func (s *Service) UpdatePrompt(ctx context.Context, input UpdatePromptInput) (*domain.Prompt, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		updated   *domain.Prompt
		versioned bool
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, getErr := s.prompts.GetByID(txCtx, input.PromptID)
		if getErr != nil {
			return fmt.Errorf("get prompt: %w", getErr)
		}

		now := s.now()

		if old.Content != input.Content {
			if _, snapErr := s.versions.Create(txCtx, old.ID, old.Content, now); snapErr != nil {
				return fmt.Errorf("snapshot old content: %w", snapErr)
			}
			versioned = true
		}

		var updateErr error
		updated, updateErr = s.prompts.Update(txCtx, input.PromptID, domain.PromptUpdateParams{
			Title:    strings.TrimSpace(input.Title),
			Category: domain.NormalizeCategory(strings.TrimSpace(input.Category)),
			Content:  input.Content,
			Tags:     normalizeTags(input.Tags),
		}, now)
		if updateErr != nil {
			return fmt.Errorf("update prompt: %w", updateErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "prompt updated",
		slog.String("prompt_id", input.PromptID.String()),
		slog.Bool("versioned", versioned),
	)

	return updated, nil
}
