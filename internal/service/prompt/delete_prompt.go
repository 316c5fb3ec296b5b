package prompt

import (
	"context"
	"fmt"
	"log/slog"
)

// DeletePrompt removes a prompt and its entire version history in one
// transaction, so no reader ever observes a version outliving its prompt.
func (s *Service) DeletePrompt(ctx context.Context, input DeletePromptInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	var removedVersions int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Existence check first so a missing prompt maps to NotFound
		// rather than a zero-row delete.
		if _, getErr := s.prompts.GetByID(txCtx, input.PromptID); getErr != nil {
			return fmt.Errorf("get prompt: %w", getErr)
		}

		var delErr error
		removedVersions, delErr = s.versions.DeleteByPromptID(txCtx, input.PromptID)
		if delErr != nil {
			return fmt.Errorf("delete versions: %w", delErr)
		}

		if delErr := s.prompts.Delete(txCtx, input.PromptID); delErr != nil {
			return fmt.Errorf("delete prompt: %w", delErr)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "prompt deleted",
		slog.String("prompt_id", input.PromptID.String()),
		slog.Int("versions_removed", removedVersions),
	)

	return nil
}
