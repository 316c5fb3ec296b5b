package prompt

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/promptstash/promptstash-backend/internal/domain"
)

// RestoreVersion sets a prompt's content back to a previous version's content.
//
// Rules, in order:
//
//  1. The version and prompt must both exist (ErrNotFound), and the version
//     must belong to the stated prompt (ErrMismatch).
//  2. Idempotence guard: if the prompt already holds the target content the
//     call is a no-op: Restored=false, no new version, updated_at untouched.
//     Restoring twice in a row is therefore always safe.
//  3. Dedup rule: the current content is snapshotted before the overwrite,
//     but only if no existing version of this prompt already holds exactly
//     that content. The most recent version is checked first as a fast path;
//     only on a miss does it fall back to scanning the whole history. This
//     keeps the history a browsable undo log rather than an audit trail of
//     byte-identical duplicates.
//  4. The prompt's content is patched to the version's content and
//     updated_at is bumped. The target version itself is never touched.
//
// Everything runs in one transaction. Under concurrent writers the dedup
// check can theoretically admit a duplicate snapshot (check-then-insert
// without a uniqueness constraint); that race is accepted and documented.
func (s *Service) RestoreVersion(ctx context.Context, input RestoreVersionInput) (RestoreResult, error) {
	if err := input.Validate(); err != nil {
		return RestoreResult{}, err
	}

	var result RestoreResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		target, getErr := s.versions.GetByID(txCtx, input.VersionID)
		if getErr != nil {
			return fmt.Errorf("get version: %w", getErr)
		}
		if target.PromptID != input.PromptID {
			return fmt.Errorf("version %s: %w", input.VersionID, domain.ErrMismatch)
		}

		current, getErr := s.prompts.GetByID(txCtx, input.PromptID)
		if getErr != nil {
			return fmt.Errorf("get prompt: %w", getErr)
		}

		// Idempotence guard.
		if current.Content == target.Content {
			result = RestoreResult{Restored: false}
			return nil
		}

		now := s.now()

		snapshot, dedupErr := s.shouldSnapshot(txCtx, current)
		if dedupErr != nil {
			return dedupErr
		}
		if snapshot {
			if _, snapErr := s.versions.Create(txCtx, current.ID, current.Content, now); snapErr != nil {
				return fmt.Errorf("snapshot current content: %w", snapErr)
			}
		}

		if _, patchErr := s.prompts.UpdateContent(txCtx, current.ID, target.Content, now); patchErr != nil {
			return fmt.Errorf("patch content: %w", patchErr)
		}

		result = RestoreResult{Restored: true}
		return nil
	})
	if err != nil {
		return RestoreResult{}, err
	}

	s.log.InfoContext(ctx, "version restored",
		slog.String("prompt_id", input.PromptID.String()),
		slog.String("version_id", input.VersionID.String()),
		slog.Bool("restored", result.Restored),
	)

	return result, nil
}

// shouldSnapshot reports whether the prompt's current content needs to be
// preserved as a new version before a restore overwrites it.
func (s *Service) shouldSnapshot(ctx context.Context, current *domain.Prompt) (bool, error) {
	latest, err := s.versions.Latest(ctx, current.ID)
	if err != nil {
		return false, fmt.Errorf("get latest version: %w", err)
	}
	// Fast path: the newest snapshot already holds the current content.
	if latest != nil && latest.Content == current.Content {
		return false, nil
	}
	// Slow path: scan the full history for an identical snapshot.
	exists, err := s.versions.ExistsWithContent(ctx, current.ID, current.Content)
	if err != nil {
		return false, fmt.Errorf("check existing snapshots: %w", err)
	}
	return !exists, nil
}
