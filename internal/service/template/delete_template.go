package template

import (
	"context"
	"fmt"
	"log/slog"
)

// DeleteTemplate removes a user template. Seeded templates are rejected with
// ErrImmutable.
func (s *Service) DeleteTemplate(ctx context.Context, input DeleteTemplateInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, getErr := s.templates.GetByID(txCtx, input.TemplateID)
		if getErr != nil {
			return fmt.Errorf("get template: %w", getErr)
		}
		if guardErr := mutable(existing); guardErr != nil {
			return fmt.Errorf("template %s: %w", input.TemplateID, guardErr)
		}

		if deleteErr := s.templates.Delete(txCtx, input.TemplateID); deleteErr != nil {
			return fmt.Errorf("delete template: %w", deleteErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "template deleted",
		slog.String("template_id", input.TemplateID.String()),
	)

	return nil
}
