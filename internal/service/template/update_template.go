package template

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/promptstash/promptstash-backend/internal/domain"
)

// UpdateTemplate overwrites a user template's fields. Seeded templates are
// rejected with ErrImmutable before anything is written. The read and the
// write run in one transaction so the guard cannot go stale.
func (s *Service) UpdateTemplate(ctx context.Context, input UpdateTemplateInput) (*domain.Template, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Template
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, getErr := s.templates.GetByID(txCtx, input.TemplateID)
		if getErr != nil {
			return fmt.Errorf("get template: %w", getErr)
		}
		if guardErr := mutable(existing); guardErr != nil {
			return fmt.Errorf("template %s: %w", input.TemplateID, guardErr)
		}

		var updateErr error
		updated, updateErr = s.templates.Update(txCtx, input.TemplateID, domain.TemplateUpdateParams{
			Label:    strings.TrimSpace(input.Label),
			Title:    strings.TrimSpace(input.Title),
			Category: domain.NormalizeCategory(strings.TrimSpace(input.Category)),
			Content:  input.Content,
			Tags:     normalizeTags(input.Tags),
		}, s.now())
		if updateErr != nil {
			return fmt.Errorf("update template: %w", updateErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "template updated",
		slog.String("template_id", updated.ID.String()),
	)

	return updated, nil
}
