package template

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/promptstash/promptstash-backend/internal/domain"
)

// CreateTemplate creates a new user template. A blank category defaults to
// "Uncategorized". The IsCustom flag is always set here; seeded templates
// enter the system only through the seeder.
func (s *Service) CreateTemplate(ctx context.Context, input CreateTemplateInput) (*domain.Template, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.templates.Create(ctx, &domain.Template{
		Label:    strings.TrimSpace(input.Label),
		Title:    strings.TrimSpace(input.Title),
		Category: domain.NormalizeCategory(strings.TrimSpace(input.Category)),
		Content:  input.Content,
		Tags:     normalizeTags(input.Tags),
		IsCustom: true,
	}, s.now())
	if err != nil {
		return nil, fmt.Errorf("create template: %w", err)
	}

	s.log.InfoContext(ctx, "template created",
		slog.String("template_id", created.ID.String()),
		slog.String("label", created.Label),
	)

	return created, nil
}

// normalizeTags trims whitespace, drops empties, and removes duplicates
// while preserving first-occurrence order.
func normalizeTags(tags []string) []string {
	result := []string{}
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		result = append(result, tag)
	}
	return result
}
