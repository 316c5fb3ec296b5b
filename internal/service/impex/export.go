package impex

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/promptstash/promptstash-backend/internal/domain"
)

// Export assembles the full library into one document: every prompt and every
// custom template. Seeded templates are skipped since the seeder recreates
// them on any fresh install.
func (s *Service) Export(ctx context.Context) (*Document, error) {
	prompts, err := s.prompts.List(ctx, domain.PromptFilter{})
	if err != nil {
		return nil, fmt.Errorf("export prompts: %w", err)
	}

	templates, err := s.templates.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("export templates: %w", err)
	}

	doc := &Document{
		SchemaVersion: SchemaVersion,
		ExportedAt:    s.now(),
		Prompts:       make([]PromptRecord, 0, len(prompts)),
		Templates:     []TemplateRecord{},
	}
	for _, p := range prompts {
		doc.Prompts = append(doc.Prompts, PromptRecord{
			Title:    p.Title,
			Category: p.Category,
			Content:  p.Content,
			Tags:     p.Tags,
		})
	}
	for _, t := range templates {
		if !t.IsCustom {
			continue
		}
		doc.Templates = append(doc.Templates, TemplateRecord{
			Label:    t.Label,
			Title:    t.Title,
			Category: t.Category,
			Content:  t.Content,
			Tags:     t.Tags,
		})
	}

	s.log.InfoContext(ctx, "library exported",
		slog.Int("prompts", len(doc.Prompts)),
		slog.Int("templates", len(doc.Templates)),
	)

	return doc, nil
}
