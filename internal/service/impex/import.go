package impex

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/promptstash/promptstash-backend/internal/domain"
)

// ImportResult reports how many records an import actually created.
type ImportResult struct {
	PromptsCreated   int
	TemplatesCreated int
}

// Import validates every record in the document and then writes them in
// chunked transactions. Validation is all-or-nothing: a single malformed
// record rejects the whole batch with a ValidationError naming the record by
// index, so the user can fix the file and retry without partial state.
//
// Imported prompts start with empty version history. Imported templates are
// always custom.
func (s *Service) Import(ctx context.Context, doc *Document) (ImportResult, error) {
	if doc == nil {
		return ImportResult{}, domain.NewValidationError("document", "required")
	}
	if doc.SchemaVersion != SchemaVersion {
		return ImportResult{}, domain.NewValidationError("schema_version",
			fmt.Sprintf("unsupported version %d (want %d)", doc.SchemaVersion, SchemaVersion))
	}
	if total := len(doc.Prompts) + len(doc.Templates); total == 0 {
		return ImportResult{}, domain.NewValidationError("document", "no records")
	} else if total > s.cfg.ImportMaxBatch {
		return ImportResult{}, domain.NewValidationError("document",
			fmt.Sprintf("too many records: %d (max %d)", total, s.cfg.ImportMaxBatch))
	}

	var errs []domain.FieldError
	for i, r := range doc.Prompts {
		errs = append(errs, r.validate(i)...)
	}
	for i, r := range doc.Templates {
		errs = append(errs, r.validate(i)...)
	}
	if len(errs) > 0 {
		return ImportResult{}, &domain.ValidationError{Errors: errs}
	}

	count, err := s.prompts.Count(ctx)
	if err != nil {
		return ImportResult{}, fmt.Errorf("count prompts: %w", err)
	}
	if count+len(doc.Prompts) > s.cfg.MaxPrompts {
		return ImportResult{}, domain.NewValidationError("prompts",
			fmt.Sprintf("import would exceed the prompt limit (max %d)", s.cfg.MaxPrompts))
	}

	var result ImportResult
	if err := s.importPrompts(ctx, doc.Prompts, &result); err != nil {
		return result, err
	}
	if err := s.importTemplates(ctx, doc.Templates, &result); err != nil {
		return result, err
	}

	s.log.InfoContext(ctx, "library imported",
		slog.Int("prompts", result.PromptsCreated),
		slog.Int("templates", result.TemplatesCreated),
	)

	return result, nil
}

// importPrompts writes prompt records in chunks, one transaction per chunk,
// so a failure late in a large import does not roll back everything already
// written and leaves a clear progress count behind.
func (s *Service) importPrompts(ctx context.Context, records []PromptRecord, result *ImportResult) error {
	for _, chunk := range chunked(records, s.cfg.ImportChunkSize) {
		err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			for _, r := range chunk {
				_, createErr := s.prompts.Create(txCtx, &domain.Prompt{
					Title:    strings.TrimSpace(r.Title),
					Category: domain.NormalizeCategory(strings.TrimSpace(r.Category)),
					Content:  r.Content,
					Tags:     normalizeTags(r.Tags),
				}, s.now())
				if createErr != nil {
					return fmt.Errorf("import prompt %q: %w", r.Title, createErr)
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
		result.PromptsCreated += len(chunk)
	}
	return nil
}

func (s *Service) importTemplates(ctx context.Context, records []TemplateRecord, result *ImportResult) error {
	for _, chunk := range chunked(records, s.cfg.ImportChunkSize) {
		err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			for _, r := range chunk {
				_, createErr := s.templates.Create(txCtx, &domain.Template{
					Label:    strings.TrimSpace(r.Label),
					Title:    strings.TrimSpace(r.Title),
					Category: domain.NormalizeCategory(strings.TrimSpace(r.Category)),
					Content:  r.Content,
					Tags:     normalizeTags(r.Tags),
					IsCustom: true,
				}, s.now())
				if createErr != nil {
					return fmt.Errorf("import template %q: %w", r.Label, createErr)
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
		result.TemplatesCreated += len(chunk)
	}
	return nil
}

// SeedTemplates validates template records and upserts them as seeded
// (non-custom) templates, skipping labels that already exist. Used by the
// seeder command only.
func (s *Service) SeedTemplates(ctx context.Context, records []TemplateRecord) (int, error) {
	var errs []domain.FieldError
	for i, r := range records {
		errs = append(errs, r.validate(i)...)
	}
	if len(errs) > 0 {
		return 0, &domain.ValidationError{Errors: errs}
	}

	templates := make([]*domain.Template, 0, len(records))
	for _, r := range records {
		templates = append(templates, &domain.Template{
			Label:    strings.TrimSpace(r.Label),
			Title:    strings.TrimSpace(r.Title),
			Category: domain.NormalizeCategory(strings.TrimSpace(r.Category)),
			Content:  r.Content,
			Tags:     normalizeTags(r.Tags),
		})
	}

	inserted, err := s.templates.SeedDefaults(ctx, templates, s.now())
	if err != nil {
		return inserted, fmt.Errorf("seed templates: %w", err)
	}

	s.log.InfoContext(ctx, "default templates seeded",
		slog.Int("inserted", inserted),
		slog.Int("total", len(records)),
	)

	return inserted, nil
}

// chunked splits records into slices of at most size elements. A size of zero
// or less yields a single chunk.
func chunked[T any](records []T, size int) [][]T {
	if len(records) == 0 {
		return nil
	}
	if size <= 0 {
		return [][]T{records}
	}
	chunks := make([][]T, 0, (len(records)+size-1)/size)
	for start := 0; start < len(records); start += size {
		end := start + size
		if end > len(records) {
			end = len(records)
		}
		chunks = append(chunks, records[start:end])
	}
	return chunks
}
