package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/promptstash/promptstash-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedPrompt inserts a prompt with the given content and returns the filled entity.
func SeedPrompt(t *testing.T, pool *pgxpool.Pool, content string) domain.Prompt {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	prompt := domain.Prompt{
		ID:        uuid.New(),
		Title:     "Test Prompt " + suffix,
		Category:  "Testing",
		Content:   content,
		Tags:      []string{"seed", "t-" + suffix},
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO prompts (id, title, category, content, tags, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		prompt.ID, prompt.Title, prompt.Category, prompt.Content, prompt.Tags, prompt.CreatedAt, prompt.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPrompt insert: %v", err)
	}

	return prompt
}

// SeedVersion inserts a version snapshot for the given prompt.
func SeedVersion(t *testing.T, pool *pgxpool.Pool, promptID uuid.UUID, content string, at time.Time) domain.Version {
	t.Helper()
	ctx := context.Background()

	version := domain.Version{
		ID:        uuid.New(),
		PromptID:  promptID,
		Content:   content,
		CreatedAt: at.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO versions (id, prompt_id, content, created_at)
		 VALUES ($1, $2, $3, $4)`,
		version.ID, version.PromptID, version.Content, version.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedVersion insert: %v", err)
	}

	return version
}

// SeedTemplate inserts a template. isCustom=false marks it as seeded (immutable).
func SeedTemplate(t *testing.T, pool *pgxpool.Pool, isCustom bool) domain.Template {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	tpl := domain.Template{
		ID:        uuid.New(),
		Label:     "tpl-" + suffix,
		Title:     "Template " + suffix,
		Category:  "Testing",
		Content:   "template body " + suffix,
		Tags:      []string{"seed"},
		IsCustom:  isCustom,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO templates (id, label, title, category, content, tags, is_custom, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		tpl.ID, tpl.Label, tpl.Title, tpl.Category, tpl.Content, tpl.Tags, tpl.IsCustom, tpl.CreatedAt, tpl.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTemplate insert: %v", err)
	}

	return tpl
}
