// Package template implements the Template repository using PostgreSQL.
package template

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/promptstash/promptstash-backend/internal/adapter/postgres"
	"github.com/promptstash/promptstash-backend/internal/domain"
)

// Repo provides template persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new template repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const templateColumns = "id, label, title, category, content, tags, is_custom, created_at, updated_at"

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const getTemplateByIDSQL = `
SELECT ` + templateColumns + `
FROM templates
WHERE id = $1`

// GetByID returns a template by primary key.
// Returns domain.ErrNotFound if the template does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Template, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getTemplateByIDSQL, id)
	t, err := scanTemplate(row)
	if err != nil {
		return nil, postgres.MapError(err, "template", id)
	}

	return t, nil
}

const listTemplatesSQL = `
SELECT ` + templateColumns + `
FROM templates
ORDER BY label`

// List returns all templates ordered by label.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) List(ctx context.Context) ([]*domain.Template, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listTemplatesSQL)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	templates := []*domain.Template{}
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("list templates: %w", err)
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	return templates, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const createTemplateSQL = `
INSERT INTO templates (label, title, category, content, tags, is_custom, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
RETURNING ` + templateColumns

// Create inserts a new template and returns the persisted row.
// Returns domain.ErrAlreadyExists on a duplicate label.
func (r *Repo) Create(ctx context.Context, t *domain.Template, now time.Time) (*domain.Template, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createTemplateSQL,
		t.Label, t.Title, t.Category, t.Content, tagsOrEmpty(t.Tags), t.IsCustom, now)

	created, err := scanTemplate(row)
	if err != nil {
		return nil, postgres.MapError(err, "template", t.ID)
	}

	return created, nil
}

const updateTemplateSQL = `
UPDATE templates
SET label = $2, title = $3, category = $4, content = $5, tags = $6, updated_at = $7
WHERE id = $1
RETURNING ` + templateColumns

// Update overwrites all mutable fields and bumps updated_at. The is_custom
// flag is never changed here; immutability of seeded templates is enforced
// by the service layer before this call.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.TemplateUpdateParams, now time.Time) (*domain.Template, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, updateTemplateSQL,
		id, params.Label, params.Title, params.Category, params.Content, tagsOrEmpty(params.Tags), now)

	updated, err := scanTemplate(row)
	if err != nil {
		return nil, postgres.MapError(err, "template", id)
	}

	return updated, nil
}

const deleteTemplateSQL = `DELETE FROM templates WHERE id = $1`

// Delete removes a template. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteTemplateSQL, id)
	if err != nil {
		return postgres.MapError(err, "template", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("template %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

const upsertSeededTemplateSQL = `
INSERT INTO templates (label, title, category, content, tags, is_custom, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, false, $6, $6)
ON CONFLICT (label) DO NOTHING`

// SeedDefaults inserts seeded (non-custom) templates, skipping labels that
// already exist so the seeder stays idempotent. Returns the number inserted.
func (r *Repo) SeedDefaults(ctx context.Context, templates []*domain.Template, now time.Time) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	for _, t := range templates {
		batch.Queue(upsertSeededTemplateSQL,
			t.Label, t.Title, t.Category, t.Content, tagsOrEmpty(t.Tags), now)
	}

	results := querier.SendBatch(ctx, batch)
	defer results.Close()

	inserted := 0
	for range templates {
		tag, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("seed templates: %w", err)
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanTemplate(row pgx.Row) (*domain.Template, error) {
	var t domain.Template
	err := row.Scan(&t.ID, &t.Label, &t.Title, &t.Category, &t.Content, &t.Tags,
		&t.IsCustom, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}
	return &t, nil
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
