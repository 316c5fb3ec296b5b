// Package prompt implements the Prompt repository using PostgreSQL.
// It provides CRUD operations on the prompts table plus the distinct
// category/tag aggregation queries that span prompts and templates.
package prompt

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/promptstash/promptstash-backend/internal/adapter/postgres"
	"github.com/promptstash/promptstash-backend/internal/domain"
)

// Repo provides prompt persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new prompt repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const promptColumns = "id, title, category, content, tags, created_at, updated_at"

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const getPromptByIDSQL = `
SELECT ` + promptColumns + `
FROM prompts
WHERE id = $1`

// GetByID returns a prompt by primary key.
// Returns domain.ErrNotFound if the prompt does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Prompt, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getPromptByIDSQL, id)
	p, err := scanPrompt(row)
	if err != nil {
		return nil, postgres.MapError(err, "prompt", id)
	}

	return p, nil
}

// List returns prompts ordered by updated_at DESC (most recently touched first).
// Filters are combined with AND; an empty filter returns everything.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.PromptFilter) ([]*domain.Prompt, error) {
	query := qb.Select("id", "title", "category", "content", "tags", "created_at", "updated_at").
		From("prompts").
		OrderBy("updated_at DESC")

	if filter.Category != "" {
		query = query.Where(squirrel.Eq{"category": filter.Category})
	}
	if filter.Tag != "" {
		query = query.Where("? = ANY(tags)", filter.Tag)
	}
	if filter.Search != "" {
		query = query.Where(squirrel.ILike{"title": "%" + filter.Search + "%"})
	}
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list prompts query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list prompts: %w", err)
	}
	defer rows.Close()

	prompts, err := scanPrompts(rows)
	if err != nil {
		return nil, fmt.Errorf("list prompts: %w", err)
	}

	return prompts, nil
}

const countPromptsSQL = `SELECT count(*) FROM prompts`

// Count returns the total number of prompts.
func (r *Repo) Count(ctx context.Context) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countPromptsSQL).Scan(&count); err != nil {
		return 0, fmt.Errorf("count prompts: %w", err)
	}

	return count, nil
}

const distinctCategoriesSQL = `
SELECT category FROM prompts
UNION
SELECT category FROM templates
ORDER BY 1`

// DistinctCategories returns the set-union of categories across prompts and
// templates, sorted ascending (case-sensitive lexicographic order).
func (r *Repo) DistinctCategories(ctx context.Context) ([]string, error) {
	return r.queryStrings(ctx, distinctCategoriesSQL, "distinct categories")
}

const distinctTagsSQL = `
SELECT DISTINCT tag FROM (
    SELECT unnest(tags) AS tag FROM prompts
    UNION ALL
    SELECT unnest(tags) AS tag FROM templates
) t
ORDER BY tag`

// DistinctTags returns the set-union of tags across prompts and templates,
// sorted ascending.
func (r *Repo) DistinctTags(ctx context.Context) ([]string, error) {
	return r.queryStrings(ctx, distinctTagsSQL, "distinct tags")
}

func (r *Repo) queryStrings(ctx context.Context, sql, op string) ([]string, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	result := []string{}
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const createPromptSQL = `
INSERT INTO prompts (title, category, content, tags, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
RETURNING ` + promptColumns

// Create inserts a new prompt with created_at = updated_at = now and returns
// the persisted row. No version is recorded: there is no prior content yet.
func (r *Repo) Create(ctx context.Context, p *domain.Prompt, now time.Time) (*domain.Prompt, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createPromptSQL,
		p.Title, p.Category, p.Content, tagsOrEmpty(p.Tags), now)

	created, err := scanPrompt(row)
	if err != nil {
		return nil, postgres.MapError(err, "prompt", p.ID)
	}

	return created, nil
}

const updatePromptSQL = `
UPDATE prompts
SET title = $2, category = $3, content = $4, tags = $5, updated_at = $6
WHERE id = $1
RETURNING ` + promptColumns

// Update overwrites all mutable fields and bumps updated_at.
// Returns domain.ErrNotFound if the prompt does not exist.
// created_at is never touched.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.PromptUpdateParams, now time.Time) (*domain.Prompt, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, updatePromptSQL,
		id, params.Title, params.Category, params.Content, tagsOrEmpty(params.Tags), now)

	updated, err := scanPrompt(row)
	if err != nil {
		return nil, postgres.MapError(err, "prompt", id)
	}

	return updated, nil
}

const updatePromptContentSQL = `
UPDATE prompts
SET content = $2, updated_at = $3
WHERE id = $1
RETURNING ` + promptColumns

// UpdateContent patches only the content and updated_at. Used by restore,
// which must leave title, category, and tags untouched.
func (r *Repo) UpdateContent(ctx context.Context, id uuid.UUID, content string, now time.Time) (*domain.Prompt, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, updatePromptContentSQL, id, content, now)
	updated, err := scanPrompt(row)
	if err != nil {
		return nil, postgres.MapError(err, "prompt", id)
	}

	return updated, nil
}

const deletePromptSQL = `DELETE FROM prompts WHERE id = $1`

// Delete removes a prompt. Returns domain.ErrNotFound if it does not exist.
// Version cleanup is the caller's responsibility (inside one transaction),
// with the FK cascade as a safety net.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deletePromptSQL, id)
	if err != nil {
		return postgres.MapError(err, "prompt", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("prompt %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanPrompt(row pgx.Row) (*domain.Prompt, error) {
	var p domain.Prompt
	err := row.Scan(&p.ID, &p.Title, &p.Category, &p.Content, &p.Tags, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return &p, nil
}

func scanPrompts(rows pgx.Rows) ([]*domain.Prompt, error) {
	prompts := []*domain.Prompt{}
	for rows.Next() {
		var p domain.Prompt
		if err := rows.Scan(&p.ID, &p.Title, &p.Category, &p.Content, &p.Tags, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		if p.Tags == nil {
			p.Tags = []string{}
		}
		prompts = append(prompts, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return prompts, nil
}

// tagsOrEmpty keeps NULL out of the tags column.
func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
