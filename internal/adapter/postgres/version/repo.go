// Package version implements the Version repository using PostgreSQL.
// Versions are append-only snapshots of prompt content; rows are never
// updated, only inserted and bulk-deleted together with their prompt.
package version

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/promptstash/promptstash-backend/internal/adapter/postgres"
	"github.com/promptstash/promptstash-backend/internal/domain"
)

// Repo provides version persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new version repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const versionColumns = "id, prompt_id, content, created_at"

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const getVersionByIDSQL = `
SELECT ` + versionColumns + `
FROM versions
WHERE id = $1`

// GetByID returns a version by primary key.
// Returns domain.ErrNotFound if the version does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Version, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getVersionByIDSQL, id)
	v, err := scanVersion(row)
	if err != nil {
		return nil, postgres.MapError(err, "version", id)
	}

	return v, nil
}

const listVersionsSQL = `
SELECT ` + versionColumns + `
FROM versions
WHERE prompt_id = $1
ORDER BY created_at DESC, id DESC`

// ListByPromptID returns all versions of a prompt, newest snapshot first.
// The (prompt_id, created_at) index backs this scan. Returns an empty slice
// (not nil) for a prompt with no history.
func (r *Repo) ListByPromptID(ctx context.Context, promptID uuid.UUID) ([]*domain.Version, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listVersionsSQL, promptID)
	if err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}
	defer rows.Close()

	versions := []*domain.Version{}
	for rows.Next() {
		var v domain.Version
		if err := rows.Scan(&v.ID, &v.PromptID, &v.Content, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("list versions: %w", err)
		}
		versions = append(versions, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}

	return versions, nil
}

const latestVersionSQL = `
SELECT ` + versionColumns + `
FROM versions
WHERE prompt_id = $1
ORDER BY created_at DESC, id DESC
LIMIT 1`

// Latest returns the most recent version of a prompt, or nil (no error)
// when the prompt has no history yet. This is the restore dedup fast path.
func (r *Repo) Latest(ctx context.Context, promptID uuid.UUID) (*domain.Version, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, latestVersionSQL, promptID)
	v, err := scanVersion(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, postgres.MapError(err, "version", promptID)
	}

	return v, nil
}

const existsWithContentSQL = `
SELECT EXISTS (
    SELECT 1 FROM versions WHERE prompt_id = $1 AND content = $2
)`

// ExistsWithContent reports whether any version of the prompt already holds
// exactly this content. This is the restore dedup slow path, taken only when
// the latest version does not match.
func (r *Repo) ExistsWithContent(ctx context.Context, promptID uuid.UUID, content string) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := querier.QueryRow(ctx, existsWithContentSQL, promptID, content).Scan(&exists); err != nil {
		return false, fmt.Errorf("check version content: %w", err)
	}

	return exists, nil
}

const countVersionsSQL = `SELECT count(*) FROM versions WHERE prompt_id = $1`

// CountByPromptID returns the number of versions recorded for a prompt.
func (r *Repo) CountByPromptID(ctx context.Context, promptID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countVersionsSQL, promptID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count versions: %w", err)
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const createVersionSQL = `
INSERT INTO versions (prompt_id, content, created_at)
VALUES ($1, $2, $3)
RETURNING ` + versionColumns

// Create inserts a new snapshot. Versions are immutable once written.
func (r *Repo) Create(ctx context.Context, promptID uuid.UUID, content string, now time.Time) (*domain.Version, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createVersionSQL, promptID, content, now)
	v, err := scanVersion(row)
	if err != nil {
		return nil, postgres.MapError(err, "version", promptID)
	}

	return v, nil
}

const deleteByPromptSQL = `DELETE FROM versions WHERE prompt_id = $1`

// DeleteByPromptID removes every version of a prompt. Idempotent: deleting
// history that does not exist is not an error. Returns the number of rows
// removed.
func (r *Repo) DeleteByPromptID(ctx context.Context, promptID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteByPromptSQL, promptID)
	if err != nil {
		return 0, fmt.Errorf("delete versions: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanVersion(row pgx.Row) (*domain.Version, error) {
	var v domain.Version
	if err := row.Scan(&v.ID, &v.PromptID, &v.Content, &v.CreatedAt); err != nil {
		return nil, err
	}
	return &v, nil
}
