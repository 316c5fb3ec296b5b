package version_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/promptstash/promptstash-backend/internal/adapter/postgres/testhelper"
	"github.com/promptstash/promptstash-backend/internal/adapter/postgres/version"
	"github.com/promptstash/promptstash-backend/internal/domain"
)

func TestRepo_Create_GetByID(t *testing.T) {
	t.Parallel()

	pool := testhelper.SetupTestDB(t)
	repo := version.New(pool)
	ctx := context.Background()

	p := testhelper.SeedPrompt(t, pool, "v1")

	now := time.Now().UTC().Truncate(time.Microsecond)
	created, err := repo.Create(ctx, p.ID, "snapshot", now)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.PromptID != p.ID || got.Content != "snapshot" {
		t.Errorf("got %+v", got)
	}
	if !got.CreatedAt.Equal(now) {
		t.Errorf("created_at: %v, want %v", got.CreatedAt, now)
	}
}

func TestRepo_GetByID_NotFound(t *testing.T) {
	t.Parallel()

	pool := testhelper.SetupTestDB(t)
	repo := version.New(pool)

	_, err := repo.GetByID(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRepo_ListByPromptID_NewestFirst(t *testing.T) {
	t.Parallel()

	pool := testhelper.SetupTestDB(t)
	repo := version.New(pool)
	ctx := context.Background()

	p := testhelper.SeedPrompt(t, pool, "current")
	now := time.Now().UTC()
	testhelper.SeedVersion(t, pool, p.ID, "first", now.Add(-2*time.Hour))
	testhelper.SeedVersion(t, pool, p.ID, "second", now.Add(-time.Hour))
	testhelper.SeedVersion(t, pool, p.ID, "third", now)

	got, err := repo.ListByPromptID(ctx, p.ID)
	if err != nil {
		t.Fatalf("ListByPromptID: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("got %d versions, want 3", len(got))
	}
	want := []string{"third", "second", "first"}
	for i, v := range got {
		if v.Content != want[i] {
			t.Errorf("position %d: %q, want %q", i, v.Content, want[i])
		}
	}
}

func TestRepo_ListByPromptID_EmptyIsNotNil(t *testing.T) {
	t.Parallel()

	pool := testhelper.SetupTestDB(t)
	repo := version.New(pool)

	p := testhelper.SeedPrompt(t, pool, "no history")

	got, err := repo.ListByPromptID(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("ListByPromptID: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("got %v, want empty slice", got)
	}
}

func TestRepo_Latest(t *testing.T) {
	t.Parallel()

	pool := testhelper.SetupTestDB(t)
	repo := version.New(pool)
	ctx := context.Background()

	p := testhelper.SeedPrompt(t, pool, "current")

	// No history yet: nil, nil.
	latest, err := repo.Latest(ctx, p.ID)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if latest != nil {
		t.Fatalf("expected nil for empty history, got %+v", latest)
	}

	now := time.Now().UTC()
	testhelper.SeedVersion(t, pool, p.ID, "older", now.Add(-time.Hour))
	newest := testhelper.SeedVersion(t, pool, p.ID, "newest", now)

	latest, err = repo.Latest(ctx, p.ID)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if latest == nil || latest.ID != newest.ID {
		t.Errorf("latest: %+v, want %s", latest, newest.ID)
	}
}

func TestRepo_ExistsWithContent(t *testing.T) {
	t.Parallel()

	pool := testhelper.SetupTestDB(t)
	repo := version.New(pool)
	ctx := context.Background()

	p := testhelper.SeedPrompt(t, pool, "current")
	testhelper.SeedVersion(t, pool, p.ID, "known content", time.Now().UTC())

	exists, err := repo.ExistsWithContent(ctx, p.ID, "known content")
	if err != nil {
		t.Fatalf("ExistsWithContent: %v", err)
	}
	if !exists {
		t.Error("expected true for stored content")
	}

	exists, err = repo.ExistsWithContent(ctx, p.ID, "never stored")
	if err != nil {
		t.Fatalf("ExistsWithContent: %v", err)
	}
	if exists {
		t.Error("expected false for unknown content")
	}
}

func TestRepo_CountByPromptID(t *testing.T) {
	t.Parallel()

	pool := testhelper.SetupTestDB(t)
	repo := version.New(pool)
	ctx := context.Background()

	p := testhelper.SeedPrompt(t, pool, "current")
	now := time.Now().UTC()
	testhelper.SeedVersion(t, pool, p.ID, "a", now.Add(-time.Minute))
	testhelper.SeedVersion(t, pool, p.ID, "b", now)

	count, err := repo.CountByPromptID(ctx, p.ID)
	if err != nil {
		t.Fatalf("CountByPromptID: %v", err)
	}
	if count != 2 {
		t.Errorf("count: %d, want 2", count)
	}
}

func TestRepo_DeleteByPromptID(t *testing.T) {
	t.Parallel()

	pool := testhelper.SetupTestDB(t)
	repo := version.New(pool)
	ctx := context.Background()

	p := testhelper.SeedPrompt(t, pool, "current")
	now := time.Now().UTC()
	testhelper.SeedVersion(t, pool, p.ID, "a", now.Add(-time.Minute))
	testhelper.SeedVersion(t, pool, p.ID, "b", now)

	removed, err := repo.DeleteByPromptID(ctx, p.ID)
	if err != nil {
		t.Fatalf("DeleteByPromptID: %v", err)
	}
	if removed != 2 {
		t.Errorf("removed: %d, want 2", removed)
	}

	// Deleting an empty history is not an error.
	removed, err = repo.DeleteByPromptID(ctx, p.ID)
	if err != nil {
		t.Fatalf("DeleteByPromptID (empty): %v", err)
	}
	if removed != 0 {
		t.Errorf("removed: %d, want 0", removed)
	}
}

func TestRepo_CascadeOnPromptDelete(t *testing.T) {
	t.Parallel()

	pool := testhelper.SetupTestDB(t)
	repo := version.New(pool)
	ctx := context.Background()

	p := testhelper.SeedPrompt(t, pool, "current")
	v := testhelper.SeedVersion(t, pool, p.ID, "snapshot", time.Now().UTC())

	// The FK carries ON DELETE CASCADE as a safety net under the service's
	// explicit cascade.
	if _, err := pool.Exec(ctx, `DELETE FROM prompts WHERE id = $1`, p.ID); err != nil {
		t.Fatalf("delete prompt: %v", err)
	}

	if _, err := repo.GetByID(ctx, v.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("version should be gone with its prompt, got %v", err)
	}
}
