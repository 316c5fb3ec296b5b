package impex

import (
	"context"
	"sync"
	"time"

	"github.com/promptstash/promptstash-backend/internal/domain"
)

type promptRepoMock struct {
	CreateFunc func(ctx context.Context, p *domain.Prompt, now time.Time) (*domain.Prompt, error)
	ListFunc   func(ctx context.Context, filter domain.PromptFilter) ([]*domain.Prompt, error)
	CountFunc  func(ctx context.Context) (int, error)

	mu    sync.Mutex
	calls struct {
		Create []domain.Prompt
	}
}

func (m *promptRepoMock) Create(ctx context.Context, p *domain.Prompt, now time.Time) (*domain.Prompt, error) {
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, *p)
	m.mu.Unlock()
	return m.CreateFunc(ctx, p, now)
}

func (m *promptRepoMock) List(ctx context.Context, filter domain.PromptFilter) ([]*domain.Prompt, error) {
	return m.ListFunc(ctx, filter)
}

func (m *promptRepoMock) Count(ctx context.Context) (int, error) {
	return m.CountFunc(ctx)
}

func (m *promptRepoMock) CreateCalls() []domain.Prompt {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

type templateRepoMock struct {
	CreateFunc       func(ctx context.Context, t *domain.Template, now time.Time) (*domain.Template, error)
	ListFunc         func(ctx context.Context) ([]*domain.Template, error)
	SeedDefaultsFunc func(ctx context.Context, templates []*domain.Template, now time.Time) (int, error)

	mu    sync.Mutex
	calls struct {
		Create       []domain.Template
		SeedDefaults [][]*domain.Template
	}
}

func (m *templateRepoMock) Create(ctx context.Context, t *domain.Template, now time.Time) (*domain.Template, error) {
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, *t)
	m.mu.Unlock()
	return m.CreateFunc(ctx, t, now)
}

func (m *templateRepoMock) List(ctx context.Context) ([]*domain.Template, error) {
	return m.ListFunc(ctx)
}

func (m *templateRepoMock) SeedDefaults(ctx context.Context, templates []*domain.Template, now time.Time) (int, error) {
	m.mu.Lock()
	m.calls.SeedDefaults = append(m.calls.SeedDefaults, templates)
	m.mu.Unlock()
	return m.SeedDefaultsFunc(ctx, templates, now)
}

func (m *templateRepoMock) CreateCalls() []domain.Template {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

func (m *templateRepoMock) SeedDefaultsCalls() [][]*domain.Template {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.SeedDefaults
}

// txManagerMock runs the callback directly and counts transactions, so chunk
// boundaries can be asserted.
type txManagerMock struct {
	mu   sync.Mutex
	runs int
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	m.runs++
	m.mu.Unlock()
	return fn(ctx)
}

func (m *txManagerMock) Runs() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.runs
}
