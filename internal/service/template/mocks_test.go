package template

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/promptstash/promptstash-backend/internal/domain"
)

// templateRepoMock is a hand-written mock of templateRepo. Each XxxFunc field
// supplies the behavior; calls are recorded for assertions.
type templateRepoMock struct {
	CreateFunc  func(ctx context.Context, t *domain.Template, now time.Time) (*domain.Template, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Template, error)
	UpdateFunc  func(ctx context.Context, id uuid.UUID, params domain.TemplateUpdateParams, now time.Time) (*domain.Template, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error
	ListFunc    func(ctx context.Context) ([]*domain.Template, error)

	mu    sync.Mutex
	calls struct {
		Create []domain.Template
		Update []domain.TemplateUpdateParams
		Delete []uuid.UUID
	}
}

func (m *templateRepoMock) Create(ctx context.Context, t *domain.Template, now time.Time) (*domain.Template, error) {
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, *t)
	m.mu.Unlock()
	return m.CreateFunc(ctx, t, now)
}

func (m *templateRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Template, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *templateRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.TemplateUpdateParams, now time.Time) (*domain.Template, error) {
	m.mu.Lock()
	m.calls.Update = append(m.calls.Update, params)
	m.mu.Unlock()
	return m.UpdateFunc(ctx, id, params, now)
}

func (m *templateRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	m.calls.Delete = append(m.calls.Delete, id)
	m.mu.Unlock()
	return m.DeleteFunc(ctx, id)
}

func (m *templateRepoMock) List(ctx context.Context) ([]*domain.Template, error) {
	return m.ListFunc(ctx)
}

func (m *templateRepoMock) CreateCalls() []domain.Template {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

func (m *templateRepoMock) UpdateCalls() []domain.TemplateUpdateParams {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Update
}

func (m *templateRepoMock) DeleteCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Delete
}

// txManagerMock runs the callback directly, without a real transaction.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.RunInTxFunc(ctx, fn)
}
