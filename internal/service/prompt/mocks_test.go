package prompt

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/promptstash/promptstash-backend/internal/domain"
)

var (
	_ promptRepo  = &promptRepoMock{}
	_ versionRepo = &versionRepoMock{}
	_ txManager   = &txManagerMock{}
)

type promptRepoMock struct {
	CreateFunc        func(ctx context.Context, p *domain.Prompt, now time.Time) (*domain.Prompt, error)
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Prompt, error)
	UpdateFunc        func(ctx context.Context, id uuid.UUID, params domain.PromptUpdateParams, now time.Time) (*domain.Prompt, error)
	UpdateContentFunc func(ctx context.Context, id uuid.UUID, content string, now time.Time) (*domain.Prompt, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
	ListFunc          func(ctx context.Context, filter domain.PromptFilter) ([]*domain.Prompt, error)
	CountFunc         func(ctx context.Context) (int, error)

	mu    sync.Mutex
	calls struct {
		Create        []domain.Prompt
		GetByID       []uuid.UUID
		Update        []domain.PromptUpdateParams
		UpdateContent []string
		Delete        []uuid.UUID
		List          []domain.PromptFilter
		Count         int
	}
}

func (m *promptRepoMock) Create(ctx context.Context, p *domain.Prompt, now time.Time) (*domain.Prompt, error) {
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, *p)
	m.mu.Unlock()
	return m.CreateFunc(ctx, p, now)
}

func (m *promptRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Prompt, error) {
	m.mu.Lock()
	m.calls.GetByID = append(m.calls.GetByID, id)
	m.mu.Unlock()
	return m.GetByIDFunc(ctx, id)
}

func (m *promptRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.PromptUpdateParams, now time.Time) (*domain.Prompt, error) {
	m.mu.Lock()
	m.calls.Update = append(m.calls.Update, params)
	m.mu.Unlock()
	return m.UpdateFunc(ctx, id, params, now)
}

func (m *promptRepoMock) UpdateContent(ctx context.Context, id uuid.UUID, content string, now time.Time) (*domain.Prompt, error) {
	m.mu.Lock()
	m.calls.UpdateContent = append(m.calls.UpdateContent, content)
	m.mu.Unlock()
	return m.UpdateContentFunc(ctx, id, content, now)
}

func (m *promptRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	m.calls.Delete = append(m.calls.Delete, id)
	m.mu.Unlock()
	return m.DeleteFunc(ctx, id)
}

func (m *promptRepoMock) List(ctx context.Context, filter domain.PromptFilter) ([]*domain.Prompt, error) {
	m.mu.Lock()
	m.calls.List = append(m.calls.List, filter)
	m.mu.Unlock()
	return m.ListFunc(ctx, filter)
}

func (m *promptRepoMock) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	m.calls.Count++
	m.mu.Unlock()
	return m.CountFunc(ctx)
}

func (m *promptRepoMock) CreateCalls() []domain.Prompt {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

func (m *promptRepoMock) UpdateCalls() []domain.PromptUpdateParams {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Update
}

func (m *promptRepoMock) UpdateContentCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.UpdateContent
}

func (m *promptRepoMock) DeleteCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Delete
}

type versionRepoMock struct {
	CreateFunc            func(ctx context.Context, promptID uuid.UUID, content string, now time.Time) (*domain.Version, error)
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.Version, error)
	LatestFunc            func(ctx context.Context, promptID uuid.UUID) (*domain.Version, error)
	ListByPromptIDFunc    func(ctx context.Context, promptID uuid.UUID) ([]*domain.Version, error)
	ExistsWithContentFunc func(ctx context.Context, promptID uuid.UUID, content string) (bool, error)
	DeleteByPromptIDFunc  func(ctx context.Context, promptID uuid.UUID) (int, error)

	mu    sync.Mutex
	calls struct {
		Create            []string
		Latest            []uuid.UUID
		ExistsWithContent []string
		DeleteByPromptID  []uuid.UUID
	}
}

func (m *versionRepoMock) Create(ctx context.Context, promptID uuid.UUID, content string, now time.Time) (*domain.Version, error) {
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, content)
	m.mu.Unlock()
	return m.CreateFunc(ctx, promptID, content, now)
}

func (m *versionRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Version, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *versionRepoMock) Latest(ctx context.Context, promptID uuid.UUID) (*domain.Version, error) {
	m.mu.Lock()
	m.calls.Latest = append(m.calls.Latest, promptID)
	m.mu.Unlock()
	return m.LatestFunc(ctx, promptID)
}

func (m *versionRepoMock) ListByPromptID(ctx context.Context, promptID uuid.UUID) ([]*domain.Version, error) {
	return m.ListByPromptIDFunc(ctx, promptID)
}

func (m *versionRepoMock) ExistsWithContent(ctx context.Context, promptID uuid.UUID, content string) (bool, error) {
	m.mu.Lock()
	m.calls.ExistsWithContent = append(m.calls.ExistsWithContent, content)
	m.mu.Unlock()
	return m.ExistsWithContentFunc(ctx, promptID, content)
}

func (m *versionRepoMock) DeleteByPromptID(ctx context.Context, promptID uuid.UUID) (int, error) {
	m.mu.Lock()
	m.calls.DeleteByPromptID = append(m.calls.DeleteByPromptID, promptID)
	m.mu.Unlock()
	return m.DeleteByPromptIDFunc(ctx, promptID)
}

func (m *versionRepoMock) CreateCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

func (m *versionRepoMock) LatestCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Latest
}

func (m *versionRepoMock) ExistsWithContentCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.ExistsWithContent
}

func (m *versionRepoMock) DeleteByPromptIDCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.DeleteByPromptID
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(context.Context) error) error {
	return m.RunInTxFunc(ctx, fn)
}
