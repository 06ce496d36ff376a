package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/aromabase/aromabase-backend/internal/domain"
	"github.com/aromabase/aromabase-backend/internal/service/catalog"
	"github.com/aromabase/aromabase-backend/internal/service/registry"
)

var _ registryService = (*registryServiceMock)(nil)

type registryServiceMock struct {
	CreateFunc       func(ctx context.Context, input registry.CreateInput) (domain.CanonicalEntity, error)
	GetBySlugFunc    func(ctx context.Context, kind domain.EntityKind, slug string) (domain.CanonicalEntity, error)
	GetByInitialFunc func(ctx context.Context, kind domain.EntityKind, initial string) ([]domain.CanonicalEntity, error)
	SearchFunc       func(ctx context.Context, input registry.SearchInput) (*domain.Page[domain.CanonicalEntity], error)
	RenameFunc       func(ctx context.Context, input registry.RenameInput) (domain.CanonicalEntity, int64, error)
	DeleteFunc       func(ctx context.Context, id uuid.UUID) (int64, error)

	calls struct {
		Create       []registry.CreateInput
		GetBySlug    []string
		GetByInitial []string
		Search       []registry.SearchInput
		Rename       []registry.RenameInput
		Delete       []uuid.UUID
	}
	lock sync.RWMutex
}

func (m *registryServiceMock) Create(ctx context.Context, input registry.CreateInput) (domain.CanonicalEntity, error) {
	if m.CreateFunc == nil {
		panic("registryServiceMock.CreateFunc is nil")
	}
	m.lock.Lock()
	m.calls.Create = append(m.calls.Create, input)
	m.lock.Unlock()
	return m.CreateFunc(ctx, input)
}

func (m *registryServiceMock) GetBySlug(ctx context.Context, kind domain.EntityKind, slug string) (domain.CanonicalEntity, error) {
	if m.GetBySlugFunc == nil {
		panic("registryServiceMock.GetBySlugFunc is nil")
	}
	m.lock.Lock()
	m.calls.GetBySlug = append(m.calls.GetBySlug, slug)
	m.lock.Unlock()
	return m.GetBySlugFunc(ctx, kind, slug)
}

func (m *registryServiceMock) GetByInitial(ctx context.Context, kind domain.EntityKind, initial string) ([]domain.CanonicalEntity, error) {
	if m.GetByInitialFunc == nil {
		panic("registryServiceMock.GetByInitialFunc is nil")
	}
	m.lock.Lock()
	m.calls.GetByInitial = append(m.calls.GetByInitial, initial)
	m.lock.Unlock()
	return m.GetByInitialFunc(ctx, kind, initial)
}

func (m *registryServiceMock) Search(ctx context.Context, input registry.SearchInput) (*domain.Page[domain.CanonicalEntity], error) {
	if m.SearchFunc == nil {
		panic("registryServiceMock.SearchFunc is nil")
	}
	m.lock.Lock()
	m.calls.Search = append(m.calls.Search, input)
	m.lock.Unlock()
	return m.SearchFunc(ctx, input)
}

func (m *registryServiceMock) Rename(ctx context.Context, input registry.RenameInput) (domain.CanonicalEntity, int64, error) {
	if m.RenameFunc == nil {
		panic("registryServiceMock.RenameFunc is nil")
	}
	m.lock.Lock()
	m.calls.Rename = append(m.calls.Rename, input)
	m.lock.Unlock()
	return m.RenameFunc(ctx, input)
}

func (m *registryServiceMock) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	if m.DeleteFunc == nil {
		panic("registryServiceMock.DeleteFunc is nil")
	}
	m.lock.Lock()
	m.calls.Delete = append(m.calls.Delete, id)
	m.lock.Unlock()
	return m.DeleteFunc(ctx, id)
}

func (m *registryServiceMock) SearchCalls() []registry.SearchInput {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.Search
}

func (m *registryServiceMock) RenameCalls() []registry.RenameInput {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.Rename
}

var _ catalogService = (*catalogServiceMock)(nil)

type catalogServiceMock struct {
	SearchFunc       func(ctx context.Context, input catalog.SearchInput) (*domain.Page[domain.Perfume], error)
	GetByIDFunc      func(ctx context.Context, input catalog.GetByIDInput) (domain.Perfume, error)
	SubmitRatingFunc func(ctx context.Context, input catalog.SubmitRatingInput) (domain.RatingSummary, error)

	calls struct {
		Search       []catalog.SearchInput
		GetByID      []catalog.GetByIDInput
		SubmitRating []catalog.SubmitRatingInput
	}
	lock sync.RWMutex
}

func (m *catalogServiceMock) Search(ctx context.Context, input catalog.SearchInput) (*domain.Page[domain.Perfume], error) {
	if m.SearchFunc == nil {
		panic("catalogServiceMock.SearchFunc is nil")
	}
	m.lock.Lock()
	m.calls.Search = append(m.calls.Search, input)
	m.lock.Unlock()
	return m.SearchFunc(ctx, input)
}

func (m *catalogServiceMock) GetByID(ctx context.Context, input catalog.GetByIDInput) (domain.Perfume, error) {
	if m.GetByIDFunc == nil {
		panic("catalogServiceMock.GetByIDFunc is nil")
	}
	m.lock.Lock()
	m.calls.GetByID = append(m.calls.GetByID, input)
	m.lock.Unlock()
	return m.GetByIDFunc(ctx, input)
}

func (m *catalogServiceMock) SubmitRating(ctx context.Context, input catalog.SubmitRatingInput) (domain.RatingSummary, error) {
	if m.SubmitRatingFunc == nil {
		panic("catalogServiceMock.SubmitRatingFunc is nil")
	}
	m.lock.Lock()
	m.calls.SubmitRating = append(m.calls.SubmitRating, input)
	m.lock.Unlock()
	return m.SubmitRatingFunc(ctx, input)
}

func (m *catalogServiceMock) SearchCalls() []catalog.SearchInput {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.Search
}

func (m *catalogServiceMock) SubmitRatingCalls() []catalog.SubmitRatingInput {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.SubmitRating
}

var _ pinger = (*pingerMock)(nil)

type pingerMock struct {
	PingFunc func(ctx context.Context) error
}

func (m *pingerMock) Ping(ctx context.Context) error {
	if m.PingFunc == nil {
		panic("pingerMock.PingFunc is nil")
	}
	return m.PingFunc(ctx)
}
