package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/aromabase/aromabase-backend/internal/domain"
)

var _ perfumeRepo = &perfumeRepoMock{}

type perfumeRepoMock struct {
	GetByIDFunc               func(ctx context.Context, id uuid.UUID) (domain.Perfume, error)
	SearchFunc                func(ctx context.Context, f domain.PerfumeFilter) ([]domain.Perfume, int, error)
	UpsertRatingFunc          func(ctx context.Context, perfumeID, userID uuid.UUID, s domain.CategoryScores) error
	CategoryAveragesFunc      func(ctx context.Context, perfumeID uuid.UUID) (float64, float64, float64, float64, float64, int, error)
	UpdateRatingAggregateFunc func(ctx context.Context, s domain.RatingSummary) error

	calls struct {
		GetByID      []struct{ ID uuid.UUID }
		Search       []struct{ Filter domain.PerfumeFilter }
		UpsertRating []struct {
			PerfumeID uuid.UUID
			UserID    uuid.UUID
			Scores    domain.CategoryScores
		}
		CategoryAverages      []struct{ PerfumeID uuid.UUID }
		UpdateRatingAggregate []struct{ Summary domain.RatingSummary }
	}
	lock sync.RWMutex
}

func (mock *perfumeRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Perfume, error) {
	if mock.GetByIDFunc == nil {
		panic("perfumeRepoMock.GetByIDFunc: method is nil but perfumeRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *perfumeRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

func (mock *perfumeRepoMock) Search(ctx context.Context, f domain.PerfumeFilter) ([]domain.Perfume, int, error) {
	if mock.SearchFunc == nil {
		panic("perfumeRepoMock.SearchFunc: method is nil but perfumeRepo.Search was just called")
	}
	mock.lock.Lock()
	mock.calls.Search = append(mock.calls.Search, struct{ Filter domain.PerfumeFilter }{Filter: f})
	mock.lock.Unlock()
	return mock.SearchFunc(ctx, f)
}

func (mock *perfumeRepoMock) SearchCalls() []struct{ Filter domain.PerfumeFilter } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Search
}

func (mock *perfumeRepoMock) UpsertRating(ctx context.Context, perfumeID, userID uuid.UUID, s domain.CategoryScores) error {
	if mock.UpsertRatingFunc == nil {
		panic("perfumeRepoMock.UpsertRatingFunc: method is nil but perfumeRepo.UpsertRating was just called")
	}
	mock.lock.Lock()
	mock.calls.UpsertRating = append(mock.calls.UpsertRating, struct {
		PerfumeID uuid.UUID
		UserID    uuid.UUID
		Scores    domain.CategoryScores
	}{PerfumeID: perfumeID, UserID: userID, Scores: s})
	mock.lock.Unlock()
	return mock.UpsertRatingFunc(ctx, perfumeID, userID, s)
}

func (mock *perfumeRepoMock) UpsertRatingCalls() []struct {
	PerfumeID uuid.UUID
	UserID    uuid.UUID
	Scores    domain.CategoryScores
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpsertRating
}

func (mock *perfumeRepoMock) CategoryAverages(ctx context.Context, perfumeID uuid.UUID) (float64, float64, float64, float64, float64, int, error) {
	if mock.CategoryAveragesFunc == nil {
		panic("perfumeRepoMock.CategoryAveragesFunc: method is nil but perfumeRepo.CategoryAverages was just called")
	}
	mock.lock.Lock()
	mock.calls.CategoryAverages = append(mock.calls.CategoryAverages, struct{ PerfumeID uuid.UUID }{PerfumeID: perfumeID})
	mock.lock.Unlock()
	return mock.CategoryAveragesFunc(ctx, perfumeID)
}

func (mock *perfumeRepoMock) CategoryAveragesCalls() []struct{ PerfumeID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CategoryAverages
}

func (mock *perfumeRepoMock) UpdateRatingAggregate(ctx context.Context, s domain.RatingSummary) error {
	if mock.UpdateRatingAggregateFunc == nil {
		panic("perfumeRepoMock.UpdateRatingAggregateFunc: method is nil but perfumeRepo.UpdateRatingAggregate was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateRatingAggregate = append(mock.calls.UpdateRatingAggregate, struct{ Summary domain.RatingSummary }{Summary: s})
	mock.lock.Unlock()
	return mock.UpdateRatingAggregateFunc(ctx, s)
}

func (mock *perfumeRepoMock) UpdateRatingAggregateCalls() []struct{ Summary domain.RatingSummary } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdateRatingAggregate
}

var _ registryResolver = &registryResolverMock{}

type registryResolverMock struct {
	GetBySlugFunc func(ctx context.Context, kind domain.EntityKind, slug string) (domain.CanonicalEntity, error)
	GetByIDFunc   func(ctx context.Context, id uuid.UUID) (domain.CanonicalEntity, error)

	calls struct {
		GetBySlug []struct {
			Kind domain.EntityKind
			Slug string
		}
		GetByID []struct{ ID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *registryResolverMock) GetBySlug(ctx context.Context, kind domain.EntityKind, slug string) (domain.CanonicalEntity, error) {
	if mock.GetBySlugFunc == nil {
		panic("registryResolverMock.GetBySlugFunc: method is nil but registryResolver.GetBySlug was just called")
	}
	mock.lock.Lock()
	mock.calls.GetBySlug = append(mock.calls.GetBySlug, struct {
		Kind domain.EntityKind
		Slug string
	}{Kind: kind, Slug: slug})
	mock.lock.Unlock()
	return mock.GetBySlugFunc(ctx, kind, slug)
}

func (mock *registryResolverMock) GetBySlugCalls() []struct {
	Kind domain.EntityKind
	Slug string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetBySlug
}

func (mock *registryResolverMock) GetByID(ctx context.Context, id uuid.UUID) (domain.CanonicalEntity, error) {
	if mock.GetByIDFunc == nil {
		panic("registryResolverMock.GetByIDFunc: method is nil but registryResolver.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *registryResolverMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	lock sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lock.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.lock.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.RunInTx
}
