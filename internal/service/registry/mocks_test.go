package registry

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/aromabase/aromabase-backend/internal/domain"
)

var _ entityRepo = &entityRepoMock{}

type entityRepoMock struct {
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (domain.CanonicalEntity, error)
	GetBySlugFunc     func(ctx context.Context, kind domain.EntityKind, slug string) (domain.CanonicalEntity, error)
	ListByInitialFunc func(ctx context.Context, kind domain.EntityKind, initial string) ([]domain.CanonicalEntity, error)
	SearchFunc        func(ctx context.Context, kind domain.EntityKind, variants []string, limit, offset int) ([]domain.CanonicalEntity, int, error)
	InsertFunc        func(ctx context.Context, e domain.CanonicalEntity) error
	PutIfAbsentFunc   func(ctx context.Context, e domain.CanonicalEntity) (domain.CanonicalEntity, bool, error)
	UpdateNamesFunc   func(ctx context.Context, id uuid.UUID, originalName, localizedName, slug *string) (domain.CanonicalEntity, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID       []struct{ ID uuid.UUID }
		GetBySlug     []struct {
			Kind domain.EntityKind
			Slug string
		}
		ListByInitial []struct {
			Kind    domain.EntityKind
			Initial string
		}
		Search []struct {
			Kind     domain.EntityKind
			Variants []string
			Limit    int
			Offset   int
		}
		Insert      []struct{ Entity domain.CanonicalEntity }
		PutIfAbsent []struct{ Entity domain.CanonicalEntity }
		UpdateNames []struct {
			ID            uuid.UUID
			OriginalName  *string
			LocalizedName *string
			Slug          *string
		}
		Delete []struct{ ID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *entityRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.CanonicalEntity, error) {
	if mock.GetByIDFunc == nil {
		panic("entityRepoMock.GetByIDFunc: method is nil but entityRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *entityRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

func (mock *entityRepoMock) GetBySlug(ctx context.Context, kind domain.EntityKind, slug string) (domain.CanonicalEntity, error) {
	if mock.GetBySlugFunc == nil {
		panic("entityRepoMock.GetBySlugFunc: method is nil but entityRepo.GetBySlug was just called")
	}
	mock.lock.Lock()
	mock.calls.GetBySlug = append(mock.calls.GetBySlug, struct {
		Kind domain.EntityKind
		Slug string
	}{Kind: kind, Slug: slug})
	mock.lock.Unlock()
	return mock.GetBySlugFunc(ctx, kind, slug)
}

func (mock *entityRepoMock) GetBySlugCalls() []struct {
	Kind domain.EntityKind
	Slug string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetBySlug
}

func (mock *entityRepoMock) ListByInitial(ctx context.Context, kind domain.EntityKind, initial string) ([]domain.CanonicalEntity, error) {
	if mock.ListByInitialFunc == nil {
		panic("entityRepoMock.ListByInitialFunc: method is nil but entityRepo.ListByInitial was just called")
	}
	mock.lock.Lock()
	mock.calls.ListByInitial = append(mock.calls.ListByInitial, struct {
		Kind    domain.EntityKind
		Initial string
	}{Kind: kind, Initial: initial})
	mock.lock.Unlock()
	return mock.ListByInitialFunc(ctx, kind, initial)
}

func (mock *entityRepoMock) ListByInitialCalls() []struct {
	Kind    domain.EntityKind
	Initial string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListByInitial
}

func (mock *entityRepoMock) Search(ctx context.Context, kind domain.EntityKind, variants []string, limit, offset int) ([]domain.CanonicalEntity, int, error) {
	if mock.SearchFunc == nil {
		panic("entityRepoMock.SearchFunc: method is nil but entityRepo.Search was just called")
	}
	mock.lock.Lock()
	mock.calls.Search = append(mock.calls.Search, struct {
		Kind     domain.EntityKind
		Variants []string
		Limit    int
		Offset   int
	}{Kind: kind, Variants: variants, Limit: limit, Offset: offset})
	mock.lock.Unlock()
	return mock.SearchFunc(ctx, kind, variants, limit, offset)
}

func (mock *entityRepoMock) SearchCalls() []struct {
	Kind     domain.EntityKind
	Variants []string
	Limit    int
	Offset   int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Search
}

func (mock *entityRepoMock) Insert(ctx context.Context, e domain.CanonicalEntity) error {
	if mock.InsertFunc == nil {
		panic("entityRepoMock.InsertFunc: method is nil but entityRepo.Insert was just called")
	}
	mock.lock.Lock()
	mock.calls.Insert = append(mock.calls.Insert, struct{ Entity domain.CanonicalEntity }{Entity: e})
	mock.lock.Unlock()
	return mock.InsertFunc(ctx, e)
}

func (mock *entityRepoMock) InsertCalls() []struct{ Entity domain.CanonicalEntity } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Insert
}

func (mock *entityRepoMock) PutIfAbsent(ctx context.Context, e domain.CanonicalEntity) (domain.CanonicalEntity, bool, error) {
	if mock.PutIfAbsentFunc == nil {
		panic("entityRepoMock.PutIfAbsentFunc: method is nil but entityRepo.PutIfAbsent was just called")
	}
	mock.lock.Lock()
	mock.calls.PutIfAbsent = append(mock.calls.PutIfAbsent, struct{ Entity domain.CanonicalEntity }{Entity: e})
	mock.lock.Unlock()
	return mock.PutIfAbsentFunc(ctx, e)
}

func (mock *entityRepoMock) PutIfAbsentCalls() []struct{ Entity domain.CanonicalEntity } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.PutIfAbsent
}

func (mock *entityRepoMock) UpdateNames(ctx context.Context, id uuid.UUID, originalName, localizedName, slug *string) (domain.CanonicalEntity, error) {
	if mock.UpdateNamesFunc == nil {
		panic("entityRepoMock.UpdateNamesFunc: method is nil but entityRepo.UpdateNames was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateNames = append(mock.calls.UpdateNames, struct {
		ID            uuid.UUID
		OriginalName  *string
		LocalizedName *string
		Slug          *string
	}{ID: id, OriginalName: originalName, LocalizedName: localizedName, Slug: slug})
	mock.lock.Unlock()
	return mock.UpdateNamesFunc(ctx, id, originalName, localizedName, slug)
}

func (mock *entityRepoMock) UpdateNamesCalls() []struct {
	ID            uuid.UUID
	OriginalName  *string
	LocalizedName *string
	Slug          *string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdateNames
}

func (mock *entityRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("entityRepoMock.DeleteFunc: method is nil but entityRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *entityRepoMock) DeleteCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}

var _ catalogRepo = &catalogRepoMock{}

type catalogRepoMock struct {
	DistinctBrandsFunc    func(ctx context.Context) ([]string, error)
	DistinctPerfumersFunc func(ctx context.Context) ([]domain.PerfumerName, error)
	DistinctNotesFunc     func(ctx context.Context) ([]string, error)
	CountByBrandFunc      func(ctx context.Context, name string) (int64, error)
	CountByPerfumerFunc   func(ctx context.Context, en string) (int64, error)
	CountByNoteFunc       func(ctx context.Context, name string) (int64, error)
	RenameBrandFunc       func(ctx context.Context, oldName, newName string) (int64, error)
	RenamePerfumerFunc    func(ctx context.Context, oldEN string, newEN, newRU *string) (int64, error)
	RenameNoteFunc        func(ctx context.Context, oldName, newName string) (int64, error)
	DeleteByBrandFunc     func(ctx context.Context, name string) (int64, error)
	DeleteByPerfumerFunc  func(ctx context.Context, en string) (int64, error)
	RemoveNoteFunc        func(ctx context.Context, name string) (int64, error)

	calls struct {
		DistinctBrands    []struct{}
		DistinctPerfumers []struct{}
		DistinctNotes     []struct{}
		CountByBrand      []struct{ Name string }
		CountByPerfumer   []struct{ EN string }
		CountByNote       []struct{ Name string }
		RenameBrand       []struct{ OldName, NewName string }
		RenamePerfumer    []struct {
			OldEN string
			NewEN *string
			NewRU *string
		}
		RenameNote       []struct{ OldName, NewName string }
		DeleteByBrand    []struct{ Name string }
		DeleteByPerfumer []struct{ EN string }
		RemoveNote       []struct{ Name string }
	}
	lock sync.RWMutex
}

func (mock *catalogRepoMock) DistinctBrands(ctx context.Context) ([]string, error) {
	if mock.DistinctBrandsFunc == nil {
		panic("catalogRepoMock.DistinctBrandsFunc: method is nil but catalogRepo.DistinctBrands was just called")
	}
	mock.lock.Lock()
	mock.calls.DistinctBrands = append(mock.calls.DistinctBrands, struct{}{})
	mock.lock.Unlock()
	return mock.DistinctBrandsFunc(ctx)
}

func (mock *catalogRepoMock) DistinctBrandsCalls() []struct{} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.DistinctBrands
}

func (mock *catalogRepoMock) DistinctPerfumers(ctx context.Context) ([]domain.PerfumerName, error) {
	if mock.DistinctPerfumersFunc == nil {
		panic("catalogRepoMock.DistinctPerfumersFunc: method is nil but catalogRepo.DistinctPerfumers was just called")
	}
	mock.lock.Lock()
	mock.calls.DistinctPerfumers = append(mock.calls.DistinctPerfumers, struct{}{})
	mock.lock.Unlock()
	return mock.DistinctPerfumersFunc(ctx)
}

func (mock *catalogRepoMock) DistinctPerfumersCalls() []struct{} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.DistinctPerfumers
}

func (mock *catalogRepoMock) DistinctNotes(ctx context.Context) ([]string, error) {
	if mock.DistinctNotesFunc == nil {
		panic("catalogRepoMock.DistinctNotesFunc: method is nil but catalogRepo.DistinctNotes was just called")
	}
	mock.lock.Lock()
	mock.calls.DistinctNotes = append(mock.calls.DistinctNotes, struct{}{})
	mock.lock.Unlock()
	return mock.DistinctNotesFunc(ctx)
}

func (mock *catalogRepoMock) DistinctNotesCalls() []struct{} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.DistinctNotes
}

func (mock *catalogRepoMock) CountByBrand(ctx context.Context, name string) (int64, error) {
	if mock.CountByBrandFunc == nil {
		panic("catalogRepoMock.CountByBrandFunc: method is nil but catalogRepo.CountByBrand was just called")
	}
	mock.lock.Lock()
	mock.calls.CountByBrand = append(mock.calls.CountByBrand, struct{ Name string }{Name: name})
	mock.lock.Unlock()
	return mock.CountByBrandFunc(ctx, name)
}

func (mock *catalogRepoMock) CountByBrandCalls() []struct{ Name string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CountByBrand
}

func (mock *catalogRepoMock) CountByPerfumer(ctx context.Context, en string) (int64, error) {
	if mock.CountByPerfumerFunc == nil {
		panic("catalogRepoMock.CountByPerfumerFunc: method is nil but catalogRepo.CountByPerfumer was just called")
	}
	mock.lock.Lock()
	mock.calls.CountByPerfumer = append(mock.calls.CountByPerfumer, struct{ EN string }{EN: en})
	mock.lock.Unlock()
	return mock.CountByPerfumerFunc(ctx, en)
}

func (mock *catalogRepoMock) CountByPerfumerCalls() []struct{ EN string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CountByPerfumer
}

func (mock *catalogRepoMock) CountByNote(ctx context.Context, name string) (int64, error) {
	if mock.CountByNoteFunc == nil {
		panic("catalogRepoMock.CountByNoteFunc: method is nil but catalogRepo.CountByNote was just called")
	}
	mock.lock.Lock()
	mock.calls.CountByNote = append(mock.calls.CountByNote, struct{ Name string }{Name: name})
	mock.lock.Unlock()
	return mock.CountByNoteFunc(ctx, name)
}

func (mock *catalogRepoMock) CountByNoteCalls() []struct{ Name string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CountByNote
}

func (mock *catalogRepoMock) RenameBrand(ctx context.Context, oldName, newName string) (int64, error) {
	if mock.RenameBrandFunc == nil {
		panic("catalogRepoMock.RenameBrandFunc: method is nil but catalogRepo.RenameBrand was just called")
	}
	mock.lock.Lock()
	mock.calls.RenameBrand = append(mock.calls.RenameBrand, struct{ OldName, NewName string }{OldName: oldName, NewName: newName})
	mock.lock.Unlock()
	return mock.RenameBrandFunc(ctx, oldName, newName)
}

func (mock *catalogRepoMock) RenameBrandCalls() []struct{ OldName, NewName string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.RenameBrand
}

func (mock *catalogRepoMock) RenamePerfumer(ctx context.Context, oldEN string, newEN, newRU *string) (int64, error) {
	if mock.RenamePerfumerFunc == nil {
		panic("catalogRepoMock.RenamePerfumerFunc: method is nil but catalogRepo.RenamePerfumer was just called")
	}
	mock.lock.Lock()
	mock.calls.RenamePerfumer = append(mock.calls.RenamePerfumer, struct {
		OldEN string
		NewEN *string
		NewRU *string
	}{OldEN: oldEN, NewEN: newEN, NewRU: newRU})
	mock.lock.Unlock()
	return mock.RenamePerfumerFunc(ctx, oldEN, newEN, newRU)
}

func (mock *catalogRepoMock) RenamePerfumerCalls() []struct {
	OldEN string
	NewEN *string
	NewRU *string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.RenamePerfumer
}

func (mock *catalogRepoMock) RenameNote(ctx context.Context, oldName, newName string) (int64, error) {
	if mock.RenameNoteFunc == nil {
		panic("catalogRepoMock.RenameNoteFunc: method is nil but catalogRepo.RenameNote was just called")
	}
	mock.lock.Lock()
	mock.calls.RenameNote = append(mock.calls.RenameNote, struct{ OldName, NewName string }{OldName: oldName, NewName: newName})
	mock.lock.Unlock()
	return mock.RenameNoteFunc(ctx, oldName, newName)
}

func (mock *catalogRepoMock) RenameNoteCalls() []struct{ OldName, NewName string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.RenameNote
}

func (mock *catalogRepoMock) DeleteByBrand(ctx context.Context, name string) (int64, error) {
	if mock.DeleteByBrandFunc == nil {
		panic("catalogRepoMock.DeleteByBrandFunc: method is nil but catalogRepo.DeleteByBrand was just called")
	}
	mock.lock.Lock()
	mock.calls.DeleteByBrand = append(mock.calls.DeleteByBrand, struct{ Name string }{Name: name})
	mock.lock.Unlock()
	return mock.DeleteByBrandFunc(ctx, name)
}

func (mock *catalogRepoMock) DeleteByBrandCalls() []struct{ Name string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.DeleteByBrand
}

func (mock *catalogRepoMock) DeleteByPerfumer(ctx context.Context, en string) (int64, error) {
	if mock.DeleteByPerfumerFunc == nil {
		panic("catalogRepoMock.DeleteByPerfumerFunc: method is nil but catalogRepo.DeleteByPerfumer was just called")
	}
	mock.lock.Lock()
	mock.calls.DeleteByPerfumer = append(mock.calls.DeleteByPerfumer, struct{ EN string }{EN: en})
	mock.lock.Unlock()
	return mock.DeleteByPerfumerFunc(ctx, en)
}

func (mock *catalogRepoMock) DeleteByPerfumerCalls() []struct{ EN string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.DeleteByPerfumer
}

func (mock *catalogRepoMock) RemoveNote(ctx context.Context, name string) (int64, error) {
	if mock.RemoveNoteFunc == nil {
		panic("catalogRepoMock.RemoveNoteFunc: method is nil but catalogRepo.RemoveNote was just called")
	}
	mock.lock.Lock()
	mock.calls.RemoveNote = append(mock.calls.RemoveNote, struct{ Name string }{Name: name})
	mock.lock.Unlock()
	return mock.RemoveNoteFunc(ctx, name)
}

func (mock *catalogRepoMock) RemoveNoteCalls() []struct{ Name string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.RemoveNote
}
