package journal

import (
	"context"
	"sync"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"

	"github.com/minhngo/englishpal-backend/internal/adapter/postgres/writing"
	"github.com/minhngo/englishpal-backend/internal/domain"
)

var _ writingRepo = &writingRepoMock{}

type writingRepoMock struct {
	CreateFunc  func(ctx context.Context, w *domain.Writing) (*domain.Writing, error)
	GetByIDFunc func(ctx context.Context, userID, writingID uuid.UUID) (*domain.Writing, error)
	ListFunc    func(ctx context.Context, userID uuid.UUID, date *civil.Date) ([]*domain.Writing, error)
	UpdateFunc  func(ctx context.Context, userID, writingID uuid.UUID, params writing.UpdateParams) (*domain.Writing, error)
	DeleteFunc  func(ctx context.Context, userID, writingID uuid.UUID) error

	calls struct {
		Update []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			WritingID uuid.UUID
			Params    writing.UpdateParams
		}
	}
	lockUpdate sync.RWMutex
}

func (mock *writingRepoMock) Create(ctx context.Context, w *domain.Writing) (*domain.Writing, error) {
	if mock.CreateFunc == nil {
		panic("writingRepoMock.CreateFunc: method is nil but writingRepo.Create was just called")
	}
	return mock.CreateFunc(ctx, w)
}

func (mock *writingRepoMock) GetByID(ctx context.Context, userID, writingID uuid.UUID) (*domain.Writing, error) {
	if mock.GetByIDFunc == nil {
		panic("writingRepoMock.GetByIDFunc: method is nil but writingRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, userID, writingID)
}

func (mock *writingRepoMock) List(ctx context.Context, userID uuid.UUID, date *civil.Date) ([]*domain.Writing, error) {
	if mock.ListFunc == nil {
		panic("writingRepoMock.ListFunc: method is nil but writingRepo.List was just called")
	}
	return mock.ListFunc(ctx, userID, date)
}

func (mock *writingRepoMock) Update(ctx context.Context, userID, writingID uuid.UUID, params writing.UpdateParams) (*domain.Writing, error) {
	if mock.UpdateFunc == nil {
		panic("writingRepoMock.UpdateFunc: method is nil but writingRepo.Update was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		WritingID uuid.UUID
		Params    writing.UpdateParams
	}{Ctx: ctx, UserID: userID, WritingID: writingID, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, userID, writingID, params)
}

func (mock *writingRepoMock) UpdateCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	WritingID uuid.UUID
	Params    writing.UpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *writingRepoMock) Delete(ctx context.Context, userID, writingID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("writingRepoMock.DeleteFunc: method is nil but writingRepo.Delete was just called")
	}
	return mock.DeleteFunc(ctx, userID, writingID)
}
