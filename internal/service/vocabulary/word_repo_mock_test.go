package vocabulary

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/minhngo/englishpal-backend/internal/adapter/postgres/word"
	"github.com/minhngo/englishpal-backend/internal/domain"
)

var _ wordRepo = &wordRepoMock{}

type wordRepoMock struct {
	CreateFunc        func(ctx context.Context, w *domain.Word) (*domain.Word, error)
	GetByIDFunc       func(ctx context.Context, userID, wordID uuid.UUID) (*domain.Word, error)
	ListFunc          func(ctx context.Context, userID uuid.UUID, filter word.Filter) ([]*domain.Word, error)
	UpdateFunc        func(ctx context.Context, userID, wordID uuid.UUID, params word.UpdateParams) (*domain.Word, error)
	UpdateStatusFunc  func(ctx context.Context, userID, wordID uuid.UUID, status domain.WordStatus) (*domain.Word, error)
	DeleteFunc        func(ctx context.Context, userID, wordID uuid.UUID) error
	CountByStatusFunc func(ctx context.Context, userID uuid.UUID) (domain.VocabStats, error)

	calls struct {
		UpdateStatus []struct {
			Ctx    context.Context
			UserID uuid.UUID
			WordID uuid.UUID
			Status domain.WordStatus
		}
	}
	lockUpdateStatus sync.RWMutex
}

func (mock *wordRepoMock) Create(ctx context.Context, w *domain.Word) (*domain.Word, error) {
	if mock.CreateFunc == nil {
		panic("wordRepoMock.CreateFunc: method is nil but wordRepo.Create was just called")
	}
	return mock.CreateFunc(ctx, w)
}

func (mock *wordRepoMock) GetByID(ctx context.Context, userID, wordID uuid.UUID) (*domain.Word, error) {
	if mock.GetByIDFunc == nil {
		panic("wordRepoMock.GetByIDFunc: method is nil but wordRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, userID, wordID)
}

func (mock *wordRepoMock) List(ctx context.Context, userID uuid.UUID, filter word.Filter) ([]*domain.Word, error) {
	if mock.ListFunc == nil {
		panic("wordRepoMock.ListFunc: method is nil but wordRepo.List was just called")
	}
	return mock.ListFunc(ctx, userID, filter)
}

func (mock *wordRepoMock) Update(ctx context.Context, userID, wordID uuid.UUID, params word.UpdateParams) (*domain.Word, error) {
	if mock.UpdateFunc == nil {
		panic("wordRepoMock.UpdateFunc: method is nil but wordRepo.Update was just called")
	}
	return mock.UpdateFunc(ctx, userID, wordID, params)
}

func (mock *wordRepoMock) UpdateStatus(ctx context.Context, userID, wordID uuid.UUID, status domain.WordStatus) (*domain.Word, error) {
	if mock.UpdateStatusFunc == nil {
		panic("wordRepoMock.UpdateStatusFunc: method is nil but wordRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		WordID uuid.UUID
		Status domain.WordStatus
	}{Ctx: ctx, UserID: userID, WordID: wordID, Status: status}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, userID, wordID, status)
}

func (mock *wordRepoMock) UpdateStatusCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	WordID uuid.UUID
	Status domain.WordStatus
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

func (mock *wordRepoMock) Delete(ctx context.Context, userID, wordID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("wordRepoMock.DeleteFunc: method is nil but wordRepo.Delete was just called")
	}
	return mock.DeleteFunc(ctx, userID, wordID)
}

func (mock *wordRepoMock) CountByStatus(ctx context.Context, userID uuid.UUID) (domain.VocabStats, error) {
	if mock.CountByStatusFunc == nil {
		panic("wordRepoMock.CountByStatusFunc: method is nil but wordRepo.CountByStatus was just called")
	}
	return mock.CountByStatusFunc(ctx, userID)
}
