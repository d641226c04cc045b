package vocabulary

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/minhngo/englishpal-backend/internal/adapter/postgres/phrase"
	"github.com/minhngo/englishpal-backend/internal/domain"
)

var _ phraseRepo = &phraseRepoMock{}

type phraseRepoMock struct {
	CreateFunc        func(ctx context.Context, p *domain.Phrase) (*domain.Phrase, error)
	GetByIDFunc       func(ctx context.Context, userID, phraseID uuid.UUID) (*domain.Phrase, error)
	ListFunc          func(ctx context.Context, userID uuid.UUID, filter phrase.Filter) ([]*domain.Phrase, error)
	UpdateFunc        func(ctx context.Context, userID, phraseID uuid.UUID, params phrase.UpdateParams) (*domain.Phrase, error)
	UpdateStatusFunc  func(ctx context.Context, userID, phraseID uuid.UUID, status domain.WordStatus) (*domain.Phrase, error)
	DeleteFunc        func(ctx context.Context, userID, phraseID uuid.UUID) error
	CountByStatusFunc func(ctx context.Context, userID uuid.UUID) (domain.VocabStats, error)

	calls struct {
		UpdateStatus []struct {
			Ctx      context.Context
			UserID   uuid.UUID
			PhraseID uuid.UUID
			Status   domain.WordStatus
		}
	}
	lockUpdateStatus sync.RWMutex
}

func (mock *phraseRepoMock) Create(ctx context.Context, p *domain.Phrase) (*domain.Phrase, error) {
	if mock.CreateFunc == nil {
		panic("phraseRepoMock.CreateFunc: method is nil but phraseRepo.Create was just called")
	}
	return mock.CreateFunc(ctx, p)
}

func (mock *phraseRepoMock) GetByID(ctx context.Context, userID, phraseID uuid.UUID) (*domain.Phrase, error) {
	if mock.GetByIDFunc == nil {
		panic("phraseRepoMock.GetByIDFunc: method is nil but phraseRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, userID, phraseID)
}

func (mock *phraseRepoMock) List(ctx context.Context, userID uuid.UUID, filter phrase.Filter) ([]*domain.Phrase, error) {
	if mock.ListFunc == nil {
		panic("phraseRepoMock.ListFunc: method is nil but phraseRepo.List was just called")
	}
	return mock.ListFunc(ctx, userID, filter)
}

func (mock *phraseRepoMock) Update(ctx context.Context, userID, phraseID uuid.UUID, params phrase.UpdateParams) (*domain.Phrase, error) {
	if mock.UpdateFunc == nil {
		panic("phraseRepoMock.UpdateFunc: method is nil but phraseRepo.Update was just called")
	}
	return mock.UpdateFunc(ctx, userID, phraseID, params)
}

func (mock *phraseRepoMock) UpdateStatus(ctx context.Context, userID, phraseID uuid.UUID, status domain.WordStatus) (*domain.Phrase, error) {
	if mock.UpdateStatusFunc == nil {
		panic("phraseRepoMock.UpdateStatusFunc: method is nil but phraseRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   uuid.UUID
		PhraseID uuid.UUID
		Status   domain.WordStatus
	}{Ctx: ctx, UserID: userID, PhraseID: phraseID, Status: status}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, userID, phraseID, status)
}

func (mock *phraseRepoMock) UpdateStatusCalls() []struct {
	Ctx      context.Context
	UserID   uuid.UUID
	PhraseID uuid.UUID
	Status   domain.WordStatus
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

func (mock *phraseRepoMock) Delete(ctx context.Context, userID, phraseID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("phraseRepoMock.DeleteFunc: method is nil but phraseRepo.Delete was just called")
	}
	return mock.DeleteFunc(ctx, userID, phraseID)
}

func (mock *phraseRepoMock) CountByStatus(ctx context.Context, userID uuid.UUID) (domain.VocabStats, error) {
	if mock.CountByStatusFunc == nil {
		panic("phraseRepoMock.CountByStatusFunc: method is nil but phraseRepo.CountByStatus was just called")
	}
	return mock.CountByStatusFunc(ctx, userID)
}
