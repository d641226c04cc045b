package topic

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/minhngo/englishpal-backend/internal/domain"
)

var _ topicRepo = &topicRepoMock{}

type topicRepoMock struct {
	CreateFunc  func(ctx context.Context, topic *domain.Topic) (*domain.Topic, error)
	GetByIDFunc func(ctx context.Context, userID, topicID uuid.UUID) (*domain.Topic, error)
	ListFunc    func(ctx context.Context, userID uuid.UUID) ([]*domain.Topic, error)
	UpdateFunc  func(ctx context.Context, userID, topicID uuid.UUID, name, description, icon, color *string) (*domain.Topic, error)
	DeleteFunc  func(ctx context.Context, userID, topicID uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx   context.Context
			Topic *domain.Topic
		}
		Delete []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			TopicID uuid.UUID
		}
	}
	lockCreate sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *topicRepoMock) Create(ctx context.Context, topic *domain.Topic) (*domain.Topic, error) {
	if mock.CreateFunc == nil {
		panic("topicRepoMock.CreateFunc: method is nil but topicRepo.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Topic *domain.Topic
	}{Ctx: ctx, Topic: topic}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, topic)
}

func (mock *topicRepoMock) CreateCalls() []struct {
	Ctx   context.Context
	Topic *domain.Topic
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *topicRepoMock) GetByID(ctx context.Context, userID, topicID uuid.UUID) (*domain.Topic, error) {
	if mock.GetByIDFunc == nil {
		panic("topicRepoMock.GetByIDFunc: method is nil but topicRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, userID, topicID)
}

func (mock *topicRepoMock) List(ctx context.Context, userID uuid.UUID) ([]*domain.Topic, error) {
	if mock.ListFunc == nil {
		panic("topicRepoMock.ListFunc: method is nil but topicRepo.List was just called")
	}
	return mock.ListFunc(ctx, userID)
}

func (mock *topicRepoMock) Update(ctx context.Context, userID, topicID uuid.UUID, name, description, icon, color *string) (*domain.Topic, error) {
	if mock.UpdateFunc == nil {
		panic("topicRepoMock.UpdateFunc: method is nil but topicRepo.Update was just called")
	}
	return mock.UpdateFunc(ctx, userID, topicID, name, description, icon, color)
}

func (mock *topicRepoMock) Delete(ctx context.Context, userID, topicID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("topicRepoMock.DeleteFunc: method is nil but topicRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		TopicID uuid.UUID
	}{Ctx: ctx, UserID: userID, TopicID: topicID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, topicID)
}

func (mock *topicRepoMock) DeleteCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	TopicID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
