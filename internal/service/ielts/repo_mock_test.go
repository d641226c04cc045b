package ielts

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/minhngo/englishpal-backend/internal/adapter/postgres/plan"
	"github.com/minhngo/englishpal-backend/internal/domain"
)

var (
	_ planRepo      = &planRepoMock{}
	_ sessionRepo   = &sessionRepoMock{}
	_ milestoneRepo = &milestoneRepoMock{}
	_ txManager     = &txManagerMock{}
)

type planRepoMock struct {
	CreateFunc    func(ctx context.Context, p *domain.IELTSPlan) (*domain.IELTSPlan, error)
	GetByIDFunc   func(ctx context.Context, userID, planID uuid.UUID) (*domain.IELTSPlan, error)
	GetActiveFunc func(ctx context.Context, userID uuid.UUID) (*domain.IELTSPlan, error)
	ListFunc      func(ctx context.Context, userID uuid.UUID) ([]*domain.IELTSPlan, error)
	UpdateFunc    func(ctx context.Context, userID, planID uuid.UUID, params plan.UpdateParams) (*domain.IELTSPlan, error)
	SetActiveFunc func(ctx context.Context, userID, planID uuid.UUID) error
	DeleteFunc    func(ctx context.Context, userID, planID uuid.UUID) error

	calls struct {
		SetActive []struct {
			Ctx    context.Context
			UserID uuid.UUID
			PlanID uuid.UUID
		}
	}
	lockSetActive sync.RWMutex
}

func (mock *planRepoMock) Create(ctx context.Context, p *domain.IELTSPlan) (*domain.IELTSPlan, error) {
	if mock.CreateFunc == nil {
		panic("planRepoMock.CreateFunc: method is nil but planRepo.Create was just called")
	}
	return mock.CreateFunc(ctx, p)
}

func (mock *planRepoMock) GetByID(ctx context.Context, userID, planID uuid.UUID) (*domain.IELTSPlan, error) {
	if mock.GetByIDFunc == nil {
		panic("planRepoMock.GetByIDFunc: method is nil but planRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, userID, planID)
}

func (mock *planRepoMock) GetActive(ctx context.Context, userID uuid.UUID) (*domain.IELTSPlan, error) {
	if mock.GetActiveFunc == nil {
		panic("planRepoMock.GetActiveFunc: method is nil but planRepo.GetActive was just called")
	}
	return mock.GetActiveFunc(ctx, userID)
}

func (mock *planRepoMock) List(ctx context.Context, userID uuid.UUID) ([]*domain.IELTSPlan, error) {
	if mock.ListFunc == nil {
		panic("planRepoMock.ListFunc: method is nil but planRepo.List was just called")
	}
	return mock.ListFunc(ctx, userID)
}

func (mock *planRepoMock) Update(ctx context.Context, userID, planID uuid.UUID, params plan.UpdateParams) (*domain.IELTSPlan, error) {
	if mock.UpdateFunc == nil {
		panic("planRepoMock.UpdateFunc: method is nil but planRepo.Update was just called")
	}
	return mock.UpdateFunc(ctx, userID, planID, params)
}

func (mock *planRepoMock) SetActive(ctx context.Context, userID, planID uuid.UUID) error {
	if mock.SetActiveFunc == nil {
		panic("planRepoMock.SetActiveFunc: method is nil but planRepo.SetActive was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		PlanID uuid.UUID
	}{Ctx: ctx, UserID: userID, PlanID: planID}
	mock.lockSetActive.Lock()
	mock.calls.SetActive = append(mock.calls.SetActive, callInfo)
	mock.lockSetActive.Unlock()
	return mock.SetActiveFunc(ctx, userID, planID)
}

func (mock *planRepoMock) SetActiveCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	PlanID uuid.UUID
} {
	mock.lockSetActive.RLock()
	calls := mock.calls.SetActive
	mock.lockSetActive.RUnlock()
	return calls
}

func (mock *planRepoMock) Delete(ctx context.Context, userID, planID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("planRepoMock.DeleteFunc: method is nil but planRepo.Delete was just called")
	}
	return mock.DeleteFunc(ctx, userID, planID)
}

type sessionRepoMock struct {
	CreateFunc     func(ctx context.Context, s *domain.IELTSSession) (*domain.IELTSSession, error)
	ListByPlanFunc func(ctx context.Context, userID, planID uuid.UUID) ([]*domain.IELTSSession, error)
	DeleteFunc     func(ctx context.Context, userID, sessionID uuid.UUID) error
}

func (mock *sessionRepoMock) Create(ctx context.Context, s *domain.IELTSSession) (*domain.IELTSSession, error) {
	if mock.CreateFunc == nil {
		panic("sessionRepoMock.CreateFunc: method is nil but sessionRepo.Create was just called")
	}
	return mock.CreateFunc(ctx, s)
}

func (mock *sessionRepoMock) ListByPlan(ctx context.Context, userID, planID uuid.UUID) ([]*domain.IELTSSession, error) {
	if mock.ListByPlanFunc == nil {
		panic("sessionRepoMock.ListByPlanFunc: method is nil but sessionRepo.ListByPlan was just called")
	}
	return mock.ListByPlanFunc(ctx, userID, planID)
}

func (mock *sessionRepoMock) Delete(ctx context.Context, userID, sessionID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("sessionRepoMock.DeleteFunc: method is nil but sessionRepo.Delete was just called")
	}
	return mock.DeleteFunc(ctx, userID, sessionID)
}

type milestoneRepoMock struct {
	CreateFunc     func(ctx context.Context, m *domain.IELTSMilestone) (*domain.IELTSMilestone, error)
	ListByPlanFunc func(ctx context.Context, userID, planID uuid.UUID) ([]*domain.IELTSMilestone, error)
	DeleteFunc     func(ctx context.Context, userID, milestoneID uuid.UUID) error
}

func (mock *milestoneRepoMock) Create(ctx context.Context, m *domain.IELTSMilestone) (*domain.IELTSMilestone, error) {
	if mock.CreateFunc == nil {
		panic("milestoneRepoMock.CreateFunc: method is nil but milestoneRepo.Create was just called")
	}
	return mock.CreateFunc(ctx, m)
}

func (mock *milestoneRepoMock) ListByPlan(ctx context.Context, userID, planID uuid.UUID) ([]*domain.IELTSMilestone, error) {
	if mock.ListByPlanFunc == nil {
		panic("milestoneRepoMock.ListByPlanFunc: method is nil but milestoneRepo.ListByPlan was just called")
	}
	return mock.ListByPlanFunc(ctx, userID, planID)
}

func (mock *milestoneRepoMock) Delete(ctx context.Context, userID, milestoneID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("milestoneRepoMock.DeleteFunc: method is nil but milestoneRepo.Delete was just called")
	}
	return mock.DeleteFunc(ctx, userID, milestoneID)
}

// txManagerMock runs the callback inline with no transaction.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc != nil {
		return mock.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}
