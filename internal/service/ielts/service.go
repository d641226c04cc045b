// Package ielts implements IELTS study plans, logged sessions, milestones
// and derived study statistics.
package ielts

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/minhngo/englishpal-backend/internal/adapter/postgres/plan"
	"github.com/minhngo/englishpal-backend/internal/domain"
)

type planRepo interface {
	Create(ctx context.Context, p *domain.IELTSPlan) (*domain.IELTSPlan, error)
	GetByID(ctx context.Context, userID, planID uuid.UUID) (*domain.IELTSPlan, error)
	GetActive(ctx context.Context, userID uuid.UUID) (*domain.IELTSPlan, error)
	List(ctx context.Context, userID uuid.UUID) ([]*domain.IELTSPlan, error)
	Update(ctx context.Context, userID, planID uuid.UUID, params plan.UpdateParams) (*domain.IELTSPlan, error)
	SetActive(ctx context.Context, userID, planID uuid.UUID) error
	Delete(ctx context.Context, userID, planID uuid.UUID) error
}

type sessionRepo interface {
	Create(ctx context.Context, s *domain.IELTSSession) (*domain.IELTSSession, error)
	ListByPlan(ctx context.Context, userID, planID uuid.UUID) ([]*domain.IELTSSession, error)
	Delete(ctx context.Context, userID, sessionID uuid.UUID) error
}

type milestoneRepo interface {
	Create(ctx context.Context, m *domain.IELTSMilestone) (*domain.IELTSMilestone, error)
	ListByPlan(ctx context.Context, userID, planID uuid.UUID) ([]*domain.IELTSMilestone, error)
	Delete(ctx context.Context, userID, milestoneID uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements IELTS study tracking operations.
type Service struct {
	log        *slog.Logger
	plans      planRepo
	sessions   sessionRepo
	milestones milestoneRepo
	tx         txManager
}

// NewService creates a new IELTS service.
func NewService(
	log *slog.Logger,
	plans planRepo,
	sessions sessionRepo,
	milestones milestoneRepo,
	tx txManager,
) *Service {
	return &Service{
		log:        log.With("service", "ielts"),
		plans:      plans,
		sessions:   sessions,
		milestones: milestones,
		tx:         tx,
	}
}

// trimOrNil trims whitespace. Returns nil if the result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
