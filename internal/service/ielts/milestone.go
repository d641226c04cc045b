package ielts

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"

	"github.com/minhngo/englishpal-backend/internal/domain"
	"github.com/minhngo/englishpal-backend/pkg/ctxutil"
)

// CreateMilestone records a scored checkpoint on a plan's timeline.
func (s *Service) CreateMilestone(ctx context.Context, input CreateMilestoneInput) (*domain.IELTSMilestone, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.plans.GetByID(ctx, userID, input.PlanID); err != nil {
		return nil, fmt.Errorf("create milestone: %w", err)
	}

	date := civil.DateOf(time.Now())
	if input.Date != nil {
		date = *input.Date
	}

	m, err := s.milestones.Create(ctx, &domain.IELTSMilestone{
		ID:        uuid.New(),
		PlanID:    input.PlanID,
		UserID:    userID,
		Type:      input.Type,
		Scores:    input.Scores,
		Title:     trimOrNil(input.Title),
		Notes:     trimOrNil(input.Notes),
		Date:      date,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("create milestone: %w", err)
	}

	s.log.InfoContext(ctx, "milestone created",
		slog.String("user_id", userID.String()),
		slog.String("plan_id", input.PlanID.String()),
		slog.String("type", m.Type.String()),
	)

	return m, nil
}

// ListMilestones returns a plan's milestones, newest date first.
func (s *Service) ListMilestones(ctx context.Context, planID uuid.UUID) ([]*domain.IELTSMilestone, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	milestones, err := s.milestones.ListByPlan(ctx, userID, planID)
	if err != nil {
		return nil, fmt.Errorf("list milestones: %w", err)
	}
	return milestones, nil
}

// DeleteMilestone removes a milestone.
func (s *Service) DeleteMilestone(ctx context.Context, milestoneID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if milestoneID == uuid.Nil {
		return domain.NewValidationError("milestone_id", "required")
	}

	if err := s.milestones.Delete(ctx, userID, milestoneID); err != nil {
		return fmt.Errorf("delete milestone: %w", err)
	}
	return nil
}
