package ielts

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/minhngo/englishpal-backend/internal/adapter/postgres/plan"
	"github.com/minhngo/englishpal-backend/internal/domain"
	"github.com/minhngo/englishpal-backend/pkg/ctxutil"
)

// CreatePlan adds a new study plan. New plans start inactive; use
// ActivatePlan to make one current.
func (s *Service) CreatePlan(ctx context.Context, input CreatePlanInput) (*domain.IELTSPlan, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	p, err := s.plans.Create(ctx, &domain.IELTSPlan{
		ID:               uuid.New(),
		UserID:           userID,
		Name:             strings.TrimSpace(input.Name),
		ExamDate:         input.ExamDate,
		TargetScores:     input.TargetScores,
		CurrentScores:    input.CurrentScores,
		StudyHoursPerDay: input.StudyHoursPerDay,
		Notes:            trimOrNil(input.Notes),
		IsActive:         false,
		CreatedAt:        now,
		UpdatedAt:        now,
	})
	if err != nil {
		return nil, fmt.Errorf("create plan: %w", err)
	}

	s.log.InfoContext(ctx, "plan created",
		slog.String("user_id", userID.String()),
		slog.String("plan_id", p.ID.String()),
	)

	return p, nil
}

// GetPlan returns a single plan owned by the authenticated user.
func (s *Service) GetPlan(ctx context.Context, planID uuid.UUID) (*domain.IELTSPlan, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.plans.GetByID(ctx, userID, planID)
	if err != nil {
		return nil, fmt.Errorf("get plan: %w", err)
	}
	return p, nil
}

// GetActivePlan returns the user's active plan, or ErrNotFound if no plan
// is active.
func (s *Service) GetActivePlan(ctx context.Context) (*domain.IELTSPlan, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.plans.GetActive(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get active plan: %w", err)
	}
	return p, nil
}

// ListPlans returns the user's plans, active plan first.
func (s *Service) ListPlans(ctx context.Context) ([]*domain.IELTSPlan, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	plans, err := s.plans.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	return plans, nil
}

// UpdatePlan edits a plan. Activation state is not changed here.
func (s *Service) UpdatePlan(ctx context.Context, input UpdatePlanInput) (*domain.IELTSPlan, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	p, err := s.plans.Update(ctx, userID, input.PlanID, plan.UpdateParams{
		Name:             trimOrNil(input.Name),
		ExamDate:         input.ExamDate,
		TargetScores:     input.TargetScores,
		CurrentScores:    input.CurrentScores,
		StudyHoursPerDay: input.StudyHoursPerDay,
		Notes:            input.Notes,
	})
	if err != nil {
		return nil, fmt.Errorf("update plan: %w", err)
	}
	return p, nil
}

// ActivatePlan makes the plan the user's single active plan, deactivating
// any other. Both updates run in one transaction.
func (s *Service) ActivatePlan(ctx context.Context, planID uuid.UUID) (*domain.IELTSPlan, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if planID == uuid.Nil {
		return nil, domain.NewValidationError("plan_id", "required")
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.plans.SetActive(ctx, userID, planID)
	})
	if err != nil {
		return nil, fmt.Errorf("activate plan: %w", err)
	}

	s.log.InfoContext(ctx, "plan activated",
		slog.String("user_id", userID.String()),
		slog.String("plan_id", planID.String()),
	)

	p, err := s.plans.GetByID(ctx, userID, planID)
	if err != nil {
		return nil, fmt.Errorf("get activated plan: %w", err)
	}
	return p, nil
}

// DeletePlan removes a plan and, through ON DELETE CASCADE, its sessions
// and milestones.
func (s *Service) DeletePlan(ctx context.Context, planID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if planID == uuid.Nil {
		return domain.NewValidationError("plan_id", "required")
	}

	if err := s.plans.Delete(ctx, userID, planID); err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}

	s.log.InfoContext(ctx, "plan deleted",
		slog.String("user_id", userID.String()),
		slog.String("plan_id", planID.String()),
	)

	return nil
}
