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

// LogSession records one study session against a plan. Sessions are
// immutable once created; a wrong entry is deleted and re-logged.
func (s *Service) LogSession(ctx context.Context, input LogSessionInput) (*domain.IELTSSession, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Ownership check; a session can only be logged against the user's
	// own plan.
	if _, err := s.plans.GetByID(ctx, userID, input.PlanID); err != nil {
		return nil, fmt.Errorf("log session: %w", err)
	}

	date := civil.DateOf(time.Now())
	if input.Date != nil {
		date = *input.Date
	}

	sess, err := s.sessions.Create(ctx, &domain.IELTSSession{
		ID:              uuid.New(),
		PlanID:          input.PlanID,
		UserID:          userID,
		Skill:           input.Skill,
		DurationMinutes: input.DurationMinutes,
		Activity:        trimOrNil(input.Activity),
		Notes:           trimOrNil(input.Notes),
		Date:            date,
		CreatedAt:       time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("log session: %w", err)
	}

	s.log.InfoContext(ctx, "session logged",
		slog.String("user_id", userID.String()),
		slog.String("plan_id", input.PlanID.String()),
		slog.String("skill", sess.Skill.String()),
		slog.Int("minutes", sess.DurationMinutes),
	)

	return sess, nil
}

// ListSessions returns a plan's sessions, newest date first.
func (s *Service) ListSessions(ctx context.Context, planID uuid.UUID) ([]*domain.IELTSSession, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	sessions, err := s.sessions.ListByPlan(ctx, userID, planID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

// DeleteSession removes a logged session.
func (s *Service) DeleteSession(ctx context.Context, sessionID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if sessionID == uuid.Nil {
		return domain.NewValidationError("session_id", "required")
	}

	if err := s.sessions.Delete(ctx, userID, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
