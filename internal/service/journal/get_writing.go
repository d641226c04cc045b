package journal

import (
	"context"
	"fmt"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"

	"github.com/minhngo/englishpal-backend/internal/domain"
	"github.com/minhngo/englishpal-backend/pkg/ctxutil"
)

// GetWriting returns a single journal entry owned by the authenticated user.
func (s *Service) GetWriting(ctx context.Context, writingID uuid.UUID) (*domain.Writing, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	w, err := s.writings.GetByID(ctx, userID, writingID)
	if err != nil {
		return nil, fmt.Errorf("get writing: %w", err)
	}
	return w, nil
}

// ListWritings returns the user's journal entries, newest first. With date
// set, only entries written on that calendar day are returned.
func (s *Service) ListWritings(ctx context.Context, date *civil.Date) ([]*domain.Writing, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if date != nil && !date.IsValid() {
		return nil, domain.NewValidationError("date", "invalid date")
	}

	writings, err := s.writings.List(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("list writings: %w", err)
	}
	return writings, nil
}
