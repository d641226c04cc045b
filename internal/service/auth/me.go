package auth

import (
	"context"
	"fmt"

	"github.com/minhngo/englishpal-backend/internal/domain"
	"github.com/minhngo/englishpal-backend/pkg/ctxutil"
)

// Me returns the profile of the authenticated user.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("auth.Me: %w", err)
	}
	return user, nil
}
