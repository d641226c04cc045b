package vocabulary

import (
	"context"
	"fmt"

	"github.com/minhngo/englishpal-backend/internal/domain"
	"github.com/minhngo/englishpal-backend/pkg/ctxutil"
)

// StatsResult holds the per-status breakdown for a user's vocabulary,
// computed fresh from the words and phrases tables.
type StatsResult struct {
	Words   domain.VocabStats
	Phrases domain.VocabStats
}

// Stats returns the status counts for the user's words and phrases.
func (s *Service) Stats(ctx context.Context) (*StatsResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	words, err := s.words.CountByStatus(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count words: %w", err)
	}

	phrases, err := s.phrases.CountByStatus(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count phrases: %w", err)
	}

	return &StatsResult{Words: words, Phrases: phrases}, nil
}
