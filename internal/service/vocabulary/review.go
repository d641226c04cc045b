package vocabulary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/minhngo/englishpal-backend/internal/domain"
	"github.com/minhngo/englishpal-backend/pkg/ctxutil"
)

// ReviewWord records one flashcard answer for a word and advances its
// status: a known card moves one step toward mastered, a forgotten card
// drops back to learning. Reviewing a mastered card that is still known is
// a no-op persisted anyway so updated_at reflects the practice.
func (s *Service) ReviewWord(ctx context.Context, input ReviewInput) (*domain.Word, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	w, err := s.words.GetByID(ctx, userID, input.ID)
	if err != nil {
		return nil, fmt.Errorf("get word: %w", err)
	}

	next, err := domain.Advance(w.Status, input.Knew)
	if err != nil {
		return nil, fmt.Errorf("advance status: %w", err)
	}

	updated, err := s.words.UpdateStatus(ctx, userID, input.ID, next)
	if err != nil {
		return nil, fmt.Errorf("update word status: %w", err)
	}

	s.log.DebugContext(ctx, "word reviewed",
		slog.String("user_id", userID.String()),
		slog.String("word_id", input.ID.String()),
		slog.Bool("knew", input.Knew),
		slog.String("from", w.Status.String()),
		slog.String("to", next.String()),
	)

	return updated, nil
}

// ReviewPhrase records one flashcard answer for a phrase. Phrases follow
// the same status progression as words.
func (s *Service) ReviewPhrase(ctx context.Context, input ReviewInput) (*domain.Phrase, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	p, err := s.phrases.GetByID(ctx, userID, input.ID)
	if err != nil {
		return nil, fmt.Errorf("get phrase: %w", err)
	}

	next, err := domain.Advance(p.Status, input.Knew)
	if err != nil {
		return nil, fmt.Errorf("advance status: %w", err)
	}

	updated, err := s.phrases.UpdateStatus(ctx, userID, input.ID, next)
	if err != nil {
		return nil, fmt.Errorf("update phrase status: %w", err)
	}

	s.log.DebugContext(ctx, "phrase reviewed",
		slog.String("user_id", userID.String()),
		slog.String("phrase_id", input.ID.String()),
		slog.Bool("knew", input.Knew),
		slog.String("from", p.Status.String()),
		slog.String("to", next.String()),
	)

	return updated, nil
}
