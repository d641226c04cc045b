package vocabulary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/minhngo/englishpal-backend/internal/adapter/postgres/word"
	"github.com/minhngo/englishpal-backend/internal/domain"
	"github.com/minhngo/englishpal-backend/pkg/ctxutil"
)

// CreateWord adds a new word for the authenticated user. New words always
// start in status "new".
func (s *Service) CreateWord(ctx context.Context, input CreateWordInput) (*domain.Word, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	w, err := s.words.Create(ctx, &domain.Word{
		ID:           uuid.New(),
		UserID:       userID,
		TopicID:      input.TopicID,
		Text:         strings.TrimSpace(input.Text),
		Definition:   strings.TrimSpace(input.Definition),
		DefinitionVI: trimOrNil(input.DefinitionVI),
		Phonetic:     trimOrNil(input.Phonetic),
		AudioURL:     trimOrNil(input.AudioURL),
		Status:       domain.WordStatusNew,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, fmt.Errorf("create word: %w", err)
	}

	s.log.InfoContext(ctx, "word created",
		slog.String("user_id", userID.String()),
		slog.String("word_id", w.ID.String()),
	)

	return w, nil
}

// GetWord returns a single word owned by the authenticated user.
func (s *Service) GetWord(ctx context.Context, wordID uuid.UUID) (*domain.Word, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	w, err := s.words.GetByID(ctx, userID, wordID)
	if err != nil {
		return nil, fmt.Errorf("get word: %w", err)
	}
	return w, nil
}

// ListWords returns the user's words, optionally filtered by topic and status.
func (s *Service) ListWords(ctx context.Context, input ListInput) ([]*domain.Word, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	words, err := s.words.List(ctx, userID, word.Filter{
		TopicID: input.TopicID,
		Status:  input.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	return words, nil
}

// UpdateWord edits a word. A status set here is an explicit user override
// and bypasses the flashcard progression.
func (s *Service) UpdateWord(ctx context.Context, input UpdateWordInput) (*domain.Word, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	w, err := s.words.Update(ctx, userID, input.WordID, word.UpdateParams{
		TopicID:      input.TopicID,
		Text:         trimOrNil(input.Text),
		Definition:   trimOrNil(input.Definition),
		DefinitionVI: input.DefinitionVI,
		Phonetic:     input.Phonetic,
		AudioURL:     input.AudioURL,
		Status:       input.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("update word: %w", err)
	}

	return w, nil
}

// DeleteWord removes a word.
func (s *Service) DeleteWord(ctx context.Context, wordID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if wordID == uuid.Nil {
		return domain.NewValidationError("word_id", "required")
	}

	if err := s.words.Delete(ctx, userID, wordID); err != nil {
		return fmt.Errorf("delete word: %w", err)
	}

	s.log.InfoContext(ctx, "word deleted",
		slog.String("user_id", userID.String()),
		slog.String("word_id", wordID.String()),
	)

	return nil
}
