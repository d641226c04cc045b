package vocabulary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/minhngo/englishpal-backend/internal/adapter/postgres/phrase"
	"github.com/minhngo/englishpal-backend/internal/domain"
	"github.com/minhngo/englishpal-backend/pkg/ctxutil"
)

// CreatePhrase adds a new phrase for the authenticated user. Like words,
// phrases start in status "new".
func (s *Service) CreatePhrase(ctx context.Context, input CreatePhraseInput) (*domain.Phrase, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	p, err := s.phrases.Create(ctx, &domain.Phrase{
		ID:              uuid.New(),
		UserID:          userID,
		TopicID:         input.TopicID,
		Text:            strings.TrimSpace(input.Text),
		Meaning:         strings.TrimSpace(input.Meaning),
		MeaningVI:       trimOrNil(input.MeaningVI),
		ExampleSentence: trimOrNil(input.ExampleSentence),
		Phonetic:        trimOrNil(input.Phonetic),
		AudioURL:        trimOrNil(input.AudioURL),
		Status:          domain.WordStatusNew,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		return nil, fmt.Errorf("create phrase: %w", err)
	}

	s.log.InfoContext(ctx, "phrase created",
		slog.String("user_id", userID.String()),
		slog.String("phrase_id", p.ID.String()),
	)

	return p, nil
}

// GetPhrase returns a single phrase owned by the authenticated user.
func (s *Service) GetPhrase(ctx context.Context, phraseID uuid.UUID) (*domain.Phrase, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.phrases.GetByID(ctx, userID, phraseID)
	if err != nil {
		return nil, fmt.Errorf("get phrase: %w", err)
	}
	return p, nil
}

// ListPhrases returns the user's phrases, optionally filtered by topic and status.
func (s *Service) ListPhrases(ctx context.Context, input ListInput) ([]*domain.Phrase, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	phrases, err := s.phrases.List(ctx, userID, phrase.Filter{
		TopicID: input.TopicID,
		Status:  input.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("list phrases: %w", err)
	}
	return phrases, nil
}

// UpdatePhrase edits a phrase.
func (s *Service) UpdatePhrase(ctx context.Context, input UpdatePhraseInput) (*domain.Phrase, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	p, err := s.phrases.Update(ctx, userID, input.PhraseID, phrase.UpdateParams{
		TopicID:         input.TopicID,
		Text:            trimOrNil(input.Text),
		Meaning:         trimOrNil(input.Meaning),
		MeaningVI:       input.MeaningVI,
		ExampleSentence: input.ExampleSentence,
		Phonetic:        input.Phonetic,
		AudioURL:        input.AudioURL,
		Status:          input.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("update phrase: %w", err)
	}

	return p, nil
}

// DeletePhrase removes a phrase.
func (s *Service) DeletePhrase(ctx context.Context, phraseID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if phraseID == uuid.Nil {
		return domain.NewValidationError("phrase_id", "required")
	}

	if err := s.phrases.Delete(ctx, userID, phraseID); err != nil {
		return fmt.Errorf("delete phrase: %w", err)
	}

	s.log.InfoContext(ctx, "phrase deleted",
		slog.String("user_id", userID.String()),
		slog.String("phrase_id", phraseID.String()),
	)

	return nil
}
