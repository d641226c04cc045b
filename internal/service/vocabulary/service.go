// Package vocabulary implements word and phrase management: CRUD, flashcard
// review and dictionary enrichment.
package vocabulary

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/minhngo/englishpal-backend/internal/adapter/postgres/phrase"
	"github.com/minhngo/englishpal-backend/internal/adapter/postgres/word"
	"github.com/minhngo/englishpal-backend/internal/domain"
	"github.com/minhngo/englishpal-backend/internal/provider"
)

type wordRepo interface {
	Create(ctx context.Context, w *domain.Word) (*domain.Word, error)
	GetByID(ctx context.Context, userID, wordID uuid.UUID) (*domain.Word, error)
	List(ctx context.Context, userID uuid.UUID, filter word.Filter) ([]*domain.Word, error)
	Update(ctx context.Context, userID, wordID uuid.UUID, params word.UpdateParams) (*domain.Word, error)
	UpdateStatus(ctx context.Context, userID, wordID uuid.UUID, status domain.WordStatus) (*domain.Word, error)
	Delete(ctx context.Context, userID, wordID uuid.UUID) error
	CountByStatus(ctx context.Context, userID uuid.UUID) (domain.VocabStats, error)
}

type phraseRepo interface {
	Create(ctx context.Context, p *domain.Phrase) (*domain.Phrase, error)
	GetByID(ctx context.Context, userID, phraseID uuid.UUID) (*domain.Phrase, error)
	List(ctx context.Context, userID uuid.UUID, filter phrase.Filter) ([]*domain.Phrase, error)
	Update(ctx context.Context, userID, phraseID uuid.UUID, params phrase.UpdateParams) (*domain.Phrase, error)
	UpdateStatus(ctx context.Context, userID, phraseID uuid.UUID, status domain.WordStatus) (*domain.Phrase, error)
	Delete(ctx context.Context, userID, phraseID uuid.UUID) error
	CountByStatus(ctx context.Context, userID uuid.UUID) (domain.VocabStats, error)
}

// dictionaryProvider is the external dictionary lookup.
// A nil, nil return means the word is unknown to the dictionary.
type dictionaryProvider interface {
	Lookup(ctx context.Context, word string) (*provider.DictionaryResult, error)
}

// translator is the machine translation provider. A disabled translator
// returns an empty string and no error.
type translator interface {
	Enabled() bool
	Translate(ctx context.Context, text string) (string, error)
}

// Service implements vocabulary operations.
type Service struct {
	log        *slog.Logger
	words      wordRepo
	phrases    phraseRepo
	dictionary dictionaryProvider
	translate  translator
}

// NewService creates a new vocabulary service.
func NewService(
	log *slog.Logger,
	words wordRepo,
	phrases phraseRepo,
	dictionary dictionaryProvider,
	translate translator,
) *Service {
	return &Service{
		log:        log.With("service", "vocabulary"),
		words:      words,
		phrases:    phrases,
		dictionary: dictionary,
		translate:  translate,
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
