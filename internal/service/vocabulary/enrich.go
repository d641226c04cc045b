package vocabulary

import (
	"context"
	"fmt"
	"strings"

	"github.com/minhngo/englishpal-backend/internal/domain"
	"github.com/minhngo/englishpal-backend/internal/provider"
	"github.com/minhngo/englishpal-backend/pkg/ctxutil"
)

// Lookup fetches definitions, phonetic and audio for a word from the
// external dictionary. Returns ErrNotFound if the dictionary has no entry.
func (s *Service) Lookup(ctx context.Context, text string) (*provider.DictionaryResult, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.NewValidationError("word", "required")
	}

	result, err := s.dictionary.Lookup(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("dictionary lookup: %w", err)
	}
	if result == nil {
		return nil, fmt.Errorf("dictionary entry for %q: %w", text, domain.ErrNotFound)
	}

	return result, nil
}

// TranslateResult is the outcome of a translation request. Enabled is false
// when no translation provider is configured.
type TranslateResult struct {
	Translation string
	Enabled     bool
}

// Translate translates English text to Vietnamese. With no provider
// configured the result carries Enabled=false and an empty translation.
func (s *Service) Translate(ctx context.Context, text string) (*TranslateResult, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.NewValidationError("text", "required")
	}
	if len(text) > 2000 {
		return nil, domain.NewValidationError("text", "max 2000 characters")
	}

	if !s.translate.Enabled() {
		return &TranslateResult{Enabled: false}, nil
	}

	translation, err := s.translate.Translate(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("translate: %w", err)
	}

	return &TranslateResult{Translation: translation, Enabled: true}, nil
}
