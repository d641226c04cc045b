package journal

import (
	"context"
	"fmt"
	"strings"

	"github.com/minhngo/englishpal-backend/internal/adapter/postgres/writing"
	"github.com/minhngo/englishpal-backend/internal/domain"
	"github.com/minhngo/englishpal-backend/pkg/ctxutil"
)

// UpdateWriting edits a journal entry. A changed content recomputes the
// stored word count.
func (s *Service) UpdateWriting(ctx context.Context, input UpdateWritingInput) (*domain.Writing, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := writing.UpdateParams{
		TopicID:     input.TopicID,
		Title:       trimOrNil(input.Title),
		WrittenDate: input.WrittenDate,
	}
	if input.Content != nil {
		content := strings.TrimSpace(*input.Content)
		count := countWords(content)
		params.Content = &content
		params.WordCount = &count
	}

	w, err := s.writings.Update(ctx, userID, input.WritingID, params)
	if err != nil {
		return nil, fmt.Errorf("update writing: %w", err)
	}
	return w, nil
}
