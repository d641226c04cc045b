package journal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"

	"github.com/minhngo/englishpal-backend/internal/domain"
	"github.com/minhngo/englishpal-backend/pkg/ctxutil"
)

// CreateWriting adds a journal entry for the authenticated user. The word
// count is computed from the content; an omitted written date means today.
func (s *Service) CreateWriting(ctx context.Context, input CreateWritingInput) (*domain.Writing, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	writtenDate := civil.DateOf(time.Now())
	if input.WrittenDate != nil {
		writtenDate = *input.WrittenDate
	}

	content := strings.TrimSpace(input.Content)
	now := time.Now()
	w, err := s.writings.Create(ctx, &domain.Writing{
		ID:          uuid.New(),
		UserID:      userID,
		TopicID:     input.TopicID,
		Title:       trimOrNil(input.Title),
		Content:     content,
		WordCount:   countWords(content),
		WrittenDate: writtenDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("create writing: %w", err)
	}

	s.log.InfoContext(ctx, "writing created",
		slog.String("user_id", userID.String()),
		slog.String("writing_id", w.ID.String()),
		slog.Int("word_count", w.WordCount),
	)

	return w, nil
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
