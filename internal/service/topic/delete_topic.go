package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/minhngo/englishpal-backend/internal/domain"
	"github.com/minhngo/englishpal-backend/pkg/ctxutil"
)

// DeleteTopic deletes a topic. Words and phrases attached to it keep
// existing with their topic reference cleared (ON DELETE SET NULL).
func (s *Service) DeleteTopic(ctx context.Context, topicID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if topicID == uuid.Nil {
		return domain.NewValidationError("topic_id", "required")
	}

	if err := s.topics.Delete(ctx, userID, topicID); err != nil {
		return fmt.Errorf("delete topic: %w", err)
	}

	s.log.InfoContext(ctx, "topic deleted",
		slog.String("user_id", userID.String()),
		slog.String("topic_id", topicID.String()),
	)

	return nil
}
