package topic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/minhngo/englishpal-backend/internal/domain"
	"github.com/minhngo/englishpal-backend/pkg/ctxutil"
)

// UpdateTopic updates an existing topic for the authenticated user.
func (s *Service) UpdateTopic(ctx context.Context, input UpdateTopicInput) (*domain.Topic, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var name *string
	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		name = &trimmed
	}

	updated, err := s.topics.Update(ctx, userID, input.TopicID, name, input.Description, input.Icon, input.Color)
	if err != nil {
		return nil, fmt.Errorf("update topic: %w", err)
	}

	s.log.InfoContext(ctx, "topic updated",
		slog.String("user_id", userID.String()),
		slog.String("topic_id", input.TopicID.String()),
	)

	return updated, nil
}
