package topic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/minhngo/englishpal-backend/internal/domain"
	"github.com/minhngo/englishpal-backend/pkg/ctxutil"
)

const (
	defaultIcon  = "📚"
	defaultColor = "blue"
)

// CreateTopic creates a new topic for the authenticated user.
// Returns ErrAlreadyExists if the user already has a topic with this name.
func (s *Service) CreateTopic(ctx context.Context, input CreateTopicInput) (*domain.Topic, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	icon := defaultIcon
	if input.Icon != nil && *input.Icon != "" {
		icon = *input.Icon
	}
	color := defaultColor
	if input.Color != nil && *input.Color != "" {
		color = *input.Color
	}

	now := time.Now()
	topic, err := s.topics.Create(ctx, &domain.Topic{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        strings.TrimSpace(input.Name),
		Description: trimOrNil(input.Description),
		Icon:        icon,
		Color:       color,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("create topic: %w", err)
	}

	s.log.InfoContext(ctx, "topic created",
		slog.String("user_id", userID.String()),
		slog.String("topic_id", topic.ID.String()),
		slog.String("name", topic.Name),
	)

	return topic, nil
}
