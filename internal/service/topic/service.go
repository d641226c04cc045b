// Package topic implements topic management operations.
package topic

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/minhngo/englishpal-backend/internal/domain"
)

type topicRepo interface {
	Create(ctx context.Context, topic *domain.Topic) (*domain.Topic, error)
	GetByID(ctx context.Context, userID, topicID uuid.UUID) (*domain.Topic, error)
	List(ctx context.Context, userID uuid.UUID) ([]*domain.Topic, error)
	Update(ctx context.Context, userID, topicID uuid.UUID, name, description, icon, color *string) (*domain.Topic, error)
	Delete(ctx context.Context, userID, topicID uuid.UUID) error
}

// Service provides topic management operations.
type Service struct {
	topics topicRepo
	log    *slog.Logger
}

// NewService creates a new topic service.
func NewService(log *slog.Logger, topics topicRepo) *Service {
	return &Service{
		topics: topics,
		log:    log.With("service", "topic"),
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
