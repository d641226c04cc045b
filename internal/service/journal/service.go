// Package journal implements dated journal entries with server-side word
// counting.
package journal

import (
	"context"
	"log/slog"
	"strings"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"

	"github.com/minhngo/englishpal-backend/internal/adapter/postgres/writing"
	"github.com/minhngo/englishpal-backend/internal/domain"
)

type writingRepo interface {
	Create(ctx context.Context, w *domain.Writing) (*domain.Writing, error)
	GetByID(ctx context.Context, userID, writingID uuid.UUID) (*domain.Writing, error)
	List(ctx context.Context, userID uuid.UUID, date *civil.Date) ([]*domain.Writing, error)
	Update(ctx context.Context, userID, writingID uuid.UUID, params writing.UpdateParams) (*domain.Writing, error)
	Delete(ctx context.Context, userID, writingID uuid.UUID) error
}

// Service implements journal operations.
type Service struct {
	log      *slog.Logger
	writings writingRepo
}

// NewService creates a new journal service.
func NewService(log *slog.Logger, writings writingRepo) *Service {
	return &Service{
		log:      log.With("service", "journal"),
		writings: writings,
	}
}

// countWords counts whitespace-separated tokens. The stored word count is
// always derived from content here, never taken from the client.
func countWords(content string) int {
	return len(strings.Fields(content))
}
