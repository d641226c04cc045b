package journal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/minhngo/englishpal-backend/internal/domain"
	"github.com/minhngo/englishpal-backend/pkg/ctxutil"
)

// DeleteWriting removes a journal entry.
func (s *Service) DeleteWriting(ctx context.Context, writingID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if writingID == uuid.Nil {
		return domain.NewValidationError("writing_id", "required")
	}

	if err := s.writings.Delete(ctx, userID, writingID); err != nil {
		return fmt.Errorf("delete writing: %w", err)
	}

	s.log.InfoContext(ctx, "writing deleted",
		slog.String("user_id", userID.String()),
		slog.String("writing_id", writingID.String()),
	)

	return nil
}
