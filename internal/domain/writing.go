package domain

import (
	"time"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"
)

// Writing is a dated journal entry. WordCount is computed server-side from
// Content on every create/update; WrittenDate is a calendar day, never a
// timestamp.
type Writing struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	TopicID     *uuid.UUID
	Title       *string
	Content     string
	WordCount   int
	WrittenDate civil.Date
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
