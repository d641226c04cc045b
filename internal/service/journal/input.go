package journal

import (
	"strings"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"

	"github.com/minhngo/englishpal-backend/internal/domain"
)

// CreateWritingInput holds the parameters for a new journal entry. A nil
// WrittenDate defaults to today.
type CreateWritingInput struct {
	Content     string
	Title       *string
	TopicID     *uuid.UUID
	WrittenDate *civil.Date
}

// Validate checks all fields and collects all errors.
func (i CreateWritingInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if i.Title != nil && len(strings.TrimSpace(*i.Title)) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if i.WrittenDate != nil && !i.WrittenDate.IsValid() {
		errs = append(errs, domain.FieldError{Field: "written_date", Message: "invalid date"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateWritingInput holds the parameters for editing an entry. Nil fields
// are left unchanged.
type UpdateWritingInput struct {
	WritingID   uuid.UUID
	Content     *string
	Title       *string
	TopicID     *uuid.UUID
	WrittenDate *civil.Date
}

// Validate checks all fields and collects all errors.
func (i UpdateWritingInput) Validate() error {
	var errs []domain.FieldError

	if i.WritingID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "writing_id", Message: "required"})
	}
	if i.Content != nil && strings.TrimSpace(*i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if i.Title != nil && len(strings.TrimSpace(*i.Title)) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if i.WrittenDate != nil && !i.WrittenDate.IsValid() {
		errs = append(errs, domain.FieldError{Field: "written_date", Message: "invalid date"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
