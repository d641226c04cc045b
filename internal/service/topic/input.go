package topic

import (
	"strings"

	"github.com/google/uuid"

	"github.com/minhngo/englishpal-backend/internal/domain"
)

// CreateTopicInput holds the parameters for creating a topic.
type CreateTopicInput struct {
	Name        string
	Description *string
	Icon        *string
	Color       *string
}

// Validate checks all fields and collects all errors.
func (i CreateTopicInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}

	if i.Description != nil && len(strings.TrimSpace(*i.Description)) > 500 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateTopicInput holds the parameters for updating a topic.
type UpdateTopicInput struct {
	TopicID     uuid.UUID
	Name        *string
	Description *string // nil = don't change
	Icon        *string
	Color       *string
}

// Validate checks all fields and collects all errors.
func (i UpdateTopicInput) Validate() error {
	var errs []domain.FieldError

	if i.TopicID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "required"})
	}
	if i.Name == nil && i.Description == nil && i.Icon == nil && i.Color == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		}
		if len(name) > 100 {
			errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
		}
	}
	if i.Description != nil && len(*i.Description) > 500 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
