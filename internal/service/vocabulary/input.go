package vocabulary

import (
	"strings"

	"github.com/google/uuid"

	"github.com/minhngo/englishpal-backend/internal/domain"
)

// CreateWordInput holds the parameters for adding a word.
type CreateWordInput struct {
	Text         string
	Definition   string
	DefinitionVI *string
	Phonetic     *string
	AudioURL     *string
	TopicID      *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateWordInput) Validate() error {
	var errs []domain.FieldError

	text := strings.TrimSpace(i.Text)
	if text == "" {
		errs = append(errs, domain.FieldError{Field: "word", Message: "required"})
	} else if len(text) > 100 {
		errs = append(errs, domain.FieldError{Field: "word", Message: "max 100 characters"})
	}

	if strings.TrimSpace(i.Definition) == "" {
		errs = append(errs, domain.FieldError{Field: "definition", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateWordInput holds the parameters for editing a word. Nil fields are
// left unchanged. Status set here is an explicit user edit, distinct from
// flashcard review.
type UpdateWordInput struct {
	WordID       uuid.UUID
	Text         *string
	Definition   *string
	DefinitionVI *string
	Phonetic     *string
	AudioURL     *string
	TopicID      *uuid.UUID
	Status       *domain.WordStatus
}

// Validate checks all fields and collects all errors.
func (i UpdateWordInput) Validate() error {
	var errs []domain.FieldError

	if i.WordID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "word_id", Message: "required"})
	}
	if i.Text != nil && strings.TrimSpace(*i.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "word", Message: "required"})
	}
	if i.Definition != nil && strings.TrimSpace(*i.Definition) == "" {
		errs = append(errs, domain.FieldError{Field: "definition", Message: "required"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreatePhraseInput holds the parameters for adding a phrase.
type CreatePhraseInput struct {
	Text            string
	Meaning         string
	MeaningVI       *string
	ExampleSentence *string
	Phonetic        *string
	AudioURL        *string
	TopicID         *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreatePhraseInput) Validate() error {
	var errs []domain.FieldError

	text := strings.TrimSpace(i.Text)
	if text == "" {
		errs = append(errs, domain.FieldError{Field: "phrase", Message: "required"})
	} else if len(text) > 200 {
		errs = append(errs, domain.FieldError{Field: "phrase", Message: "max 200 characters"})
	}

	if strings.TrimSpace(i.Meaning) == "" {
		errs = append(errs, domain.FieldError{Field: "meaning", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdatePhraseInput holds the parameters for editing a phrase.
type UpdatePhraseInput struct {
	PhraseID        uuid.UUID
	Text            *string
	Meaning         *string
	MeaningVI       *string
	ExampleSentence *string
	Phonetic        *string
	AudioURL        *string
	TopicID         *uuid.UUID
	Status          *domain.WordStatus
}

// Validate checks all fields and collects all errors.
func (i UpdatePhraseInput) Validate() error {
	var errs []domain.FieldError

	if i.PhraseID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "phrase_id", Message: "required"})
	}
	if i.Text != nil && strings.TrimSpace(*i.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "phrase", Message: "required"})
	}
	if i.Meaning != nil && strings.TrimSpace(*i.Meaning) == "" {
		errs = append(errs, domain.FieldError{Field: "meaning", Message: "required"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput narrows word or phrase listings.
type ListInput struct {
	TopicID *uuid.UUID
	Status  *domain.WordStatus
}

// Validate checks the optional status filter.
func (i ListInput) Validate() error {
	if i.Status != nil && !i.Status.IsValid() {
		return domain.NewValidationError("status", "unknown status")
	}
	return nil
}

// ReviewInput holds the outcome of one flashcard answer.
type ReviewInput struct {
	ID   uuid.UUID
	Knew bool
}

// Validate checks all fields.
func (i ReviewInput) Validate() error {
	if i.ID == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	return nil
}
