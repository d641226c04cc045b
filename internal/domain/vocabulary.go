package domain

import (
	"time"

	"github.com/google/uuid"
)

// Topic is a user-defined grouping for words, phrases and writings.
type Topic struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description *string
	Icon        string
	Color       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Word is a single vocabulary word owned by a user.
// Status only changes through Advance or an explicit user edit.
type Word struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	TopicID      *uuid.UUID
	Text         string
	Definition   string
	DefinitionVI *string
	Phonetic     *string
	AudioURL     *string
	Status       WordStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Phrase is a multi-word expression owned by a user. Structurally identical
// to Word for status purposes; it carries an example sentence instead of
// a dictionary phonetic.
type Phrase struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	TopicID         *uuid.UUID
	Text            string
	Meaning         string
	MeaningVI       *string
	ExampleSentence *string
	Phonetic        *string
	AudioURL        *string
	Status          WordStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// VocabStats holds per-status counts for a user's words or phrases.
type VocabStats struct {
	Total     int
	New       int
	Learning  int
	Reviewing int
	Mastered  int
}
