package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/minhngo/englishpal-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func dateToTime(d civil.Date) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// SeedUser creates a user with a throwaway password hash. Returns a filled
// domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Name:         "Test User " + suffix,
		PasswordHash: "$2a$10$test-hash-" + suffix,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Name, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedTopic creates a topic with a unique name for the given user.
func SeedTopic(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Topic {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	topic := domain.Topic{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      "Topic " + suffix,
		Icon:      "📚",
		Color:     "blue",
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO topics (id, user_id, name, description, icon, color, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		topic.ID, topic.UserID, topic.Name, topic.Description, topic.Icon, topic.Color,
		topic.CreatedAt, topic.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTopic insert topic: %v", err)
	}

	return topic
}

// SeedWord creates a word with the given status, not attached to any topic.
func SeedWord(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, status domain.WordStatus) domain.Word {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	word := domain.Word{
		ID:         uuid.New(),
		UserID:     userID,
		Text:       "word-" + suffix,
		Definition: "Definition " + suffix,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO words (id, user_id, topic_id, word, definition, definition_vi, phonetic, audio_url, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		word.ID, word.UserID, word.TopicID, word.Text, word.Definition,
		word.DefinitionVI, word.Phonetic, word.AudioURL, string(word.Status),
		word.CreatedAt, word.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWord insert word: %v", err)
	}

	return word
}

// SeedPlan creates an inactive IELTS plan with defaults.
func SeedPlan(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.IELTSPlan {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	plan := domain.IELTSPlan{
		ID:               uuid.New(),
		UserID:           userID,
		Name:             "Plan " + suffix,
		StudyHoursPerDay: 2,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO ielts_plans (id, user_id, name, study_hours_per_day, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, false, $5, $6)`,
		plan.ID, plan.UserID, plan.Name, plan.StudyHoursPerDay, plan.CreatedAt, plan.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPlan insert plan: %v", err)
	}

	return plan
}

// SeedSession creates a study session on the given date.
func SeedSession(t *testing.T, pool *pgxpool.Pool, userID, planID uuid.UUID, skill domain.IELTSSkill, minutes int, date civil.Date) domain.IELTSSession {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	session := domain.IELTSSession{
		ID:              uuid.New(),
		PlanID:          planID,
		UserID:          userID,
		Skill:           skill,
		DurationMinutes: minutes,
		Date:            date,
		CreatedAt:       now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO ielts_sessions (id, plan_id, user_id, skill, duration_minutes, activity, notes, session_date, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		session.ID, session.PlanID, session.UserID, string(session.Skill),
		session.DurationMinutes, session.Activity, session.Notes,
		dateToTime(session.Date), session.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSession insert session: %v", err)
	}

	return session
}
