// Package session implements the IELTSSession repository using PostgreSQL.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/minhngo/englishpal-backend/internal/adapter/postgres"
	"github.com/minhngo/englishpal-backend/internal/domain"
)

const sessionColumns = `id, plan_id, user_id, skill, duration_minutes, activity, notes, session_date, created_at`

// Repo provides study session persistence backed by PostgreSQL. Sessions are
// append-only: there is no update, only Create and Delete.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new session repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a logged study session.
func (r *Repo) Create(ctx context.Context, s *domain.IELTSSession) (*domain.IELTSSession, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`INSERT INTO ielts_sessions (id, plan_id, user_id, skill, duration_minutes, activity, notes, session_date, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+sessionColumns,
		s.ID, s.PlanID, s.UserID, s.Skill.String(), s.DurationMinutes,
		s.Activity, s.Notes, postgres.DateToTime(s.Date), s.CreatedAt,
	)

	created, err := scanSession(row)
	if err != nil {
		return nil, postgres.MapError(err, "ielts session")
	}
	return created, nil
}

// ListByPlan returns all sessions of a plan, newest date first. Stats
// computation consumes the full list; it is bounded by how much a single
// person can log.
func (r *Repo) ListByPlan(ctx context.Context, userID, planID uuid.UUID) ([]*domain.IELTSSession, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT `+sessionColumns+` FROM ielts_sessions
		 WHERE plan_id = $1 AND user_id = $2
		 ORDER BY session_date DESC, created_at DESC`,
		planID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	sessions := []*domain.IELTSSession{}
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return sessions, nil
}

// Delete removes a session.
func (r *Repo) Delete(ctx context.Context, userID, sessionID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`DELETE FROM ielts_sessions WHERE id = $1 AND user_id = $2`,
		sessionID, userID,
	)
	if err != nil {
		return postgres.MapError(err, "ielts session")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("ielts session: %w", domain.ErrNotFound)
	}
	return nil
}

func scanSession(row pgx.Row) (*domain.IELTSSession, error) {
	var s domain.IELTSSession
	var skill string
	var date time.Time
	err := row.Scan(&s.ID, &s.PlanID, &s.UserID, &skill, &s.DurationMinutes,
		&s.Activity, &s.Notes, &date, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	s.Skill = domain.IELTSSkill(skill)
	s.Date = postgres.TimeToDate(date)
	return &s, nil
}
