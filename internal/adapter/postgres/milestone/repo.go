// Package milestone implements the IELTSMilestone repository using PostgreSQL.
package milestone

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

const milestoneColumns = `id, plan_id, user_id, milestone_type,
	listening_score, reading_score, writing_score, speaking_score, overall_score,
	title, notes, milestone_date, created_at`

// Repo provides milestone persistence backed by PostgreSQL. Milestones are
// append-only like sessions.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new milestone repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a milestone.
func (r *Repo) Create(ctx context.Context, m *domain.IELTSMilestone) (*domain.IELTSMilestone, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`INSERT INTO ielts_milestones (id, plan_id, user_id, milestone_type,
			listening_score, reading_score, writing_score, speaking_score, overall_score,
			title, notes, milestone_date, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 RETURNING `+milestoneColumns,
		m.ID, m.PlanID, m.UserID, m.Type.String(),
		m.Scores.Listening, m.Scores.Reading, m.Scores.Writing, m.Scores.Speaking, m.Scores.Overall,
		m.Title, m.Notes, postgres.DateToTime(m.Date), m.CreatedAt,
	)

	created, err := scanMilestone(row)
	if err != nil {
		return nil, postgres.MapError(err, "ielts milestone")
	}
	return created, nil
}

// ListByPlan returns all milestones of a plan, newest date first.
func (r *Repo) ListByPlan(ctx context.Context, userID, planID uuid.UUID) ([]*domain.IELTSMilestone, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT `+milestoneColumns+` FROM ielts_milestones
		 WHERE plan_id = $1 AND user_id = $2
		 ORDER BY milestone_date DESC, created_at DESC`,
		planID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list milestones: %w", err)
	}
	defer rows.Close()

	milestones := []*domain.IELTSMilestone{}
	for rows.Next() {
		m, err := scanMilestone(rows)
		if err != nil {
			return nil, fmt.Errorf("scan milestone: %w", err)
		}
		milestones = append(milestones, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate milestones: %w", err)
	}
	return milestones, nil
}

// Delete removes a milestone.
func (r *Repo) Delete(ctx context.Context, userID, milestoneID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`DELETE FROM ielts_milestones WHERE id = $1 AND user_id = $2`,
		milestoneID, userID,
	)
	if err != nil {
		return postgres.MapError(err, "ielts milestone")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("ielts milestone: %w", domain.ErrNotFound)
	}
	return nil
}

func scanMilestone(row pgx.Row) (*domain.IELTSMilestone, error) {
	var m domain.IELTSMilestone
	var mType string
	var date time.Time
	err := row.Scan(&m.ID, &m.PlanID, &m.UserID, &mType,
		&m.Scores.Listening, &m.Scores.Reading, &m.Scores.Writing, &m.Scores.Speaking, &m.Scores.Overall,
		&m.Title, &m.Notes, &date, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	m.Type = domain.MilestoneType(mType)
	m.Date = postgres.TimeToDate(date)
	return &m, nil
}
