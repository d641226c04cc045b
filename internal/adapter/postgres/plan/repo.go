// Package plan implements the IELTSPlan repository using PostgreSQL.
package plan

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/golang-sql/civil"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/minhngo/englishpal-backend/internal/adapter/postgres"
	"github.com/minhngo/englishpal-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const planColumns = `id, user_id, name, exam_date,
	target_listening, target_reading, target_writing, target_speaking, target_overall,
	current_listening, current_reading, current_writing, current_speaking, current_overall,
	study_hours_per_day, notes, is_active, created_at, updated_at`

// UpdateParams holds the optional fields of a plan update. Nil fields are
// left unchanged; IsActive is changed only through SetActive so the single
// active plan invariant stays in one place.
type UpdateParams struct {
	Name             *string
	ExamDate         *civil.Date
	TargetScores     *domain.BandScores
	CurrentScores    *domain.BandScores
	StudyHoursPerDay *int
	Notes            *string
}

// Repo provides IELTS study plan persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new plan repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new plan. Callers activate it separately with SetActive
// when it should become the user's current plan.
func (r *Repo) Create(ctx context.Context, p *domain.IELTSPlan) (*domain.IELTSPlan, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`INSERT INTO ielts_plans (id, user_id, name, exam_date,
			target_listening, target_reading, target_writing, target_speaking, target_overall,
			current_listening, current_reading, current_writing, current_speaking, current_overall,
			study_hours_per_day, notes, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		 RETURNING `+planColumns,
		p.ID, p.UserID, p.Name, postgres.DateToTimePtr(p.ExamDate),
		p.TargetScores.Listening, p.TargetScores.Reading, p.TargetScores.Writing, p.TargetScores.Speaking, p.TargetScores.Overall,
		p.CurrentScores.Listening, p.CurrentScores.Reading, p.CurrentScores.Writing, p.CurrentScores.Speaking, p.CurrentScores.Overall,
		p.StudyHoursPerDay, p.Notes, p.IsActive, p.CreatedAt, p.UpdatedAt,
	)

	created, err := scanPlan(row)
	if err != nil {
		return nil, postgres.MapError(err, "ielts plan")
	}
	return created, nil
}

// GetByID returns a plan by primary key filtered by user_id.
func (r *Repo) GetByID(ctx context.Context, userID, planID uuid.UUID) (*domain.IELTSPlan, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`SELECT `+planColumns+` FROM ielts_plans WHERE id = $1 AND user_id = $2`,
		planID, userID,
	)

	p, err := scanPlan(row)
	if err != nil {
		return nil, postgres.MapError(err, "ielts plan")
	}
	return p, nil
}

// GetActive returns the user's single active plan, or domain.ErrNotFound if
// no plan is active.
func (r *Repo) GetActive(ctx context.Context, userID uuid.UUID) (*domain.IELTSPlan, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`SELECT `+planColumns+` FROM ielts_plans WHERE user_id = $1 AND is_active`,
		userID,
	)

	p, err := scanPlan(row)
	if err != nil {
		return nil, postgres.MapError(err, "ielts plan")
	}
	return p, nil
}

// List returns all of the user's plans, active first, newest first within
// each group.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]*domain.IELTSPlan, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT `+planColumns+` FROM ielts_plans
		 WHERE user_id = $1
		 ORDER BY is_active DESC, created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	return scanPlans(rows)
}

// Update applies the non-nil fields of params. Band score groups are
// replaced whole when set: a nil Listening inside a set TargetScores clears
// the stored target listening score.
func (r *Repo) Update(ctx context.Context, userID, planID uuid.UUID, params UpdateParams) (*domain.IELTSPlan, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := psql.Update("ielts_plans").
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": planID, "user_id": userID}).
		Suffix("RETURNING " + planColumns)
	if params.Name != nil {
		b = b.Set("name", *params.Name)
	}
	if params.ExamDate != nil {
		b = b.Set("exam_date", postgres.DateToTime(*params.ExamDate))
	}
	if s := params.TargetScores; s != nil {
		b = b.Set("target_listening", s.Listening).
			Set("target_reading", s.Reading).
			Set("target_writing", s.Writing).
			Set("target_speaking", s.Speaking).
			Set("target_overall", s.Overall)
	}
	if s := params.CurrentScores; s != nil {
		b = b.Set("current_listening", s.Listening).
			Set("current_reading", s.Reading).
			Set("current_writing", s.Writing).
			Set("current_speaking", s.Speaking).
			Set("current_overall", s.Overall)
	}
	if params.StudyHoursPerDay != nil {
		b = b.Set("study_hours_per_day", *params.StudyHoursPerDay)
	}
	if params.Notes != nil {
		b = b.Set("notes", *params.Notes)
	}

	sqlStr, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update plan: %w", err)
	}

	p, err := scanPlan(q.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, postgres.MapError(err, "ielts plan")
	}
	return p, nil
}

// SetActive marks the given plan active and deactivates the user's previous
// active plan. Both statements must run in one transaction or the partial
// unique index on (user_id) WHERE is_active rejects the second insert;
// callers wrap this in TxManager.RunInTx.
func (r *Repo) SetActive(ctx context.Context, userID, planID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`UPDATE ielts_plans SET is_active = false, updated_at = now()
		 WHERE user_id = $1 AND is_active AND id <> $2`,
		userID, planID,
	)
	if err != nil {
		return postgres.MapError(err, "ielts plan")
	}

	tag, err := q.Exec(ctx,
		`UPDATE ielts_plans SET is_active = true, updated_at = now()
		 WHERE id = $1 AND user_id = $2`,
		planID, userID,
	)
	if err != nil {
		return postgres.MapError(err, "ielts plan")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("ielts plan: %w", domain.ErrNotFound)
	}
	return nil
}

// Delete removes a plan. Sessions and milestones cascade in SQL.
func (r *Repo) Delete(ctx context.Context, userID, planID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`DELETE FROM ielts_plans WHERE id = $1 AND user_id = $2`,
		planID, userID,
	)
	if err != nil {
		return postgres.MapError(err, "ielts plan")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("ielts plan: %w", domain.ErrNotFound)
	}
	return nil
}

func scanPlan(row pgx.Row) (*domain.IELTSPlan, error) {
	var p domain.IELTSPlan
	var examDate *time.Time
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &examDate,
		&p.TargetScores.Listening, &p.TargetScores.Reading, &p.TargetScores.Writing, &p.TargetScores.Speaking, &p.TargetScores.Overall,
		&p.CurrentScores.Listening, &p.CurrentScores.Reading, &p.CurrentScores.Writing, &p.CurrentScores.Speaking, &p.CurrentScores.Overall,
		&p.StudyHoursPerDay, &p.Notes, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.ExamDate = postgres.TimeToDatePtr(examDate)
	return &p, nil
}

func scanPlans(rows pgx.Rows) ([]*domain.IELTSPlan, error) {
	plans := []*domain.IELTSPlan{}
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate plans: %w", err)
	}
	return plans, nil
}
