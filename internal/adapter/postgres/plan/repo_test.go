package plan_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	postgres "github.com/minhngo/englishpal-backend/internal/adapter/postgres"
	"github.com/minhngo/englishpal-backend/internal/adapter/postgres/plan"
	"github.com/minhngo/englishpal-backend/internal/adapter/postgres/testhelper"
	"github.com/minhngo/englishpal-backend/internal/domain"
)

func newRepo(t *testing.T) (*plan.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return plan.New(pool), pool
}

func ptr[T any](v T) *T { return &v }

func TestPlanRepo_CreateAndGet(t *testing.T) {
	repo, pool := newRepo(t)
	ctx := context.Background()
	user := testhelper.SeedUser(t, pool)

	examDate := civil.Date{Year: 2026, Month: time.December, Day: 12}
	now := time.Now().UTC().Truncate(time.Microsecond)
	created, err := repo.Create(ctx, &domain.IELTSPlan{
		ID:       uuid.New(),
		UserID:   user.ID,
		Name:     "December attempt",
		ExamDate: &examDate,
		TargetScores: domain.BandScores{
			Listening: ptr(7.5),
			Overall:   ptr(7.0),
		},
		StudyHoursPerDay: 3,
		CreatedAt:        now,
		UpdatedAt:        now,
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, user.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "December attempt", got.Name)
	require.NotNil(t, got.ExamDate)
	assert.Equal(t, examDate, *got.ExamDate)
	require.NotNil(t, got.TargetScores.Listening)
	assert.Equal(t, 7.5, *got.TargetScores.Listening)
	assert.Nil(t, got.TargetScores.Reading)
	assert.False(t, got.IsActive)
}

func TestPlanRepo_GetActive_NoActivePlan(t *testing.T) {
	repo, pool := newRepo(t)
	ctx := context.Background()
	user := testhelper.SeedUser(t, pool)
	testhelper.SeedPlan(t, pool, user.ID)

	_, err := repo.GetActive(ctx, user.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPlanRepo_SetActive_SwitchesActivePlan(t *testing.T) {
	repo, pool := newRepo(t)
	ctx := context.Background()
	user := testhelper.SeedUser(t, pool)
	tm := postgres.NewTxManager(pool)

	first := testhelper.SeedPlan(t, pool, user.ID)
	second := testhelper.SeedPlan(t, pool, user.ID)

	err := tm.RunInTx(ctx, func(ctx context.Context) error {
		return repo.SetActive(ctx, user.ID, first.ID)
	})
	require.NoError(t, err)

	active, err := repo.GetActive(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, active.ID)

	// Activating the second plan must deactivate the first in the same
	// transaction; the partial unique index enforces at most one active
	// plan per user.
	err = tm.RunInTx(ctx, func(ctx context.Context) error {
		return repo.SetActive(ctx, user.ID, second.ID)
	})
	require.NoError(t, err)

	active, err = repo.GetActive(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)

	previous, err := repo.GetByID(ctx, user.ID, first.ID)
	require.NoError(t, err)
	assert.False(t, previous.IsActive)
}

func TestPlanRepo_SetActive_NotFoundRollsBack(t *testing.T) {
	repo, pool := newRepo(t)
	ctx := context.Background()
	user := testhelper.SeedUser(t, pool)
	tm := postgres.NewTxManager(pool)

	existing := testhelper.SeedPlan(t, pool, user.ID)
	err := tm.RunInTx(ctx, func(ctx context.Context) error {
		return repo.SetActive(ctx, user.ID, existing.ID)
	})
	require.NoError(t, err)

	err = tm.RunInTx(ctx, func(ctx context.Context) error {
		return repo.SetActive(ctx, user.ID, uuid.New())
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// The rollback keeps the previously active plan active.
	active, err := repo.GetActive(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, active.ID)
}

func TestPlanRepo_Update_ReplacesScoreGroupWhole(t *testing.T) {
	repo, pool := newRepo(t)
	ctx := context.Background()
	user := testhelper.SeedUser(t, pool)
	p := testhelper.SeedPlan(t, pool, user.ID)

	updated, err := repo.Update(ctx, user.ID, p.ID, plan.UpdateParams{
		CurrentScores: &domain.BandScores{Reading: ptr(6.5)},
	})
	require.NoError(t, err)

	require.NotNil(t, updated.CurrentScores.Reading)
	assert.Equal(t, 6.5, *updated.CurrentScores.Reading)
	assert.Nil(t, updated.CurrentScores.Listening)
	assert.Equal(t, p.Name, updated.Name)
}

func TestPlanRepo_Delete_CascadesSessions(t *testing.T) {
	repo, pool := newRepo(t)
	ctx := context.Background()
	user := testhelper.SeedUser(t, pool)
	p := testhelper.SeedPlan(t, pool, user.ID)

	today := civil.DateOf(time.Now())
	s := testhelper.SeedSession(t, pool, user.ID, p.ID, domain.SkillListening, 30, today)

	require.NoError(t, repo.Delete(ctx, user.ID, p.ID))

	var count int
	err := pool.QueryRow(ctx,
		`SELECT count(*) FROM ielts_sessions WHERE id = $1`, s.ID,
	).Scan(&count)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestPlanRepo_List_ActiveFirst(t *testing.T) {
	repo, pool := newRepo(t)
	ctx := context.Background()
	user := testhelper.SeedUser(t, pool)
	tm := postgres.NewTxManager(pool)

	older := testhelper.SeedPlan(t, pool, user.ID)
	testhelper.SeedPlan(t, pool, user.ID)

	err := tm.RunInTx(ctx, func(ctx context.Context) error {
		return repo.SetActive(ctx, user.ID, older.ID)
	})
	require.NoError(t, err)

	plans, err := repo.List(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, older.ID, plans[0].ID)
	assert.True(t, plans[0].IsActive)
}
