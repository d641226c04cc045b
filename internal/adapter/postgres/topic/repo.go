// Package topic implements the Topic repository using PostgreSQL.
package topic

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/minhngo/englishpal-backend/internal/adapter/postgres"
	"github.com/minhngo/englishpal-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const topicColumns = `id, user_id, name, description, icon, color, created_at, updated_at`

// Repo provides topic persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new topic repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a topic. A duplicate name for the same user surfaces as
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, t *domain.Topic) (*domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`INSERT INTO topics (id, user_id, name, description, icon, color, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+topicColumns,
		t.ID, t.UserID, t.Name, t.Description, t.Icon, t.Color, t.CreatedAt, t.UpdatedAt,
	)

	created, err := scanTopic(row)
	if err != nil {
		return nil, postgres.MapError(err, "topic")
	}
	return created, nil
}

// GetByID returns a topic by primary key with user_id filter.
// Returns domain.ErrNotFound if the topic does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, topicID uuid.UUID) (*domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`SELECT `+topicColumns+` FROM topics WHERE id = $1 AND user_id = $2`,
		topicID, userID,
	)

	t, err := scanTopic(row)
	if err != nil {
		return nil, postgres.MapError(err, "topic")
	}
	return t, nil
}

// List returns all topics for a user ordered by name.
// Returns an empty slice (not nil) when the user has no topics.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]*domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT `+topicColumns+` FROM topics WHERE user_id = $1 ORDER BY name`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	defer rows.Close()

	return scanTopics(rows)
}

// Update applies the non-nil fields. Built with squirrel because the set of
// changed columns varies per call.
func (r *Repo) Update(ctx context.Context, userID, topicID uuid.UUID, name, description, icon, color *string) (*domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := psql.Update("topics").
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": topicID, "user_id": userID}).
		Suffix("RETURNING " + topicColumns)
	if name != nil {
		b = b.Set("name", *name)
	}
	if description != nil {
		b = b.Set("description", *description)
	}
	if icon != nil {
		b = b.Set("icon", *icon)
	}
	if color != nil {
		b = b.Set("color", *color)
	}

	sqlStr, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update topic: %w", err)
	}

	t, err := scanTopic(q.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, postgres.MapError(err, "topic")
	}
	return t, nil
}

// Delete removes a topic. Words, phrases and writings that referenced it
// keep existing with a NULL topic (FK ON DELETE SET NULL).
func (r *Repo) Delete(ctx context.Context, userID, topicID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`DELETE FROM topics WHERE id = $1 AND user_id = $2`,
		topicID, userID,
	)
	if err != nil {
		return postgres.MapError(err, "topic")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("topic: %w", domain.ErrNotFound)
	}
	return nil
}

func scanTopic(row pgx.Row) (*domain.Topic, error) {
	var t domain.Topic
	err := row.Scan(&t.ID, &t.UserID, &t.Name, &t.Description, &t.Icon, &t.Color, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func scanTopics(rows pgx.Rows) ([]*domain.Topic, error) {
	topics := []*domain.Topic{}
	for rows.Next() {
		t, err := scanTopic(rows)
		if err != nil {
			return nil, fmt.Errorf("scan topic: %w", err)
		}
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate topics: %w", err)
	}
	return topics, nil
}
