// Package writing implements the journal Writing repository using PostgreSQL.
package writing

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

const writingColumns = `id, user_id, topic_id, title, content, word_count, written_date, created_at, updated_at`

// UpdateParams holds the optional fields of a writing update. Nil fields are
// left unchanged. WordCount must be recomputed by the caller whenever
// Content is set.
type UpdateParams struct {
	TopicID     *uuid.UUID
	Title       *string
	Content     *string
	WordCount   *int
	WrittenDate *civil.Date
}

// Repo provides journal entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new writing repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new journal entry.
func (r *Repo) Create(ctx context.Context, w *domain.Writing) (*domain.Writing, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`INSERT INTO writings (id, user_id, topic_id, title, content, word_count, written_date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+writingColumns,
		w.ID, w.UserID, w.TopicID, w.Title, w.Content, w.WordCount,
		postgres.DateToTime(w.WrittenDate), w.CreatedAt, w.UpdatedAt,
	)

	created, err := scanWriting(row)
	if err != nil {
		return nil, postgres.MapError(err, "writing")
	}
	return created, nil
}

// GetByID returns a journal entry by primary key filtered by user_id.
func (r *Repo) GetByID(ctx context.Context, userID, writingID uuid.UUID) (*domain.Writing, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`SELECT `+writingColumns+` FROM writings WHERE id = $1 AND user_id = $2`,
		writingID, userID,
	)

	w, err := scanWriting(row)
	if err != nil {
		return nil, postgres.MapError(err, "writing")
	}
	return w, nil
}

// List returns the user's journal entries, newest written date first.
// With date set, only entries of that calendar day are returned (ordered by
// creation time, newest first).
func (r *Repo) List(ctx context.Context, userID uuid.UUID, date *civil.Date) ([]*domain.Writing, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := psql.Select("id", "user_id", "topic_id", "title", "content", "word_count",
		"written_date", "created_at", "updated_at").
		From("writings").
		Where(sq.Eq{"user_id": userID})
	if date != nil {
		b = b.Where(sq.Eq{"written_date": postgres.DateToTime(*date)}).
			OrderBy("created_at DESC")
	} else {
		b = b.OrderBy("written_date DESC", "created_at DESC")
	}

	sqlStr, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list writings: %w", err)
	}

	rows, err := q.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list writings: %w", err)
	}
	defer rows.Close()

	writings := []*domain.Writing{}
	for rows.Next() {
		w, err := scanWriting(rows)
		if err != nil {
			return nil, fmt.Errorf("scan writing: %w", err)
		}
		writings = append(writings, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate writings: %w", err)
	}
	return writings, nil
}

// Update applies the non-nil fields of params.
func (r *Repo) Update(ctx context.Context, userID, writingID uuid.UUID, params UpdateParams) (*domain.Writing, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := psql.Update("writings").
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": writingID, "user_id": userID}).
		Suffix("RETURNING " + writingColumns)
	if params.TopicID != nil {
		b = b.Set("topic_id", *params.TopicID)
	}
	if params.Title != nil {
		b = b.Set("title", *params.Title)
	}
	if params.Content != nil {
		b = b.Set("content", *params.Content)
	}
	if params.WordCount != nil {
		b = b.Set("word_count", *params.WordCount)
	}
	if params.WrittenDate != nil {
		b = b.Set("written_date", postgres.DateToTime(*params.WrittenDate))
	}

	sqlStr, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update writing: %w", err)
	}

	w, err := scanWriting(q.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, postgres.MapError(err, "writing")
	}
	return w, nil
}

// Delete removes a journal entry.
func (r *Repo) Delete(ctx context.Context, userID, writingID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`DELETE FROM writings WHERE id = $1 AND user_id = $2`,
		writingID, userID,
	)
	if err != nil {
		return postgres.MapError(err, "writing")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("writing: %w", domain.ErrNotFound)
	}
	return nil
}

func scanWriting(row pgx.Row) (*domain.Writing, error) {
	var w domain.Writing
	var writtenDate time.Time
	err := row.Scan(&w.ID, &w.UserID, &w.TopicID, &w.Title, &w.Content, &w.WordCount,
		&writtenDate, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, err
	}
	w.WrittenDate = postgres.TimeToDate(writtenDate)
	return &w, nil
}
