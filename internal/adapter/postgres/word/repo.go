// Package word implements the Word repository using PostgreSQL.
package word

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

const wordColumns = `id, user_id, topic_id, word, definition, definition_vi, phonetic, audio_url, status, created_at, updated_at`

// Filter narrows List results. Nil fields are ignored.
type Filter struct {
	TopicID *uuid.UUID
	Status  *domain.WordStatus
}

// UpdateParams holds the optional fields of a word update. Nil fields are
// left unchanged.
type UpdateParams struct {
	TopicID      *uuid.UUID
	Text         *string
	Definition   *string
	DefinitionVI *string
	Phonetic     *string
	AudioURL     *string
	Status       *domain.WordStatus
}

// Repo provides word persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new word repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new word.
func (r *Repo) Create(ctx context.Context, w *domain.Word) (*domain.Word, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`INSERT INTO words (id, user_id, topic_id, word, definition, definition_vi, phonetic, audio_url, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING `+wordColumns,
		w.ID, w.UserID, w.TopicID, w.Text, w.Definition, w.DefinitionVI,
		w.Phonetic, w.AudioURL, w.Status, w.CreatedAt, w.UpdatedAt,
	)

	created, err := scanWord(row)
	if err != nil {
		return nil, postgres.MapError(err, "word")
	}
	return created, nil
}

// GetByID returns a word by primary key filtered by user_id.
func (r *Repo) GetByID(ctx context.Context, userID, wordID uuid.UUID) (*domain.Word, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`SELECT `+wordColumns+` FROM words WHERE id = $1 AND user_id = $2`,
		wordID, userID,
	)

	w, err := scanWord(row)
	if err != nil {
		return nil, postgres.MapError(err, "word")
	}
	return w, nil
}

// List returns the user's words, newest first, optionally filtered by topic
// and status. Built with squirrel because the WHERE clause varies per call.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter Filter) ([]*domain.Word, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := psql.Select("id", "user_id", "topic_id", "word", "definition", "definition_vi",
		"phonetic", "audio_url", "status", "created_at", "updated_at").
		From("words").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC")
	if filter.TopicID != nil {
		b = b.Where(sq.Eq{"topic_id": *filter.TopicID})
	}
	if filter.Status != nil {
		b = b.Where(sq.Eq{"status": *filter.Status})
	}

	sqlStr, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list words: %w", err)
	}

	rows, err := q.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	defer rows.Close()

	return scanWords(rows)
}

// Update applies the non-nil fields of params.
func (r *Repo) Update(ctx context.Context, userID, wordID uuid.UUID, params UpdateParams) (*domain.Word, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := psql.Update("words").
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": wordID, "user_id": userID}).
		Suffix("RETURNING " + wordColumns)
	if params.TopicID != nil {
		b = b.Set("topic_id", *params.TopicID)
	}
	if params.Text != nil {
		b = b.Set("word", *params.Text)
	}
	if params.Definition != nil {
		b = b.Set("definition", *params.Definition)
	}
	if params.DefinitionVI != nil {
		b = b.Set("definition_vi", *params.DefinitionVI)
	}
	if params.Phonetic != nil {
		b = b.Set("phonetic", *params.Phonetic)
	}
	if params.AudioURL != nil {
		b = b.Set("audio_url", *params.AudioURL)
	}
	if params.Status != nil {
		b = b.Set("status", *params.Status)
	}

	sqlStr, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update word: %w", err)
	}

	w, err := scanWord(q.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, postgres.MapError(err, "word")
	}
	return w, nil
}

// UpdateStatus persists a status decided by the transition rule.
func (r *Repo) UpdateStatus(ctx context.Context, userID, wordID uuid.UUID, status domain.WordStatus) (*domain.Word, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`UPDATE words SET status = $3, updated_at = $4
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+wordColumns,
		wordID, userID, status, time.Now(),
	)

	w, err := scanWord(row)
	if err != nil {
		return nil, postgres.MapError(err, "word")
	}
	return w, nil
}

// Delete removes a word.
func (r *Repo) Delete(ctx context.Context, userID, wordID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`DELETE FROM words WHERE id = $1 AND user_id = $2`,
		wordID, userID,
	)
	if err != nil {
		return postgres.MapError(err, "word")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("word: %w", domain.ErrNotFound)
	}
	return nil
}

// CountByStatus returns per-status counts for a user's words.
// Statuses with no words report zero.
func (r *Repo) CountByStatus(ctx context.Context, userID uuid.UUID) (domain.VocabStats, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT status, count(*) FROM words WHERE user_id = $1 GROUP BY status`,
		userID,
	)
	if err != nil {
		return domain.VocabStats{}, fmt.Errorf("count words by status: %w", err)
	}
	defer rows.Close()

	return scanStatusCounts(rows)
}

func scanWord(row pgx.Row) (*domain.Word, error) {
	var w domain.Word
	err := row.Scan(&w.ID, &w.UserID, &w.TopicID, &w.Text, &w.Definition, &w.DefinitionVI,
		&w.Phonetic, &w.AudioURL, &w.Status, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func scanWords(rows pgx.Rows) ([]*domain.Word, error) {
	words := []*domain.Word{}
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate words: %w", err)
	}
	return words, nil
}

func scanStatusCounts(rows pgx.Rows) (domain.VocabStats, error) {
	var stats domain.VocabStats
	for rows.Next() {
		var status domain.WordStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return domain.VocabStats{}, fmt.Errorf("scan status count: %w", err)
		}
		stats.Total += count
		switch status {
		case domain.WordStatusNew:
			stats.New = count
		case domain.WordStatusLearning:
			stats.Learning = count
		case domain.WordStatusReviewing:
			stats.Reviewing = count
		case domain.WordStatusMastered:
			stats.Mastered = count
		}
	}
	if err := rows.Err(); err != nil {
		return domain.VocabStats{}, fmt.Errorf("iterate status counts: %w", err)
	}
	return stats, nil
}
