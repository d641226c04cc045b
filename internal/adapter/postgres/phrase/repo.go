// Package phrase implements the Phrase repository using PostgreSQL.
package phrase

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

const phraseColumns = `id, user_id, topic_id, phrase, meaning, meaning_vi, example_sentence, phonetic, audio_url, status, created_at, updated_at`

// Filter narrows List results. Nil fields are ignored.
type Filter struct {
	TopicID *uuid.UUID
	Status  *domain.WordStatus
}

// UpdateParams holds the optional fields of a phrase update. Nil fields are
// left unchanged.
type UpdateParams struct {
	TopicID         *uuid.UUID
	Text            *string
	Meaning         *string
	MeaningVI       *string
	ExampleSentence *string
	Phonetic        *string
	AudioURL        *string
	Status          *domain.WordStatus
}

// Repo provides phrase persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new phrase repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new phrase.
func (r *Repo) Create(ctx context.Context, p *domain.Phrase) (*domain.Phrase, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`INSERT INTO phrases (id, user_id, topic_id, phrase, meaning, meaning_vi, example_sentence, phonetic, audio_url, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING `+phraseColumns,
		p.ID, p.UserID, p.TopicID, p.Text, p.Meaning, p.MeaningVI,
		p.ExampleSentence, p.Phonetic, p.AudioURL, p.Status, p.CreatedAt, p.UpdatedAt,
	)

	created, err := scanPhrase(row)
	if err != nil {
		return nil, postgres.MapError(err, "phrase")
	}
	return created, nil
}

// GetByID returns a phrase by primary key filtered by user_id.
func (r *Repo) GetByID(ctx context.Context, userID, phraseID uuid.UUID) (*domain.Phrase, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`SELECT `+phraseColumns+` FROM phrases WHERE id = $1 AND user_id = $2`,
		phraseID, userID,
	)

	p, err := scanPhrase(row)
	if err != nil {
		return nil, postgres.MapError(err, "phrase")
	}
	return p, nil
}

// List returns the user's phrases, newest first, optionally filtered by
// topic and status.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter Filter) ([]*domain.Phrase, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := psql.Select("id", "user_id", "topic_id", "phrase", "meaning", "meaning_vi",
		"example_sentence", "phonetic", "audio_url", "status", "created_at", "updated_at").
		From("phrases").
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
		return nil, fmt.Errorf("build list phrases: %w", err)
	}

	rows, err := q.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list phrases: %w", err)
	}
	defer rows.Close()

	return scanPhrases(rows)
}

// Update applies the non-nil fields of params.
func (r *Repo) Update(ctx context.Context, userID, phraseID uuid.UUID, params UpdateParams) (*domain.Phrase, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := psql.Update("phrases").
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": phraseID, "user_id": userID}).
		Suffix("RETURNING " + phraseColumns)
	if params.TopicID != nil {
		b = b.Set("topic_id", *params.TopicID)
	}
	if params.Text != nil {
		b = b.Set("phrase", *params.Text)
	}
	if params.Meaning != nil {
		b = b.Set("meaning", *params.Meaning)
	}
	if params.MeaningVI != nil {
		b = b.Set("meaning_vi", *params.MeaningVI)
	}
	if params.ExampleSentence != nil {
		b = b.Set("example_sentence", *params.ExampleSentence)
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
		return nil, fmt.Errorf("build update phrase: %w", err)
	}

	p, err := scanPhrase(q.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, postgres.MapError(err, "phrase")
	}
	return p, nil
}

// UpdateStatus persists a status decided by the transition rule.
func (r *Repo) UpdateStatus(ctx context.Context, userID, phraseID uuid.UUID, status domain.WordStatus) (*domain.Phrase, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`UPDATE phrases SET status = $3, updated_at = $4
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+phraseColumns,
		phraseID, userID, status, time.Now(),
	)

	p, err := scanPhrase(row)
	if err != nil {
		return nil, postgres.MapError(err, "phrase")
	}
	return p, nil
}

// Delete removes a phrase.
func (r *Repo) Delete(ctx context.Context, userID, phraseID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`DELETE FROM phrases WHERE id = $1 AND user_id = $2`,
		phraseID, userID,
	)
	if err != nil {
		return postgres.MapError(err, "phrase")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("phrase: %w", domain.ErrNotFound)
	}
	return nil
}

// CountByStatus returns per-status counts for a user's phrases.
func (r *Repo) CountByStatus(ctx context.Context, userID uuid.UUID) (domain.VocabStats, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT status, count(*) FROM phrases WHERE user_id = $1 GROUP BY status`,
		userID,
	)
	if err != nil {
		return domain.VocabStats{}, fmt.Errorf("count phrases by status: %w", err)
	}
	defer rows.Close()

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

func scanPhrase(row pgx.Row) (*domain.Phrase, error) {
	var p domain.Phrase
	err := row.Scan(&p.ID, &p.UserID, &p.TopicID, &p.Text, &p.Meaning, &p.MeaningVI,
		&p.ExampleSentence, &p.Phonetic, &p.AudioURL, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanPhrases(rows pgx.Rows) ([]*domain.Phrase, error) {
	phrases := []*domain.Phrase{}
	for rows.Next() {
		p, err := scanPhrase(rows)
		if err != nil {
			return nil, fmt.Errorf("scan phrase: %w", err)
		}
		phrases = append(phrases, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate phrases: %w", err)
	}
	return phrases, nil
}
