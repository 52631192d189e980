package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/phrazzld/nihongo-api/internal/domain"
	"github.com/phrazzld/nihongo-api/internal/store"
)

// nullTime maps the zero time to SQL NULL so "never reviewed" stays NULL in
// the database instead of 0001-01-01.
func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

// ProgressStore implements store.ProgressStore using PostgreSQL.
//
// The find-or-create-then-mutate contract is honored with a row lock: Upsert
// inserts the (user_id, word_id) row if absent, then takes it FOR UPDATE
// before applying the mutation, so two concurrent reviews of the same word
// serialize on the row rather than racing to create duplicates. The UNIQUE
// constraint on (user_id, word_id) backs this up structurally.
type ProgressStore struct {
	db *sql.DB
}

var _ store.ProgressStore = (*ProgressStore)(nil)

// NewProgressStore creates a PostgreSQL implementation of the ProgressStore
// interface.
func NewProgressStore(db *sql.DB) *ProgressStore {
	return &ProgressStore{db: db}
}

const progressColumns = `id, user_id, word_id, correct, incorrect, last_reviewed, mastery_level`

func scanProgress(row interface{ Scan(...any) error }, p *domain.UserProgress) error {
	var lastReviewed sql.NullTime
	if err := row.Scan(&p.ID, &p.UserID, &p.WordID, &p.Correct, &p.Incorrect,
		&lastReviewed, &p.MasteryLevel); err != nil {
		return err
	}
	p.LastReviewed = lastReviewed.Time
	return nil
}

// Upsert implements store.ProgressStore.Upsert.
func (s *ProgressStore) Upsert(ctx context.Context, userID, wordID int64, apply func(p *domain.UserProgress)) (*domain.UserProgress, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, store.NewStoreError("user_progress", "upsert", "beginning transaction", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Make sure the row exists before locking it. ON CONFLICT DO NOTHING
	// keeps this safe under concurrent creation of the same pair.
	_, err = tx.ExecContext(ctx, `
		INSERT INTO user_progress (user_id, word_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, word_id) DO NOTHING`,
		userID, wordID)
	if err != nil {
		return nil, MapError(err)
	}

	var p domain.UserProgress
	row := tx.QueryRowContext(ctx, `
		SELECT `+progressColumns+` FROM user_progress
		WHERE user_id = $1 AND word_id = $2
		FOR UPDATE`,
		userID, wordID)
	if err := scanProgress(row, &p); err != nil {
		return nil, MapError(err)
	}

	apply(&p)

	row = tx.QueryRowContext(ctx, `
		UPDATE user_progress
		SET correct = $2, incorrect = $3, last_reviewed = $4, mastery_level = $5
		WHERE id = $1
		RETURNING `+progressColumns,
		p.ID, p.Correct, p.Incorrect, nullTime(p.LastReviewed), p.MasteryLevel)
	if err := scanProgress(row, &p); err != nil {
		return nil, MapError(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, store.NewStoreError("user_progress", "upsert", "committing transaction", err)
	}
	return &p, nil
}

// GetByUserAndWord implements store.ProgressStore.GetByUserAndWord.
func (s *ProgressStore) GetByUserAndWord(ctx context.Context, userID, wordID int64) (*domain.UserProgress, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+progressColumns+` FROM user_progress
		WHERE user_id = $1 AND word_id = $2`,
		userID, wordID)

	var p domain.UserProgress
	if err := scanProgress(row, &p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: user %d word %d", store.ErrProgressNotFound, userID, wordID)
		}
		return nil, MapError(err)
	}
	return &p, nil
}

// ListByUser implements store.ProgressStore.ListByUser.
func (s *ProgressStore) ListByUser(ctx context.Context, userID int64) ([]domain.UserProgress, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+progressColumns+` FROM user_progress
		WHERE user_id = $1
		ORDER BY id`,
		userID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var records []domain.UserProgress
	for rows.Next() {
		var p domain.UserProgress
		if err := scanProgress(rows, &p); err != nil {
			return nil, MapError(err)
		}
		records = append(records, p)
	}
	return records, rows.Err()
}
