package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/phrazzld/nihongo-api/internal/domain"
	"github.com/phrazzld/nihongo-api/internal/store"
)

// VocabularyStore implements store.VocabularyStore using PostgreSQL.
type VocabularyStore struct {
	db *sql.DB
}

var _ store.VocabularyStore = (*VocabularyStore)(nil)

// NewVocabularyStore creates a PostgreSQL implementation of the
// VocabularyStore interface.
func NewVocabularyStore(db *sql.DB) *VocabularyStore {
	return &VocabularyStore{db: db}
}

const wordColumns = `id, character, romanji, meaning, type, level, audio_url`

func scanWords(rows *sql.Rows) ([]domain.VocabularyWord, error) {
	defer func() { _ = rows.Close() }()

	var words []domain.VocabularyWord
	for rows.Next() {
		var w domain.VocabularyWord
		var audioURL sql.NullString
		if err := rows.Scan(&w.ID, &w.Character, &w.Romanji, &w.Meaning, &w.Type, &w.Level, &audioURL); err != nil {
			return nil, err
		}
		w.AudioURL = audioURL.String
		words = append(words, w)
	}
	return words, rows.Err()
}

// Put implements store.VocabularyStore.Put. Re-seeding an existing character
// of the same type updates it in place, so catalog loads are idempotent.
func (s *VocabularyStore) Put(ctx context.Context, word *domain.VocabularyWord) (*domain.VocabularyWord, error) {
	if err := word.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	row := s.db.QueryRowContext(ctx, `
		INSERT INTO vocabulary_words (character, romanji, meaning, type, level, audio_url)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))
		ON CONFLICT (character, type) DO UPDATE
		SET romanji = EXCLUDED.romanji, meaning = EXCLUDED.meaning,
		    level = EXCLUDED.level, audio_url = EXCLUDED.audio_url
		RETURNING `+wordColumns,
		word.Character, word.Romanji, word.Meaning, word.Type, word.Level, word.AudioURL)

	var created domain.VocabularyWord
	var audioURL sql.NullString
	if err := row.Scan(&created.ID, &created.Character, &created.Romanji, &created.Meaning,
		&created.Type, &created.Level, &audioURL); err != nil {
		return nil, MapError(err)
	}
	created.AudioURL = audioURL.String
	return &created, nil
}

// GetByID implements store.VocabularyStore.GetByID.
func (s *VocabularyStore) GetByID(ctx context.Context, id int64) (*domain.VocabularyWord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+wordColumns+` FROM vocabulary_words WHERE id = $1`, id)

	var w domain.VocabularyWord
	var audioURL sql.NullString
	err := row.Scan(&w.ID, &w.Character, &w.Romanji, &w.Meaning, &w.Type, &w.Level, &audioURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrWordNotFound
		}
		return nil, MapError(err)
	}
	w.AudioURL = audioURL.String
	return &w, nil
}

// List implements store.VocabularyStore.List.
func (s *VocabularyStore) List(ctx context.Context) ([]domain.VocabularyWord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+wordColumns+` FROM vocabulary_words ORDER BY id`)
	if err != nil {
		return nil, MapError(err)
	}
	return scanWords(rows)
}

// ListByType implements store.VocabularyStore.ListByType.
func (s *VocabularyStore) ListByType(ctx context.Context, wordType domain.WordType) ([]domain.VocabularyWord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+wordColumns+` FROM vocabulary_words WHERE type = $1 ORDER BY id`, wordType)
	if err != nil {
		return nil, MapError(err)
	}
	return scanWords(rows)
}

// ListByLevel implements store.VocabularyStore.ListByLevel.
func (s *VocabularyStore) ListByLevel(ctx context.Context, level int) ([]domain.VocabularyWord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+wordColumns+` FROM vocabulary_words WHERE level = $1 ORDER BY id`, level)
	if err != nil {
		return nil, MapError(err)
	}
	return scanWords(rows)
}

// CultureStore implements store.CultureStore using PostgreSQL.
type CultureStore struct {
	db *sql.DB
}

var _ store.CultureStore = (*CultureStore)(nil)

// NewCultureStore creates a PostgreSQL implementation of the CultureStore
// interface.
func NewCultureStore(db *sql.DB) *CultureStore {
	return &CultureStore{db: db}
}

const cultureColumns = `id, title, description, image_url, category, tags, content`

func scanCulture(rows *sql.Rows) ([]domain.CulturalContent, error) {
	defer func() { _ = rows.Close() }()

	var entries []domain.CulturalContent
	for rows.Next() {
		var c domain.CulturalContent
		var content sql.NullString
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.ImageURL,
			&c.Category, pq.Array(&c.Tags), &content); err != nil {
			return nil, err
		}
		c.Content = content.String
		entries = append(entries, c)
	}
	return entries, rows.Err()
}

// Put implements store.CultureStore.Put. Seeding is idempotent on title.
func (s *CultureStore) Put(ctx context.Context, content *domain.CulturalContent) (*domain.CulturalContent, error) {
	if err := content.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	row := s.db.QueryRowContext(ctx, `
		INSERT INTO cultural_content (title, description, image_url, category, tags, content)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))
		ON CONFLICT (title) DO UPDATE
		SET description = EXCLUDED.description, image_url = EXCLUDED.image_url,
		    category = EXCLUDED.category, tags = EXCLUDED.tags, content = EXCLUDED.content
		RETURNING `+cultureColumns,
		content.Title, content.Description, content.ImageURL,
		content.Category, pq.Array(content.Tags), content.Content)

	var created domain.CulturalContent
	var body sql.NullString
	if err := row.Scan(&created.ID, &created.Title, &created.Description, &created.ImageURL,
		&created.Category, pq.Array(&created.Tags), &body); err != nil {
		return nil, MapError(err)
	}
	created.Content = body.String
	return &created, nil
}

// List implements store.CultureStore.List.
func (s *CultureStore) List(ctx context.Context) ([]domain.CulturalContent, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+cultureColumns+` FROM cultural_content ORDER BY id`)
	if err != nil {
		return nil, MapError(err)
	}
	return scanCulture(rows)
}

// ListByCategory implements store.CultureStore.ListByCategory.
func (s *CultureStore) ListByCategory(ctx context.Context, category domain.CultureCategory) ([]domain.CulturalContent, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+cultureColumns+` FROM cultural_content WHERE category = $1 ORDER BY id`, category)
	if err != nil {
		return nil, MapError(err)
	}
	return scanCulture(rows)
}
