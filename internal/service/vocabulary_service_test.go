package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/nihongo-api/internal/catalog"
	"github.com/phrazzld/nihongo-api/internal/domain"
	"github.com/phrazzld/nihongo-api/internal/platform/memstore"
	"github.com/phrazzld/nihongo-api/internal/store"
)

func newVocabularyService(t *testing.T) VocabularyService {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	words := memstore.NewVocabularyStore()
	culture := memstore.NewCultureStore()
	require.NoError(t, catalog.Load(context.Background(), words, culture, logger))
	return NewVocabularyService(words, culture, logger)
}

func TestVocabulary_Filters(t *testing.T) {
	t.Parallel()
	svc := newVocabularyService(t)
	ctx := context.Background()

	all, err := svc.Vocabulary(ctx, "", 0)
	require.NoError(t, err)
	assert.Len(t, all, 66)

	hiragana, err := svc.Vocabulary(ctx, domain.WordTypeHiragana, 0)
	require.NoError(t, err)
	assert.Len(t, hiragana, 46)

	level2, err := svc.Vocabulary(ctx, "", 2)
	require.NoError(t, err)
	assert.Len(t, level2, 10)
	for _, w := range level2 {
		assert.Equal(t, domain.WordTypeKanji, w.Type)
	}

	_, err = svc.Vocabulary(ctx, "romaji", 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestWordByID(t *testing.T) {
	t.Parallel()
	svc := newVocabularyService(t)
	ctx := context.Background()

	word, err := svc.WordByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "あ", word.Character)

	_, err = svc.WordByID(ctx, 9999)
	assert.ErrorIs(t, err, store.ErrWordNotFound)
}

func TestRandomVocabulary_SamplesWithoutReplacement(t *testing.T) {
	t.Parallel()
	svc := newVocabularyService(t)
	ctx := context.Background()

	sample, err := svc.RandomVocabulary(ctx, domain.WordTypeHiragana, 10)
	require.NoError(t, err)
	require.Len(t, sample, 10)

	seen := make(map[int64]bool)
	for _, w := range sample {
		assert.Equal(t, domain.WordTypeHiragana, w.Type)
		assert.False(t, seen[w.ID], "no word appears twice in one sample")
		seen[w.ID] = true
	}
}

func TestRandomVocabulary_CountExceedsAvailable(t *testing.T) {
	t.Parallel()
	svc := newVocabularyService(t)

	sample, err := svc.RandomVocabulary(context.Background(), domain.WordTypeKatakana, 50)
	require.NoError(t, err)
	assert.Len(t, sample, 10, "only 10 katakana entries exist")
}

func TestRandomVocabulary_ValidatesInput(t *testing.T) {
	t.Parallel()
	svc := newVocabularyService(t)
	ctx := context.Background()

	_, err := svc.RandomVocabulary(ctx, "romaji", 5)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.RandomVocabulary(ctx, domain.WordTypeHiragana, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCulturalContent(t *testing.T) {
	t.Parallel()
	svc := newVocabularyService(t)
	ctx := context.Background()

	all, err := svc.CulturalContent(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 8)

	art, err := svc.CulturalContent(ctx, domain.CultureCategoryTraditionalArt)
	require.NoError(t, err)
	assert.Len(t, art, 4)
	for _, c := range art {
		assert.Equal(t, domain.CultureCategoryTraditionalArt, c.Category)
	}

	_, err = svc.CulturalContent(ctx, "folklore")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
