package catalog

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/nihongo-api/internal/domain"
	"github.com/phrazzld/nihongo-api/internal/platform/memstore"
)

func TestLoad_SeedsFullCatalog(t *testing.T) {
	t.Parallel()
	words := memstore.NewVocabularyStore()
	culture := memstore.NewCultureStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	require.NoError(t, Load(ctx, words, culture, logger))

	hiragana, err := words.ListByType(ctx, domain.WordTypeHiragana)
	require.NoError(t, err)
	assert.Len(t, hiragana, 46)

	katakana, err := words.ListByType(ctx, domain.WordTypeKatakana)
	require.NoError(t, err)
	assert.Len(t, katakana, 10)

	kanji, err := words.ListByType(ctx, domain.WordTypeKanji)
	require.NoError(t, err)
	assert.Len(t, kanji, 10)
	for _, w := range kanji {
		assert.Equal(t, 2, w.Level)
	}

	entries, err := culture.List(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 8)
}

func TestLoad_AssignsStableIDs(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	first := memstore.NewVocabularyStore()
	second := memstore.NewVocabularyStore()
	require.NoError(t, Load(ctx, first, memstore.NewCultureStore(), logger))
	require.NoError(t, Load(ctx, second, memstore.NewCultureStore(), logger))

	a, err := first.List(ctx)
	require.NoError(t, err)
	b, err := second.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, a, b, "seeding order is deterministic")

	word, err := first.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "あ", word.Character)
}
