// Package catalog seeds the read-only vocabulary and cultural content
// catalogs at startup. The seed data is fixed; once loaded, catalog entries
// are immutable for the life of the process.
package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/nihongo-api/internal/domain"
	"github.com/phrazzld/nihongo-api/internal/store"
)

// Load seeds the vocabulary and culture stores from the built-in catalog.
// Words are inserted in a fixed order (hiragana, then katakana, then kanji)
// so that assigned IDs are stable across restarts of an in-memory backend.
func Load(ctx context.Context, words store.VocabularyStore, culture store.CultureStore, logger *slog.Logger) error {
	loaded := 0
	for _, group := range []struct {
		seed     []seedWord
		wordType domain.WordType
		level    int
	}{
		{hiraganaSeed, domain.WordTypeHiragana, 1},
		{katakanaSeed, domain.WordTypeKatakana, 1},
		{kanjiSeed, domain.WordTypeKanji, 2},
	} {
		for _, entry := range group.seed {
			word := &domain.VocabularyWord{
				Character: entry.character,
				Romanji:   entry.romanji,
				Meaning:   entry.meaning,
				Type:      group.wordType,
				Level:     group.level,
			}
			if _, err := words.Put(ctx, word); err != nil {
				return fmt.Errorf("seeding %s catalog entry %q: %w", group.wordType, entry.character, err)
			}
			loaded++
		}
	}

	for i := range cultureSeed {
		entry := cultureSeed[i]
		if _, err := culture.Put(ctx, &entry); err != nil {
			return fmt.Errorf("seeding cultural entry %q: %w", entry.Title, err)
		}
	}

	logger.Info("catalog loaded",
		slog.Int("vocabulary_words", loaded),
		slog.Int("cultural_entries", len(cultureSeed)))
	return nil
}
