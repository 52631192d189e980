package memstore

import (
	"context"
	"fmt"
	"sort"

	"github.com/phrazzld/nihongo-api/internal/domain"
	"github.com/phrazzld/nihongo-api/internal/store"
)

// VocabularyStore implements store.VocabularyStore against an in-memory
// collection. After the catalog loader seeds it, all access is read-only.
type VocabularyStore struct {
	words *collection[domain.VocabularyWord]
}

var _ store.VocabularyStore = (*VocabularyStore)(nil)

// NewVocabularyStore creates an empty in-memory vocabulary catalog.
func NewVocabularyStore() *VocabularyStore {
	return &VocabularyStore{
		words: newCollection[domain.VocabularyWord](nil),
	}
}

// Put implements store.VocabularyStore.Put.
func (s *VocabularyStore) Put(ctx context.Context, word *domain.VocabularyWord) (*domain.VocabularyWord, error) {
	if err := word.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	created := s.words.create(func(id int64) domain.VocabularyWord {
		w := *word
		w.ID = id
		return w
	})
	return &created, nil
}

// GetByID implements store.VocabularyStore.GetByID.
func (s *VocabularyStore) GetByID(ctx context.Context, id int64) (*domain.VocabularyWord, error) {
	word, ok := s.words.get(id)
	if !ok {
		return nil, store.ErrWordNotFound
	}
	return &word, nil
}

// List implements store.VocabularyStore.List.
func (s *VocabularyStore) List(ctx context.Context) ([]domain.VocabularyWord, error) {
	return sortWords(s.words.list(nil)), nil
}

// ListByType implements store.VocabularyStore.ListByType.
func (s *VocabularyStore) ListByType(ctx context.Context, wordType domain.WordType) ([]domain.VocabularyWord, error) {
	return sortWords(s.words.list(func(w domain.VocabularyWord) bool {
		return w.Type == wordType
	})), nil
}

// ListByLevel implements store.VocabularyStore.ListByLevel.
func (s *VocabularyStore) ListByLevel(ctx context.Context, level int) ([]domain.VocabularyWord, error) {
	return sortWords(s.words.list(func(w domain.VocabularyWord) bool {
		return w.Level == level
	})), nil
}

// sortWords orders catalog entries by ID so repeated reads return identical
// sequences.
func sortWords(words []domain.VocabularyWord) []domain.VocabularyWord {
	sort.Slice(words, func(i, j int) bool { return words[i].ID < words[j].ID })
	return words
}

// CultureStore implements store.CultureStore against an in-memory collection.
type CultureStore struct {
	entries *collection[domain.CulturalContent]
}

var _ store.CultureStore = (*CultureStore)(nil)

// NewCultureStore creates an empty in-memory cultural-content catalog.
func NewCultureStore() *CultureStore {
	return &CultureStore{
		entries: newCollection(cloneCulture),
	}
}

// cloneCulture deep-copies a cultural entry; the tag slice must not be shared
// with callers.
func cloneCulture(c domain.CulturalContent) domain.CulturalContent {
	if c.Tags != nil {
		tags := make([]string, len(c.Tags))
		copy(tags, c.Tags)
		c.Tags = tags
	}
	return c
}

// Put implements store.CultureStore.Put.
func (s *CultureStore) Put(ctx context.Context, content *domain.CulturalContent) (*domain.CulturalContent, error) {
	if err := content.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	created := s.entries.create(func(id int64) domain.CulturalContent {
		c := cloneCulture(*content)
		c.ID = id
		return c
	})
	return &created, nil
}

// List implements store.CultureStore.List.
func (s *CultureStore) List(ctx context.Context) ([]domain.CulturalContent, error) {
	return sortCulture(s.entries.list(nil)), nil
}

// ListByCategory implements store.CultureStore.ListByCategory.
func (s *CultureStore) ListByCategory(ctx context.Context, category domain.CultureCategory) ([]domain.CulturalContent, error) {
	return sortCulture(s.entries.list(func(c domain.CulturalContent) bool {
		return c.Category == category
	})), nil
}

func sortCulture(entries []domain.CulturalContent) []domain.CulturalContent {
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries
}
