package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/phrazzld/nihongo-api/internal/domain"
	"github.com/phrazzld/nihongo-api/internal/store"
)

// VocabularyService serves the read-only vocabulary and culture catalogs.
type VocabularyService interface {
	// Vocabulary lists catalog words. A non-empty wordType filters by
	// writing system; otherwise a positive level filters by level; otherwise
	// the full catalog is returned.
	Vocabulary(ctx context.Context, wordType domain.WordType, level int) ([]domain.VocabularyWord, error)

	// WordByID retrieves a single catalog word.
	WordByID(ctx context.Context, wordID int64) (*domain.VocabularyWord, error)

	// RandomVocabulary returns a uniform random sample, without replacement,
	// of up to count words of the given writing system.
	RandomVocabulary(ctx context.Context, wordType domain.WordType, count int) ([]domain.VocabularyWord, error)

	// CulturalContent lists culture catalog entries, optionally filtered by
	// category.
	CulturalContent(ctx context.Context, category domain.CultureCategory) ([]domain.CulturalContent, error)
}

// vocabularyService implements VocabularyService.
type vocabularyService struct {
	wordStore    store.VocabularyStore
	cultureStore store.CultureStore
	logger       *slog.Logger
}

// NewVocabularyService creates a VocabularyService.
func NewVocabularyService(wordStore store.VocabularyStore, cultureStore store.CultureStore, logger *slog.Logger) VocabularyService {
	return &vocabularyService{
		wordStore:    wordStore,
		cultureStore: cultureStore,
		logger:       logger.With("component", "vocabulary_service"),
	}
}

// Vocabulary implements VocabularyService.Vocabulary.
func (s *vocabularyService) Vocabulary(ctx context.Context, wordType domain.WordType, level int) ([]domain.VocabularyWord, error) {
	switch {
	case wordType != "":
		if !wordType.Valid() {
			return nil, fmt.Errorf("%w: unknown word type %q", ErrInvalidInput, wordType)
		}
		return s.wordStore.ListByType(ctx, wordType)
	case level > 0:
		return s.wordStore.ListByLevel(ctx, level)
	default:
		return s.wordStore.List(ctx)
	}
}

// WordByID implements VocabularyService.WordByID.
func (s *vocabularyService) WordByID(ctx context.Context, wordID int64) (*domain.VocabularyWord, error) {
	word, err := s.wordStore.GetByID(ctx, wordID)
	if err != nil {
		return nil, fmt.Errorf("retrieving word %d: %w", wordID, err)
	}
	return word, nil
}

// RandomVocabulary implements VocabularyService.RandomVocabulary.
func (s *vocabularyService) RandomVocabulary(ctx context.Context, wordType domain.WordType, count int) ([]domain.VocabularyWord, error) {
	if !wordType.Valid() {
		return nil, fmt.Errorf("%w: unknown word type %q", ErrInvalidInput, wordType)
	}
	if count <= 0 {
		return nil, fmt.Errorf("%w: count must be positive", ErrInvalidInput)
	}

	words, err := s.wordStore.ListByType(ctx, wordType)
	if err != nil {
		return nil, fmt.Errorf("listing %s words: %w", wordType, err)
	}

	rand.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})
	if len(words) > count {
		words = words[:count]
	}
	return words, nil
}

// CulturalContent implements VocabularyService.CulturalContent.
func (s *vocabularyService) CulturalContent(ctx context.Context, category domain.CultureCategory) ([]domain.CulturalContent, error) {
	if category == "" {
		return s.cultureStore.List(ctx)
	}
	if !category.Valid() {
		return nil, fmt.Errorf("%w: unknown culture category %q", ErrInvalidInput, category)
	}
	return s.cultureStore.ListByCategory(ctx, category)
}
