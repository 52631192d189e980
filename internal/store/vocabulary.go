package store

import (
	"context"

	"github.com/phrazzld/nihongo-api/internal/domain"
)

// VocabularyStore defines the interface for the vocabulary catalog.
// The catalog loader populates it once at startup; all other callers only
// read. Implementations must keep concurrent reads safe.
type VocabularyStore interface {
	// Put adds a catalog entry and assigns its ID. Only the catalog loader
	// calls this. Returns validation errors wrapped in ErrInvalidEntity.
	Put(ctx context.Context, word *domain.VocabularyWord) (*domain.VocabularyWord, error)

	// GetByID retrieves a word by ID.
	// Returns ErrWordNotFound if the word does not exist.
	GetByID(ctx context.Context, id int64) (*domain.VocabularyWord, error)

	// List returns all catalog entries.
	List(ctx context.Context) ([]domain.VocabularyWord, error)

	// ListByType returns all entries of the given writing system.
	ListByType(ctx context.Context, wordType domain.WordType) ([]domain.VocabularyWord, error)

	// ListByLevel returns all entries of the given difficulty level.
	ListByLevel(ctx context.Context, level int) ([]domain.VocabularyWord, error)
}

// CultureStore defines the interface for the cultural-content catalog.
// Populated once by the catalog loader, read-only thereafter.
type CultureStore interface {
	// Put adds a catalog entry and assigns its ID. Only the catalog loader
	// calls this.
	Put(ctx context.Context, content *domain.CulturalContent) (*domain.CulturalContent, error)

	// List returns all cultural entries.
	List(ctx context.Context) ([]domain.CulturalContent, error)

	// ListByCategory returns all entries in the given category.
	ListByCategory(ctx context.Context, category domain.CultureCategory) ([]domain.CulturalContent, error)
}
