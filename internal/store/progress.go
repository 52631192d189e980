package store

import (
	"context"

	"github.com/phrazzld/nihongo-api/internal/domain"
)

// ProgressStore defines the interface for per-user-per-word progress records.
//
// At most one record exists per (userID, wordID) pair. Upsert is the only
// write path and must be atomic: two concurrent upserts for the same pair
// must serialize, with the second observing the first's write. This makes a
// duplicate record structurally unreachable.
type ProgressStore interface {
	// Upsert finds or creates the record for (userID, wordID) and applies the
	// mutation to it under the store's write lock. A freshly created record
	// has zero counts and mastery level 0. Returns a copy of the record after
	// the mutation is applied.
	Upsert(ctx context.Context, userID, wordID int64, apply func(p *domain.UserProgress)) (*domain.UserProgress, error)

	// GetByUserAndWord retrieves the record for the exact (userID, wordID)
	// pair. Returns ErrProgressNotFound if no record exists.
	GetByUserAndWord(ctx context.Context, userID, wordID int64) (*domain.UserProgress, error)

	// ListByUser returns all progress records for a user, in no particular
	// order.
	ListByUser(ctx context.Context, userID int64) ([]domain.UserProgress, error)
}
