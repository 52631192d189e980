package memstore

import (
	"context"
	"sort"

	"github.com/phrazzld/nihongo-api/internal/domain"
	"github.com/phrazzld/nihongo-api/internal/store"
)

// ProgressStore implements store.ProgressStore against an in-memory
// collection. The (userID, wordID) uniqueness invariant is preserved by the
// collection's atomic upsert: find-or-create runs under a single write lock.
type ProgressStore struct {
	records *collection[domain.UserProgress]
}

var _ store.ProgressStore = (*ProgressStore)(nil)

// NewProgressStore creates an empty in-memory progress store.
func NewProgressStore() *ProgressStore {
	return &ProgressStore{
		records: newCollection[domain.UserProgress](nil),
	}
}

// Upsert implements store.ProgressStore.Upsert.
func (s *ProgressStore) Upsert(ctx context.Context, userID, wordID int64, apply func(p *domain.UserProgress)) (*domain.UserProgress, error) {
	updated := s.records.upsert(
		func(p domain.UserProgress) bool {
			return p.UserID == userID && p.WordID == wordID
		},
		func(id int64) domain.UserProgress {
			return domain.UserProgress{ID: id, UserID: userID, WordID: wordID}
		},
		func(p domain.UserProgress) domain.UserProgress {
			apply(&p)
			return p
		},
	)
	return &updated, nil
}

// GetByUserAndWord implements store.ProgressStore.GetByUserAndWord.
func (s *ProgressStore) GetByUserAndWord(ctx context.Context, userID, wordID int64) (*domain.UserProgress, error) {
	record, ok := s.records.find(func(p domain.UserProgress) bool {
		return p.UserID == userID && p.WordID == wordID
	})
	if !ok {
		return nil, store.ErrProgressNotFound
	}
	return &record, nil
}

// ListByUser implements store.ProgressStore.ListByUser.
func (s *ProgressStore) ListByUser(ctx context.Context, userID int64) ([]domain.UserProgress, error) {
	records := s.records.list(func(p domain.UserProgress) bool {
		return p.UserID == userID
	})
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records, nil
}
