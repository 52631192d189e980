package memstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/phrazzld/nihongo-api/internal/domain"
	"github.com/phrazzld/nihongo-api/internal/store"
)

// UserStore implements store.UserStore against an in-memory collection.
type UserStore struct {
	users *collection[domain.User]
}

// Ensure UserStore implements store.UserStore.
var _ store.UserStore = (*UserStore)(nil)

// NewUserStore creates an empty in-memory user store.
func NewUserStore() *UserStore {
	return &UserStore{
		users: newCollection(cloneUser),
	}
}

// cloneUser deep-copies a user; LastStudyDate is a pointer and must not be
// shared with callers.
func cloneUser(u domain.User) domain.User {
	if u.LastStudyDate != nil {
		d := *u.LastStudyDate
		u.LastStudyDate = &d
	}
	return u
}

// Create implements store.UserStore.Create.
func (s *UserStore) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	email := strings.ToLower(user.Email)
	created, ok := s.users.createUnique(
		func(existing domain.User) bool {
			return strings.ToLower(existing.Email) == email || existing.Username == user.Username
		},
		func(id int64) domain.User {
			u := cloneUser(*user)
			u.ID = id
			return u
		},
	)
	if !ok {
		if strings.ToLower(created.Email) == email {
			return nil, store.ErrEmailExists
		}
		return nil, store.ErrUsernameExists
	}

	return &created, nil
}

// GetByID implements store.UserStore.GetByID.
func (s *UserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, ok := s.users.get(id)
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return &user, nil
}

// GetByEmail implements store.UserStore.GetByEmail.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	lowered := strings.ToLower(email)
	user, ok := s.users.find(func(u domain.User) bool {
		return strings.ToLower(u.Email) == lowered
	})
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return &user, nil
}

// AddPoints implements store.UserStore.AddPoints.
func (s *UserStore) AddPoints(ctx context.Context, userID int64, points int) (*domain.User, error) {
	if points < 0 {
		return nil, fmt.Errorf("%w: point award cannot be negative", store.ErrInvalidEntity)
	}

	user, ok := s.users.update(userID, func(u domain.User) domain.User {
		u.TotalPoints += points
		return u
	})
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return &user, nil
}

// SetStreak implements store.UserStore.SetStreak.
func (s *UserStore) SetStreak(ctx context.Context, userID int64, days int, studiedAt time.Time) (*domain.User, error) {
	if days < 0 {
		return nil, fmt.Errorf("%w: streak days cannot be negative", store.ErrInvalidEntity)
	}

	user, ok := s.users.update(userID, func(u domain.User) domain.User {
		u.StreakDays = days
		d := studiedAt
		u.LastStudyDate = &d
		return u
	})
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return &user, nil
}
