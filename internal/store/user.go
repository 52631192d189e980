package store

import (
	"context"
	"time"

	"github.com/phrazzld/nihongo-api/internal/domain"
)

// UserStore defines the interface for user account persistence.
type UserStore interface {
	// Create saves a new user and assigns its ID.
	// Returns ErrEmailExists or ErrUsernameExists if either unique field is
	// already taken, and validation errors wrapped in ErrInvalidEntity.
	// The returned user is a copy with the assigned ID populated.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)

	// GetByID retrieves a user by ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByEmail retrieves a user by email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// AddPoints atomically adds points to a user's total and returns the
	// updated user. Points must be non-negative; the store rejects negative
	// amounts with ErrInvalidEntity so totals stay monotonically
	// non-decreasing. Returns ErrUserNotFound if the user does not exist.
	AddPoints(ctx context.Context, userID int64, points int) (*domain.User, error)

	// SetStreak sets a user's streak day count and last study date, returning
	// the updated user. Returns ErrUserNotFound if the user does not exist.
	SetStreak(ctx context.Context, userID int64, days int, studiedAt time.Time) (*domain.User, error)
}
