package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/nihongo-api/internal/domain"
	"github.com/phrazzld/nihongo-api/internal/service/auth"
	"github.com/phrazzld/nihongo-api/internal/store"
)

// UserService provides learner account operations.
type UserService interface {
	// Register creates a new account with a hashed password. Returns
	// store.ErrEmailExists or store.ErrUsernameExists on a conflict.
	Register(ctx context.Context, username, email, password string) (*domain.User, error)

	// Authenticate verifies an email/password pair. Returns
	// ErrInvalidCredentials for both unknown emails and wrong passwords.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)

	// GetUser retrieves a user by ID.
	GetUser(ctx context.Context, userID int64) (*domain.User, error)

	// AwardPoints adds points to the user's running total.
	AwardPoints(ctx context.Context, userID int64, points int) (*domain.User, error)

	// UpdateStreak records a study session: it extends or resets the daily
	// streak based on the previous study date and stamps the session time.
	UpdateStreak(ctx context.Context, userID int64) (*domain.User, error)
}

// userService implements UserService.
type userService struct {
	userStore store.UserStore
	hasher    auth.PasswordHasher
	logger    *slog.Logger
	now       func() time.Time
}

// NewUserService creates a UserService.
func NewUserService(userStore store.UserStore, hasher auth.PasswordHasher, logger *slog.Logger) UserService {
	return &userService{
		userStore: userStore,
		hasher:    hasher,
		logger:    logger.With("component", "user_service"),
		now:       time.Now,
	}
}

// Register implements UserService.Register.
func (s *userService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	if len(password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidInput)
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user, err := domain.NewUser(username, email, hashed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.userStore.Create(ctx, user)
	if err != nil {
		if store.IsDuplicateError(err) {
			s.logger.DebugContext(ctx, "registration conflict", "email", email)
			return nil, err
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered", "user_id", created.ID, "username", created.Username)
	return created, nil
}

// Authenticate implements UserService.Authenticate.
func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("looking up user by email: %w", err)
	}

	if err := s.hasher.Compare(user.HashedPassword, password); err != nil {
		s.logger.DebugContext(ctx, "password mismatch", "user_id", user.ID)
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUser implements UserService.GetUser.
func (s *userService) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("retrieving user %d: %w", userID, err)
	}
	return user, nil
}

// AwardPoints implements UserService.AwardPoints.
func (s *userService) AwardPoints(ctx context.Context, userID int64, points int) (*domain.User, error) {
	if points < 0 {
		return nil, fmt.Errorf("%w: point award cannot be negative", ErrInvalidInput)
	}

	user, err := s.userStore.AddPoints(ctx, userID, points)
	if err != nil {
		return nil, fmt.Errorf("awarding points: %w", err)
	}
	return user, nil
}

// UpdateStreak implements UserService.UpdateStreak.
//
// Studying on consecutive calendar days (UTC) extends the streak by one.
// Studying again on the same day leaves it unchanged. A gap of more than one
// day resets the streak to one.
func (s *userService) UpdateStreak(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("retrieving user %d: %w", userID, err)
	}

	now := s.now().UTC()
	today := now.Truncate(24 * time.Hour)

	days := 1
	if user.LastStudyDate != nil {
		last := user.LastStudyDate.UTC().Truncate(24 * time.Hour)
		switch today.Sub(last) {
		case 0:
			days = user.StreakDays
			if days < 1 {
				days = 1
			}
		case 24 * time.Hour:
			days = user.StreakDays + 1
		}
	}

	updated, err := s.userStore.SetStreak(ctx, userID, days, now)
	if err != nil {
		return nil, fmt.Errorf("updating streak: %w", err)
	}

	s.logger.DebugContext(ctx, "streak updated", "user_id", userID, "streak_days", days)
	return updated, nil
}
