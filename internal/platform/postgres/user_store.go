package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/phrazzld/nihongo-api/internal/domain"
	"github.com/phrazzld/nihongo-api/internal/store"
)

// UserStore implements store.UserStore using PostgreSQL.
type UserStore struct {
	db *sql.DB
}

var _ store.UserStore = (*UserStore)(nil)

// NewUserStore creates a PostgreSQL implementation of the UserStore
// interface. It accepts a database connection managed by the caller.
func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

const userColumns = `id, username, email, hashed_password, total_points, streak_days, last_study_date, created_at`

func scanUser(row *sql.Row) (*domain.User, error) {
	var user domain.User
	var lastStudy sql.NullTime
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.HashedPassword,
		&user.TotalPoints, &user.StreakDays, &lastStudy, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	if lastStudy.Valid {
		t := lastStudy.Time
		user.LastStudyDate = &t
	}
	return &user, nil
}

// Create implements store.UserStore.Create.
func (s *UserStore) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	row := s.db.QueryRowContext(ctx, `
		INSERT INTO users (username, email, hashed_password, total_points, streak_days, created_at)
		VALUES ($1, lower($2), $3, $4, $5, $6)
		RETURNING `+userColumns,
		user.Username, user.Email, user.HashedPassword,
		user.TotalPoints, user.StreakDays, user.CreatedAt)

	created, err := scanUser(row)
	if err != nil {
		if IsUniqueViolation(err, "users_email_key") {
			return nil, store.ErrEmailExists
		}
		if IsUniqueViolation(err, "users_username_key") {
			return nil, store.ErrUsernameExists
		}
		return nil, MapError(err)
	}
	return created, nil
}

// GetByID implements store.UserStore.GetByID.
func (s *UserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		return nil, MapError(err)
	}
	return user, nil
}

// GetByEmail implements store.UserStore.GetByEmail.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = lower($1)`, email)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		return nil, MapError(err)
	}
	return user, nil
}

// AddPoints implements store.UserStore.AddPoints. The increment happens in a
// single UPDATE so concurrent awards never lose points.
func (s *UserStore) AddPoints(ctx context.Context, userID int64, points int) (*domain.User, error) {
	if points < 0 {
		return nil, fmt.Errorf("%w: point award cannot be negative", store.ErrInvalidEntity)
	}

	row := s.db.QueryRowContext(ctx, `
		UPDATE users SET total_points = total_points + $2
		WHERE id = $1
		RETURNING `+userColumns, userID, points)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		return nil, MapError(err)
	}
	return user, nil
}

// SetStreak implements store.UserStore.SetStreak.
func (s *UserStore) SetStreak(ctx context.Context, userID int64, days int, studiedAt time.Time) (*domain.User, error) {
	if days < 0 {
		return nil, fmt.Errorf("%w: streak days cannot be negative", store.ErrInvalidEntity)
	}

	row := s.db.QueryRowContext(ctx, `
		UPDATE users SET streak_days = $2, last_study_date = $3
		WHERE id = $1
		RETURNING `+userColumns, userID, days, studiedAt)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		return nil, MapError(err)
	}
	return user, nil
}
