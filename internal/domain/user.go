package domain

import (
	"errors"
	"strings"
	"time"
)

// Common validation errors for User.
var (
	ErrEmptyUsername       = errors.New("username cannot be empty")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
	ErrNegativePoints      = errors.New("total points cannot be negative")
	ErrNegativeStreak      = errors.New("streak days cannot be negative")
)

// User represents a registered learner account.
//
// TotalPoints is monotonically non-decreasing under normal operation; only
// the store's point-award path mutates it. LastStudyDate is nil until the
// first streak update.
type User struct {
	ID             int64      `json:"id"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	HashedPassword string     `json:"-"` // Never expose the password hash in JSON
	TotalPoints    int        `json:"total_points"`
	StreakDays     int        `json:"streak_days"`
	LastStudyDate  *time.Time `json:"last_study_date,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// NewUser creates a new User with the given username, email, and already
// hashed password. The ID is zero until the store assigns one at creation.
// Returns an error if validation fails.
func NewUser(username, email, hashedPassword string) (*User, error) {
	user := &User{
		Username:       username,
		Email:          email,
		HashedPassword: hashedPassword,
		CreatedAt:      time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if strings.TrimSpace(u.Username) == "" {
		return ErrEmptyUsername
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if !validEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	if u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}

	if u.TotalPoints < 0 {
		return ErrNegativePoints
	}

	if u.StreakDays < 0 {
		return ErrNegativeStreak
	}

	return nil
}

// validEmailFormat performs a basic structural check of an email address:
// a local part, an @, and a domain containing an interior dot.
func validEmailFormat(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
