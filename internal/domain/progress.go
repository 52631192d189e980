package domain

import (
	"errors"
	"time"
)

// Common validation errors for UserProgress.
var (
	ErrEmptyProgressUserID = errors.New("progress user ID cannot be empty")
	ErrEmptyProgressWordID = errors.New("progress word ID cannot be empty")
	ErrNegativeCount       = errors.New("review counts cannot be negative")
	ErrInvalidMasteryLevel = errors.New("mastery level must be between 0 and 5")
)

// UserProgress tracks a user's accumulated review history for a single
// vocabulary word. At most one record exists per (UserID, WordID) pair; the
// store enforces the uniqueness with upsert semantics.
//
// MasteryLevel is always derived from Correct and Incorrect by the progress
// engine. It is never accepted from a caller.
type UserProgress struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	WordID       int64     `json:"word_id"`
	Correct      int       `json:"correct"`
	Incorrect    int       `json:"incorrect"`
	LastReviewed time.Time `json:"last_reviewed"`
	MasteryLevel int       `json:"mastery_level"`
}

// NewUserProgress creates an empty progress record for a user and word.
// Counts start at zero and the mastery level at zero; the first recorded
// review populates them.
func NewUserProgress(userID, wordID int64) (*UserProgress, error) {
	p := &UserProgress{
		UserID: userID,
		WordID: wordID,
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate checks if the UserProgress has valid data.
func (p *UserProgress) Validate() error {
	if p.UserID <= 0 {
		return ErrEmptyProgressUserID
	}

	if p.WordID <= 0 {
		return ErrEmptyProgressWordID
	}

	if p.Correct < 0 || p.Incorrect < 0 {
		return ErrNegativeCount
	}

	if p.MasteryLevel < 0 || p.MasteryLevel > 5 {
		return ErrInvalidMasteryLevel
	}

	return nil
}

// TotalReviews returns the total number of recorded reviews.
func (p *UserProgress) TotalReviews() int {
	return p.Correct + p.Incorrect
}
