package domain

import (
	"errors"
	"time"
)

// Common validation errors for Achievement.
var (
	ErrEmptyAchievementUserID = errors.New("achievement user ID cannot be empty")
	ErrEmptyAchievementType   = errors.New("achievement type cannot be empty")
	ErrEmptyAchievementTitle  = errors.New("achievement title cannot be empty")
)

// Achievement is an append-only unlock record. Type groups related
// achievements (streak, mastery, points, games); Title and Description are
// the display strings frozen at unlock time.
type Achievement struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	IconName    string    `json:"icon_name"`
	UnlockedAt  time.Time `json:"unlocked_at"`
}

// NewAchievement creates an unlock record.
func NewAchievement(userID int64, achType, title, description, iconName string) (*Achievement, error) {
	a := &Achievement{
		UserID:      userID,
		Type:        achType,
		Title:       title,
		Description: description,
		IconName:    iconName,
		UnlockedAt:  time.Now().UTC(),
	}

	if err := a.Validate(); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate checks if the Achievement has valid data.
func (a *Achievement) Validate() error {
	if a.UserID <= 0 {
		return ErrEmptyAchievementUserID
	}

	if a.Type == "" {
		return ErrEmptyAchievementType
	}

	if a.Title == "" {
		return ErrEmptyAchievementTitle
	}

	return nil
}
