package domain

import (
	"errors"
	"time"
)

// Common validation errors for GameScore.
var (
	ErrEmptyGameUserID   = errors.New("game score user ID cannot be empty")
	ErrEmptyGameType     = errors.New("game type cannot be empty")
	ErrNegativeGameScore = errors.New("game score cannot be negative")
	ErrInvalidGameLevel  = errors.New("game level must be at least 1")
)

// GameScore is an immutable record of a finished practice-game round,
// for example word_jumble. The ledger appends; nothing mutates a score
// after it is written.
type GameScore struct {
	ID       int64     `json:"id"`
	UserID   int64     `json:"user_id"`
	GameType string    `json:"game_type"`
	Score    int       `json:"score"`
	Level    int       `json:"level"`
	PlayedAt time.Time `json:"played_at"`
}

// NewGameScore creates a game score record.
func NewGameScore(userID int64, gameType string, score, level int) (*GameScore, error) {
	gs := &GameScore{
		UserID:   userID,
		GameType: gameType,
		Score:    score,
		Level:    level,
		PlayedAt: time.Now().UTC(),
	}

	if err := gs.Validate(); err != nil {
		return nil, err
	}

	return gs, nil
}

// Validate checks if the GameScore has valid data.
func (gs *GameScore) Validate() error {
	if gs.UserID <= 0 {
		return ErrEmptyGameUserID
	}

	if gs.GameType == "" {
		return ErrEmptyGameType
	}

	if gs.Score < 0 {
		return ErrNegativeGameScore
	}

	if gs.Level < 1 {
		return ErrInvalidGameLevel
	}

	return nil
}
