package store

import (
	"context"

	"github.com/phrazzld/nihongo-api/internal/domain"
)

// QuizStore defines the interface for the append-only quiz result ledger.
type QuizStore interface {
	// Append writes an immutable quiz result and assigns its ID.
	Append(ctx context.Context, quiz *domain.Quiz) (*domain.Quiz, error)

	// ListByUser returns a user's quiz history, most recent first.
	// Ties on completion time are broken by descending ID.
	ListByUser(ctx context.Context, userID int64) ([]domain.Quiz, error)
}

// GameScoreStore defines the interface for the append-only game score ledger.
type GameScoreStore interface {
	// Append writes an immutable game score and assigns its ID.
	Append(ctx context.Context, score *domain.GameScore) (*domain.GameScore, error)

	// ListByUserAndType returns a user's scores for one game, highest first.
	ListByUserAndType(ctx context.Context, userID int64, gameType string) ([]domain.GameScore, error)

	// Leaderboard returns up to limit scores for the game, descending by
	// score with ties broken by earliest play time.
	Leaderboard(ctx context.Context, gameType string, limit int) ([]domain.GameScore, error)
}

// AchievementStore defines the interface for the append-only unlock ledger.
type AchievementStore interface {
	// Append writes an unlock record and assigns its ID.
	Append(ctx context.Context, achievement *domain.Achievement) (*domain.Achievement, error)

	// ListByUser returns a user's unlocks, most recent first.
	ListByUser(ctx context.Context, userID int64) ([]domain.Achievement, error)
}
