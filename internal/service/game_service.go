package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/nihongo-api/internal/domain"
	"github.com/phrazzld/nihongo-api/internal/store"
)

// GameService records practice-game rounds and serves leaderboards.
type GameService interface {
	// SubmitScore appends a finished round to the ledger and awards the raw
	// score as points.
	SubmitScore(ctx context.Context, userID int64, gameType string, score, level int) (*domain.GameScore, error)

	// UserScores returns the user's rounds for one game, highest score first.
	UserScores(ctx context.Context, userID int64, gameType string) ([]domain.GameScore, error)

	// Leaderboard returns up to limit top scores for the game.
	Leaderboard(ctx context.Context, gameType string, limit int) ([]domain.GameScore, error)
}

// Default and maximum leaderboard sizes.
const (
	defaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 100
)

// gameService implements GameService.
type gameService struct {
	scoreStore store.GameScoreStore
	userStore  store.UserStore
	logger     *slog.Logger
}

// NewGameService creates a GameService.
func NewGameService(scoreStore store.GameScoreStore, userStore store.UserStore, logger *slog.Logger) GameService {
	return &gameService{
		scoreStore: scoreStore,
		userStore:  userStore,
		logger:     logger.With("component", "game_service"),
	}
}

// SubmitScore implements GameService.SubmitScore.
func (s *gameService) SubmitScore(ctx context.Context, userID int64, gameType string, score, level int) (*domain.GameScore, error) {
	gameScore, err := domain.NewGameScore(userID, gameType, score, level)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	saved, err := s.scoreStore.Append(ctx, gameScore)
	if err != nil {
		return nil, fmt.Errorf("saving game score: %w", err)
	}

	if _, err := s.userStore.AddPoints(ctx, userID, score); err != nil {
		s.logger.ErrorContext(ctx, "failed to award game points",
			"error", err, "user_id", userID, "points", score)
	}

	s.logger.InfoContext(ctx, "game score submitted",
		"user_id", userID,
		"game_type", gameType,
		"score", score,
		"level", level)

	return saved, nil
}

// UserScores implements GameService.UserScores.
func (s *gameService) UserScores(ctx context.Context, userID int64, gameType string) ([]domain.GameScore, error) {
	if gameType == "" {
		return nil, fmt.Errorf("%w: game type cannot be empty", ErrInvalidInput)
	}

	scores, err := s.scoreStore.ListByUserAndType(ctx, userID, gameType)
	if err != nil {
		return nil, fmt.Errorf("listing game scores: %w", err)
	}
	return scores, nil
}

// Leaderboard implements GameService.Leaderboard.
func (s *gameService) Leaderboard(ctx context.Context, gameType string, limit int) ([]domain.GameScore, error) {
	if gameType == "" {
		return nil, fmt.Errorf("%w: game type cannot be empty", ErrInvalidInput)
	}
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}
	if limit > maxLeaderboardLimit {
		limit = maxLeaderboardLimit
	}

	board, err := s.scoreStore.Leaderboard(ctx, gameType, limit)
	if err != nil {
		return nil, fmt.Errorf("building leaderboard: %w", err)
	}
	return board, nil
}
