package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/nihongo-api/internal/domain"
	"github.com/phrazzld/nihongo-api/internal/store"
)

// AchievementService manages the append-only achievement unlock ledger.
type AchievementService interface {
	// Unlock appends an unlock record for the user.
	Unlock(ctx context.Context, userID int64, achType, title, description, iconName string) (*domain.Achievement, error)

	// UserAchievements returns the user's unlocks, most recent first.
	UserAchievements(ctx context.Context, userID int64) ([]domain.Achievement, error)
}

// achievementService implements AchievementService.
type achievementService struct {
	achievementStore store.AchievementStore
	logger           *slog.Logger
}

// NewAchievementService creates an AchievementService.
func NewAchievementService(achievementStore store.AchievementStore, logger *slog.Logger) AchievementService {
	return &achievementService{
		achievementStore: achievementStore,
		logger:           logger.With("component", "achievement_service"),
	}
}

// Unlock implements AchievementService.Unlock.
func (s *achievementService) Unlock(ctx context.Context, userID int64, achType, title, description, iconName string) (*domain.Achievement, error) {
	achievement, err := domain.NewAchievement(userID, achType, title, description, iconName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	saved, err := s.achievementStore.Append(ctx, achievement)
	if err != nil {
		return nil, fmt.Errorf("saving achievement: %w", err)
	}

	s.logger.InfoContext(ctx, "achievement unlocked",
		"user_id", userID, "type", achType, "title", title)
	return saved, nil
}

// UserAchievements implements AchievementService.UserAchievements.
func (s *achievementService) UserAchievements(ctx context.Context, userID int64) ([]domain.Achievement, error) {
	achievements, err := s.achievementStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing achievements: %w", err)
	}
	return achievements, nil
}
