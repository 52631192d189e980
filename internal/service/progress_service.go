package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/nihongo-api/internal/domain"
	"github.com/phrazzld/nihongo-api/internal/domain/mastery"
	"github.com/phrazzld/nihongo-api/internal/store"
)

// Points awarded per correctly answered review.
const pointsPerCorrectReview = 10

// UserStats is the aggregate learning summary for one user.
type UserStats struct {
	TotalWords    int `json:"total_words"`
	MasteredWords int `json:"mastered_words"`
	Accuracy      int `json:"accuracy"`
	StreakDays    int `json:"streak_days"`
	TotalPoints   int `json:"total_points"`
}

// ProgressService manages per-word review progress and aggregate statistics.
type ProgressService interface {
	// RecordReview records one review outcome for a word. It increments the
	// appropriate counter, recomputes the mastery level, stamps the review
	// time, and awards points for a correct answer. Returns
	// store.ErrWordNotFound if the word does not exist in the catalog.
	RecordReview(ctx context.Context, userID, wordID int64, correct bool) (*domain.UserProgress, error)

	// ListProgress returns all of a user's progress records.
	ListProgress(ctx context.Context, userID int64) ([]domain.UserProgress, error)

	// ListProgressByType returns a user's progress records restricted to
	// words of the given writing system.
	ListProgressByType(ctx context.Context, userID int64, wordType domain.WordType) ([]domain.UserProgress, error)

	// GetStats computes the user's aggregate statistics from their progress
	// records and account fields.
	GetStats(ctx context.Context, userID int64) (*UserStats, error)
}

// progressService implements ProgressService.
type progressService struct {
	progressStore store.ProgressStore
	wordStore     store.VocabularyStore
	userStore     store.UserStore
	logger        *slog.Logger
	now           func() time.Time
}

// NewProgressService creates a ProgressService.
func NewProgressService(
	progressStore store.ProgressStore,
	wordStore store.VocabularyStore,
	userStore store.UserStore,
	logger *slog.Logger,
) ProgressService {
	return &progressService{
		progressStore: progressStore,
		wordStore:     wordStore,
		userStore:     userStore,
		logger:        logger.With("component", "progress_service"),
		now:           time.Now,
	}
}

// RecordReview implements ProgressService.RecordReview.
func (s *progressService) RecordReview(ctx context.Context, userID, wordID int64, correct bool) (*domain.UserProgress, error) {
	if userID <= 0 || wordID <= 0 {
		return nil, fmt.Errorf("%w: user and word IDs must be positive", ErrInvalidInput)
	}

	if _, err := s.wordStore.GetByID(ctx, wordID); err != nil {
		if errors.Is(err, store.ErrWordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("looking up word %d: %w", wordID, err)
	}

	reviewedAt := s.now().UTC()
	progress, err := s.progressStore.Upsert(ctx, userID, wordID, func(p *domain.UserProgress) {
		if correct {
			p.Correct++
		} else {
			p.Incorrect++
		}
		p.MasteryLevel = mastery.Level(p.Correct, p.Incorrect)
		p.LastReviewed = reviewedAt
	})
	if err != nil {
		return nil, fmt.Errorf("recording review: %w", err)
	}

	if correct {
		if _, err := s.userStore.AddPoints(ctx, userID, pointsPerCorrectReview); err != nil {
			// The review itself is already durable; a failed award is logged
			// and not surfaced as a review failure.
			s.logger.ErrorContext(ctx, "failed to award review points",
				"error", err, "user_id", userID, "word_id", wordID)
		}
	}

	s.logger.DebugContext(ctx, "review recorded",
		"user_id", userID,
		"word_id", wordID,
		"correct", correct,
		"mastery_level", progress.MasteryLevel)

	return progress, nil
}

// ListProgress implements ProgressService.ListProgress.
func (s *progressService) ListProgress(ctx context.Context, userID int64) ([]domain.UserProgress, error) {
	records, err := s.progressStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing progress: %w", err)
	}
	return records, nil
}

// ListProgressByType implements ProgressService.ListProgressByType.
func (s *progressService) ListProgressByType(ctx context.Context, userID int64, wordType domain.WordType) ([]domain.UserProgress, error) {
	if !wordType.Valid() {
		return nil, fmt.Errorf("%w: unknown word type %q", ErrInvalidInput, wordType)
	}

	records, err := s.progressStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing progress: %w", err)
	}

	words, err := s.wordStore.ListByType(ctx, wordType)
	if err != nil {
		return nil, fmt.Errorf("listing %s words: %w", wordType, err)
	}

	wordIDs := make(map[int64]struct{}, len(words))
	for _, w := range words {
		wordIDs[w.ID] = struct{}{}
	}

	filtered := make([]domain.UserProgress, 0, len(records))
	for _, p := range records {
		if _, ok := wordIDs[p.WordID]; ok {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// GetStats implements ProgressService.GetStats.
func (s *progressService) GetStats(ctx context.Context, userID int64) (*UserStats, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("looking up user %d: %w", userID, err)
	}

	records, err := s.progressStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing progress: %w", err)
	}

	stats := &UserStats{
		TotalWords:  len(records),
		StreakDays:  user.StreakDays,
		TotalPoints: user.TotalPoints,
	}

	totalCorrect := 0
	totalAttempts := 0
	for _, p := range records {
		if p.MasteryLevel >= 4 {
			stats.MasteredWords++
		}
		totalCorrect += p.Correct
		totalAttempts += p.TotalReviews()
	}

	if totalAttempts > 0 {
		stats.Accuracy = int(float64(totalCorrect)/float64(totalAttempts)*100 + 0.5)
	}

	return stats, nil
}
