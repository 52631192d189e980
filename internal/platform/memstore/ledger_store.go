package memstore

import (
	"context"
	"fmt"
	"sort"

	"github.com/phrazzld/nihongo-api/internal/domain"
	"github.com/phrazzld/nihongo-api/internal/store"
)

// QuizStore implements store.QuizStore as an append-only in-memory ledger.
type QuizStore struct {
	quizzes *collection[domain.Quiz]
}

var _ store.QuizStore = (*QuizStore)(nil)

// NewQuizStore creates an empty in-memory quiz ledger.
func NewQuizStore() *QuizStore {
	return &QuizStore{quizzes: newCollection[domain.Quiz](nil)}
}

// Append implements store.QuizStore.Append.
func (s *QuizStore) Append(ctx context.Context, quiz *domain.Quiz) (*domain.Quiz, error) {
	if err := quiz.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	created := s.quizzes.create(func(id int64) domain.Quiz {
		q := *quiz
		q.ID = id
		return q
	})
	return &created, nil
}

// ListByUser implements store.QuizStore.ListByUser.
func (s *QuizStore) ListByUser(ctx context.Context, userID int64) ([]domain.Quiz, error) {
	quizzes := s.quizzes.list(func(q domain.Quiz) bool {
		return q.UserID == userID
	})
	sort.Slice(quizzes, func(i, j int) bool {
		if !quizzes[i].CompletedAt.Equal(quizzes[j].CompletedAt) {
			return quizzes[i].CompletedAt.After(quizzes[j].CompletedAt)
		}
		return quizzes[i].ID > quizzes[j].ID
	})
	return quizzes, nil
}

// GameScoreStore implements store.GameScoreStore as an append-only in-memory
// ledger.
type GameScoreStore struct {
	scores *collection[domain.GameScore]
}

var _ store.GameScoreStore = (*GameScoreStore)(nil)

// NewGameScoreStore creates an empty in-memory game score ledger.
func NewGameScoreStore() *GameScoreStore {
	return &GameScoreStore{scores: newCollection[domain.GameScore](nil)}
}

// Append implements store.GameScoreStore.Append.
func (s *GameScoreStore) Append(ctx context.Context, score *domain.GameScore) (*domain.GameScore, error) {
	if err := score.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	created := s.scores.create(func(id int64) domain.GameScore {
		gs := *score
		gs.ID = id
		return gs
	})
	return &created, nil
}

// ListByUserAndType implements store.GameScoreStore.ListByUserAndType.
func (s *GameScoreStore) ListByUserAndType(ctx context.Context, userID int64, gameType string) ([]domain.GameScore, error) {
	scores := s.scores.list(func(gs domain.GameScore) bool {
		return gs.UserID == userID && gs.GameType == gameType
	})
	sortScoresDesc(scores)
	return scores, nil
}

// Leaderboard implements store.GameScoreStore.Leaderboard.
func (s *GameScoreStore) Leaderboard(ctx context.Context, gameType string, limit int) ([]domain.GameScore, error) {
	scores := s.scores.list(func(gs domain.GameScore) bool {
		return gs.GameType == gameType
	})
	sortScoresDesc(scores)
	if limit > 0 && len(scores) > limit {
		scores = scores[:limit]
	}
	return scores, nil
}

// sortScoresDesc orders scores highest first, breaking ties so the earlier
// play ranks above the later one.
func sortScoresDesc(scores []domain.GameScore) {
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		if !scores[i].PlayedAt.Equal(scores[j].PlayedAt) {
			return scores[i].PlayedAt.Before(scores[j].PlayedAt)
		}
		return scores[i].ID < scores[j].ID
	})
}

// AchievementStore implements store.AchievementStore as an append-only
// in-memory ledger.
type AchievementStore struct {
	unlocks *collection[domain.Achievement]
}

var _ store.AchievementStore = (*AchievementStore)(nil)

// NewAchievementStore creates an empty in-memory achievement ledger.
func NewAchievementStore() *AchievementStore {
	return &AchievementStore{unlocks: newCollection[domain.Achievement](nil)}
}

// Append implements store.AchievementStore.Append.
func (s *AchievementStore) Append(ctx context.Context, achievement *domain.Achievement) (*domain.Achievement, error) {
	if err := achievement.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	created := s.unlocks.create(func(id int64) domain.Achievement {
		a := *achievement
		a.ID = id
		return a
	})
	return &created, nil
}

// ListByUser implements store.AchievementStore.ListByUser.
func (s *AchievementStore) ListByUser(ctx context.Context, userID int64) ([]domain.Achievement, error) {
	unlocks := s.unlocks.list(func(a domain.Achievement) bool {
		return a.UserID == userID
	})
	sort.Slice(unlocks, func(i, j int) bool {
		if !unlocks[i].UnlockedAt.Equal(unlocks[j].UnlockedAt) {
			return unlocks[i].UnlockedAt.After(unlocks[j].UnlockedAt)
		}
		return unlocks[i].ID > unlocks[j].ID
	})
	return unlocks, nil
}
