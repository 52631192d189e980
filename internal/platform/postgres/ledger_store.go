package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/phrazzld/nihongo-api/internal/domain"
	"github.com/phrazzld/nihongo-api/internal/store"
)

// QuizStore implements store.QuizStore using PostgreSQL.
type QuizStore struct {
	db *sql.DB
}

var _ store.QuizStore = (*QuizStore)(nil)

// NewQuizStore creates a PostgreSQL implementation of the QuizStore interface.
func NewQuizStore(db *sql.DB) *QuizStore {
	return &QuizStore{db: db}
}

const quizColumns = `id, user_id, score, total_questions, type, completed_at`

// Append implements store.QuizStore.Append.
func (s *QuizStore) Append(ctx context.Context, quiz *domain.Quiz) (*domain.Quiz, error) {
	if err := quiz.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	row := s.db.QueryRowContext(ctx, `
		INSERT INTO quizzes (user_id, score, total_questions, type, completed_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+quizColumns,
		quiz.UserID, quiz.Score, quiz.TotalQuestions, quiz.Type, quiz.CompletedAt)

	var created domain.Quiz
	if err := row.Scan(&created.ID, &created.UserID, &created.Score,
		&created.TotalQuestions, &created.Type, &created.CompletedAt); err != nil {
		return nil, MapError(err)
	}
	return &created, nil
}

// ListByUser implements store.QuizStore.ListByUser.
func (s *QuizStore) ListByUser(ctx context.Context, userID int64) ([]domain.Quiz, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+quizColumns+` FROM quizzes
		WHERE user_id = $1
		ORDER BY completed_at DESC, id DESC`,
		userID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var quizzes []domain.Quiz
	for rows.Next() {
		var q domain.Quiz
		if err := rows.Scan(&q.ID, &q.UserID, &q.Score, &q.TotalQuestions,
			&q.Type, &q.CompletedAt); err != nil {
			return nil, MapError(err)
		}
		quizzes = append(quizzes, q)
	}
	return quizzes, rows.Err()
}

// GameScoreStore implements store.GameScoreStore using PostgreSQL.
type GameScoreStore struct {
	db *sql.DB
}

var _ store.GameScoreStore = (*GameScoreStore)(nil)

// NewGameScoreStore creates a PostgreSQL implementation of the GameScoreStore
// interface.
func NewGameScoreStore(db *sql.DB) *GameScoreStore {
	return &GameScoreStore{db: db}
}

const gameScoreColumns = `id, user_id, game_type, score, level, played_at`

func scanGameScores(rows *sql.Rows) ([]domain.GameScore, error) {
	defer func() { _ = rows.Close() }()

	var scores []domain.GameScore
	for rows.Next() {
		var gs domain.GameScore
		if err := rows.Scan(&gs.ID, &gs.UserID, &gs.GameType, &gs.Score,
			&gs.Level, &gs.PlayedAt); err != nil {
			return nil, err
		}
		scores = append(scores, gs)
	}
	return scores, rows.Err()
}

// Append implements store.GameScoreStore.Append.
func (s *GameScoreStore) Append(ctx context.Context, score *domain.GameScore) (*domain.GameScore, error) {
	if err := score.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	row := s.db.QueryRowContext(ctx, `
		INSERT INTO game_scores (user_id, game_type, score, level, played_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+gameScoreColumns,
		score.UserID, score.GameType, score.Score, score.Level, score.PlayedAt)

	var created domain.GameScore
	if err := row.Scan(&created.ID, &created.UserID, &created.GameType,
		&created.Score, &created.Level, &created.PlayedAt); err != nil {
		return nil, MapError(err)
	}
	return &created, nil
}

// ListByUserAndType implements store.GameScoreStore.ListByUserAndType.
func (s *GameScoreStore) ListByUserAndType(ctx context.Context, userID int64, gameType string) ([]domain.GameScore, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+gameScoreColumns+` FROM game_scores
		WHERE user_id = $1 AND game_type = $2
		ORDER BY score DESC, played_at ASC, id ASC`,
		userID, gameType)
	if err != nil {
		return nil, MapError(err)
	}
	return scanGameScores(rows)
}

// Leaderboard implements store.GameScoreStore.Leaderboard. Ties on score go
// to the earlier play.
func (s *GameScoreStore) Leaderboard(ctx context.Context, gameType string, limit int) ([]domain.GameScore, error) {
	query := `
		SELECT ` + gameScoreColumns + ` FROM game_scores
		WHERE game_type = $1
		ORDER BY score DESC, played_at ASC, id ASC`
	args := []any{gameType}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, MapError(err)
	}
	return scanGameScores(rows)
}

// AchievementStore implements store.AchievementStore using PostgreSQL.
type AchievementStore struct {
	db *sql.DB
}

var _ store.AchievementStore = (*AchievementStore)(nil)

// NewAchievementStore creates a PostgreSQL implementation of the
// AchievementStore interface.
func NewAchievementStore(db *sql.DB) *AchievementStore {
	return &AchievementStore{db: db}
}

const achievementColumns = `id, user_id, type, title, description, icon_name, unlocked_at`

// Append implements store.AchievementStore.Append.
func (s *AchievementStore) Append(ctx context.Context, achievement *domain.Achievement) (*domain.Achievement, error) {
	if err := achievement.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	row := s.db.QueryRowContext(ctx, `
		INSERT INTO achievements (user_id, type, title, description, icon_name, unlocked_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+achievementColumns,
		achievement.UserID, achievement.Type, achievement.Title,
		achievement.Description, achievement.IconName, achievement.UnlockedAt)

	var created domain.Achievement
	if err := row.Scan(&created.ID, &created.UserID, &created.Type, &created.Title,
		&created.Description, &created.IconName, &created.UnlockedAt); err != nil {
		return nil, MapError(err)
	}
	return &created, nil
}

// ListByUser implements store.AchievementStore.ListByUser.
func (s *AchievementStore) ListByUser(ctx context.Context, userID int64) ([]domain.Achievement, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+achievementColumns+` FROM achievements
		WHERE user_id = $1
		ORDER BY unlocked_at DESC, id DESC`,
		userID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var unlocks []domain.Achievement
	for rows.Next() {
		var a domain.Achievement
		if err := rows.Scan(&a.ID, &a.UserID, &a.Type, &a.Title,
			&a.Description, &a.IconName, &a.UnlockedAt); err != nil {
			return nil, MapError(err)
		}
		unlocks = append(unlocks, a)
	}
	return unlocks, rows.Err()
}
