package domain

import (
	"errors"
	"time"
)

// QuizType identifies the subject matter of a quiz attempt.
type QuizType string

// Possible quiz type values.
const (
	QuizTypeHiragana   QuizType = "hiragana"
	QuizTypeKatakana   QuizType = "katakana"
	QuizTypeKanji      QuizType = "kanji"
	QuizTypeVocabulary QuizType = "vocabulary"
)

// Common validation errors for Quiz.
var (
	ErrEmptyQuizUserID   = errors.New("quiz user ID cannot be empty")
	ErrInvalidQuizType   = errors.New("invalid quiz type")
	ErrNoQuestions       = errors.New("total questions must be greater than zero")
	ErrScoreOutOfRange   = errors.New("score must be between 0 and total questions")
)

// Quiz is an immutable record of a completed quiz attempt.
type Quiz struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	Type           QuizType  `json:"type"`
	CompletedAt    time.Time `json:"completed_at"`
}

// NewQuiz creates a quiz result record, validating the score range.
func NewQuiz(userID int64, score, totalQuestions int, quizType QuizType) (*Quiz, error) {
	q := &Quiz{
		UserID:         userID,
		Score:          score,
		TotalQuestions: totalQuestions,
		Type:           quizType,
		CompletedAt:    time.Now().UTC(),
	}

	if err := q.Validate(); err != nil {
		return nil, err
	}

	return q, nil
}

// Validate checks if the Quiz has valid data.
func (q *Quiz) Validate() error {
	if q.UserID <= 0 {
		return ErrEmptyQuizUserID
	}

	if !q.Type.Valid() {
		return ErrInvalidQuizType
	}

	if q.TotalQuestions <= 0 {
		return ErrNoQuestions
	}

	if q.Score < 0 || q.Score > q.TotalQuestions {
		return ErrScoreOutOfRange
	}

	return nil
}

// Valid reports whether the quiz type is a known subject.
func (t QuizType) Valid() bool {
	switch t {
	case QuizTypeHiragana, QuizTypeKatakana, QuizTypeKanji, QuizTypeVocabulary:
		return true
	default:
		return false
	}
}
