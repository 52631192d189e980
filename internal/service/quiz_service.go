package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/phrazzld/nihongo-api/internal/domain"
	"github.com/phrazzld/nihongo-api/internal/generation"
	"github.com/phrazzld/nihongo-api/internal/store"
)

// QuizService records quiz results and produces quiz questions.
type QuizService interface {
	// SubmitQuiz appends a completed quiz to the ledger and awards points
	// proportional to the score: round(100 * score / total).
	SubmitQuiz(ctx context.Context, userID int64, score, totalQuestions int, quizType domain.QuizType) (*domain.Quiz, error)

	// QuizHistory returns the user's quiz results, most recent first.
	QuizHistory(ctx context.Context, userID int64) ([]domain.Quiz, error)

	// GenerateQuestions produces count multiple-choice questions for the
	// given subject. When the external generator fails or is absent, it
	// falls back to questions built from the vocabulary catalog.
	GenerateQuestions(ctx context.Context, quizType domain.QuizType, difficulty, count int) ([]generation.Question, error)
}

// quizService implements QuizService.
type quizService struct {
	quizStore store.QuizStore
	userStore store.UserStore
	wordStore store.VocabularyStore
	generator generation.Generator
	logger    *slog.Logger
}

// NewQuizService creates a QuizService. generator may be nil, in which case
// question generation always uses the catalog fallback.
func NewQuizService(
	quizStore store.QuizStore,
	userStore store.UserStore,
	wordStore store.VocabularyStore,
	generator generation.Generator,
	logger *slog.Logger,
) QuizService {
	return &quizService{
		quizStore: quizStore,
		userStore: userStore,
		wordStore: wordStore,
		generator: generator,
		logger:    logger.With("component", "quiz_service"),
	}
}

// SubmitQuiz implements QuizService.SubmitQuiz.
func (s *quizService) SubmitQuiz(ctx context.Context, userID int64, score, totalQuestions int, quizType domain.QuizType) (*domain.Quiz, error) {
	quiz, err := domain.NewQuiz(userID, score, totalQuestions, quizType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	saved, err := s.quizStore.Append(ctx, quiz)
	if err != nil {
		return nil, fmt.Errorf("saving quiz result: %w", err)
	}

	points := int(float64(score)/float64(totalQuestions)*100 + 0.5)
	if _, err := s.userStore.AddPoints(ctx, userID, points); err != nil {
		s.logger.ErrorContext(ctx, "failed to award quiz points",
			"error", err, "user_id", userID, "points", points)
	}

	s.logger.InfoContext(ctx, "quiz submitted",
		"user_id", userID,
		"quiz_type", quizType,
		"score", score,
		"total", totalQuestions,
		"points", points)

	return saved, nil
}

// QuizHistory implements QuizService.QuizHistory.
func (s *quizService) QuizHistory(ctx context.Context, userID int64) ([]domain.Quiz, error) {
	history, err := s.quizStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing quiz history: %w", err)
	}
	return history, nil
}

// GenerateQuestions implements QuizService.GenerateQuestions.
func (s *quizService) GenerateQuestions(ctx context.Context, quizType domain.QuizType, difficulty, count int) ([]generation.Question, error) {
	if !quizType.Valid() {
		return nil, fmt.Errorf("%w: unknown quiz type %q", ErrInvalidInput, quizType)
	}
	if difficulty < 1 || difficulty > 5 {
		return nil, fmt.Errorf("%w: difficulty must be between 1 and 5", ErrInvalidInput)
	}
	if count <= 0 {
		return nil, fmt.Errorf("%w: count must be positive", ErrInvalidInput)
	}

	if s.generator != nil {
		questions, err := s.generator.GenerateQuestions(ctx, string(quizType), difficulty, count)
		if err == nil {
			return questions, nil
		}
		s.logger.WarnContext(ctx, "question generation failed, using catalog fallback",
			"error", err, "quiz_type", quizType)
	}

	return s.fallbackQuestions(ctx, quizType, count)
}

// fallbackQuestions builds meaning-recognition questions from the catalog:
// each asks for the meaning of a word, with distractor options drawn from
// other words of the same writing system.
func (s *quizService) fallbackQuestions(ctx context.Context, quizType domain.QuizType, count int) ([]generation.Question, error) {
	wordType := domain.WordType(quizType)
	if quizType == domain.QuizTypeVocabulary {
		wordType = domain.WordTypeHiragana
	}

	words, err := s.wordStore.ListByType(ctx, wordType)
	if err != nil {
		return nil, fmt.Errorf("listing fallback words: %w", err)
	}
	if len(words) < 2 {
		return nil, fmt.Errorf("not enough catalog words for %s questions", quizType)
	}

	rand.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})
	if len(words) < count {
		count = len(words)
	}

	questions := make([]generation.Question, 0, count)
	for i := 0; i < count; i++ {
		subject := words[i]

		options := []string{subject.Meaning}
		for j := 1; len(options) < 4 && j < len(words); j++ {
			distractor := words[(i+j)%len(words)]
			if distractor.ID != subject.ID {
				options = append(options, distractor.Meaning)
			}
		}

		correct := rand.Intn(len(options))
		options[0], options[correct] = options[correct], options[0]

		questions = append(questions, generation.Question{
			Question:     fmt.Sprintf("What does %s mean?", subject.Character),
			Options:      options,
			CorrectIndex: correct,
			Explanation:  fmt.Sprintf("%s is pronounced '%s' and means '%s'.", subject.Character, subject.Romanji, subject.Meaning),
		})
	}

	return questions, nil
}
