package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/nihongo-api/internal/domain"
	"github.com/phrazzld/nihongo-api/internal/generation"
	"github.com/phrazzld/nihongo-api/internal/store"
)

// Default and maximum chat history sizes.
const (
	defaultChatHistoryLimit = 20
	maxChatHistoryLimit     = 100
)

// fallbackReply is returned when the external generator fails or is absent.
// It keeps the tutor educational even when the collaborator is down.
var fallbackReply = generation.Reply{
	Message:     "Sorry, I'm having trouble right now. Let's practice some basic Japanese! こんにちは (konnichiwa) means hello!",
	Suggestions: []string{"Learn Hiragana", "Practice Vocabulary", "Cultural Facts"},
}

// ChatService runs the tutor chat and serves its history.
type ChatService interface {
	// Send produces a tutor reply to the learner's message and appends the
	// exchange to the chat log. Generator failures degrade to a static
	// fallback reply; they never fail the request.
	Send(ctx context.Context, userID int64, message string) (*generation.Reply, error)

	// History returns up to limit of the user's most recent exchanges,
	// newest first.
	History(ctx context.Context, userID int64, limit int) ([]domain.ChatMessage, error)

	// AnalyzeProgress produces encouraging feedback on the user's learning
	// statistics, with a static fallback when the generator is unavailable.
	AnalyzeProgress(ctx context.Context, stats *UserStats) (string, error)
}

// chatService implements ChatService.
type chatService struct {
	chatStore store.ChatStore
	generator generation.Generator
	logger    *slog.Logger
}

// NewChatService creates a ChatService. generator may be nil, in which case
// every reply is the static fallback.
func NewChatService(chatStore store.ChatStore, generator generation.Generator, logger *slog.Logger) ChatService {
	return &chatService{
		chatStore: chatStore,
		generator: generator,
		logger:    logger.With("component", "chat_service"),
	}
}

// Send implements ChatService.Send.
func (s *chatService) Send(ctx context.Context, userID int64, message string) (*generation.Reply, error) {
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("%w: message cannot be empty", ErrInvalidInput)
	}

	reply := fallbackReply
	if s.generator != nil {
		generated, err := s.generator.GenerateReply(ctx, message)
		if err != nil {
			s.logger.WarnContext(ctx, "reply generation failed, using fallback",
				"error", err, "user_id", userID)
		} else {
			reply = *generated
		}
	}

	entry, err := domain.NewChatMessage(userID, message, reply.Message)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, err := s.chatStore.Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("saving chat message: %w", err)
	}

	return &reply, nil
}

// History implements ChatService.History.
func (s *chatService) History(ctx context.Context, userID int64, limit int) ([]domain.ChatMessage, error) {
	if limit <= 0 {
		limit = defaultChatHistoryLimit
	}
	if limit > maxChatHistoryLimit {
		limit = maxChatHistoryLimit
	}

	history, err := s.chatStore.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing chat history: %w", err)
	}
	return history, nil
}

// AnalyzeProgress implements ChatService.AnalyzeProgress.
func (s *chatService) AnalyzeProgress(ctx context.Context, stats *UserStats) (string, error) {
	if stats == nil {
		return "", fmt.Errorf("%w: stats cannot be nil", ErrInvalidInput)
	}

	if s.generator != nil {
		summary := fmt.Sprintf(
			"words studied: %d, mastered: %d, accuracy: %d%%, streak: %d days, points: %d",
			stats.TotalWords, stats.MasteredWords, stats.Accuracy, stats.StreakDays, stats.TotalPoints)
		analysis, err := s.generator.AnalyzeProgress(ctx, summary)
		if err == nil {
			return analysis, nil
		}
		s.logger.WarnContext(ctx, "progress analysis failed, using fallback", "error", err)
	}

	return "You're making great progress! Keep practicing regularly to improve your Japanese skills.", nil
}
