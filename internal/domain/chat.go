package domain

import (
	"errors"
	"time"
)

// Common validation errors for ChatMessage.
var (
	ErrEmptyChatUserID  = errors.New("chat message user ID cannot be empty")
	ErrEmptyChatMessage = errors.New("chat message cannot be empty")
)

// ChatMessage is one exchange in the tutor chat log: the learner's message
// and the reply that was shown. The log is append-only and serves history
// queries only; it feeds no derived metrics.
type ChatMessage struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

// NewChatMessage creates a chat log entry.
func NewChatMessage(userID int64, message, response string) (*ChatMessage, error) {
	m := &ChatMessage{
		UserID:    userID,
		Message:   message,
		Response:  response,
		Timestamp: time.Now().UTC(),
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}

// Validate checks if the ChatMessage has valid data.
func (m *ChatMessage) Validate() error {
	if m.UserID <= 0 {
		return ErrEmptyChatUserID
	}

	if m.Message == "" {
		return ErrEmptyChatMessage
	}

	return nil
}
