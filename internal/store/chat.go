package store

import (
	"context"

	"github.com/phrazzld/nihongo-api/internal/domain"
)

// ChatStore defines the interface for the append-only chat log.
type ChatStore interface {
	// Append writes a chat exchange and assigns its ID.
	Append(ctx context.Context, message *domain.ChatMessage) (*domain.ChatMessage, error)

	// ListByUser returns up to limit of a user's most recent exchanges,
	// newest first. A non-positive limit returns the full history.
	ListByUser(ctx context.Context, userID int64, limit int) ([]domain.ChatMessage, error)
}
