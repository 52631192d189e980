package memstore

import (
	"context"
	"fmt"
	"sort"

	"github.com/phrazzld/nihongo-api/internal/domain"
	"github.com/phrazzld/nihongo-api/internal/store"
)

// ChatStore implements store.ChatStore as an append-only in-memory log.
type ChatStore struct {
	messages *collection[domain.ChatMessage]
}

var _ store.ChatStore = (*ChatStore)(nil)

// NewChatStore creates an empty in-memory chat log.
func NewChatStore() *ChatStore {
	return &ChatStore{messages: newCollection[domain.ChatMessage](nil)}
}

// Append implements store.ChatStore.Append.
func (s *ChatStore) Append(ctx context.Context, message *domain.ChatMessage) (*domain.ChatMessage, error) {
	if err := message.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	created := s.messages.create(func(id int64) domain.ChatMessage {
		m := *message
		m.ID = id
		return m
	})
	return &created, nil
}

// ListByUser implements store.ChatStore.ListByUser.
func (s *ChatStore) ListByUser(ctx context.Context, userID int64, limit int) ([]domain.ChatMessage, error) {
	messages := s.messages.list(func(m domain.ChatMessage) bool {
		return m.UserID == userID
	})
	sort.Slice(messages, func(i, j int) bool {
		if !messages[i].Timestamp.Equal(messages[j].Timestamp) {
			return messages[i].Timestamp.After(messages[j].Timestamp)
		}
		return messages[i].ID > messages[j].ID
	})
	if limit > 0 && len(messages) > limit {
		messages = messages[:limit]
	}
	return messages, nil
}
