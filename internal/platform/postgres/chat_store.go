package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/phrazzld/nihongo-api/internal/domain"
	"github.com/phrazzld/nihongo-api/internal/store"
)

// ChatStore implements store.ChatStore using PostgreSQL.
type ChatStore struct {
	db *sql.DB
}

var _ store.ChatStore = (*ChatStore)(nil)

// NewChatStore creates a PostgreSQL implementation of the ChatStore
// interface.
func NewChatStore(db *sql.DB) *ChatStore {
	return &ChatStore{db: db}
}

const chatColumns = `id, user_id, message, response, timestamp`

// Append implements store.ChatStore.Append.
func (s *ChatStore) Append(ctx context.Context, message *domain.ChatMessage) (*domain.ChatMessage, error) {
	if err := message.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	row := s.db.QueryRowContext(ctx, `
		INSERT INTO chat_messages (user_id, message, response, timestamp)
		VALUES ($1, $2, $3, $4)
		RETURNING `+chatColumns,
		message.UserID, message.Message, message.Response, message.Timestamp)

	var created domain.ChatMessage
	if err := row.Scan(&created.ID, &created.UserID, &created.Message,
		&created.Response, &created.Timestamp); err != nil {
		return nil, MapError(err)
	}
	return &created, nil
}

// ListByUser implements store.ChatStore.ListByUser. Newest exchanges come
// first; a non-positive limit returns the full history.
func (s *ChatStore) ListByUser(ctx context.Context, userID int64, limit int) ([]domain.ChatMessage, error) {
	query := `
		SELECT ` + chatColumns + ` FROM chat_messages
		WHERE user_id = $1
		ORDER BY timestamp DESC, id DESC`
	args := []any{userID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var messages []domain.ChatMessage
	for rows.Next() {
		var m domain.ChatMessage
		if err := rows.Scan(&m.ID, &m.UserID, &m.Message, &m.Response, &m.Timestamp); err != nil {
			return nil, MapError(err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
