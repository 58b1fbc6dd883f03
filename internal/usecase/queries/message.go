package queries

import (
	"context"
	"time"

	"stayhub/internal/domain/message"
	"stayhub/internal/infra"

	"github.com/google/uuid"
)

type MessageReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*MessageView, error)
	ListForUser(ctx context.Context, userID uuid.UUID, after *Keyset, limit int32) ([]*MessageView, error)
	ListConversation(ctx context.Context, userID, otherID uuid.UUID, after *Keyset, limit int32) ([]*MessageView, error)
}

type MessageQueries interface {
	Get(ctx context.Context, id, userID uuid.UUID) (*MessageView, error)
	ListMine(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*MessageView, *Cursor, error)
	Conversation(ctx context.Context, userID, otherID uuid.UUID, cursor *Cursor, limit int) ([]*MessageView, *Cursor, error)
}

type messageQueriesImpl struct {
	readStore MessageReadStore
}

func NewMessageQueries(readStore MessageReadStore) MessageQueries {
	return &messageQueriesImpl{readStore: readStore}
}

func (q *messageQueriesImpl) Get(ctx context.Context, id, userID uuid.UUID) (*MessageView, error) {
	m, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, message.ErrMessageNotFound
		}
		return nil, err
	}
	if m.SenderID != userID && m.RecipientID != userID {
		return nil, message.ErrMessageNotFound
	}
	return m, nil
}

// ListMine pages newest first over sent and received messages.
func (q *messageQueriesImpl) ListMine(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*MessageView, *Cursor, error) {
	limit = ValidateLimit(limit)
	after, err := cursor.Keyset()
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.readStore.ListForUser(ctx, userID, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	rows, next := paginate(rows, limit, sentAtKey)
	return rows, next, nil
}

// Conversation pages oldest first so a thread reads top to bottom.
func (q *messageQueriesImpl) Conversation(ctx context.Context, userID, otherID uuid.UUID, cursor *Cursor, limit int) ([]*MessageView, *Cursor, error) {
	limit = ValidateLimit(limit)
	after, err := cursor.Keyset()
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.readStore.ListConversation(ctx, userID, otherID, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	rows, next := paginate(rows, limit, sentAtKey)
	return rows, next, nil
}

func sentAtKey(m *MessageView) (time.Time, uuid.UUID) { return m.SentAt, m.ID }
