package readstore

import (
	"context"

	"stayhub/internal/infra"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/pgconv"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type MessageViewQueries interface {
	GetMessageByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Messages, error)
	ListMessagesForUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListMessagesForUserParams) ([]sqlc.Messages, error)
	ListConversation(ctx context.Context, db sqlc.DBTX, arg sqlc.ListConversationParams) ([]sqlc.Messages, error)
}

type MessageReadStore struct {
	queries MessageViewQueries
	db      sqlc.DBTX
}

func NewMessageReadStore(queries MessageViewQueries, db sqlc.DBTX) *MessageReadStore {
	return &MessageReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *MessageReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.MessageView, error) {
	row, err := r.queries.GetMessageByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("message not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get message by id", err)
	}
	return toMessageView(row), nil
}

func (r *MessageReadStore) ListForUser(ctx context.Context, userID uuid.UUID, after *queries.Keyset, limit int32) ([]*queries.MessageView, error) {
	at, id := keysetParams(after)
	rows, err := r.queries.ListMessagesForUser(ctx, r.db, sqlc.ListMessagesForUserParams{
		UserID:       userID,
		CursorSentAt: at,
		CursorID:     id,
		Limit:        limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list messages for user", err)
	}
	return toMessageViews(rows), nil
}

func (r *MessageReadStore) ListConversation(ctx context.Context, userID, otherID uuid.UUID, after *queries.Keyset, limit int32) ([]*queries.MessageView, error) {
	at, id := keysetParams(after)
	rows, err := r.queries.ListConversation(ctx, r.db, sqlc.ListConversationParams{
		UserID:       userID,
		OtherID:      otherID,
		CursorSentAt: at,
		CursorID:     id,
		Limit:        limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list conversation", err)
	}
	return toMessageViews(rows), nil
}

func toMessageViews(rows []sqlc.Messages) []*queries.MessageView {
	items := make([]*queries.MessageView, 0, len(rows))
	for _, row := range rows {
		items = append(items, toMessageView(row))
	}
	return items
}

func toMessageView(row sqlc.Messages) *queries.MessageView {
	return &queries.MessageView{
		ID:          row.ID,
		SenderID:    row.SenderID,
		RecipientID: row.RecipientID,
		Body:        row.Body,
		IsRead:      row.IsRead,
		SentAt:      pgconv.TimeFromPgtype(row.SentAt),
	}
}
