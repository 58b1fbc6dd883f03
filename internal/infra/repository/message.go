package repository

import (
	"context"

	"stayhub/internal/domain/message"
	"stayhub/internal/infra"
	"stayhub/internal/infra/repository/converter"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type MessageWriteQueries interface {
	CreateMessage(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateMessageParams) (uuid.UUID, error)
	GetMessageByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Messages, error)
	MarkMessageRead(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type MessageRepository struct {
	queries MessageWriteQueries
}

func NewMessageRepository(queries MessageWriteQueries) *MessageRepository {
	return &MessageRepository{queries: queries}
}

func (r *MessageRepository) Create(ctx context.Context, tx sqlc.DBTX, m *message.Message) (uuid.UUID, error) {
	id, err := r.queries.CreateMessage(ctx, tx, converter.MessageToCreateParams(m))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create message", err)
	}
	return id, nil
}

func (r *MessageRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*message.Message, error) {
	row, err := r.queries.GetMessageByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("message not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find message", err)
	}
	return converter.MessageFromRow(row), nil
}

// MarkRead is idempotent; an already read message still counts as updated.
func (r *MessageRepository) MarkRead(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	rows, err := r.queries.MarkMessageRead(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to mark message read", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("message not found", nil, infra.KindNotFound)
	}
	return nil
}
