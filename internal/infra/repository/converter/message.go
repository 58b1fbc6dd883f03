package converter

import (
	"stayhub/internal/domain/message"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/pgconv"
)

func MessageToCreateParams(m *message.Message) sqlc.CreateMessageParams {
	return sqlc.CreateMessageParams{
		ID:          m.ID(),
		SenderID:    m.SenderID(),
		RecipientID: m.RecipientID(),
		Body:        m.Body(),
		SentAt:      pgconv.TimeToPgtype(m.SentAt()),
	}
}

func MessageFromRow(row sqlc.Messages) *message.Message {
	return message.ReconstructMessage(
		row.ID,
		row.SenderID,
		row.RecipientID,
		row.Body,
		row.IsRead,
		pgconv.TimeFromPgtype(row.SentAt),
	)
}
