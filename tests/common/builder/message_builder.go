//go:build unit || e2e

package builder

import (
	"time"

	"stayhub/internal/domain/message"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/pgconv"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type MessageBuilder struct {
	ID          uuid.UUID
	SenderID    uuid.UUID
	RecipientID uuid.UUID
	Body        string
	IsRead      bool
	SentAt      time.Time
}

func NewMessageBuilder() *MessageBuilder {
	return &MessageBuilder{
		ID:          uuid.New(),
		SenderID:    uuid.New(),
		RecipientID: uuid.New(),
		Body:        "Is the cottage available in June?",
		SentAt:      time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC),
	}
}

func (m *MessageBuilder) BuildDomain() *message.Message {
	return message.ReconstructMessage(m.ID, m.SenderID, m.RecipientID, m.Body, m.IsRead, m.SentAt)
}

func (m *MessageBuilder) BuildInfra() sqlc.Messages {
	return sqlc.Messages{
		ID:          m.ID,
		SenderID:    m.SenderID,
		RecipientID: m.RecipientID,
		Body:        m.Body,
		IsRead:      m.IsRead,
		SentAt:      pgconv.TimeToPgtype(m.SentAt),
	}
}

func (m *MessageBuilder) BuildView() *queries.MessageView {
	return &queries.MessageView{
		ID:          m.ID,
		SenderID:    m.SenderID,
		RecipientID: m.RecipientID,
		Body:        m.Body,
		IsRead:      m.IsRead,
		SentAt:      m.SentAt,
	}
}

func (m *MessageBuilder) WithID(id uuid.UUID) *MessageBuilder {
	m.ID = id
	return m
}

func (m *MessageBuilder) WithSenderID(id uuid.UUID) *MessageBuilder {
	m.SenderID = id
	return m
}

func (m *MessageBuilder) WithRecipientID(id uuid.UUID) *MessageBuilder {
	m.RecipientID = id
	return m
}

func (m *MessageBuilder) WithBody(body string) *MessageBuilder {
	m.Body = body
	return m
}

func (m *MessageBuilder) AsRead() *MessageBuilder {
	m.IsRead = true
	return m
}
