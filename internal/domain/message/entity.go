package message

import (
	"strings"
	"time"
	"unicode/utf8"

	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxBodyLength = 2000

var (
	ErrEmptyBody          = errs.Mark(errs.New("message body cannot be empty"), errs.ErrValidation)
	ErrBodyTooLong        = errs.Mark(errs.New("message body exceeds maximum length"), errs.ErrValidation)
	ErrMessageToSelf      = errs.Mark(errs.New("cannot send a message to yourself"), errs.ErrValidation)
	ErrMessageNotFound    = errs.Mark(errs.New("message not found"), errs.ErrNotFound)
	ErrRecipientNotFound  = errs.Mark(errs.New("recipient not found"), errs.ErrNotFound)
	ErrNotMessageReceiver = errs.Mark(errs.New("only the recipient can mark a message as read"), errs.ErrForbidden)
)

type Message struct {
	id          uuid.UUID
	senderID    uuid.UUID
	recipientID uuid.UUID
	body        string
	isRead      bool
	sentAt      time.Time
}

func NewMessage(senderID, recipientID uuid.UUID, body string, now time.Time) (*Message, error) {
	if senderID == recipientID {
		return nil, ErrMessageToSelf
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrEmptyBody
	}
	if utf8.RuneCountInString(body) > MaxBodyLength {
		return nil, ErrBodyTooLong
	}
	return &Message{
		id:          uuid.New(),
		senderID:    senderID,
		recipientID: recipientID,
		body:        body,
		sentAt:      now,
	}, nil
}

func ReconstructMessage(id, senderID, recipientID uuid.UUID, body string, isRead bool, sentAt time.Time) *Message {
	return &Message{
		id:          id,
		senderID:    senderID,
		recipientID: recipientID,
		body:        body,
		isRead:      isRead,
		sentAt:      sentAt,
	}
}

func (m *Message) IsParty(userID uuid.UUID) bool {
	return m.senderID == userID || m.recipientID == userID
}

// MarkRead is idempotent.
func (m *Message) MarkRead(userID uuid.UUID) error {
	if m.recipientID != userID {
		return ErrNotMessageReceiver
	}
	m.isRead = true
	return nil
}

func (m *Message) ID() uuid.UUID          { return m.id }
func (m *Message) SenderID() uuid.UUID    { return m.senderID }
func (m *Message) RecipientID() uuid.UUID { return m.recipientID }
func (m *Message) Body() string           { return m.body }
func (m *Message) IsRead() bool           { return m.isRead }
func (m *Message) SentAt() time.Time      { return m.sentAt }
