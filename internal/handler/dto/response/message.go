package response

import (
	"time"

	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type MessageResponse struct {
	ID          uuid.UUID `json:"id"`
	SenderID    uuid.UUID `json:"sender_id"`
	RecipientID uuid.UUID `json:"recipient_id"`
	Body        string    `json:"body"`
	IsRead      bool      `json:"is_read"`
	SentAt      time.Time `json:"sent_at"`
}

type MessageListResponse struct {
	Messages   []*MessageResponse `json:"messages"`
	NextCursor *string            `json:"next_cursor"`
}

func FromMessageView(v *queries.MessageView) *MessageResponse {
	var res MessageResponse
	_ = copier.Copy(&res, v)
	return &res
}

func FromMessageList(views []*queries.MessageView, next *queries.Cursor) *MessageListResponse {
	res := &MessageListResponse{
		Messages:   make([]*MessageResponse, len(views)),
		NextCursor: nextCursor(next),
	}
	for i, v := range views {
		res.Messages[i] = FromMessageView(v)
	}
	return res
}
