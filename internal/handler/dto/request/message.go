package request

import (
	"stayhub/internal/usecase/commands"

	"github.com/google/uuid"
)

type SendMessageRequest struct {
	RecipientID uuid.UUID `json:"recipient_id" binding:"required"`
	Body        string    `json:"body" binding:"required,notblank,max=2000"`
}

func (r *SendMessageRequest) ToCommand() commands.SendMessageRequest {
	return commands.SendMessageRequest{RecipientID: r.RecipientID, Body: r.Body}
}
