package request

import (
	"stayhub/internal/usecase/commands"

	"github.com/google/uuid"
)

type CapturePaymentRequest struct {
	BookingID     uuid.UUID `json:"booking_id" binding:"required"`
	Amount        string    `json:"amount" binding:"required,money"`
	PaymentMethod string    `json:"payment_method" binding:"required,payment_method"`
	TransactionID *string   `json:"transaction_id" binding:"omitempty,max=255"`
}

func (r *CapturePaymentRequest) ToCommand(idempotencyKey string) commands.CapturePaymentRequest {
	return commands.CapturePaymentRequest{
		BookingID:      r.BookingID,
		Amount:         r.Amount,
		PaymentMethod:  r.PaymentMethod,
		TransactionID:  r.TransactionID,
		IdempotencyKey: idempotencyKey,
	}
}
