package response

import (
	"time"

	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PaymentResponse struct {
	ID            uuid.UUID `json:"id"`
	BookingID     uuid.UUID `json:"booking_id"`
	PropertyID    uuid.UUID `json:"property_id"`
	Amount        string    `json:"amount" copier:"-"`
	PaymentMethod string    `json:"payment_method"`
	TransactionID *string   `json:"transaction_id"`
	IsSuccessful  bool      `json:"is_successful"`
	PaymentDate   time.Time `json:"payment_date"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromPaymentView(v *queries.PaymentView) *PaymentResponse {
	var res PaymentResponse
	_ = copier.Copy(&res, v)
	res.Amount = v.Amount.String()
	return &res
}

func FromPaymentViews(views []*queries.PaymentView) []*PaymentResponse {
	res := make([]*PaymentResponse, len(views))
	for i, v := range views {
		res[i] = FromPaymentView(v)
	}
	return res
}
