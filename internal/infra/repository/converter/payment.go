package converter

import (
	"stayhub/internal/domain/payment"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/pgconv"
)

func PaymentToCreateParams(p *payment.Payment) sqlc.CreatePaymentParams {
	return sqlc.CreatePaymentParams{
		ID:            p.ID(),
		BookingID:     p.BookingID(),
		Amount:        pgconv.MoneyToNumeric(p.Amount()),
		PaymentMethod: p.Method().String(),
		TransactionID: pgconv.StringPtrToPgtype(p.TransactionID()),
		IsSuccessful:  p.IsSuccessful(),
		PaymentDate:   pgconv.TimeToPgtype(p.PaymentDate()),
		CreatedAt:     pgconv.TimeToPgtype(p.CreatedAt()),
	}
}
