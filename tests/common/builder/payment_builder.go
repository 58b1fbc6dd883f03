//go:build unit || e2e

package builder

import (
	"time"

	"stayhub/internal/domain/payment"
	"stayhub/internal/domain/pricing"
	reqdto "stayhub/internal/handler/dto/request"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentBuilder struct {
	ID            uuid.UUID
	BookingID     uuid.UUID
	GuestID       uuid.UUID
	PropertyID    uuid.UUID
	Amount        string
	PaymentMethod string
	TransactionID *string
	PaymentDate   time.Time
}

func NewPaymentBuilder() *PaymentBuilder {
	return &PaymentBuilder{
		ID:            uuid.New(),
		BookingID:     uuid.New(),
		GuestID:       uuid.New(),
		PropertyID:    uuid.New(),
		Amount:        "750.00",
		PaymentMethod: "credit_card",
		PaymentDate:   time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC),
	}
}

func (p *PaymentBuilder) With(mutate func(*PaymentBuilder)) *PaymentBuilder {
	mutate(p)
	return p
}

func (p *PaymentBuilder) amount() pricing.Money {
	m, err := pricing.ParsePositive(p.Amount)
	if err != nil {
		panic("invalid Amount in PaymentBuilder: " + err.Error())
	}
	return m
}

// Build methods
func (p *PaymentBuilder) BuildDomain() (*payment.Payment, error) {
	method, err := payment.NewMethod(p.PaymentMethod)
	if err != nil {
		return nil, err
	}
	return payment.ReconstructPayment(p.ID, p.BookingID, p.amount(), method, p.TransactionID, true, p.PaymentDate, p.PaymentDate), nil
}

func (p *PaymentBuilder) BuildView() *queries.PaymentView {
	return &queries.PaymentView{
		ID:            p.ID,
		BookingID:     p.BookingID,
		GuestID:       p.GuestID,
		PropertyID:    p.PropertyID,
		Amount:        p.amount(),
		PaymentMethod: p.PaymentMethod,
		TransactionID: p.TransactionID,
		IsSuccessful:  true,
		PaymentDate:   p.PaymentDate,
		CreatedAt:     p.PaymentDate,
	}
}

func (p *PaymentBuilder) BuildCaptureRequestDTO() reqdto.CapturePaymentRequest {
	return reqdto.CapturePaymentRequest{
		BookingID:     p.BookingID,
		Amount:        p.Amount,
		PaymentMethod: p.PaymentMethod,
		TransactionID: p.TransactionID,
	}
}

// Fluent builder methods
func (p *PaymentBuilder) WithID(id uuid.UUID) *PaymentBuilder {
	p.ID = id
	return p
}

func (p *PaymentBuilder) WithBookingID(id uuid.UUID) *PaymentBuilder {
	p.BookingID = id
	return p
}

func (p *PaymentBuilder) WithGuestID(id uuid.UUID) *PaymentBuilder {
	p.GuestID = id
	return p
}

func (p *PaymentBuilder) WithAmount(amount string) *PaymentBuilder {
	p.Amount = amount
	return p
}

func (p *PaymentBuilder) WithMethod(method string) *PaymentBuilder {
	p.PaymentMethod = method
	return p
}

func (p *PaymentBuilder) WithTransactionID(id string) *PaymentBuilder {
	p.TransactionID = &id
	return p
}
