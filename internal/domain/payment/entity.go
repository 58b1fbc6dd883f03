package payment

import (
	"strings"
	"time"

	"stayhub/internal/domain/pricing"
	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

type Method string

const (
	MethodCreditCard Method = "credit_card"
	MethodPayPal     Method = "paypal"
	MethodStripe     Method = "stripe"
)

const MaxTransactionIDLength = 255

var (
	ErrInvalidMethod        = errs.Mark(errs.New("invalid payment method"), errs.ErrValidation)
	ErrInvalidTransactionID = errs.Mark(errs.New("transaction id is too long"), errs.ErrValidation)
	ErrPaymentNotFound      = errs.Mark(errs.New("payment not found"), errs.ErrNotFound)
	ErrNotBookingGuest      = errs.Mark(errs.New("you do not have permission to pay for this booking"), errs.ErrForbidden)
)

func NewMethod(s string) (Method, error) {
	m := Method(s)
	switch m {
	case MethodCreditCard, MethodPayPal, MethodStripe:
		return m, nil
	default:
		return "", ErrInvalidMethod
	}
}

func (m Method) String() string { return string(m) }

type Payment struct {
	id            uuid.UUID
	bookingID     uuid.UUID
	amount        pricing.Money
	method        Method
	transactionID *string
	isSuccessful  bool
	paymentDate   time.Time
	createdAt     time.Time
}

// NewCapturedPayment records a payment as successful without any gateway
// round trip. Amounts are not reconciled against the booking total.
func NewCapturedPayment(bookingID uuid.UUID, amount pricing.Money, method Method, transactionID *string, now time.Time) (*Payment, error) {
	if !amount.IsPositive() {
		return nil, pricing.ErrNonPositive
	}
	if transactionID != nil {
		v := strings.TrimSpace(*transactionID)
		if len(v) > MaxTransactionIDLength {
			return nil, ErrInvalidTransactionID
		}
		if v == "" {
			transactionID = nil
		} else {
			transactionID = &v
		}
	}
	return &Payment{
		id:            uuid.New(),
		bookingID:     bookingID,
		amount:        amount,
		method:        method,
		transactionID: transactionID,
		isSuccessful:  true,
		paymentDate:   now,
		createdAt:     now,
	}, nil
}

func ReconstructPayment(
	id, bookingID uuid.UUID,
	amount pricing.Money,
	method Method,
	transactionID *string,
	isSuccessful bool,
	paymentDate, createdAt time.Time,
) *Payment {
	return &Payment{
		id:            id,
		bookingID:     bookingID,
		amount:        amount,
		method:        method,
		transactionID: transactionID,
		isSuccessful:  isSuccessful,
		paymentDate:   paymentDate,
		createdAt:     createdAt,
	}
}

func (p *Payment) ID() uuid.UUID          { return p.id }
func (p *Payment) BookingID() uuid.UUID   { return p.bookingID }
func (p *Payment) Amount() pricing.Money  { return p.amount }
func (p *Payment) Method() Method         { return p.method }
func (p *Payment) TransactionID() *string { return p.transactionID }
func (p *Payment) IsSuccessful() bool     { return p.isSuccessful }
func (p *Payment) PaymentDate() time.Time { return p.paymentDate }
func (p *Payment) CreatedAt() time.Time   { return p.createdAt }
