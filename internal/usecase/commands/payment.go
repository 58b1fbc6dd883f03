package commands

import (
	"context"
	"log/slog"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/payment"
	"stayhub/internal/domain/pricing"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
)

type CapturePaymentRequest struct {
	BookingID      uuid.UUID
	Amount         string
	PaymentMethod  string
	TransactionID  *string
	IdempotencyKey string
}

type CapturePaymentResult struct {
	PaymentID  uuid.UUID
	IsReplayed bool
}

type PaymentCommands interface {
	Capture(ctx context.Context, payerID uuid.UUID, req CapturePaymentRequest) (*CapturePaymentResult, error)
}

type paymentCommandsImpl struct {
	uow         shared.UnitOfWork
	idempotency shared.IdempotencyStore
	clock       clock.Clock
}

func NewPaymentCommands(uow shared.UnitOfWork, idempotency shared.IdempotencyStore, clk clock.Clock) PaymentCommands {
	return &paymentCommandsImpl{
		uow:         uow,
		idempotency: idempotency,
		clock:       clk,
	}
}

func (uc *paymentCommandsImpl) Capture(ctx context.Context, payerID uuid.UUID, req CapturePaymentRequest) (*CapturePaymentResult, error) {
	amount, err := pricing.ParsePositive(req.Amount)
	if err != nil {
		return nil, err
	}
	method, err := payment.NewMethod(req.PaymentMethod)
	if err != nil {
		return nil, err
	}

	key := ""
	if req.IdempotencyKey != "" {
		// Keys are scoped per user so two payers can't collide
		key = "payment:" + payerID.String() + ":" + req.IdempotencyKey
		replayed, err := uc.idempotency.Begin(ctx, key)
		if err != nil {
			return nil, err
		}
		if replayed != nil {
			return &CapturePaymentResult{PaymentID: *replayed, IsReplayed: true}, nil
		}
	}

	paymentID, err := uc.capture(ctx, payerID, req.BookingID, amount, method, req.TransactionID)
	if err != nil {
		if key != "" {
			if relErr := uc.idempotency.Release(ctx, key); relErr != nil {
				slog.Warn("failed to release idempotency key", "key", key, "error", relErr.Error())
			}
		}
		return nil, err
	}

	if key != "" {
		if err := uc.idempotency.Complete(ctx, key, paymentID); err != nil {
			slog.Warn("failed to complete idempotency key", "key", key, "payment_id", paymentID, "error", err.Error())
		}
	}
	return &CapturePaymentResult{PaymentID: paymentID}, nil
}

func (uc *paymentCommandsImpl) capture(
	ctx context.Context,
	payerID, bookingID uuid.UUID,
	amount pricing.Money,
	method payment.Method,
	transactionID *string,
) (uuid.UUID, error) {
	var paymentID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := findBookingForUpdate(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if !b.IsGuest(payerID) {
			return payment.ErrNotBookingGuest
		}

		now := uc.clock.Now()
		if err := b.Confirm(now); err != nil {
			return err
		}

		// Dates may have been taken since the booking was made
		prop, err := findPropertyForUpdate(ctx, tx, b.PropertyID())
		if err != nil {
			return err
		}
		existing, err := tx.Bookings().ListActiveOverlapping(ctx, tx.DB(), prop.ID(), b.Stay())
		if err != nil {
			return err
		}
		self := b.ID()
		if err := booking.EnsureAvailable(b.Stay(), existing, &self); err != nil {
			return err
		}

		p, err := payment.NewCapturedPayment(b.ID(), amount, method, transactionID, now)
		if err != nil {
			return err
		}
		if _, err := tx.Payments().Create(ctx, tx.DB(), p); err != nil {
			return err
		}
		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), b); err != nil {
			return translateBookingWriteErr(err)
		}
		paymentID = p.ID()
		return nil
	})
	return paymentID, err
}
