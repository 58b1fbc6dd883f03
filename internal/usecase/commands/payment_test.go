//go:build unit

package commands_test

import (
	"context"
	"testing"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/payment"
	"stayhub/internal/domain/pricing"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/commands"
	"stayhub/tests/common/builder"
	sharedmock "stayhub/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type paymentFixture struct {
	*txFixture
	idempotency *sharedmock.MockIdempotencyStore
	uc          commands.PaymentCommands
	guestID     uuid.UUID
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	t.Helper()
	f := newTxFixture(t)
	store := sharedmock.NewMockIdempotencyStore(gomock.NewController(t))
	return &paymentFixture{
		txFixture:   f,
		idempotency: store,
		uc:          commands.NewPaymentCommands(f.uow, store, f.clock),
		guestID:     uuid.New(),
	}
}

// expectCapture wires the happy path of the capture transaction for b.
func (f *paymentFixture) expectCapture(t *testing.T, b *booking.Booking) {
	t.Helper()
	prop, err := builder.NewPropertyBuilder().WithID(b.PropertyID()).BuildDomain()
	require.NoError(t, err)

	f.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
	f.properties.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), b.PropertyID()).Return(prop, nil)
	f.bookings.EXPECT().ListActiveOverlapping(gomock.Any(), gomock.Any(), b.PropertyID(), b.Stay()).
		Return([]booking.Occupancy{b.Occupancy()}, nil)
	f.payments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
	f.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), b).Return(nil)
}

func captureRequest(bookingID uuid.UUID, key string) commands.CapturePaymentRequest {
	return commands.CapturePaymentRequest{
		BookingID:      bookingID,
		Amount:         "750.00",
		PaymentMethod:  "credit_card",
		IdempotencyKey: key,
	}
}

func TestPaymentCommands_Capture(t *testing.T) {
	ctx := context.Background()

	t.Run("success: booking confirmed without idempotency key", func(t *testing.T) {
		f := newPaymentFixture(t)
		b, err := builder.NewBookingBuilder().WithGuestID(f.guestID).BuildDomain()
		require.NoError(t, err)
		f.expectCapture(t, b)

		res, err := f.uc.Capture(ctx, f.guestID, captureRequest(b.ID(), ""))

		require.NoError(t, err)
		assert.False(t, res.IsReplayed)
		assert.NotEqual(t, uuid.Nil, res.PaymentID)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})

	t.Run("success: key completed with payment id", func(t *testing.T) {
		f := newPaymentFixture(t)
		b, err := builder.NewBookingBuilder().WithGuestID(f.guestID).BuildDomain()
		require.NoError(t, err)
		key := "payment:" + f.guestID.String() + ":abc-123"

		f.idempotency.EXPECT().Begin(gomock.Any(), key).Return(nil, nil)
		f.expectCapture(t, b)
		var completed uuid.UUID
		f.idempotency.EXPECT().Complete(gomock.Any(), key, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, id uuid.UUID) error {
				completed = id
				return nil
			})

		res, err := f.uc.Capture(ctx, f.guestID, captureRequest(b.ID(), "abc-123"))

		require.NoError(t, err)
		assert.Equal(t, completed, res.PaymentID)
	})

	t.Run("success: replay returns stored payment without a transaction", func(t *testing.T) {
		f := newPaymentFixture(t)
		stored := uuid.New()
		f.idempotency.EXPECT().Begin(gomock.Any(), gomock.Any()).Return(&stored, nil)

		res, err := f.uc.Capture(ctx, f.guestID, captureRequest(uuid.New(), "abc-123"))

		require.NoError(t, err)
		assert.True(t, res.IsReplayed)
		assert.Equal(t, stored, res.PaymentID)
	})

	t.Run("error: same key still in flight", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.idempotency.EXPECT().Begin(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("key is locked"), errs.ErrIdempotencyInProgress))

		_, err := f.uc.Capture(ctx, f.guestID, captureRequest(uuid.New(), "abc-123"))

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrIdempotencyInProgress))
	})

	t.Run("error: other user's booking releases the key", func(t *testing.T) {
		f := newPaymentFixture(t)
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		f.idempotency.EXPECT().Begin(gomock.Any(), gomock.Any()).Return(nil, nil)
		f.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
		f.idempotency.EXPECT().Release(gomock.Any(), gomock.Any()).Return(nil)

		_, err = f.uc.Capture(ctx, f.guestID, captureRequest(b.ID(), "abc-123"))

		require.ErrorIs(t, err, payment.ErrNotBookingGuest)
		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})

	t.Run("error: canceled booking cannot be paid", func(t *testing.T) {
		f := newPaymentFixture(t)
		b, err := builder.NewBookingBuilder().WithGuestID(f.guestID).AsCanceled().BuildDomain()
		require.NoError(t, err)
		f.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)

		_, err = f.uc.Capture(ctx, f.guestID, captureRequest(b.ID(), ""))

		require.ErrorIs(t, err, booking.ErrBookingCanceled)
	})

	t.Run("error: dates taken by another confirmed booking", func(t *testing.T) {
		f := newPaymentFixture(t)
		b, err := builder.NewBookingBuilder().WithGuestID(f.guestID).BuildDomain()
		require.NoError(t, err)
		prop, err := builder.NewPropertyBuilder().WithID(b.PropertyID()).BuildDomain()
		require.NoError(t, err)
		other := builder.NewBookingBuilder().WithPropertyID(b.PropertyID()).AsConfirmed().BuildOccupancy()

		f.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
		f.properties.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), b.PropertyID()).Return(prop, nil)
		f.bookings.EXPECT().ListActiveOverlapping(gomock.Any(), gomock.Any(), b.PropertyID(), b.Stay()).
			Return([]booking.Occupancy{b.Occupancy(), other}, nil)

		_, err = f.uc.Capture(ctx, f.guestID, captureRequest(b.ID(), ""))

		require.ErrorIs(t, err, booking.ErrDatesUnavailable)
	})

	t.Run("error: invalid input rejected before claiming key", func(t *testing.T) {
		f := newPaymentFixture(t)

		req := captureRequest(uuid.New(), "abc-123")
		req.Amount = "0"
		_, err := f.uc.Capture(ctx, f.guestID, req)
		require.ErrorIs(t, err, pricing.ErrNonPositive)

		req = captureRequest(uuid.New(), "abc-123")
		req.PaymentMethod = "cash"
		_, err = f.uc.Capture(ctx, f.guestID, req)
		require.ErrorIs(t, err, payment.ErrInvalidMethod)
	})
}
