//go:build unit

package booking_test

import (
	"testing"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/pkg/errs"
	"stayhub/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	guestID := uuid.New()

	t.Run("success: priced and pending", func(t *testing.T) {
		prop, err := builder.NewPropertyBuilder().WithPrice("150.00").WithMaxGuests(4).BuildDomain()
		require.NoError(t, err)

		b, err := booking.NewBooking(prop, guestID, mustStay(t, "2024-06-10", "2024-06-15"), mustGuests(t, 2), now)

		require.NoError(t, err)
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Equal(t, "750.00", b.TotalPrice().String())
		assert.Equal(t, 5, b.Nights())
		assert.Equal(t, prop.ID(), b.PropertyID())
		assert.Equal(t, guestID, b.GuestID())
		assert.Equal(t, now, b.CreatedAt())
	})

	t.Run("error: host books own property", func(t *testing.T) {
		prop, err := builder.NewPropertyBuilder().WithHostID(guestID).BuildDomain()
		require.NoError(t, err)

		_, err = booking.NewBooking(prop, guestID, mustStay(t, "2024-06-10", "2024-06-15"), mustGuests(t, 1), now)

		require.ErrorIs(t, err, booking.ErrCannotBookOwnProperty)
		assert.True(t, errs.IsValidation(err))
	})

	t.Run("error: too many guests", func(t *testing.T) {
		prop, err := builder.NewPropertyBuilder().WithMaxGuests(2).BuildDomain()
		require.NoError(t, err)

		_, err = booking.NewBooking(prop, guestID, mustStay(t, "2024-06-10", "2024-06-15"), mustGuests(t, 3), now)

		assert.True(t, errs.IsValidation(err))
	})

	t.Run("error: inactive property", func(t *testing.T) {
		prop, err := builder.NewPropertyBuilder().AsInactive().BuildDomain()
		require.NoError(t, err)

		_, err = booking.NewBooking(prop, guestID, mustStay(t, "2024-06-10", "2024-06-15"), mustGuests(t, 1), now)

		assert.True(t, errs.IsNotFound(err))
	})
}

func TestBooking_Lifecycle(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("success: pending to confirmed", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, b.Confirm(now))
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Equal(t, now, b.UpdatedAt())
	})

	t.Run("success: confirming twice keeps confirmed", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).BuildDomain()
		require.NoError(t, err)

		require.NoError(t, b.Confirm(now))
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})

	t.Run("success: confirmed to canceled", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).BuildDomain()
		require.NoError(t, err)

		require.NoError(t, b.Cancel(now))
		assert.Equal(t, booking.StatusCanceled, b.Status())
	})

	t.Run("error: canceled is terminal", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().WithStatus(booking.StatusCanceled).BuildDomain()
		require.NoError(t, err)

		assert.ErrorIs(t, b.Confirm(now), booking.ErrBookingCanceled)
		assert.ErrorIs(t, b.Cancel(now), booking.ErrInvalidTransition)
		assert.Equal(t, booking.StatusCanceled, b.Status())
	})
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to booking.Status
		want     bool
	}{
		{booking.StatusPending, booking.StatusConfirmed, true},
		{booking.StatusPending, booking.StatusCanceled, true},
		{booking.StatusPending, booking.StatusPending, false},
		{booking.StatusConfirmed, booking.StatusConfirmed, true},
		{booking.StatusConfirmed, booking.StatusCanceled, true},
		{booking.StatusConfirmed, booking.StatusPending, false},
		{booking.StatusCanceled, booking.StatusPending, false},
		{booking.StatusCanceled, booking.StatusConfirmed, false},
		{booking.StatusCanceled, booking.StatusCanceled, false},
	}

	for _, tc := range cases {
		t.Run(tc.from.String()+" to "+tc.to.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, booking.CanTransition(tc.from, tc.to))
		})
	}
}

func mustGuests(t *testing.T, n int) booking.Guests {
	t.Helper()
	g, err := booking.NewGuests(n)
	require.NoError(t, err)
	return g
}
