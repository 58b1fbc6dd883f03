//go:build unit

package booking_test

import (
	"testing"

	"stayhub/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustStay(t *testing.T, start, end string) booking.Stay {
	t.Helper()
	s, err := booking.ParseStay(start, end)
	require.NoError(t, err)
	return s
}

func TestStay_Overlaps(t *testing.T) {
	base := mustStay(t, "2024-06-10", "2024-06-15")

	cases := []struct {
		name  string
		other booking.Stay
		want  bool
	}{
		{name: "identical range", other: mustStay(t, "2024-06-10", "2024-06-15"), want: true},
		{name: "contained range", other: mustStay(t, "2024-06-11", "2024-06-12"), want: true},
		{name: "containing range", other: mustStay(t, "2024-06-01", "2024-06-30"), want: true},
		{name: "partial overlap at start", other: mustStay(t, "2024-06-08", "2024-06-11"), want: true},
		{name: "partial overlap at end", other: mustStay(t, "2024-06-14", "2024-06-20"), want: true},
		{name: "checkin on checkout day conflicts", other: mustStay(t, "2024-06-15", "2024-06-20"), want: true},
		{name: "checkout on checkin day conflicts", other: mustStay(t, "2024-06-05", "2024-06-10"), want: true},
		{name: "day after checkout is free", other: mustStay(t, "2024-06-16", "2024-06-20"), want: false},
		{name: "day before checkin is free", other: mustStay(t, "2024-06-01", "2024-06-09"), want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, base.Overlaps(tc.other))
			assert.Equal(t, tc.want, tc.other.Overlaps(base), "overlap must be symmetric")
		})
	}
}

func TestIsAvailable(t *testing.T) {
	candidate := mustStay(t, "2024-06-15", "2024-06-20")
	existingID := uuid.New()
	occupied := []booking.Occupancy{
		{BookingID: existingID, Stay: mustStay(t, "2024-06-10", "2024-06-15"), Status: booking.StatusPending},
	}

	t.Run("error: back-to-back pending booking blocks the range", func(t *testing.T) {
		assert.False(t, booking.IsAvailable(candidate, occupied, nil))
		assert.ErrorIs(t, booking.EnsureAvailable(candidate, occupied, nil), booking.ErrDatesUnavailable)
	})

	t.Run("error: confirmed booking blocks the range", func(t *testing.T) {
		confirmed := []booking.Occupancy{{BookingID: uuid.New(), Stay: candidate, Status: booking.StatusConfirmed}}
		assert.False(t, booking.IsAvailable(candidate, confirmed, nil))
	})

	t.Run("success: canceled booking does not block", func(t *testing.T) {
		canceled := []booking.Occupancy{{BookingID: uuid.New(), Stay: candidate, Status: booking.StatusCanceled}}
		assert.True(t, booking.IsAvailable(candidate, canceled, nil))
	})

	t.Run("success: excluded booking is skipped", func(t *testing.T) {
		assert.True(t, booking.IsAvailable(candidate, occupied, &existingID))
		assert.NoError(t, booking.EnsureAvailable(candidate, occupied, &existingID))
	})

	t.Run("success: nothing booked", func(t *testing.T) {
		assert.True(t, booking.IsAvailable(candidate, nil, nil))
	})
}
