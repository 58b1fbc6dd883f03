//go:build unit

package booking_test

import (
	"testing"
	"time"

	"stayhub/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStay(t *testing.T) {
	t.Run("success: nights are whole calendar days", func(t *testing.T) {
		s, err := booking.ParseStay("2024-06-10", "2024-06-15")
		require.NoError(t, err)
		assert.Equal(t, 5, s.Nights())
	})

	t.Run("success: spans a month boundary", func(t *testing.T) {
		s, err := booking.ParseStay("2024-02-28", "2024-03-01")
		require.NoError(t, err)
		assert.Equal(t, 2, s.Nights())
	})

	t.Run("error: start equals end", func(t *testing.T) {
		_, err := booking.ParseStay("2024-06-10", "2024-06-10")
		require.ErrorIs(t, err, booking.ErrInvalidDateRange)
	})

	t.Run("error: end before start", func(t *testing.T) {
		_, err := booking.ParseStay("2024-06-15", "2024-06-10")
		require.ErrorIs(t, err, booking.ErrInvalidDateRange)
	})

	t.Run("error: malformed date", func(t *testing.T) {
		_, err := booking.ParseStay("2024/06/10", "2024-06-15")
		require.ErrorIs(t, err, booking.ErrInvalidDate)
	})
}

func TestNewStay(t *testing.T) {
	t.Run("success: time of day is dropped", func(t *testing.T) {
		loc := time.FixedZone("JST", 9*60*60)
		s, err := booking.NewStay(
			time.Date(2024, 6, 10, 23, 0, 0, 0, loc),
			time.Date(2024, 6, 11, 1, 0, 0, 0, loc),
		)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), s.Start())
		assert.Equal(t, 1, s.Nights())
	})
}

func TestNewGuests(t *testing.T) {
	_, err := booking.NewGuests(0)
	require.ErrorIs(t, err, booking.ErrInvalidGuests)

	g, err := booking.NewGuests(3)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Value())
}
