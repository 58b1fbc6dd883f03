//go:build unit

package pricing_test

import (
	"testing"

	"stayhub/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		want  pricing.Money
		errIs error
	}{
		{name: "whole units", in: "150", want: 15000},
		{name: "one decimal", in: "150.5", want: 15050},
		{name: "two decimals", in: "150.55", want: 15055},
		{name: "minimum", in: "0.01", want: 1},
		{name: "surrounding spaces", in: " 12.30 ", want: 1230},
		{name: "negative", in: "-5.00", want: -500},
		{name: "three decimals", in: "1.005", errIs: pricing.ErrTooManyDecimals},
		{name: "empty", in: "", errIs: pricing.ErrInvalidAmount},
		{name: "letters", in: "12a", errIs: pricing.ErrInvalidAmount},
		{name: "dangling dot", in: "12.", errIs: pricing.ErrInvalidAmount},
		{name: "leading dot", in: ".5", errIs: pricing.ErrInvalidAmount},
		{name: "too large", in: "100000000.00", errIs: pricing.ErrAmountOutOfRange},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := pricing.Parse(tc.in)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParsePositive(t *testing.T) {
	t.Run("error: zero", func(t *testing.T) {
		_, err := pricing.ParsePositive("0.00")
		require.ErrorIs(t, err, pricing.ErrNonPositive)
	})

	t.Run("error: negative", func(t *testing.T) {
		_, err := pricing.ParsePositive("-1")
		require.ErrorIs(t, err, pricing.ErrNonPositive)
	})

	t.Run("success: positive", func(t *testing.T) {
		m, err := pricing.ParsePositive("99.99")
		require.NoError(t, err)
		assert.Equal(t, int64(9999), m.Cents())
	})
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "150.00", pricing.FromCents(15000).String())
	assert.Equal(t, "0.05", pricing.FromCents(5).String())
	assert.Equal(t, "-1.20", pricing.FromCents(-120).String())
}
