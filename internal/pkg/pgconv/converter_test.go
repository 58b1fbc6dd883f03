//go:build unit

package pgconv_test

import (
	"math/big"
	"testing"
	"time"

	"stayhub/internal/domain/pricing"
	"stayhub/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyNumeric(t *testing.T) {
	cases := []struct {
		name  string
		in    pgtype.Numeric
		want  pricing.Money
		isErr bool
	}{
		{name: "scale 2", in: pgtype.Numeric{Int: big.NewInt(15050), Exp: -2, Valid: true}, want: 15050},
		{name: "scale 0", in: pgtype.Numeric{Int: big.NewInt(150), Exp: 0, Valid: true}, want: 15000},
		{name: "positive exponent", in: pgtype.Numeric{Int: big.NewInt(15), Exp: 1, Valid: true}, want: 15000},
		{name: "trailing zeros beyond scale", in: pgtype.Numeric{Int: big.NewInt(150500), Exp: -3, Valid: true}, want: 15050},
		{name: "sub-cent digits", in: pgtype.Numeric{Int: big.NewInt(150501), Exp: -3, Valid: true}, isErr: true},
		{name: "null", in: pgtype.Numeric{}, isErr: true},
		{name: "nan", in: pgtype.Numeric{NaN: true, Valid: true}, isErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := pgconv.MoneyFromNumeric(tc.in)
			if tc.isErr {
				assert.ErrorIs(t, err, pgconv.ErrInvalidNumeric)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("success: encode then decode", func(t *testing.T) {
		n := pgconv.MoneyToNumeric(pricing.FromCents(75000))
		got, err := pgconv.MoneyFromNumeric(n)
		require.NoError(t, err)
		assert.Equal(t, "750.00", got.String())
	})
}

func TestDate(t *testing.T) {
	in := time.Date(2024, 6, 10, 18, 30, 0, 0, time.FixedZone("X", 3600))
	d := pgconv.DateToPgtype(in)

	assert.True(t, d.Valid)
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), pgconv.DateFromPgtype(d))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.False(t, pgconv.IsNoRows(assert.AnError))
}
