//go:build unit

package validation_test

import (
	"testing"

	"stayhub/internal/handler/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Amount string `json:"amount" validate:"required,money"`
	Method string `json:"payment_method" validate:"required,payment_method"`
	Role   string `json:"role" validate:"omitempty,signup_role"`
	Body   string `json:"body" validate:"notblank"`
}

func valid() sample {
	return sample{Amount: "150.00", Method: "credit_card", Role: "host", Body: "hello"}
}

func TestRegisterOn(t *testing.T) {
	v := validator.New()
	require.NoError(t, validation.RegisterOn(v))

	tests := []struct {
		name      string
		mutate    func(s *sample)
		wantField string
		wantRule  string
	}{
		{
			name:   "success: all fields valid",
			mutate: func(*sample) {},
		},
		{
			name:   "success: empty role falls back to guest",
			mutate: func(s *sample) { s.Role = "" },
		},
		{
			name:      "error: amount with three decimals",
			mutate:    func(s *sample) { s.Amount = "10.005" },
			wantField: "amount",
			wantRule:  "money",
		},
		{
			name:      "error: zero amount",
			mutate:    func(s *sample) { s.Amount = "0.00" },
			wantField: "amount",
			wantRule:  "money",
		},
		{
			name:      "error: unknown payment method",
			mutate:    func(s *sample) { s.Method = "bitcoin" },
			wantField: "payment_method",
			wantRule:  "payment_method",
		},
		{
			name:      "error: admin cannot be picked at signup",
			mutate:    func(s *sample) { s.Role = "admin" },
			wantField: "role",
			wantRule:  "signup_role",
		},
		{
			name:      "error: whitespace only body",
			mutate:    func(s *sample) { s.Body = "   " },
			wantField: "body",
			wantRule:  "notblank",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(&s)

			err := v.Struct(s)
			if tt.wantRule == "" {
				assert.NoError(t, err)
				return
			}

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.wantField, verrs[0].Field())
			assert.Equal(t, tt.wantRule, verrs[0].Tag())
		})
	}
}
