package pricing

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"stayhub/internal/pkg/errs"
)

// MaxAmount mirrors NUMERIC(10,2).
const MaxAmount Money = 99_999_999_99

var (
	ErrInvalidAmount    = errs.Mark(errs.New("invalid decimal amount"), errs.ErrValidation)
	ErrTooManyDecimals  = errs.Mark(errs.New("amount must have at most 2 decimal places"), errs.ErrValidation)
	ErrNonPositive      = errs.Mark(errs.New("amount must be greater than 0"), errs.ErrValidation)
	ErrAmountOutOfRange = errs.Mark(errs.New("amount exceeds the supported range"), errs.ErrValidation)
)

// Money is an exact decimal amount held as integer cents.
type Money int64

func FromCents(c int64) Money { return Money(c) }

// Parse accepts "150", "150.5" and "150.50". Anything beyond two fractional
// digits is rejected rather than rounded.
func Parse(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}

	neg := false
	if s[0] == '-' || s[0] == '+' {
		neg = s[0] == '-'
		s = s[1:]
	}

	whole, frac, hasDot := strings.Cut(s, ".")
	if whole == "" || (hasDot && frac == "") {
		return 0, ErrInvalidAmount
	}
	if len(frac) > 2 {
		return 0, ErrTooManyDecimals
	}
	for _, r := range whole + frac {
		if r < '0' || r > '9' {
			return 0, ErrInvalidAmount
		}
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || units > int64(MaxAmount/100) {
		return 0, ErrAmountOutOfRange
	}
	for len(frac) < 2 {
		frac += "0"
	}
	cents, _ := strconv.ParseInt(frac, 10, 64)

	m := Money(units*100 + cents)
	if m > MaxAmount {
		return 0, ErrAmountOutOfRange
	}
	if neg {
		m = -m
	}
	return m, nil
}

// ParsePositive is Parse plus the > 0 rule used for rates and payment amounts.
func ParsePositive(s string) (Money, error) {
	m, err := Parse(s)
	if err != nil {
		return 0, err
	}
	if m <= 0 {
		return 0, ErrNonPositive
	}
	return m, nil
}

func (m Money) Cents() int64 { return int64(m) }

func (m Money) IsPositive() bool { return m > 0 }

// Mul multiplies by a whole quantity and reports ok=false on overflow of the
// storable range.
func (m Money) Mul(n int) (Money, bool) {
	if n < 0 {
		return 0, false
	}
	if n != 0 && int64(m) > math.MaxInt64/int64(n) {
		return 0, false
	}
	total := Money(int64(m) * int64(n))
	if total > MaxAmount {
		return 0, false
	}
	return total, true
}

func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
