package pricing

import "stayhub/internal/pkg/errs"

var ErrTotalOutOfRange = errs.Mark(errs.New("total price exceeds the supported range"), errs.ErrValidation)

// Nights is the number of nights of a stay. Booking stays are guaranteed to
// have at least one.
type Nights interface {
	Nights() int
}

// Calculate returns nightly rate times nights, exact on cents.
func Calculate(nightlyRate Money, stay Nights) (Money, error) {
	total, ok := nightlyRate.Mul(stay.Nights())
	if !ok {
		return 0, ErrTotalOutOfRange
	}
	return total, nil
}
