package booking

import (
	"time"

	"stayhub/internal/pkg/errs"
)

const DateLayout = "2006-01-02"

var (
	ErrInvalidDateRange = errs.Mark(errs.New("end date must be after start date"), errs.ErrValidation)
	ErrInvalidDate      = errs.Mark(errs.New("dates must use the YYYY-MM-DD format"), errs.ErrValidation)
	ErrInvalidGuests    = errs.Mark(errs.New("guests must be at least 1"), errs.ErrValidation)
)

// Stay is a calendar date range with start strictly before end.
type Stay struct {
	start time.Time
	end   time.Time
}

// NewStay truncates both ends to UTC calendar dates.
func NewStay(start, end time.Time) (Stay, error) {
	s := toDate(start)
	e := toDate(end)
	if !s.Before(e) {
		return Stay{}, ErrInvalidDateRange
	}
	return Stay{start: s, end: e}, nil
}

func ParseStay(start, end string) (Stay, error) {
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return Stay{}, ErrInvalidDate
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return Stay{}, ErrInvalidDate
	}
	return NewStay(s, e)
}

func (s Stay) Start() time.Time { return s.start }
func (s Stay) End() time.Time   { return s.end }

// Nights is the whole number of calendar days between start and end.
func (s Stay) Nights() int {
	return int(s.end.Sub(s.start).Hours() / 24)
}

// Overlaps applies the inclusive rule s1 <= e2 && e1 >= s2. A checkout on the
// same day as another checkin counts as a conflict.
func (s Stay) Overlaps(other Stay) bool {
	return !s.start.After(other.end) && !s.end.Before(other.start)
}

func toDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type Guests struct{ value int }

func NewGuests(n int) (Guests, error) {
	if n < 1 {
		return Guests{}, ErrInvalidGuests
	}
	return Guests{value: n}, nil
}

func (g Guests) Value() int { return g.value }
