package booking

import "stayhub/internal/pkg/errs"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCanceled  Status = "canceled"
)

var ErrInvalidStatus = errs.Mark(errs.New("invalid booking status"), errs.ErrValidation)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCanceled:
		return true
	default:
		return false
	}
}

// IsActive reports whether the booking holds its dates.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// ActiveStatuses are the statuses that block a date range.
func ActiveStatuses() []string {
	return []string{StatusPending.String(), StatusConfirmed.String()}
}
