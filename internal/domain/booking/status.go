package booking

import "stayhub/internal/pkg/errs"

var ErrInvalidTransition = errs.Mark(errs.New("booking status transition is not allowed"), errs.ErrValidation)

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCanceled},
	StatusConfirmed: {StatusConfirmed, StatusCanceled},
	StatusCanceled:  nil,
}

// CanTransition reports whether from -> to is a legal lifecycle move.
// canceled is terminal.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
