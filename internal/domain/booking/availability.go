package booking

import (
	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrDatesUnavailable = errs.Mark(errs.New("property is not available for selected dates"), errs.ErrConflict)

// Occupancy is the part of an existing booking the availability rule looks at.
type Occupancy struct {
	BookingID uuid.UUID
	Stay      Stay
	Status    Status
}

// IsAvailable reports whether candidate collides with none of the active
// occupancies. The occupancy with id exclude is skipped, which is how a
// booking is revalidated against everything but itself.
func IsAvailable(candidate Stay, existing []Occupancy, exclude *uuid.UUID) bool {
	for _, o := range existing {
		if exclude != nil && o.BookingID == *exclude {
			continue
		}
		if !o.Status.IsActive() {
			continue
		}
		if candidate.Overlaps(o.Stay) {
			return false
		}
	}
	return true
}

func EnsureAvailable(candidate Stay, existing []Occupancy, exclude *uuid.UUID) error {
	if !IsAvailable(candidate, existing, exclude) {
		return ErrDatesUnavailable
	}
	return nil
}
