package booking

import (
	"time"

	"stayhub/internal/domain/pricing"
	"stayhub/internal/domain/property"
	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound       = errs.Mark(errs.New("booking not found"), errs.ErrNotFound)
	ErrCannotBookOwnProperty = errs.Mark(errs.New("hosts cannot book their own property"), errs.ErrValidation)
	ErrBookingCanceled       = errs.Mark(errs.New("booking is canceled"), errs.ErrValidation)
)

type Booking struct {
	id         uuid.UUID
	propertyID uuid.UUID
	guestID    uuid.UUID
	stay       Stay
	guests     Guests
	totalPrice pricing.Money
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

// NewBooking prices the stay against the property and starts it as pending.
// Availability is checked by the caller because it needs the other bookings.
func NewBooking(prop *property.Property, guestID uuid.UUID, stay Stay, guests Guests, now time.Time) (*Booking, error) {
	if prop.IsOwnedBy(guestID) {
		return nil, ErrCannotBookOwnProperty
	}
	if err := prop.EnsureBookable(guests.Value()); err != nil {
		return nil, err
	}

	total, err := pricing.Calculate(prop.NightlyRate(), stay)
	if err != nil {
		return nil, err
	}

	return &Booking{
		id:         uuid.New(),
		propertyID: prop.ID(),
		guestID:    guestID,
		stay:       stay,
		guests:     guests,
		totalPrice: total,
		status:     StatusPending,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructBooking(
	id, propertyID, guestID uuid.UUID,
	stay Stay,
	guests Guests,
	totalPrice pricing.Money,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		propertyID: propertyID,
		guestID:    guestID,
		stay:       stay,
		guests:     guests,
		totalPrice: totalPrice,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (b *Booking) transition(to Status, now time.Time) error {
	if !CanTransition(b.status, to) {
		return ErrInvalidTransition
	}
	b.status = to
	b.updatedAt = now
	return nil
}

// Confirm is only reachable from payment capture.
func (b *Booking) Confirm(now time.Time) error {
	if b.status == StatusCanceled {
		return ErrBookingCanceled
	}
	return b.transition(StatusConfirmed, now)
}

func (b *Booking) Cancel(now time.Time) error {
	return b.transition(StatusCanceled, now)
}

func (b *Booking) IsGuest(userID uuid.UUID) bool { return b.guestID == userID }

func (b *Booking) Occupancy() Occupancy {
	return Occupancy{BookingID: b.id, Stay: b.stay, Status: b.status}
}

func (b *Booking) ID() uuid.UUID             { return b.id }
func (b *Booking) PropertyID() uuid.UUID     { return b.propertyID }
func (b *Booking) GuestID() uuid.UUID        { return b.guestID }
func (b *Booking) Stay() Stay                { return b.stay }
func (b *Booking) Guests() Guests            { return b.guests }
func (b *Booking) Nights() int               { return b.stay.Nights() }
func (b *Booking) TotalPrice() pricing.Money { return b.totalPrice }
func (b *Booking) Status() Status            { return b.status }
func (b *Booking) CreatedAt() time.Time      { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time      { return b.updatedAt }
