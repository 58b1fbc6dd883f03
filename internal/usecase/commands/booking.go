package commands

import (
	"context"

	"stayhub/internal/domain/booking"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	PropertyID uuid.UUID
	StartDate  string
	EndDate    string
	Guests     int
}

type BookingCommands interface {
	Create(ctx context.Context, guestID uuid.UUID, req CreateBookingRequest) (*booking.Booking, error)
	Cancel(ctx context.Context, bookingID, actorID uuid.UUID) (*booking.Booking, error)
}

type bookingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{uow: uow, clock: clk}
}

func (uc *bookingCommandsImpl) Create(ctx context.Context, guestID uuid.UUID, req CreateBookingRequest) (*booking.Booking, error) {
	stay, err := booking.ParseStay(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	guests, err := booking.NewGuests(req.Guests)
	if err != nil {
		return nil, err
	}

	var created *booking.Booking
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// The row lock serializes concurrent bookings of the same property
		prop, err := findPropertyForUpdate(ctx, tx, req.PropertyID)
		if err != nil {
			return err
		}

		b, err := booking.NewBooking(prop, guestID, stay, guests, uc.clock.Now())
		if err != nil {
			return err
		}

		existing, err := tx.Bookings().ListActiveOverlapping(ctx, tx.DB(), prop.ID(), stay)
		if err != nil {
			return err
		}
		if err := booking.EnsureAvailable(stay, existing, nil); err != nil {
			return err
		}

		if _, err := tx.Bookings().Create(ctx, tx.DB(), b); err != nil {
			return translateBookingWriteErr(err)
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Cancel is open to the guest and to the host of the booked property. Anyone
// else is told the booking doesn't exist.
func (uc *bookingCommandsImpl) Cancel(ctx context.Context, bookingID, actorID uuid.UUID) (*booking.Booking, error) {
	var canceled *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := findBookingForUpdate(ctx, tx, bookingID)
		if err != nil {
			return err
		}

		if !b.IsGuest(actorID) {
			prop, err := tx.Properties().FindByID(ctx, tx.DB(), b.PropertyID())
			if err != nil {
				return err
			}
			if !prop.IsOwnedBy(actorID) {
				return booking.ErrBookingNotFound
			}
		}

		if err := b.Cancel(uc.clock.Now()); err != nil {
			return err
		}
		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), b); err != nil {
			return err
		}
		canceled = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return canceled, nil
}

func findBookingForUpdate(ctx context.Context, tx shared.Tx, id uuid.UUID) (*booking.Booking, error) {
	b, err := tx.Bookings().FindForUpdate(ctx, tx.DB(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

// The exclusion constraint catches overlaps that slipped past the row lock.
func translateBookingWriteErr(err error) error {
	if infra.IsKind(err, infra.KindConflict) {
		return booking.ErrDatesUnavailable
	}
	return err
}
