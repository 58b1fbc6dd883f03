package converter

import (
	"stayhub/internal/domain/booking"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ID:         b.ID(),
		PropertyID: b.PropertyID(),
		GuestID:    b.GuestID(),
		StartDate:  pgconv.DateToPgtype(b.Stay().Start()),
		EndDate:    pgconv.DateToPgtype(b.Stay().End()),
		Guests:     int32(b.Guests().Value()),
		TotalPrice: pgconv.MoneyToNumeric(b.TotalPrice()),
		Status:     b.Status().String(),
		CreatedAt:  pgconv.TimeToPgtype(b.CreatedAt()),
	}
}

func BookingFromRow(row sqlc.Bookings) (*booking.Booking, error) {
	stay, err := booking.NewStay(pgconv.DateFromPgtype(row.StartDate), pgconv.DateFromPgtype(row.EndDate))
	if err != nil {
		return nil, errs.Wrap(err, "stored stay")
	}
	guests, err := booking.NewGuests(int(row.Guests))
	if err != nil {
		return nil, errs.Wrap(err, "stored guests")
	}
	total, err := pgconv.MoneyFromNumeric(row.TotalPrice)
	if err != nil {
		return nil, errs.Wrap(err, "stored total price")
	}
	status, err := booking.NewStatus(row.Status)
	if err != nil {
		return nil, errs.Wrap(err, "stored status")
	}
	return booking.ReconstructBooking(
		row.ID,
		row.PropertyID,
		row.GuestID,
		stay,
		guests,
		total,
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func OccupancyFromOverlapRow(row sqlc.ListActiveOverlappingBookingsRow) (booking.Occupancy, error) {
	stay, err := booking.NewStay(pgconv.DateFromPgtype(row.StartDate), pgconv.DateFromPgtype(row.EndDate))
	if err != nil {
		return booking.Occupancy{}, errs.Wrap(err, "stored stay")
	}
	status, err := booking.NewStatus(row.Status)
	if err != nil {
		return booking.Occupancy{}, errs.Wrap(err, "stored status")
	}
	return booking.Occupancy{
		BookingID: row.ID,
		Stay:      stay,
		Status:    status,
	}, nil
}
