//go:build unit || e2e

package builder

import (
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/pricing"
	reqdto "stayhub/internal/handler/dto/request"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/pgconv"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type BookingBuilder struct {
	ID           uuid.UUID
	PropertyID   uuid.UUID
	PropertyName string
	HostID       uuid.UUID
	GuestID      uuid.UUID
	StartDate    string
	EndDate      string
	Guests       int
	TotalPrice   string
	Status       string
	CreatedAt    time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:           uuid.New(),
		PropertyID:   uuid.New(),
		PropertyName: "Seaside Cottage",
		HostID:       uuid.New(),
		GuestID:      uuid.New(),
		StartDate:    "2024-06-10",
		EndDate:      "2024-06-15",
		Guests:       2,
		TotalPrice:   "750.00",
		Status:       "pending",
		CreatedAt:    time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) dates() (time.Time, time.Time) {
	start, err := time.Parse(dateLayout, b.StartDate)
	if err != nil {
		panic("invalid StartDate in BookingBuilder: " + err.Error())
	}
	end, err := time.Parse(dateLayout, b.EndDate)
	if err != nil {
		panic("invalid EndDate in BookingBuilder: " + err.Error())
	}
	return start, end
}

func (b *BookingBuilder) total() pricing.Money {
	m, err := pricing.Parse(b.TotalPrice)
	if err != nil {
		panic("invalid TotalPrice in BookingBuilder: " + err.Error())
	}
	return m
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	stay, err := booking.ParseStay(b.StartDate, b.EndDate)
	if err != nil {
		return nil, err
	}
	guests, err := booking.NewGuests(b.Guests)
	if err != nil {
		return nil, err
	}
	status, err := booking.NewStatus(b.Status)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructBooking(b.ID, b.PropertyID, b.GuestID, stay, guests, b.total(), status, b.CreatedAt, b.CreatedAt), nil
}

func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	start, end := b.dates()
	return sqlc.Bookings{
		ID:         b.ID,
		PropertyID: b.PropertyID,
		GuestID:    b.GuestID,
		StartDate:  pgconv.DateToPgtype(start),
		EndDate:    pgconv.DateToPgtype(end),
		Guests:     int32(b.Guests),
		TotalPrice: pgconv.MoneyToNumeric(b.total()),
		Status:     b.Status,
		CreatedAt:  pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:  pgconv.TimeToPgtype(b.CreatedAt),
	}
}

func (b *BookingBuilder) BuildOccupancy() booking.Occupancy {
	stay, err := booking.ParseStay(b.StartDate, b.EndDate)
	if err != nil {
		panic("invalid stay in BookingBuilder: " + err.Error())
	}
	status, err := booking.NewStatus(b.Status)
	if err != nil {
		panic("invalid status in BookingBuilder: " + err.Error())
	}
	return booking.Occupancy{BookingID: b.ID, Stay: stay, Status: status}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	start, end := b.dates()
	return &queries.BookingView{
		ID:           b.ID,
		PropertyID:   b.PropertyID,
		PropertyName: b.PropertyName,
		HostID:       b.HostID,
		GuestID:      b.GuestID,
		StartDate:    start,
		EndDate:      end,
		Nights:       int(end.Sub(start).Hours() / 24),
		Guests:       int32(b.Guests),
		TotalPrice:   b.total(),
		Status:       b.Status,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		PropertyID: b.PropertyID,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		Guests:     b.Guests,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithPropertyID(id uuid.UUID) *BookingBuilder {
	b.PropertyID = id
	return b
}

func (b *BookingBuilder) WithHostID(id uuid.UUID) *BookingBuilder {
	b.HostID = id
	return b
}

func (b *BookingBuilder) WithGuestID(id uuid.UUID) *BookingBuilder {
	b.GuestID = id
	return b
}

func (b *BookingBuilder) WithDates(start, end string) *BookingBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *BookingBuilder) WithGuests(n int) *BookingBuilder {
	b.Guests = n
	return b
}

func (b *BookingBuilder) WithTotalPrice(total string) *BookingBuilder {
	b.TotalPrice = total
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status.String()
	return b
}

func (b *BookingBuilder) AsConfirmed() *BookingBuilder {
	b.Status = "confirmed"
	return b
}

func (b *BookingBuilder) AsCanceled() *BookingBuilder {
	b.Status = "canceled"
	return b
}
