package response

import (
	"time"

	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

const dateLayout = "2006-01-02"

type BookingResponse struct {
	ID           uuid.UUID `json:"id"`
	PropertyID   uuid.UUID `json:"property_id"`
	PropertyName string    `json:"property_name"`
	HostID       uuid.UUID `json:"host_id"`
	GuestID      uuid.UUID `json:"guest_id"`
	StartDate    string    `json:"start_date" copier:"-"`
	EndDate      string    `json:"end_date" copier:"-"`
	Nights       int       `json:"nights"`
	Guests       int32     `json:"guests"`
	TotalPrice   string    `json:"total_price" copier:"-"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type BookingListResponse struct {
	Bookings   []*BookingResponse `json:"bookings"`
	NextCursor *string            `json:"next_cursor"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	var res BookingResponse
	_ = copier.Copy(&res, v)
	res.StartDate = v.StartDate.Format(dateLayout)
	res.EndDate = v.EndDate.Format(dateLayout)
	res.TotalPrice = v.TotalPrice.String()
	return &res
}

func FromBookingList(views []*queries.BookingView, next *queries.Cursor) *BookingListResponse {
	res := &BookingListResponse{
		Bookings:   make([]*BookingResponse, len(views)),
		NextCursor: nextCursor(next),
	}
	for i, v := range views {
		res.Bookings[i] = FromBookingView(v)
	}
	return res
}

func nextCursor(c *queries.Cursor) *string {
	if c == nil {
		return nil
	}
	return &c.After
}
