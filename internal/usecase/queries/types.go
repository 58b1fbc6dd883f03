package queries

import (
	"time"

	"stayhub/internal/domain/pricing"

	"github.com/google/uuid"
)

type UserView struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	PhoneNumber *string    `json:"phone_number,omitempty"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"is_active"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type PropertyView struct {
	ID            uuid.UUID     `json:"id"`
	HostID        uuid.UUID     `json:"host_id"`
	HostName      string        `json:"host_name"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Location      string        `json:"location"`
	PricePerNight pricing.Money `json:"price_per_night"`
	Bedrooms      int32         `json:"bedrooms"`
	Bathrooms     int32         `json:"bathrooms"`
	MaxGuests     int32         `json:"max_guests"`
	Amenities     []string      `json:"amenities"`
	IsActive      bool          `json:"is_active"`
	AverageRating float64       `json:"average_rating"`
	ReviewCount   int64         `json:"review_count"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

type PropertySort string

const (
	SortNewest    PropertySort = "newest"
	SortPriceAsc  PropertySort = "price_asc"
	SortPriceDesc PropertySort = "price_desc"
)

type PropertyFilters struct {
	Location  *string
	Bedrooms  *int
	Bathrooms *int
	MinGuests *int
	Search    *string
	Sort      PropertySort
}

type PropertyPage struct {
	Items []*PropertyView `json:"items"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

type BookingView struct {
	ID           uuid.UUID     `json:"id"`
	PropertyID   uuid.UUID     `json:"property_id"`
	PropertyName string        `json:"property_name"`
	HostID       uuid.UUID     `json:"host_id"`
	GuestID      uuid.UUID     `json:"guest_id"`
	StartDate    time.Time     `json:"start_date"`
	EndDate      time.Time     `json:"end_date"`
	Nights       int           `json:"nights"`
	Guests       int32         `json:"guests"`
	TotalPrice   pricing.Money `json:"total_price"`
	Status       string        `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

type PaymentView struct {
	ID            uuid.UUID     `json:"id"`
	BookingID     uuid.UUID     `json:"booking_id"`
	GuestID       uuid.UUID     `json:"guest_id"`
	PropertyID    uuid.UUID     `json:"property_id"`
	Amount        pricing.Money `json:"amount"`
	PaymentMethod string        `json:"payment_method"`
	TransactionID *string       `json:"transaction_id,omitempty"`
	IsSuccessful  bool          `json:"is_successful"`
	PaymentDate   time.Time     `json:"payment_date"`
	CreatedAt     time.Time     `json:"created_at"`
}

type ReviewView struct {
	ID           uuid.UUID `json:"id"`
	PropertyID   uuid.UUID `json:"property_id"`
	PropertyName string    `json:"property_name"`
	GuestID      uuid.UUID `json:"guest_id"`
	GuestName    string    `json:"guest_name"`
	Rating       int32     `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ReviewListItem struct {
	ID        uuid.UUID `json:"id"`
	GuestID   uuid.UUID `json:"guest_id"`
	GuestName string    `json:"guest_name"`
	Rating    int32     `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type RatingSummary struct {
	PropertyID    uuid.UUID `json:"property_id"`
	AverageRating float64   `json:"average_rating"`
	ReviewCount   int64     `json:"review_count"`
}

type MessageView struct {
	ID          uuid.UUID `json:"id"`
	SenderID    uuid.UUID `json:"sender_id"`
	RecipientID uuid.UUID `json:"recipient_id"`
	Body        string    `json:"body"`
	IsRead      bool      `json:"is_read"`
	SentAt      time.Time `json:"sent_at"`
}
