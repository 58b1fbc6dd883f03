package response

import (
	"time"

	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PropertyResponse struct {
	ID            uuid.UUID `json:"id"`
	HostID        uuid.UUID `json:"host_id"`
	HostName      string    `json:"host_name"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Location      string    `json:"location"`
	PricePerNight string    `json:"price_per_night" copier:"-"`
	Bedrooms      int32     `json:"bedrooms"`
	Bathrooms     int32     `json:"bathrooms"`
	MaxGuests     int32     `json:"max_guests"`
	Amenities     []string  `json:"amenities"`
	IsActive      bool      `json:"is_active"`
	AverageRating float64   `json:"average_rating"`
	ReviewCount   int64     `json:"review_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type PropertyListResponse struct {
	Properties []*PropertyResponse `json:"properties"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
}

func FromPropertyView(v *queries.PropertyView) *PropertyResponse {
	var res PropertyResponse
	_ = copier.Copy(&res, v)
	res.PricePerNight = v.PricePerNight.String()
	if res.Amenities == nil {
		res.Amenities = []string{}
	}
	return &res
}

func FromPropertyViews(views []*queries.PropertyView) []*PropertyResponse {
	res := make([]*PropertyResponse, len(views))
	for i, v := range views {
		res[i] = FromPropertyView(v)
	}
	return res
}

func FromPropertyPage(p *queries.PropertyPage) *PropertyListResponse {
	return &PropertyListResponse{
		Properties: FromPropertyViews(p.Items),
		Total:      p.Total,
		Page:       p.Page,
		Limit:      p.Limit,
	}
}
