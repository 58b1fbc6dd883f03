//go:build unit || e2e

package builder

import (
	"time"

	"stayhub/internal/domain/pricing"
	"stayhub/internal/domain/property"
	reqdto "stayhub/internal/handler/dto/request"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/pgconv"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PropertyBuilder struct {
	ID            uuid.UUID
	HostID        uuid.UUID
	HostName      string
	Name          string
	Description   string
	Location      string
	PricePerNight string
	Bedrooms      int
	Bathrooms     int
	MaxGuests     int
	Amenities     []string
	IsActive      bool
	CreatedAt     time.Time
}

func NewPropertyBuilder() *PropertyBuilder {
	return &PropertyBuilder{
		ID:            uuid.New(),
		HostID:        uuid.New(),
		HostName:      "Hana Host",
		Name:          "Seaside Cottage",
		Description:   "A quiet cottage by the sea",
		Location:      "Kamakura",
		PricePerNight: "150.00",
		Bedrooms:      2,
		Bathrooms:     1,
		MaxGuests:     4,
		Amenities:     []string{"wifi", "kitchen"},
		IsActive:      true,
		CreatedAt:     time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (p *PropertyBuilder) With(mutate func(*PropertyBuilder)) *PropertyBuilder {
	mutate(p)
	return p
}

func (p *PropertyBuilder) rate() pricing.Money {
	m, err := pricing.ParsePositive(p.PricePerNight)
	if err != nil {
		panic("invalid PricePerNight in PropertyBuilder: " + err.Error())
	}
	return m
}

// Build methods
func (p *PropertyBuilder) BuildDomain() (*property.Property, error) {
	name, err := property.NewName(p.Name)
	if err != nil {
		return nil, err
	}
	loc, err := property.NewLocation(p.Location)
	if err != nil {
		return nil, err
	}
	capacity, err := property.NewCapacity(p.Bedrooms, p.Bathrooms, p.MaxGuests)
	if err != nil {
		return nil, err
	}
	amenities, err := property.NewAmenities(p.Amenities)
	if err != nil {
		return nil, err
	}
	attrs := property.Attributes{
		Name:        name,
		Description: p.Description,
		Location:    loc,
		NightlyRate: p.rate(),
		Capacity:    capacity,
		Amenities:   amenities,
	}
	return property.ReconstructProperty(p.ID, p.HostID, attrs, p.IsActive, p.CreatedAt, p.CreatedAt), nil
}

func (p *PropertyBuilder) BuildInfra() sqlc.Properties {
	amenities, _ := property.NewAmenities(p.Amenities)
	return sqlc.Properties{
		ID:            p.ID,
		HostID:        p.HostID,
		Name:          p.Name,
		Description:   p.Description,
		Location:      p.Location,
		PricePerNight: pgconv.MoneyToNumeric(p.rate()),
		Bedrooms:      int32(p.Bedrooms),
		Bathrooms:     int32(p.Bathrooms),
		MaxGuests:     int32(p.MaxGuests),
		Amenities:     amenities.Stored(),
		IsActive:      p.IsActive,
		CreatedAt:     pgtype.Timestamptz{Time: p.CreatedAt, Valid: true},
		UpdatedAt:     pgtype.Timestamptz{Time: p.CreatedAt, Valid: true},
	}
}

func (p *PropertyBuilder) BuildView() *queries.PropertyView {
	return &queries.PropertyView{
		ID:            p.ID,
		HostID:        p.HostID,
		HostName:      p.HostName,
		Name:          p.Name,
		Description:   p.Description,
		Location:      p.Location,
		PricePerNight: p.rate(),
		Bedrooms:      int32(p.Bedrooms),
		Bathrooms:     int32(p.Bathrooms),
		MaxGuests:     int32(p.MaxGuests),
		Amenities:     append([]string(nil), p.Amenities...),
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.CreatedAt,
	}
}

func (p *PropertyBuilder) BuildCreateRequestDTO() reqdto.CreatePropertyRequest {
	bedrooms, bathrooms, maxGuests := p.Bedrooms, p.Bathrooms, p.MaxGuests
	return reqdto.CreatePropertyRequest{
		Name:          p.Name,
		Description:   p.Description,
		Location:      p.Location,
		PricePerNight: p.PricePerNight,
		Bedrooms:      &bedrooms,
		Bathrooms:     &bathrooms,
		MaxGuests:     &maxGuests,
		Amenities:     append([]string(nil), p.Amenities...),
	}
}

// Fluent builder methods
func (p *PropertyBuilder) WithID(id uuid.UUID) *PropertyBuilder {
	p.ID = id
	return p
}

func (p *PropertyBuilder) WithHostID(hostID uuid.UUID) *PropertyBuilder {
	p.HostID = hostID
	return p
}

func (p *PropertyBuilder) WithName(name string) *PropertyBuilder {
	p.Name = name
	return p
}

func (p *PropertyBuilder) WithLocation(location string) *PropertyBuilder {
	p.Location = location
	return p
}

func (p *PropertyBuilder) WithPrice(price string) *PropertyBuilder {
	p.PricePerNight = price
	return p
}

func (p *PropertyBuilder) WithMaxGuests(n int) *PropertyBuilder {
	p.MaxGuests = n
	return p
}

func (p *PropertyBuilder) WithAmenities(items ...string) *PropertyBuilder {
	p.Amenities = items
	return p
}

func (p *PropertyBuilder) AsInactive() *PropertyBuilder {
	p.IsActive = false
	return p
}
