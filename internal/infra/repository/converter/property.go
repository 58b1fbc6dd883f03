package converter

import (
	"stayhub/internal/domain/property"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/pkg/pgconv"
)

func PropertyToCreateParams(p *property.Property) sqlc.CreatePropertyParams {
	return sqlc.CreatePropertyParams{
		ID:            p.ID(),
		HostID:        p.HostID(),
		Name:          p.Name().String(),
		Description:   p.Description(),
		Location:      p.Location().String(),
		PricePerNight: pgconv.MoneyToNumeric(p.NightlyRate()),
		Bedrooms:      int32(p.Capacity().Bedrooms()),
		Bathrooms:     int32(p.Capacity().Bathrooms()),
		MaxGuests:     int32(p.Capacity().MaxGuests()),
		Amenities:     p.Amenities().Stored(),
		CreatedAt:     pgconv.TimeToPgtype(p.CreatedAt()),
	}
}

func PropertyToUpdateParams(p *property.Property) sqlc.UpdatePropertyParams {
	return sqlc.UpdatePropertyParams{
		ID:            p.ID(),
		Name:          p.Name().String(),
		Description:   p.Description(),
		Location:      p.Location().String(),
		PricePerNight: pgconv.MoneyToNumeric(p.NightlyRate()),
		Bedrooms:      int32(p.Capacity().Bedrooms()),
		Bathrooms:     int32(p.Capacity().Bathrooms()),
		MaxGuests:     int32(p.Capacity().MaxGuests()),
		Amenities:     p.Amenities().Stored(),
		UpdatedAt:     pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func PropertyFromRow(row sqlc.Properties) (*property.Property, error) {
	name, err := property.NewName(row.Name)
	if err != nil {
		return nil, errs.Wrap(err, "stored property name")
	}
	location, err := property.NewLocation(row.Location)
	if err != nil {
		return nil, errs.Wrap(err, "stored property location")
	}
	rate, err := pgconv.MoneyFromNumeric(row.PricePerNight)
	if err != nil {
		return nil, errs.Wrap(err, "stored price per night")
	}
	capacity, err := property.NewCapacity(int(row.Bedrooms), int(row.Bathrooms), int(row.MaxGuests))
	if err != nil {
		return nil, errs.Wrap(err, "stored capacity")
	}

	attrs := property.Attributes{
		Name:        name,
		Description: row.Description,
		Location:    location,
		NightlyRate: rate,
		Capacity:    capacity,
		Amenities:   property.ParseAmenities(row.Amenities),
	}
	return property.ReconstructProperty(
		row.ID,
		row.HostID,
		attrs,
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
