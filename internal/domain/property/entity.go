package property

import (
	"time"

	"stayhub/internal/domain/pricing"
	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrPropertyNotFound   = errs.Mark(errs.New("property not found"), errs.ErrNotFound)
	ErrNotPropertyOwner   = errs.Mark(errs.New("you do not have permission to modify this property"), errs.ErrForbidden)
	ErrGuestsExceedLimit  = errs.Mark(errs.New("number of guests exceeds the property's maximum"), errs.ErrValidation)
	ErrPropertyInactive   = errs.Mark(errs.New("property is not accepting bookings"), errs.ErrNotFound)
	ErrInvalidNightlyRate = errs.Mark(errs.New("price per night must be at least 0.01"), errs.ErrValidation)
)

type Property struct {
	id          uuid.UUID
	hostID      uuid.UUID
	name        Name
	description string
	location    Location
	nightlyRate pricing.Money
	capacity    Capacity
	amenities   Amenities
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

type Attributes struct {
	Name        Name
	Description string
	Location    Location
	NightlyRate pricing.Money
	Capacity    Capacity
	Amenities   Amenities
}

func NewProperty(hostID uuid.UUID, attrs Attributes, now time.Time) (*Property, error) {
	if !attrs.NightlyRate.IsPositive() {
		return nil, ErrInvalidNightlyRate
	}
	return &Property{
		id:          uuid.New(),
		hostID:      hostID,
		name:        attrs.Name,
		description: attrs.Description,
		location:    attrs.Location,
		nightlyRate: attrs.NightlyRate,
		capacity:    attrs.Capacity,
		amenities:   attrs.Amenities,
		isActive:    true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructProperty(
	id, hostID uuid.UUID,
	attrs Attributes,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Property {
	return &Property{
		id:          id,
		hostID:      hostID,
		name:        attrs.Name,
		description: attrs.Description,
		location:    attrs.Location,
		nightlyRate: attrs.NightlyRate,
		capacity:    attrs.Capacity,
		amenities:   attrs.Amenities,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (p *Property) IsOwnedBy(userID uuid.UUID) bool { return p.hostID == userID }

func (p *Property) EnsureOwnedBy(userID uuid.UUID) error {
	if !p.IsOwnedBy(userID) {
		return ErrNotPropertyOwner
	}
	return nil
}

// EnsureBookable checks the property is listed and can host the party size.
func (p *Property) EnsureBookable(guests int) error {
	if !p.isActive {
		return ErrPropertyInactive
	}
	if !p.capacity.Fits(guests) {
		return ErrGuestsExceedLimit
	}
	return nil
}

func (p *Property) Update(attrs Attributes, now time.Time) error {
	if !attrs.NightlyRate.IsPositive() {
		return ErrInvalidNightlyRate
	}
	p.name = attrs.Name
	p.description = attrs.Description
	p.location = attrs.Location
	p.nightlyRate = attrs.NightlyRate
	p.capacity = attrs.Capacity
	p.amenities = attrs.Amenities
	p.updatedAt = now
	return nil
}

// Deactivate is the soft delete. Bookings and reviews keep referencing the row.
func (p *Property) Deactivate(now time.Time) {
	if !p.isActive {
		return
	}
	p.isActive = false
	p.updatedAt = now
}

func (p *Property) Attributes() Attributes {
	return Attributes{
		Name:        p.name,
		Description: p.description,
		Location:    p.location,
		NightlyRate: p.nightlyRate,
		Capacity:    p.capacity,
		Amenities:   p.amenities,
	}
}

func (p *Property) ID() uuid.UUID              { return p.id }
func (p *Property) HostID() uuid.UUID          { return p.hostID }
func (p *Property) Name() Name                 { return p.name }
func (p *Property) Description() string        { return p.description }
func (p *Property) Location() Location         { return p.location }
func (p *Property) NightlyRate() pricing.Money { return p.nightlyRate }
func (p *Property) Capacity() Capacity         { return p.capacity }
func (p *Property) Amenities() Amenities       { return p.amenities }
func (p *Property) IsActive() bool             { return p.isActive }
func (p *Property) CreatedAt() time.Time       { return p.createdAt }
func (p *Property) UpdatedAt() time.Time       { return p.updatedAt }
