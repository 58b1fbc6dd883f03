package commands

import (
	"context"

	"stayhub/internal/domain/pricing"
	"stayhub/internal/domain/property"
	"stayhub/internal/domain/user"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/pkg/patch"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrHostRoleRequired = errs.Forbidden("only hosts can list properties")

type CreatePropertyRequest struct {
	Name          string
	Description   string
	Location      string
	PricePerNight string
	Bedrooms      *int
	Bathrooms     *int
	MaxGuests     *int
	Amenities     []string
}

type UpdatePropertyRequest struct {
	Name          *string
	Description   *string
	Location      *string
	PricePerNight *string
	Bedrooms      *int
	Bathrooms     *int
	MaxGuests     *int
	Amenities     *[]string
}

type PropertyCommands interface {
	Create(ctx context.Context, hostID uuid.UUID, role user.Role, req CreatePropertyRequest) (*property.Property, error)
	Update(ctx context.Context, propertyID, actorID uuid.UUID, req UpdatePropertyRequest) (*property.Property, error)
	Deactivate(ctx context.Context, propertyID, actorID uuid.UUID) error
}

type propertyCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPropertyCommands(uow shared.UnitOfWork, clk clock.Clock) PropertyCommands {
	return &propertyCommandsImpl{uow: uow, clock: clk}
}

func (uc *propertyCommandsImpl) Create(ctx context.Context, hostID uuid.UUID, role user.Role, req CreatePropertyRequest) (*property.Property, error) {
	if !role.AtLeast(user.RoleHost) {
		return nil, ErrHostRoleRequired
	}

	defaults := property.DefaultCapacity()
	attrs, err := buildAttributes(attributeInput{
		name:        req.Name,
		description: req.Description,
		location:    req.Location,
		rate:        req.PricePerNight,
		bedrooms:    patch.Coalesce(req.Bedrooms, defaults.Bedrooms()),
		bathrooms:   patch.Coalesce(req.Bathrooms, defaults.Bathrooms()),
		maxGuests:   patch.Coalesce(req.MaxGuests, defaults.MaxGuests()),
		amenities:   req.Amenities,
	})
	if err != nil {
		return nil, err
	}

	p, err := property.NewProperty(hostID, attrs, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Properties().Create(ctx, tx.DB(), p)
		return err
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *propertyCommandsImpl) Update(ctx context.Context, propertyID, actorID uuid.UUID, req UpdatePropertyRequest) (*property.Property, error) {
	var updated *property.Property
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := findPropertyForUpdate(ctx, tx, propertyID)
		if err != nil {
			return err
		}
		if err := p.EnsureOwnedBy(actorID); err != nil {
			return err
		}

		current := p.Attributes()
		attrs, err := buildAttributes(attributeInput{
			name:        patch.Coalesce(req.Name, current.Name.String()),
			description: patch.Coalesce(req.Description, current.Description),
			location:    patch.Coalesce(req.Location, current.Location.String()),
			rate:        patch.Coalesce(req.PricePerNight, current.NightlyRate.String()),
			bedrooms:    patch.Coalesce(req.Bedrooms, current.Capacity.Bedrooms()),
			bathrooms:   patch.Coalesce(req.Bathrooms, current.Capacity.Bathrooms()),
			maxGuests:   patch.Coalesce(req.MaxGuests, current.Capacity.MaxGuests()),
			amenities:   patch.Coalesce(req.Amenities, current.Amenities.Items()),
		})
		if err != nil {
			return err
		}

		if err := p.Update(attrs, uc.clock.Now()); err != nil {
			return err
		}
		if err := tx.Properties().Update(ctx, tx.DB(), p); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (uc *propertyCommandsImpl) Deactivate(ctx context.Context, propertyID, actorID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := findPropertyForUpdate(ctx, tx, propertyID)
		if err != nil {
			return err
		}
		if err := p.EnsureOwnedBy(actorID); err != nil {
			return err
		}

		p.Deactivate(uc.clock.Now())
		return tx.Properties().Deactivate(ctx, tx.DB(), p)
	})
}

type attributeInput struct {
	name        string
	description string
	location    string
	rate        string
	bedrooms    int
	bathrooms   int
	maxGuests   int
	amenities   []string
}

func buildAttributes(in attributeInput) (property.Attributes, error) {
	name, err := property.NewName(in.name)
	if err != nil {
		return property.Attributes{}, err
	}
	description, err := property.NewDescription(in.description)
	if err != nil {
		return property.Attributes{}, err
	}
	location, err := property.NewLocation(in.location)
	if err != nil {
		return property.Attributes{}, err
	}
	rate, err := pricing.ParsePositive(in.rate)
	if err != nil {
		return property.Attributes{}, err
	}
	capacity, err := property.NewCapacity(in.bedrooms, in.bathrooms, in.maxGuests)
	if err != nil {
		return property.Attributes{}, err
	}
	amenities, err := property.NewAmenities(in.amenities)
	if err != nil {
		return property.Attributes{}, err
	}

	return property.Attributes{
		Name:        name,
		Description: description,
		Location:    location,
		NightlyRate: rate,
		Capacity:    capacity,
		Amenities:   amenities,
	}, nil
}

// findPropertyForUpdate locks the property row for the rest of the transaction.
func findPropertyForUpdate(ctx context.Context, tx shared.Tx, id uuid.UUID) (*property.Property, error) {
	p, err := tx.Properties().FindForUpdate(ctx, tx.DB(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, property.ErrPropertyNotFound
		}
		return nil, err
	}
	return p, nil
}
