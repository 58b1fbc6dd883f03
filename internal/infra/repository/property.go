package repository

import (
	"context"

	"stayhub/internal/domain/property"
	"stayhub/internal/infra"
	"stayhub/internal/infra/repository/converter"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PropertyWriteQueries interface {
	CreateProperty(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePropertyParams) (uuid.UUID, error)
	GetPropertyByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Properties, error)
	GetPropertyForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Properties, error)
	UpdateProperty(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePropertyParams) (int64, error)
	DeactivateProperty(ctx context.Context, db sqlc.DBTX, arg sqlc.DeactivatePropertyParams) (int64, error)
}

type PropertyRepository struct {
	queries PropertyWriteQueries
}

func NewPropertyRepository(queries PropertyWriteQueries) *PropertyRepository {
	return &PropertyRepository{queries: queries}
}

func (r *PropertyRepository) Create(ctx context.Context, tx sqlc.DBTX, p *property.Property) (uuid.UUID, error) {
	id, err := r.queries.CreateProperty(ctx, tx, converter.PropertyToCreateParams(p))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create property", err)
	}
	return id, nil
}

func (r *PropertyRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*property.Property, error) {
	row, err := r.queries.GetPropertyByID(ctx, tx, id)
	return r.fromRow(row, err)
}

func (r *PropertyRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*property.Property, error) {
	row, err := r.queries.GetPropertyForUpdate(ctx, tx, id)
	return r.fromRow(row, err)
}

func (r *PropertyRepository) Update(ctx context.Context, tx sqlc.DBTX, p *property.Property) error {
	rows, err := r.queries.UpdateProperty(ctx, tx, converter.PropertyToUpdateParams(p))
	if err != nil {
		return infra.WrapRepoErr("failed to update property", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("property not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PropertyRepository) Deactivate(ctx context.Context, tx sqlc.DBTX, p *property.Property) error {
	rows, err := r.queries.DeactivateProperty(ctx, tx, sqlc.DeactivatePropertyParams{
		ID:        p.ID(),
		UpdatedAt: pgconv.TimeToPgtype(p.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to deactivate property", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("property not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PropertyRepository) fromRow(row sqlc.Properties, err error) (*property.Property, error) {
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("property not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find property", err)
	}
	p, err := converter.PropertyFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert property row", err)
	}
	return p, nil
}
