package readstore

import (
	"context"
	"strings"

	"stayhub/internal/domain/property"
	"stayhub/internal/domain/review"
	"stayhub/internal/infra"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/pgconv"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PropertyViewQueries interface {
	GetPropertyViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetPropertyViewByIDRow, error)
	ListActiveProperties(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActivePropertiesParams) ([]sqlc.ListActivePropertiesRow, error)
	CountActiveProperties(ctx context.Context, db sqlc.DBTX, arg sqlc.CountActivePropertiesParams) (int64, error)
	ListPropertiesByHost(ctx context.Context, db sqlc.DBTX, hostID uuid.UUID) ([]sqlc.Properties, error)
}

type PropertyReadStore struct {
	queries PropertyViewQueries
	db      sqlc.DBTX
}

func NewPropertyReadStore(queries PropertyViewQueries, db sqlc.DBTX) *PropertyReadStore {
	return &PropertyReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PropertyReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PropertyView, error) {
	row, err := r.queries.GetPropertyViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("property not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get property view by id", err)
	}
	return toPropertyView(sqlc.ListActivePropertiesRow(row))
}

func (r *PropertyReadStore) ListActive(ctx context.Context, filters queries.PropertyFilters, limit, offset int32) ([]*queries.PropertyView, error) {
	rows, err := r.queries.ListActiveProperties(ctx, r.db, sqlc.ListActivePropertiesParams{
		Location:  containsPattern(filters.Location),
		Bedrooms:  pgconv.IntPtrToPgtype(filters.Bedrooms),
		Bathrooms: pgconv.IntPtrToPgtype(filters.Bathrooms),
		MinGuests: pgconv.IntPtrToPgtype(filters.MinGuests),
		Search:    containsPattern(filters.Search),
		Sort:      string(filters.Sort),
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active properties", err)
	}

	items := make([]*queries.PropertyView, 0, len(rows))
	for _, row := range rows {
		v, err := toPropertyView(row)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, nil
}

func (r *PropertyReadStore) CountActive(ctx context.Context, filters queries.PropertyFilters) (int64, error) {
	n, err := r.queries.CountActiveProperties(ctx, r.db, sqlc.CountActivePropertiesParams{
		Location:  containsPattern(filters.Location),
		Bedrooms:  pgconv.IntPtrToPgtype(filters.Bedrooms),
		Bathrooms: pgconv.IntPtrToPgtype(filters.Bathrooms),
		MinGuests: pgconv.IntPtrToPgtype(filters.MinGuests),
		Search:    containsPattern(filters.Search),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count active properties", err)
	}
	return n, nil
}

// ListByHost includes inactive listings. Rating figures are not loaded here.
func (r *PropertyReadStore) ListByHost(ctx context.Context, hostID uuid.UUID) ([]*queries.PropertyView, error) {
	rows, err := r.queries.ListPropertiesByHost(ctx, r.db, hostID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list properties by host", err)
	}

	items := make([]*queries.PropertyView, 0, len(rows))
	for _, row := range rows {
		price, err := pgconv.MoneyFromNumeric(row.PricePerNight)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode price per night", err)
		}
		items = append(items, &queries.PropertyView{
			ID:            row.ID,
			HostID:        row.HostID,
			Name:          row.Name,
			Description:   row.Description,
			Location:      row.Location,
			PricePerNight: price,
			Bedrooms:      row.Bedrooms,
			Bathrooms:     row.Bathrooms,
			MaxGuests:     row.MaxGuests,
			Amenities:     property.ParseAmenities(row.Amenities).Items(),
			IsActive:      row.IsActive,
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
		})
	}
	return items, nil
}

func toPropertyView(row sqlc.ListActivePropertiesRow) (*queries.PropertyView, error) {
	price, err := pgconv.MoneyFromNumeric(row.PricePerNight)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode price per night", err)
	}
	summary := review.Summary{Sum: row.RatingSum, Count: row.ReviewCount}
	return &queries.PropertyView{
		ID:            row.ID,
		HostID:        row.HostID,
		HostName:      fullName(row.HostFirstName, row.HostLastName),
		Name:          row.Name,
		Description:   row.Description,
		Location:      row.Location,
		PricePerNight: price,
		Bedrooms:      row.Bedrooms,
		Bathrooms:     row.Bathrooms,
		MaxGuests:     row.MaxGuests,
		Amenities:     property.ParseAmenities(row.Amenities).Items(),
		IsActive:      row.IsActive,
		AverageRating: summary.Average(),
		ReviewCount:   row.ReviewCount,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern escapes LIKE metacharacters so the filter matches the
// input literally inside the query's '%' wrapping.
func containsPattern(s *string) pgtype.Text {
	if s == nil || strings.TrimSpace(*s) == "" {
		return pgtype.Text{}
	}
	return pgconv.StringToPgtype(likeEscaper.Replace(strings.TrimSpace(*s)))
}
