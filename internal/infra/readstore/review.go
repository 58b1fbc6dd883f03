package readstore

import (
	"context"
	"time"

	"stayhub/internal/domain/review"
	"stayhub/internal/infra"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/pgconv"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewViewQueries interface {
	GetReviewViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReviewViewByIDRow, error)
	GetReviewsByPropertyFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.GetReviewsByPropertyFirstPageParams) ([]sqlc.GetReviewsByPropertyFirstPageRow, error)
	GetReviewsByPropertyKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.GetReviewsByPropertyKeysetParams) ([]sqlc.GetReviewsByPropertyKeysetRow, error)
	GetPropertyRatingSummary(ctx context.Context, db sqlc.DBTX, propertyID uuid.UUID) (sqlc.GetPropertyRatingSummaryRow, error)
}

type ReviewReadStore struct {
	queries ReviewViewQueries
	db      sqlc.DBTX
}

func NewReviewReadStore(queries ReviewViewQueries, db sqlc.DBTX) *ReviewReadStore {
	return &ReviewReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	row, err := r.queries.GetReviewViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get review view by id", err)
	}
	return &queries.ReviewView{
		ID:           row.ID,
		PropertyID:   row.PropertyID,
		PropertyName: row.PropertyName,
		GuestID:      row.GuestID,
		GuestName:    fullName(row.GuestFirstName, row.GuestLastName),
		Rating:       row.Rating,
		Comment:      row.Comment,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *ReviewReadStore) FindByPropertyFirstPage(ctx context.Context, propertyID uuid.UUID, limit int32) ([]*queries.ReviewListItem, error) {
	params := sqlc.GetReviewsByPropertyFirstPageParams{
		PropertyID: propertyID,
		Limit:      limit,
	}
	rows, err := r.queries.GetReviewsByPropertyFirstPage(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reviews first page by property", err)
	}
	return mapFirstPageRows(rows), nil
}

func (r *ReviewReadStore) FindByPropertyKeyset(ctx context.Context, propertyID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReviewListItem, error) {
	params := sqlc.GetReviewsByPropertyKeysetParams{
		PropertyID: propertyID,
		CreatedAt:  pgconv.TimeToPgtype(lastCreatedAt),
		ID:         lastID,
		Limit:      limit,
	}
	rows, err := r.queries.GetReviewsByPropertyKeyset(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reviews keyset by property", err)
	}
	return mapKeysetRows(rows), nil
}

// RatingSummary folds the ratings at read time. No stats table backs it.
func (r *ReviewReadStore) RatingSummary(ctx context.Context, propertyID uuid.UUID) (review.Summary, error) {
	row, err := r.queries.GetPropertyRatingSummary(ctx, r.db, propertyID)
	if err != nil {
		return review.Summary{}, infra.WrapRepoErr("failed to get property rating summary", err)
	}
	return review.Summary{Sum: row.RatingSum, Count: row.ReviewCount}, nil
}

func mapFirstPageRows(rows []sqlc.GetReviewsByPropertyFirstPageRow) []*queries.ReviewListItem {
	items := make([]*queries.ReviewListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &queries.ReviewListItem{
			ID:        row.ID,
			GuestID:   row.GuestID,
			GuestName: fullName(row.GuestFirstName, row.GuestLastName),
			Rating:    row.Rating,
			Comment:   row.Comment,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return items
}

func mapKeysetRows(rows []sqlc.GetReviewsByPropertyKeysetRow) []*queries.ReviewListItem {
	converted := make([]sqlc.GetReviewsByPropertyFirstPageRow, len(rows))
	for i, row := range rows {
		converted[i] = sqlc.GetReviewsByPropertyFirstPageRow(row)
	}
	return mapFirstPageRows(converted)
}
