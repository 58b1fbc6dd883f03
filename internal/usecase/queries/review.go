package queries

import (
	"context"
	"time"

	"stayhub/internal/domain/property"
	"stayhub/internal/domain/review"
	"stayhub/internal/infra"

	"github.com/google/uuid"
)

type ReviewReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	FindByPropertyFirstPage(ctx context.Context, propertyID uuid.UUID, limit int32) ([]*ReviewListItem, error)
	FindByPropertyKeyset(ctx context.Context, propertyID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ReviewListItem, error)
	RatingSummary(ctx context.Context, propertyID uuid.UUID) (review.Summary, error)
}

type ReviewQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	ListByProperty(ctx context.Context, propertyID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewListItem, *Cursor, error)
	GetRatingSummary(ctx context.Context, propertyID uuid.UUID) (*RatingSummary, error)
}

type reviewQueriesImpl struct {
	repo       ReviewReadStore
	properties PropertyReadStore
}

func NewReviewQueries(repo ReviewReadStore, properties PropertyReadStore) ReviewQueries {
	return &reviewQueriesImpl{repo: repo, properties: properties}
}

func (q *reviewQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error) {
	rv, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, review.ErrReviewNotFound
		}
		return nil, err
	}
	return rv, nil
}

// ListByProperty pages newest first.
func (q *reviewQueriesImpl) ListByProperty(ctx context.Context, propertyID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewListItem, *Cursor, error) {
	if err := q.ensureProperty(ctx, propertyID); err != nil {
		return nil, nil, err
	}

	limit = ValidateLimit(limit)
	after, err := cursor.Keyset()
	if err != nil {
		return nil, nil, err
	}

	var rows []*ReviewListItem
	if after == nil {
		rows, err = q.repo.FindByPropertyFirstPage(ctx, propertyID, int32(limit+1))
	} else {
		rows, err = q.repo.FindByPropertyKeyset(ctx, propertyID, after.At, after.ID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	rows, next := paginate(rows, limit, func(r *ReviewListItem) (time.Time, uuid.UUID) {
		return r.CreatedAt, r.ID
	})
	return rows, next, nil
}

func (q *reviewQueriesImpl) GetRatingSummary(ctx context.Context, propertyID uuid.UUID) (*RatingSummary, error) {
	if err := q.ensureProperty(ctx, propertyID); err != nil {
		return nil, err
	}
	s, err := q.repo.RatingSummary(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	return &RatingSummary{
		PropertyID:    propertyID,
		AverageRating: s.Average(),
		ReviewCount:   s.Count,
	}, nil
}

func (q *reviewQueriesImpl) ensureProperty(ctx context.Context, propertyID uuid.UUID) error {
	if _, err := q.properties.FindByID(ctx, propertyID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return property.ErrPropertyNotFound
		}
		return err
	}
	return nil
}
