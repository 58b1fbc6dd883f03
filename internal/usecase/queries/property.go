package queries

import (
	"context"

	"stayhub/internal/domain/property"
	"stayhub/internal/infra"

	"github.com/google/uuid"
)

type PropertyReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PropertyView, error)
	ListActive(ctx context.Context, filters PropertyFilters, limit, offset int32) ([]*PropertyView, error)
	CountActive(ctx context.Context, filters PropertyFilters) (int64, error)
	ListByHost(ctx context.Context, hostID uuid.UUID) ([]*PropertyView, error)
}

type PropertyQueries interface {
	Get(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID) (*PropertyView, error)
	ListActive(ctx context.Context, filters PropertyFilters, page, limit int) (*PropertyPage, error)
	ListMine(ctx context.Context, hostID uuid.UUID) ([]*PropertyView, error)
}

type propertyQueriesImpl struct {
	readStore PropertyReadStore
}

func NewPropertyQueries(readStore PropertyReadStore) PropertyQueries {
	return &propertyQueriesImpl{readStore: readStore}
}

// Get returns inactive listings to their host only.
func (q *propertyQueriesImpl) Get(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID) (*PropertyView, error) {
	p, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, property.ErrPropertyNotFound
		}
		return nil, err
	}
	if !p.IsActive && (viewerID == nil || *viewerID != p.HostID) {
		return nil, property.ErrPropertyNotFound
	}
	return p, nil
}

func (q *propertyQueriesImpl) ListActive(ctx context.Context, filters PropertyFilters, page, limit int) (*PropertyPage, error) {
	limit = ValidateLimit(limit)
	if page < 1 {
		page = 1
	}
	switch filters.Sort {
	case SortNewest, SortPriceAsc, SortPriceDesc:
	default:
		filters.Sort = SortNewest
	}

	total, err := q.readStore.CountActive(ctx, filters)
	if err != nil {
		return nil, err
	}

	items := []*PropertyView{}
	offset := (page - 1) * limit
	if int64(offset) < total {
		items, err = q.readStore.ListActive(ctx, filters, int32(limit), int32(offset))
		if err != nil {
			return nil, err
		}
	}

	return &PropertyPage{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (q *propertyQueriesImpl) ListMine(ctx context.Context, hostID uuid.UUID) ([]*PropertyView, error) {
	return q.readStore.ListByHost(ctx, hostID)
}
