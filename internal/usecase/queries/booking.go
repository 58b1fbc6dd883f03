package queries

import (
	"context"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/infra"

	"github.com/google/uuid"
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByGuest(ctx context.Context, guestID uuid.UUID, after *Keyset, limit int32) ([]*BookingView, error)
	ListByHost(ctx context.Context, hostID uuid.UUID, after *Keyset, limit int32) ([]*BookingView, error)
}

type BookingQueries interface {
	Get(ctx context.Context, id, actorID uuid.UUID) (*BookingView, error)
	ListMine(ctx context.Context, guestID uuid.UUID, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error)
	ListForHost(ctx context.Context, hostID uuid.UUID, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

// Get answers not-found to anyone but the guest and the host so a booking's
// existence is not leaked.
func (q *bookingQueriesImpl) Get(ctx context.Context, id, actorID uuid.UUID) (*BookingView, error) {
	b, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, err
	}
	if b.GuestID != actorID && b.HostID != actorID {
		return nil, booking.ErrBookingNotFound
	}
	return b, nil
}

func (q *bookingQueriesImpl) ListMine(ctx context.Context, guestID uuid.UUID, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	return q.list(cursor, limit, func(after *Keyset, n int32) ([]*BookingView, error) {
		return q.readStore.ListByGuest(ctx, guestID, after, n)
	})
}

func (q *bookingQueriesImpl) ListForHost(ctx context.Context, hostID uuid.UUID, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	return q.list(cursor, limit, func(after *Keyset, n int32) ([]*BookingView, error) {
		return q.readStore.ListByHost(ctx, hostID, after, n)
	})
}

func (q *bookingQueriesImpl) list(
	cursor *Cursor,
	limit int,
	fetch func(after *Keyset, n int32) ([]*BookingView, error),
) ([]*BookingView, *Cursor, error) {
	limit = ValidateLimit(limit)
	after, err := cursor.Keyset()
	if err != nil {
		return nil, nil, err
	}
	rows, err := fetch(after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	rows, next := paginate(rows, limit, func(b *BookingView) (time.Time, uuid.UUID) {
		return b.CreatedAt, b.ID
	})
	return rows, next, nil
}
