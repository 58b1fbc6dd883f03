package readstore

import (
	"context"

	"stayhub/internal/infra"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/pgconv"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingViewQueries interface {
	GetBookingViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingViewByIDRow, error)
	ListBookingsByGuest(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByGuestParams) ([]sqlc.ListBookingsByGuestRow, error)
	ListBookingsByHost(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByHostParams) ([]sqlc.ListBookingsByHostRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view by id", err)
	}
	return toBookingView(row)
}

func (r *BookingReadStore) ListByGuest(ctx context.Context, guestID uuid.UUID, after *queries.Keyset, limit int32) ([]*queries.BookingView, error) {
	at, id := keysetParams(after)
	rows, err := r.queries.ListBookingsByGuest(ctx, r.db, sqlc.ListBookingsByGuestParams{
		GuestID:         guestID,
		CursorCreatedAt: at,
		CursorID:        id,
		Limit:           limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by guest", err)
	}

	items := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		v, err := toBookingView(sqlc.GetBookingViewByIDRow(row))
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, nil
}

func (r *BookingReadStore) ListByHost(ctx context.Context, hostID uuid.UUID, after *queries.Keyset, limit int32) ([]*queries.BookingView, error) {
	at, id := keysetParams(after)
	rows, err := r.queries.ListBookingsByHost(ctx, r.db, sqlc.ListBookingsByHostParams{
		HostID:          hostID,
		CursorCreatedAt: at,
		CursorID:        id,
		Limit:           limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by host", err)
	}

	items := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		v, err := toBookingView(sqlc.GetBookingViewByIDRow(row))
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, nil
}

func toBookingView(row sqlc.GetBookingViewByIDRow) (*queries.BookingView, error) {
	total, err := pgconv.MoneyFromNumeric(row.TotalPrice)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode total price", err)
	}
	start := pgconv.DateFromPgtype(row.StartDate)
	end := pgconv.DateFromPgtype(row.EndDate)
	return &queries.BookingView{
		ID:           row.ID,
		PropertyID:   row.PropertyID,
		PropertyName: row.PropertyName,
		HostID:       row.HostID,
		GuestID:      row.GuestID,
		StartDate:    start,
		EndDate:      end,
		Nights:       int(end.Sub(start).Hours() / 24),
		Guests:       row.Guests,
		TotalPrice:   total,
		Status:       row.Status,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

// keysetParams maps a nil keyset to NULL so the query returns the first page.
func keysetParams(after *queries.Keyset) (pgtype.Timestamptz, pgtype.UUID) {
	if after == nil {
		return pgtype.Timestamptz{}, pgtype.UUID{}
	}
	return pgconv.TimeToPgtype(after.At), pgconv.UUIDToPgtype(after.ID)
}
