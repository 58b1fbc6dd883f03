package readstore

import (
	"context"

	"stayhub/internal/infra"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/pgconv"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentViewQueries interface {
	GetPaymentViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetPaymentViewByIDRow, error)
	ListPaymentsByGuest(ctx context.Context, db sqlc.DBTX, guestID uuid.UUID) ([]sqlc.ListPaymentsByGuestRow, error)
}

type PaymentReadStore struct {
	queries PaymentViewQueries
	db      sqlc.DBTX
}

func NewPaymentReadStore(queries PaymentViewQueries, db sqlc.DBTX) *PaymentReadStore {
	return &PaymentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PaymentView, error) {
	row, err := r.queries.GetPaymentViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get payment view by id", err)
	}
	return toPaymentView(row)
}

func (r *PaymentReadStore) ListByGuest(ctx context.Context, guestID uuid.UUID) ([]*queries.PaymentView, error) {
	rows, err := r.queries.ListPaymentsByGuest(ctx, r.db, guestID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments by guest", err)
	}

	items := make([]*queries.PaymentView, 0, len(rows))
	for _, row := range rows {
		v, err := toPaymentView(sqlc.GetPaymentViewByIDRow(row))
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, nil
}

func toPaymentView(row sqlc.GetPaymentViewByIDRow) (*queries.PaymentView, error) {
	amount, err := pgconv.MoneyFromNumeric(row.Amount)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode payment amount", err)
	}
	return &queries.PaymentView{
		ID:            row.ID,
		BookingID:     row.BookingID,
		GuestID:       row.GuestID,
		PropertyID:    row.PropertyID,
		Amount:        amount,
		PaymentMethod: row.PaymentMethod,
		TransactionID: pgconv.StringPtrFromPgtype(row.TransactionID),
		IsSuccessful:  row.IsSuccessful,
		PaymentDate:   pgconv.TimeFromPgtype(row.PaymentDate),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
