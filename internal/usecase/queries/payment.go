package queries

import (
	"context"

	"stayhub/internal/domain/payment"
	"stayhub/internal/infra"

	"github.com/google/uuid"
)

type PaymentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PaymentView, error)
	ListByGuest(ctx context.Context, guestID uuid.UUID) ([]*PaymentView, error)
}

type PaymentQueries interface {
	Get(ctx context.Context, id, actorID uuid.UUID) (*PaymentView, error)
	ListMine(ctx context.Context, actorID uuid.UUID) ([]*PaymentView, error)
}

type paymentQueriesImpl struct {
	readStore PaymentReadStore
}

func NewPaymentQueries(readStore PaymentReadStore) PaymentQueries {
	return &paymentQueriesImpl{readStore: readStore}
}

func (q *paymentQueriesImpl) Get(ctx context.Context, id, actorID uuid.UUID) (*PaymentView, error) {
	p, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, payment.ErrPaymentNotFound
		}
		return nil, err
	}
	if p.GuestID != actorID {
		return nil, payment.ErrPaymentNotFound
	}
	return p, nil
}

func (q *paymentQueriesImpl) ListMine(ctx context.Context, actorID uuid.UUID) ([]*PaymentView, error) {
	return q.readStore.ListByGuest(ctx, actorID)
}
