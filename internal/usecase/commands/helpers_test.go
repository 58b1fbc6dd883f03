//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"stayhub/internal/pkg/clock"
	"stayhub/internal/usecase/shared"
	sharedmock "stayhub/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)

// txFixture runs every Within callback against one MockTx whose
// repositories are exposed for expectations.
type txFixture struct {
	uow        *sharedmock.MockUnitOfWork
	tx         *sharedmock.MockTx
	users      *sharedmock.MockUserRepository
	properties *sharedmock.MockPropertyRepository
	bookings   *sharedmock.MockBookingRepository
	payments   *sharedmock.MockPaymentRepository
	reviews    *sharedmock.MockReviewRepository
	messages   *sharedmock.MockMessageRepository
	reads      *sharedmock.MockCommandReads
	clock      *clock.MockClock
}

func newTxFixture(t *testing.T) *txFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &txFixture{
		uow:        sharedmock.NewMockUnitOfWork(ctrl),
		tx:         sharedmock.NewMockTx(ctrl),
		users:      sharedmock.NewMockUserRepository(ctrl),
		properties: sharedmock.NewMockPropertyRepository(ctrl),
		bookings:   sharedmock.NewMockBookingRepository(ctrl),
		payments:   sharedmock.NewMockPaymentRepository(ctrl),
		reviews:    sharedmock.NewMockReviewRepository(ctrl),
		messages:   sharedmock.NewMockMessageRepository(ctrl),
		reads:      sharedmock.NewMockCommandReads(ctrl),
		clock:      clock.NewMockClock(fixedNow),
	}

	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	f.tx.EXPECT().Users().Return(f.users).AnyTimes()
	f.tx.EXPECT().Properties().Return(f.properties).AnyTimes()
	f.tx.EXPECT().Bookings().Return(f.bookings).AnyTimes()
	f.tx.EXPECT().Payments().Return(f.payments).AnyTimes()
	f.tx.EXPECT().Reviews().Return(f.reviews).AnyTimes()
	f.tx.EXPECT().Messages().Return(f.messages).AnyTimes()
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.uow.EXPECT().CommandReads().Return(f.reads).AnyTimes()

	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()

	return f
}
