//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"stayhub/internal/domain/booking"
	"stayhub/internal/infra"
	"stayhub/internal/infra/repository"
	"stayhub/internal/infra/repository/converter"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/pgconv"
	"stayhub/tests/common/builder"
	repositorymock "stayhub/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockBookingWriteQueries, *booking.Booking, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: booking created",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, converter.BookingToCreateParams(b)).Return(b.ID(), nil)
			},
		},
		{
			name: "error: exclusion constraint reports a conflict",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				pgErr := &pgconn.PgError{Code: "23P01", ConstraintName: "bookings_no_overlap"}
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(uuid.Nil, pgErr)
			},
			expectedError: true,
			expectKind:    infra.KindConflict,
		},
		{
			name: "error: check constraint violated",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				pgErr := &pgconn.PgError{Code: "23514", ConstraintName: "bookings_dates_check"}
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(uuid.Nil, pgErr)
			},
			expectedError: true,
			expectKind:    infra.KindCheckViolated,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(uuid.Nil, errors.New("connection reset"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries)

			b, err := builder.NewBookingBuilder().BuildDomain()
			require.NoError(t, err)
			tc.setupMock(mockQueries, b, mockDB)

			id, err := repo.Create(ctx, mockDB, b)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				assert.Equal(t, uuid.Nil, id)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, b.ID(), id)
		})
	}
}

func TestBookingRepository_FindForUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("success: row converted to domain", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookingRepository(mockQueries)

		row := builder.NewBookingBuilder().AsConfirmed().WithTotalPrice("600.00").BuildInfra()
		mockQueries.EXPECT().GetBookingForUpdate(ctx, mockDB, row.ID).Return(row, nil)

		got, err := repo.FindForUpdate(ctx, mockDB, row.ID)

		require.NoError(t, err)
		assert.Equal(t, row.ID, got.ID())
		assert.Equal(t, booking.StatusConfirmed, got.Status())
		assert.Equal(t, "600.00", got.TotalPrice().String())
		assert.Equal(t, 5, got.Nights())
	})

	t.Run("error: no rows maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookingRepository(mockQueries)

		id := uuid.New()
		mockQueries.EXPECT().GetBookingForUpdate(ctx, mockDB, id).Return(sqlc.Bookings{}, pgx.ErrNoRows)

		_, err := repo.FindForUpdate(ctx, mockDB, id)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: stored status is unknown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookingRepository(mockQueries)

		row := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.Status = "archived" }).BuildInfra()
		mockQueries.EXPECT().GetBookingByID(ctx, mockDB, row.ID).Return(row, nil)

		_, err := repo.FindByID(ctx, mockDB, row.ID)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestBookingRepository_ListActiveOverlapping(t *testing.T) {
	ctx := context.Background()
	propertyID := uuid.New()
	stay, err := booking.ParseStay("2024-06-10", "2024-06-15")
	require.NoError(t, err)

	t.Run("success: rows converted to occupancies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookingRepository(mockQueries)

		first := builder.NewBookingBuilder().WithDates("2024-06-08", "2024-06-10").BuildInfra()
		second := builder.NewBookingBuilder().WithDates("2024-06-12", "2024-06-20").AsConfirmed().BuildInfra()

		mockQueries.EXPECT().ListActiveOverlappingBookings(ctx, mockDB, sqlc.ListActiveOverlappingBookingsParams{
			PropertyID: propertyID,
			RangeEnd:   pgconv.DateToPgtype(stay.End()),
			RangeStart: pgconv.DateToPgtype(stay.Start()),
		}).Return([]sqlc.ListActiveOverlappingBookingsRow{
			{ID: first.ID, StartDate: first.StartDate, EndDate: first.EndDate, Status: first.Status},
			{ID: second.ID, StartDate: second.StartDate, EndDate: second.EndDate, Status: second.Status},
		}, nil)

		got, err := repo.ListActiveOverlapping(ctx, mockDB, propertyID, stay)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, first.ID, got[0].BookingID)
		assert.Equal(t, booking.StatusPending, got[0].Status)
		assert.Equal(t, second.ID, got[1].BookingID)
		assert.Equal(t, booking.StatusConfirmed, got[1].Status)
		assert.True(t, got[1].Stay.Overlaps(stay))
	})

	t.Run("success: no rows yields empty slice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookingRepository(mockQueries)

		mockQueries.EXPECT().ListActiveOverlappingBookings(ctx, mockDB, gomock.Any()).Return(nil, nil)

		got, err := repo.ListActiveOverlapping(ctx, mockDB, propertyID, stay)

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("error: unconvertible row fails instead of being skipped", func(t *testing.T) {
		inverted := builder.NewBookingBuilder().BuildInfra()
		inverted.StartDate, inverted.EndDate = inverted.EndDate, inverted.StartDate
		unknown := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.Status = "archived" }).BuildInfra()

		for _, row := range []sqlc.Bookings{inverted, unknown} {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries)

			mockQueries.EXPECT().ListActiveOverlappingBookings(ctx, mockDB, gomock.Any()).Return([]sqlc.ListActiveOverlappingBookingsRow{
				{ID: row.ID, StartDate: row.StartDate, EndDate: row.EndDate, Status: row.Status},
			}, nil)

			got, err := repo.ListActiveOverlapping(ctx, mockDB, propertyID, stay)

			require.Error(t, err)
			assert.Nil(t, got)
			assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		}
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookingRepository(mockQueries)

		mockQueries.EXPECT().ListActiveOverlappingBookings(ctx, mockDB, gomock.Any()).Return(nil, errors.New("timeout"))

		_, err := repo.ListActiveOverlapping(ctx, mockDB, propertyID, stay)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestBookingRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		rows       int64
		dbErr      error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: status updated", rows: 1},
		{name: "error: booking not found", rows: 0, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", dbErr: errors.New("broken pipe"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries)

			b, err := builder.NewBookingBuilder().AsCanceled().BuildDomain()
			require.NoError(t, err)

			mockQueries.EXPECT().UpdateBookingStatus(ctx, mockDB, sqlc.UpdateBookingStatusParams{
				ID:        b.ID(),
				Status:    "canceled",
				UpdatedAt: pgconv.TimeToPgtype(b.UpdatedAt()),
			}).Return(tc.rows, tc.dbErr)

			err = repo.UpdateStatus(ctx, mockDB, b)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
