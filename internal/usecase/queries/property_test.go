//go:build unit

package queries_test

import (
	"context"
	"testing"

	"stayhub/internal/domain/property"
	"stayhub/internal/infra"
	"stayhub/internal/usecase/queries"
	"stayhub/tests/common/builder"
	queriesmock "stayhub/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPropertyQueries_Get(t *testing.T) {
	ctx := context.Background()
	hostID := uuid.New()
	stranger := uuid.New()

	testCases := []struct {
		name     string
		inactive bool
		viewer   *uuid.UUID
		storeErr error
		wantErr  error
	}{
		{name: "success: active listing visible anonymously"},
		{name: "success: inactive listing visible to its host", inactive: true, viewer: &hostID},
		{name: "error: inactive listing hidden from anonymous", inactive: true, wantErr: property.ErrPropertyNotFound},
		{name: "error: inactive listing hidden from other users", inactive: true, viewer: &stranger, wantErr: property.ErrPropertyNotFound},
		{
			name:     "error: missing listing",
			storeErr: infra.WrapRepoErr("property not found", nil, infra.KindNotFound),
			wantErr:  property.ErrPropertyNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockPropertyReadStore(ctrl)
			q := queries.NewPropertyQueries(store)

			b := builder.NewPropertyBuilder().WithHostID(hostID)
			if tc.inactive {
				b = b.AsInactive()
			}
			view := b.BuildView()
			if tc.storeErr != nil {
				store.EXPECT().FindByID(ctx, view.ID).Return(nil, tc.storeErr)
			} else {
				store.EXPECT().FindByID(ctx, view.ID).Return(view, nil)
			}

			got, err := q.Get(ctx, view.ID, tc.viewer)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, view.ID, got.ID)
		})
	}
}

func TestPropertyQueries_ListActive(t *testing.T) {
	ctx := context.Background()

	t.Run("success: defaults applied and offset computed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPropertyReadStore(ctrl)
		q := queries.NewPropertyQueries(store)

		expected := queries.PropertyFilters{Sort: queries.SortNewest}
		views := []*queries.PropertyView{builder.NewPropertyBuilder().BuildView()}
		store.EXPECT().CountActive(ctx, expected).Return(int64(45), nil)
		store.EXPECT().ListActive(ctx, expected, int32(queries.DefaultListLimit), int32(queries.DefaultListLimit)).Return(views, nil)

		page, err := q.ListActive(ctx, queries.PropertyFilters{Sort: "bogus"}, 2, 0)

		require.NoError(t, err)
		assert.Equal(t, int64(45), page.Total)
		assert.Equal(t, 2, page.Page)
		assert.Equal(t, queries.DefaultListLimit, page.Limit)
		assert.Len(t, page.Items, 1)
	})

	t.Run("success: page past the end skips the listing query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPropertyReadStore(ctrl)
		q := queries.NewPropertyQueries(store)

		store.EXPECT().CountActive(ctx, gomock.Any()).Return(int64(3), nil)

		page, err := q.ListActive(ctx, queries.PropertyFilters{Sort: queries.SortPriceDesc}, 5, 10)

		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.NotNil(t, page.Items)
		assert.Equal(t, int64(3), page.Total)
	})

	t.Run("success: page below one becomes first page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPropertyReadStore(ctrl)
		q := queries.NewPropertyQueries(store)

		store.EXPECT().CountActive(ctx, gomock.Any()).Return(int64(1), nil)
		store.EXPECT().ListActive(ctx, gomock.Any(), int32(10), int32(0)).Return([]*queries.PropertyView{}, nil)

		page, err := q.ListActive(ctx, queries.PropertyFilters{}, 0, 10)

		require.NoError(t, err)
		assert.Equal(t, 1, page.Page)
	})
}
