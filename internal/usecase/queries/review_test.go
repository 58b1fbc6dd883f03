//go:build unit

package queries_test

import (
	"context"
	"testing"

	"stayhub/internal/domain/property"
	"stayhub/internal/domain/review"
	"stayhub/internal/infra"
	"stayhub/internal/usecase/queries"
	"stayhub/tests/common/builder"
	queriesmock "stayhub/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReviewQueries_GetRatingSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("success: average computed from summary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reviews := queriesmock.NewMockReviewReadStore(ctrl)
		properties := queriesmock.NewMockPropertyReadStore(ctrl)
		q := queries.NewReviewQueries(reviews, properties)

		prop := builder.NewPropertyBuilder().BuildView()
		properties.EXPECT().FindByID(ctx, prop.ID).Return(prop, nil)
		reviews.EXPECT().RatingSummary(ctx, prop.ID).Return(review.Summary{Sum: 7, Count: 2}, nil)

		got, err := q.GetRatingSummary(ctx, prop.ID)

		require.NoError(t, err)
		assert.Equal(t, prop.ID, got.PropertyID)
		assert.InDelta(t, 3.5, got.AverageRating, 1e-9)
		assert.Equal(t, int64(2), got.ReviewCount)
	})

	t.Run("error: unknown property", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reviews := queriesmock.NewMockReviewReadStore(ctrl)
		properties := queriesmock.NewMockPropertyReadStore(ctrl)
		q := queries.NewReviewQueries(reviews, properties)

		id := uuid.New()
		properties.EXPECT().FindByID(ctx, id).Return(nil, infra.WrapRepoErr("property not found", nil, infra.KindNotFound))

		_, err := q.GetRatingSummary(ctx, id)

		require.ErrorIs(t, err, property.ErrPropertyNotFound)
	})
}

func TestReviewQueries_ListByProperty(t *testing.T) {
	ctx := context.Background()

	t.Run("success: first page without cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reviews := queriesmock.NewMockReviewReadStore(ctrl)
		properties := queriesmock.NewMockPropertyReadStore(ctrl)
		q := queries.NewReviewQueries(reviews, properties)

		prop := builder.NewPropertyBuilder().BuildView()
		items := []*queries.ReviewListItem{builder.NewReviewBuilder().BuildListItem()}
		properties.EXPECT().FindByID(ctx, prop.ID).Return(prop, nil)
		reviews.EXPECT().FindByPropertyFirstPage(ctx, prop.ID, int32(queries.DefaultListLimit+1)).Return(items, nil)

		got, next, err := q.ListByProperty(ctx, prop.ID, nil, 0)

		require.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Nil(t, next)
	})

	t.Run("success: keyset page uses cursor position", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reviews := queriesmock.NewMockReviewReadStore(ctrl)
		properties := queriesmock.NewMockPropertyReadStore(ctrl)
		q := queries.NewReviewQueries(reviews, properties)

		prop := builder.NewPropertyBuilder().BuildView()
		last := builder.NewReviewBuilder().BuildListItem()
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(last.CreatedAt, last.ID)}
		properties.EXPECT().FindByID(ctx, prop.ID).Return(prop, nil)
		reviews.EXPECT().
			FindByPropertyKeyset(ctx, prop.ID, gomock.Any(), last.ID, int32(11)).
			Return([]*queries.ReviewListItem{}, nil)

		got, next, err := q.ListByProperty(ctx, prop.ID, cursor, 10)

		require.NoError(t, err)
		assert.Empty(t, got)
		assert.Nil(t, next)
	})

	t.Run("error: review lookup maps not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reviews := queriesmock.NewMockReviewReadStore(ctrl)
		properties := queriesmock.NewMockPropertyReadStore(ctrl)
		q := queries.NewReviewQueries(reviews, properties)

		id := uuid.New()
		reviews.EXPECT().FindByID(ctx, id).Return(nil, infra.WrapRepoErr("review not found", nil, infra.KindNotFound))

		_, err := q.GetByID(ctx, id)

		require.ErrorIs(t, err, review.ErrReviewNotFound)
	})
}
