//go:build e2e

package review_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"stayhub/internal/domain/user"
	"stayhub/internal/handler/dto/request"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/tests/common/authtest"
	"stayhub/tests/common/dbtest"
	"stayhub/tests/common/httptest"
	"stayhub/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const reviewsURL = "/api/reviews"

type reviewSuite struct {
	e2e.SharedSuite
}

func TestReviewSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(reviewSuite))
}

type reviewFixture struct {
	guestID    uuid.UUID
	guestToken string
	propertyID uuid.UUID
}

func (s *reviewSuite) setupFixture() reviewFixture {
	t := s.T()
	var f reviewFixture
	hostID := dbtest.CreateTestUser(t, s.DB, "host@example.com", string(user.RoleHost))
	f.guestID, f.guestToken = authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", string(user.RoleGuest))
	f.propertyID = dbtest.CreateTestProperty(t, s.DB, hostID, "Forest Cabin", "80.00")
	return f
}

func propertyReviewsURL(propertyID uuid.UUID) string {
	return fmt.Sprintf("/api/properties/%s/reviews", propertyID)
}

func (s *reviewSuite) createReview(token string, propertyID uuid.UUID, rating int, comment string) *resdto.ReviewResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, request.CreateReviewRequest{
		PropertyID: propertyID,
		Rating:     rating,
		Comment:    comment,
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var res resdto.ReviewResponse
	httptest.DecodeResponseBody(t, w.Body, &res)
	return &res
}

func (s *reviewSuite) TestCreate() {
	s.Run("レビューの作成", func() {
		t := s.T()
		f := s.setupFixture()

		res := s.createReview(f.guestToken, f.propertyID, 5, "Quiet and clean")

		require.Equal(t, f.propertyID, res.PropertyID)
		require.Equal(t, f.guestID, res.GuestID)
		require.Equal(t, "Forest Cabin", res.PropertyName)
		require.Equal(t, "Test User", res.GuestName)
		require.Equal(t, int32(5), res.Rating)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "reviews"))
	})

	s.Run("同じ物件への2件目のレビュー", func() {
		t := s.T()
		f := s.setupFixture()
		s.createReview(f.guestToken, f.propertyID, 4, "Nice")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, request.CreateReviewRequest{
			PropertyID: f.propertyID, Rating: 3, Comment: "Second thoughts",
		}, f.guestToken)
		require.Equal(t, http.StatusBadRequest, w.Code, "1物件につき1レビューであること")
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "reviews"))
	})

	tests := []struct {
		name           string
		body           func(f reviewFixture) map[string]any
		expectedStatus int
		description    string
	}{
		{
			name: "評価が範囲外（0）",
			body: func(f reviewFixture) map[string]any {
				return map[string]any{"property_id": f.propertyID, "rating": 0, "comment": "Bad"}
			},
			expectedStatus: http.StatusBadRequest,
			description:    "評価は1以上であること",
		},
		{
			name: "評価が範囲外（6）",
			body: func(f reviewFixture) map[string]any {
				return map[string]any{"property_id": f.propertyID, "rating": 6, "comment": "Great"}
			},
			expectedStatus: http.StatusBadRequest,
			description:    "評価は5以下であること",
		},
		{
			name: "空白のみのコメント",
			body: func(f reviewFixture) map[string]any {
				return map[string]any{"property_id": f.propertyID, "rating": 3, "comment": "   "}
			},
			expectedStatus: http.StatusBadRequest,
			description:    "空のコメントは拒否されること",
		},
		{
			name: "長すぎるコメント",
			body: func(f reviewFixture) map[string]any {
				return map[string]any{"property_id": f.propertyID, "rating": 3, "comment": strings.Repeat("a", 1001)}
			},
			expectedStatus: http.StatusBadRequest,
			description:    "1000文字を超えるコメントは拒否されること",
		},
		{
			name: "存在しない物件",
			body: func(reviewFixture) map[string]any {
				return map[string]any{"property_id": uuid.New(), "rating": 3, "comment": "Where?"}
			},
			expectedStatus: http.StatusNotFound,
			description:    "存在しない物件にはレビューできないこと",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()
			f := s.setupFixture()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, tt.body(f), f.guestToken)
			require.Equal(t, tt.expectedStatus, w.Code, tt.description+": "+w.Body.String())
			require.Zero(t, dbtest.CountRows(t, s.DB, "reviews"))
		})
	}

	s.Run("未認証でのレビュー作成", func() {
		t := s.T()
		f := s.setupFixture()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, request.CreateReviewRequest{
			PropertyID: f.propertyID, Rating: 3, Comment: "Anonymous",
		}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *reviewSuite) TestUpdate() {
	s.Run("作成者による部分更新", func() {
		t := s.T()
		f := s.setupFixture()
		created := s.createReview(f.guestToken, f.propertyID, 2, "Too noisy")

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, reviewsURL+"/"+created.ID.String(),
			map[string]any{"rating": 4}, f.guestToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res resdto.ReviewResponse
		httptest.DecodeResponseBody(t, w.Body, &res)
		require.Equal(t, int32(4), res.Rating)
		require.Equal(t, "Too noisy", res.Comment, "指定していないコメントが変更されている")
	})

	s.Run("作成者以外による更新", func() {
		t := s.T()
		f := s.setupFixture()
		created := s.createReview(f.guestToken, f.propertyID, 2, "Too noisy")

		_, otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", string(user.RoleGuest))
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, reviewsURL+"/"+created.ID.String(),
			map[string]any{"rating": 5}, otherToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("存在しないレビューの更新", func() {
		t := s.T()
		f := s.setupFixture()

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, reviewsURL+"/"+uuid.NewString(),
			map[string]any{"rating": 5}, f.guestToken)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func (s *reviewSuite) TestDelete() {
	tests := []struct {
		name           string
		actor          func(t *testing.T, f reviewFixture) string
		expectedStatus int
		description    string
	}{
		{
			name:           "作成者による削除",
			actor:          func(_ *testing.T, f reviewFixture) string { return f.guestToken },
			expectedStatus: http.StatusNoContent,
			description:    "作成者は自分のレビューを削除できること",
		},
		{
			name: "管理者による削除",
			actor: func(t *testing.T, _ reviewFixture) string {
				_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))
				return token
			},
			expectedStatus: http.StatusNoContent,
			description:    "管理者は任意のレビューを削除できること",
		},
		{
			name: "物件ホストによる削除",
			actor: func(t *testing.T, _ reviewFixture) string {
				return authtest.LoginUser(t, s.Router, "host@example.com", dbtest.TestPassword)
			},
			expectedStatus: http.StatusForbidden,
			description:    "ホストでも他人のレビューは削除できないこと",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()
			f := s.setupFixture()
			created := s.createReview(f.guestToken, f.propertyID, 1, "Never again")

			w := httptest.PerformRequest(t, s.Router, http.MethodDelete, reviewsURL+"/"+created.ID.String(), nil, tt.actor(t, f))
			require.Equal(t, tt.expectedStatus, w.Code, tt.description+": "+w.Body.String())

			expectedRows := 1
			if tt.expectedStatus == http.StatusNoContent {
				expectedRows = 0
			}
			require.Equal(t, expectedRows, dbtest.CountRows(t, s.DB, "reviews"))
		})
	}
}

func (s *reviewSuite) TestListAndRating() {
	s.Run("物件のレビュー一覧と平均評価", func() {
		t := s.T()
		f := s.setupFixture()

		s.createReview(f.guestToken, f.propertyID, 5, "Loved it")
		_, otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", string(user.RoleGuest))
		s.createReview(otherToken, f.propertyID, 4, "Pretty good")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, propertyReviewsURL(f.propertyID)+"?limit=1", nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var page1 resdto.ReviewListResponse
		httptest.DecodeResponseBody(t, w.Body, &page1)
		require.Len(t, page1.Reviews, 1)
		require.Equal(t, "Pretty good", page1.Reviews[0].Comment, "新しい順に並んでいない")
		require.NotNil(t, page1.NextCursor)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, propertyReviewsURL(f.propertyID)+"?limit=1&after="+*page1.NextCursor, nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var page2 resdto.ReviewListResponse
		httptest.DecodeResponseBody(t, w.Body, &page2)
		require.Len(t, page2.Reviews, 1)
		require.Equal(t, "Loved it", page2.Reviews[0].Comment)
		require.Nil(t, page2.NextCursor)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf("/api/properties/%s/rating", f.propertyID), nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var rating resdto.RatingSummaryResponse
		httptest.DecodeResponseBody(t, w.Body, &rating)
		require.Equal(t, int64(2), rating.ReviewCount)
		require.InDelta(t, 4.5, rating.AverageRating, 0.001)
	})

	s.Run("レビューがない物件の評価", func() {
		t := s.T()
		f := s.setupFixture()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf("/api/properties/%s/rating", f.propertyID), nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var rating resdto.RatingSummaryResponse
		httptest.DecodeResponseBody(t, w.Body, &rating)
		require.Zero(t, rating.ReviewCount)
		require.Zero(t, rating.AverageRating)
	})

	s.Run("存在しない物件のレビュー一覧", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, propertyReviewsURL(uuid.New()), nil, "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("単一レビューの取得は認証不要", func() {
		t := s.T()
		f := s.setupFixture()
		created := s.createReview(f.guestToken, f.propertyID, 3, "Average stay")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reviewsURL+"/"+created.ID.String(), nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var res resdto.ReviewResponse
		httptest.DecodeResponseBody(t, w.Body, &res)
		require.Equal(t, created.ID, res.ID)
	})
}
