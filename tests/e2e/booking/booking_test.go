//go:build e2e

package booking_test

import (
	"net/http"
	"testing"

	"stayhub/internal/domain/user"
	"stayhub/internal/handler/dto/request"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/tests/common/authtest"
	"stayhub/tests/common/dbtest"
	"stayhub/tests/common/httptest"
	"stayhub/tests/e2e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const bookingsURL = "/api/bookings"

type bookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

type bookingFixture struct {
	hostID     uuid.UUID
	hostToken  string
	guestID    uuid.UUID
	guestToken string
	propertyID uuid.UUID
}

func (s *bookingSuite) setupFixture() bookingFixture {
	t := s.T()
	var f bookingFixture
	f.hostID, f.hostToken = authtest.CreateAndLogin(t, s.DB, s.Router, "host@example.com", string(user.RoleHost))
	f.guestID, f.guestToken = authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", string(user.RoleGuest))
	f.propertyID = dbtest.CreateTestProperty(t, s.DB, f.hostID, "Machiya House", "100.00")
	return f
}

func (s *bookingSuite) createBooking(token string, propertyID uuid.UUID, start, end string) *resdto.BookingResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, request.CreateBookingRequest{
		PropertyID: propertyID,
		StartDate:  start,
		EndDate:    end,
		Guests:     2,
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var res resdto.BookingResponse
	httptest.DecodeResponseBody(t, w.Body, &res)
	return &res
}

func (s *bookingSuite) TestCreate() {
	s.Run("予約の作成と料金計算", func() {
		t := s.T()
		f := s.setupFixture()

		res := s.createBooking(f.guestToken, f.propertyID, "2030-05-01", "2030-05-04")

		require.Equal(t, f.propertyID, res.PropertyID)
		require.Equal(t, f.guestID, res.GuestID)
		require.Equal(t, f.hostID, res.HostID)
		require.Equal(t, "Machiya House", res.PropertyName)
		require.Equal(t, 3, res.Nights)
		require.Equal(t, "300.00", res.TotalPrice, "合計金額が泊数×1泊料金になっていない")
		require.Equal(t, "pending", res.Status)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "bookings"))
	})

	tests := []struct {
		name           string
		body           func(f bookingFixture) request.CreateBookingRequest
		useHostToken   bool
		expectedStatus int
		description    string
	}{
		{
			name: "チェックアウトがチェックインより前",
			body: func(f bookingFixture) request.CreateBookingRequest {
				return request.CreateBookingRequest{PropertyID: f.propertyID, StartDate: "2030-05-04", EndDate: "2030-05-01", Guests: 1}
			},
			expectedStatus: http.StatusBadRequest,
			description:    "日付の逆転は拒否されること",
		},
		{
			name: "同日チェックイン・チェックアウト",
			body: func(f bookingFixture) request.CreateBookingRequest {
				return request.CreateBookingRequest{PropertyID: f.propertyID, StartDate: "2030-05-01", EndDate: "2030-05-01", Guests: 1}
			},
			expectedStatus: http.StatusBadRequest,
			description:    "0泊の予約は拒否されること",
		},
		{
			name: "定員超過",
			body: func(f bookingFixture) request.CreateBookingRequest {
				return request.CreateBookingRequest{PropertyID: f.propertyID, StartDate: "2030-05-01", EndDate: "2030-05-03", Guests: 5}
			},
			expectedStatus: http.StatusBadRequest,
			description:    "最大人数を超える予約は拒否されること",
		},
		{
			name: "不正な日付形式",
			body: func(f bookingFixture) request.CreateBookingRequest {
				return request.CreateBookingRequest{PropertyID: f.propertyID, StartDate: "05/01/2030", EndDate: "2030-05-03", Guests: 1}
			},
			expectedStatus: http.StatusBadRequest,
			description:    "YYYY-MM-DD以外の日付は拒否されること",
		},
		{
			name: "存在しない物件",
			body: func(f bookingFixture) request.CreateBookingRequest {
				return request.CreateBookingRequest{PropertyID: uuid.New(), StartDate: "2030-05-01", EndDate: "2030-05-03", Guests: 1}
			},
			expectedStatus: http.StatusNotFound,
			description:    "存在しない物件は予約できないこと",
		},
		{
			name: "自分の物件を予約",
			body: func(f bookingFixture) request.CreateBookingRequest {
				return request.CreateBookingRequest{PropertyID: f.propertyID, StartDate: "2030-05-01", EndDate: "2030-05-03", Guests: 1}
			},
			useHostToken:   true,
			expectedStatus: http.StatusBadRequest,
			description:    "ホストは自分の物件を予約できないこと",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()
			f := s.setupFixture()

			token := f.guestToken
			if tt.useHostToken {
				token = f.hostToken
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, tt.body(f), token)
			require.Equal(t, tt.expectedStatus, w.Code, tt.description+": "+w.Body.String())
			require.Zero(t, dbtest.CountRows(t, s.DB, "bookings"))
		})
	}
}

func (s *bookingSuite) TestAvailability() {
	tests := []struct {
		name           string
		existingStatus string
		start, end     string
		expectedStatus int
		description    string
	}{
		{"期間が重なる", "pending", "2030-06-03", "2030-06-07", http.StatusBadRequest, "重複する期間は予約できないこと"},
		{"完全に内包される", "confirmed", "2030-06-02", "2030-06-04", http.StatusBadRequest, "既存予約の内側の期間は予約できないこと"},
		{"チェックアウト日にチェックイン", "confirmed", "2030-06-05", "2030-06-08", http.StatusBadRequest, "境界日が同じ場合も重複とみなすこと"},
		{"キャンセル済みとの重複", "canceled", "2030-06-03", "2030-06-07", http.StatusCreated, "キャンセル済み予約は空室を塞がないこと"},
		{"重ならない期間", "confirmed", "2030-06-06", "2030-06-09", http.StatusCreated, "重ならない期間は予約できること"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()
			f := s.setupFixture()

			otherGuest := dbtest.CreateTestUser(t, s.DB, "other@example.com", string(user.RoleGuest))
			dbtest.CreateTestBooking(t, s.DB, f.propertyID, otherGuest, "2030-06-01", "2030-06-05", "400.00", tt.existingStatus)

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, request.CreateBookingRequest{
				PropertyID: f.propertyID,
				StartDate:  tt.start,
				EndDate:    tt.end,
				Guests:     1,
			}, f.guestToken)
			require.Equal(t, tt.expectedStatus, w.Code, tt.description+": "+w.Body.String())
		})
	}
}

func (s *bookingSuite) TestOverlapConstraint() {
	s.Run("DB制約による重複予約の拒否", func() {
		t := s.T()
		f := s.setupFixture()

		dbtest.CreateTestBooking(t, s.DB, f.propertyID, f.guestID, "2030-07-01", "2030-07-05", "400.00", "confirmed")

		_, err := s.DB.Exec(t.Context(), `INSERT INTO bookings (id, property_id, guest_id, start_date, end_date, guests, total_price, status)
			VALUES ($1, $2, $3, '2030-07-05', '2030-07-06', 1, 100.00, 'pending')`,
			uuid.New(), f.propertyID, f.guestID)
		require.Error(t, err, "境界日が重なる予約がDBに挿入できてしまった")

		var pgErr *pgconn.PgError
		require.ErrorAs(t, err, &pgErr)
		require.Equal(t, "23P01", pgErr.Code)
	})
}

func (s *bookingSuite) TestList() {
	s.Run("ゲストとホストの予約一覧", func() {
		t := s.T()
		f := s.setupFixture()

		s.createBooking(f.guestToken, f.propertyID, "2030-08-01", "2030-08-03")
		s.createBooking(f.guestToken, f.propertyID, "2030-08-10", "2030-08-12")
		s.createBooking(f.guestToken, f.propertyID, "2030-08-20", "2030-08-22")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?limit=2", nil, f.guestToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var page1 resdto.BookingListResponse
		httptest.DecodeResponseBody(t, w.Body, &page1)
		require.Len(t, page1.Bookings, 2)
		require.NotNil(t, page1.NextCursor, "次ページのカーソルがない")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?limit=2&after="+*page1.NextCursor, nil, f.guestToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var page2 resdto.BookingListResponse
		httptest.DecodeResponseBody(t, w.Body, &page2)
		require.Len(t, page2.Bookings, 1)
		require.Nil(t, page2.NextCursor)

		seen := map[uuid.UUID]bool{}
		for _, b := range append(page1.Bookings, page2.Bookings...) {
			require.False(t, seen[b.ID], "ページ間で予約が重複している")
			seen[b.ID] = true
		}

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/host", nil, f.hostToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var hostList resdto.BookingListResponse
		httptest.DecodeResponseBody(t, w.Body, &hostList)
		require.Len(t, hostList.Bookings, 3, "ホストが自分の物件の予約を参照できない")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, f.hostToken)
		require.Equal(t, http.StatusOK, w.Code)

		var hostOwn resdto.BookingListResponse
		httptest.DecodeResponseBody(t, w.Body, &hostOwn)
		require.Empty(t, hostOwn.Bookings, "ゲストとしての予約がないホストに予約が表示されている")
	})
}

func (s *bookingSuite) TestGet() {
	s.Run("当事者以外は参照できない", func() {
		t := s.T()
		f := s.setupFixture()
		b := s.createBooking(f.guestToken, f.propertyID, "2030-09-01", "2030-09-03")

		_, strangerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "stranger@example.com", string(user.RoleGuest))

		for _, token := range []string{f.guestToken, f.hostToken} {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+b.ID.String(), nil, token)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+b.ID.String(), nil, strangerToken)
		require.Equal(t, http.StatusNotFound, w.Code, "第三者に予約が見えている")
	})
}

func (s *bookingSuite) TestCancel() {
	tests := []struct {
		name           string
		actor          func(t *testing.T, f bookingFixture) string
		expectedStatus int
		description    string
	}{
		{
			name:           "ゲストによるキャンセル",
			actor:          func(_ *testing.T, f bookingFixture) string { return f.guestToken },
			expectedStatus: http.StatusOK,
			description:    "ゲストは自分の予約をキャンセルできること",
		},
		{
			name:           "ホストによるキャンセル",
			actor:          func(_ *testing.T, f bookingFixture) string { return f.hostToken },
			expectedStatus: http.StatusOK,
			description:    "ホストは自分の物件の予約をキャンセルできること",
		},
		{
			name: "第三者によるキャンセル",
			actor: func(t *testing.T, _ bookingFixture) string {
				_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "stranger@example.com", string(user.RoleGuest))
				return token
			},
			expectedStatus: http.StatusNotFound,
			description:    "当事者以外はキャンセルできないこと",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()
			f := s.setupFixture()
			b := s.createBooking(f.guestToken, f.propertyID, "2030-10-01", "2030-10-03")

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL+"/"+b.ID.String()+"/cancel", nil, tt.actor(t, f))
			require.Equal(t, tt.expectedStatus, w.Code, tt.description+": "+w.Body.String())

			var status string
			err := s.DB.QueryRow(t.Context(), "SELECT status FROM bookings WHERE id = $1", b.ID).Scan(&status)
			require.NoError(t, err)
			if tt.expectedStatus == http.StatusOK {
				require.Equal(t, "canceled", status)
			} else {
				require.Equal(t, "pending", status)
			}
		})
	}

	s.Run("キャンセル済み予約の再キャンセル", func() {
		t := s.T()
		f := s.setupFixture()
		b := s.createBooking(f.guestToken, f.propertyID, "2030-10-01", "2030-10-03")

		cancelURL := bookingsURL + "/" + b.ID.String() + "/cancel"
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, cancelURL, nil, f.guestToken)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, cancelURL, nil, f.guestToken)
		require.Equal(t, http.StatusBadRequest, w.Code, "キャンセル済みは終端状態であること")
	})

	s.Run("キャンセル後は同じ期間を再予約できる", func() {
		t := s.T()
		f := s.setupFixture()
		b := s.createBooking(f.guestToken, f.propertyID, "2030-11-01", "2030-11-03")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL+"/"+b.ID.String()+"/cancel", nil, f.hostToken)
		require.Equal(t, http.StatusOK, w.Code)

		s.createBooking(f.guestToken, f.propertyID, "2030-11-01", "2030-11-03")
	})
}

func (s *bookingSuite) TestAuthenticationRequired() {
	s.Run("認証が必要なエンドポイント", func() {
		t := s.T()

		endpoints := []struct {
			method string
			path   string
		}{
			{http.MethodPost, bookingsURL},
			{http.MethodGet, bookingsURL},
			{http.MethodGet, bookingsURL + "/host"},
			{http.MethodGet, bookingsURL + "/" + uuid.NewString()},
			{http.MethodPost, bookingsURL + "/" + uuid.NewString() + "/cancel"},
		}

		for _, endpoint := range endpoints {
			w := httptest.PerformRequest(t, s.Router, endpoint.method, endpoint.path, nil, "")
			require.Equal(t, http.StatusUnauthorized, w.Code, "認証なしでは拒否されるべき")
		}
	})
}
