//go:build e2e

package payment_test

import (
	"net/http"
	"strings"
	"testing"

	"stayhub/internal/domain/user"
	"stayhub/internal/handler/api"
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

const paymentsURL = "/api/payments"

type paymentSuite struct {
	e2e.SharedSuite
}

func TestPaymentSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(paymentSuite))
}

type paymentFixture struct {
	guestID    uuid.UUID
	guestToken string
	hostToken  string
	propertyID uuid.UUID
	bookingID  uuid.UUID
}

func (s *paymentSuite) setupFixture(status string) paymentFixture {
	t := s.T()
	var f paymentFixture
	var hostID uuid.UUID
	hostID, f.hostToken = authtest.CreateAndLogin(t, s.DB, s.Router, "host@example.com", string(user.RoleHost))
	f.guestID, f.guestToken = authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", string(user.RoleGuest))
	f.propertyID = dbtest.CreateTestProperty(t, s.DB, hostID, "Seaside Loft", "120.00")
	f.bookingID = dbtest.CreateTestBooking(t, s.DB, f.propertyID, f.guestID, "2030-03-01", "2030-03-03", "240.00", status)
	return f
}

func (s *paymentSuite) captureBody(bookingID uuid.UUID) request.CapturePaymentRequest {
	return request.CapturePaymentRequest{
		BookingID:     bookingID,
		Amount:        "240.00",
		PaymentMethod: "credit_card",
	}
}

func (s *paymentSuite) bookingStatus(t *testing.T, id uuid.UUID) string {
	t.Helper()
	var status string
	err := s.DB.QueryRow(t.Context(), "SELECT status FROM bookings WHERE id = $1", id).Scan(&status)
	require.NoError(t, err)
	return status
}

func (s *paymentSuite) TestCapture() {
	s.Run("支払いで予約が確定する", func() {
		t := s.T()
		f := s.setupFixture("pending")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, paymentsURL, s.captureBody(f.bookingID), f.guestToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var res resdto.PaymentResponse
		httptest.DecodeResponseBody(t, w.Body, &res)
		require.Equal(t, f.bookingID, res.BookingID)
		require.Equal(t, f.propertyID, res.PropertyID)
		require.Equal(t, "240.00", res.Amount)
		require.Equal(t, "credit_card", res.PaymentMethod)
		require.True(t, res.IsSuccessful)

		require.Equal(t, "confirmed", s.bookingStatus(t, f.bookingID), "支払い後に予約が確定していない")
	})

	tests := []struct {
		name           string
		status         string
		body           func(f paymentFixture) request.CapturePaymentRequest
		useHostToken   bool
		expectedStatus int
		description    string
	}{
		{
			name:   "キャンセル済み予約への支払い",
			status: "canceled",
			body: func(f paymentFixture) request.CapturePaymentRequest {
				return s.captureBody(f.bookingID)
			},
			expectedStatus: http.StatusBadRequest,
			description:    "キャンセル済みの予約には支払えないこと",
		},
		{
			name:   "ゲスト以外による支払い",
			status: "pending",
			body: func(f paymentFixture) request.CapturePaymentRequest {
				return s.captureBody(f.bookingID)
			},
			useHostToken:   true,
			expectedStatus: http.StatusForbidden,
			description:    "予約したゲスト以外は支払えないこと",
		},
		{
			name:   "存在しない予約",
			status: "pending",
			body: func(paymentFixture) request.CapturePaymentRequest {
				return s.captureBody(uuid.New())
			},
			expectedStatus: http.StatusNotFound,
			description:    "存在しない予約には支払えないこと",
		},
		{
			name:   "未対応の支払い方法",
			status: "pending",
			body: func(f paymentFixture) request.CapturePaymentRequest {
				body := s.captureBody(f.bookingID)
				body.PaymentMethod = "bitcoin"
				return body
			},
			expectedStatus: http.StatusBadRequest,
			description:    "対応していない支払い方法は拒否されること",
		},
		{
			name:   "小数点以下3桁の金額",
			status: "pending",
			body: func(f paymentFixture) request.CapturePaymentRequest {
				body := s.captureBody(f.bookingID)
				body.Amount = "240.001"
				return body
			},
			expectedStatus: http.StatusBadRequest,
			description:    "小数点以下3桁以上の金額は拒否されること",
		},
		{
			name:   "0円の支払い",
			status: "pending",
			body: func(f paymentFixture) request.CapturePaymentRequest {
				body := s.captureBody(f.bookingID)
				body.Amount = "0"
				return body
			},
			expectedStatus: http.StatusBadRequest,
			description:    "0以下の金額は拒否されること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()
			f := s.setupFixture(tt.status)

			token := f.guestToken
			if tt.useHostToken {
				token = f.hostToken
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, paymentsURL, tt.body(f), token)
			require.Equal(t, tt.expectedStatus, w.Code, tt.description+": "+w.Body.String())
			require.Zero(t, dbtest.CountRows(t, s.DB, "payments"), "失敗した支払いが保存されている")
			require.Equal(t, tt.status, s.bookingStatus(t, f.bookingID))
		})
	}
}

func (s *paymentSuite) TestIdempotency() {
	s.Run("同じキーでの再送は同じ支払いを返す", func() {
		t := s.T()
		f := s.setupFixture("pending")
		headers := map[string]string{api.IdempotencyKeyHeader: "pay-" + uuid.NewString()}

		first := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, paymentsURL, s.captureBody(f.bookingID), headers, f.guestToken)
		require.Equal(t, http.StatusCreated, first.Code, first.Body.String())
		require.Empty(t, first.Header().Get(api.IdempotencyReplayedHeader))

		second := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, paymentsURL, s.captureBody(f.bookingID), headers, f.guestToken)
		require.Equal(t, http.StatusOK, second.Code, second.Body.String())
		httptest.AssertHeaders(t, second, map[string]string{api.IdempotencyReplayedHeader: "true"})

		var firstRes, secondRes resdto.PaymentResponse
		httptest.DecodeResponseBody(t, first.Body, &firstRes)
		httptest.DecodeResponseBody(t, second.Body, &secondRes)
		require.Equal(t, firstRes.ID, secondRes.ID, "再送で別の支払いが作成された")
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "payments"))
	})

	s.Run("失敗した支払いのキーは再利用できる", func() {
		t := s.T()
		f := s.setupFixture("pending")
		headers := map[string]string{api.IdempotencyKeyHeader: "retry-" + uuid.NewString()}

		bad := s.captureBody(f.bookingID)
		bad.PaymentMethod = "bitcoin"
		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, paymentsURL, bad, headers, f.guestToken)
		require.Equal(t, http.StatusBadRequest, w.Code)

		w = httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, paymentsURL, s.captureBody(f.bookingID), headers, f.guestToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("キーがない場合は毎回新しい支払い", func() {
		t := s.T()
		f := s.setupFixture("pending")

		for range 2 {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, paymentsURL, s.captureBody(f.bookingID), f.guestToken)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		}
		require.Equal(t, 2, dbtest.CountRows(t, s.DB, "payments"))
	})

	s.Run("長すぎるキー", func() {
		t := s.T()
		f := s.setupFixture("pending")
		headers := map[string]string{api.IdempotencyKeyHeader: strings.Repeat("k", 256)}

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, paymentsURL, s.captureBody(f.bookingID), headers, f.guestToken)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func (s *paymentSuite) TestListAndGet() {
	s.Run("自分の支払いのみ参照できる", func() {
		t := s.T()
		f := s.setupFixture("pending")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, paymentsURL, s.captureBody(f.bookingID), f.guestToken)
		require.Equal(t, http.StatusCreated, w.Code)
		var created resdto.PaymentResponse
		httptest.DecodeResponseBody(t, w.Body, &created)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, paymentsURL, nil, f.guestToken)
		require.Equal(t, http.StatusOK, w.Code)
		var list []*resdto.PaymentResponse
		httptest.DecodeResponseBody(t, w.Body, &list)
		require.Len(t, list, 1)
		require.Equal(t, created.ID, list[0].ID)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, paymentsURL+"/"+created.ID.String(), nil, f.guestToken)
		require.Equal(t, http.StatusOK, w.Code)

		_, strangerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "stranger@example.com", string(user.RoleGuest))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, paymentsURL+"/"+created.ID.String(), nil, strangerToken)
		require.Equal(t, http.StatusNotFound, w.Code, "他人の支払いが見えている")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, paymentsURL, nil, strangerToken)
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, "[]", w.Body.String())
	})
}
