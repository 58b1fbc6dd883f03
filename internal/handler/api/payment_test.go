//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/payment"
	"stayhub/internal/domain/user"
	"stayhub/internal/handler/api"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"
	"stayhub/tests/common/builder"
	"stayhub/tests/common/httptest"
	"stayhub/tests/common/testutil"
	commandsmock "stayhub/tests/mock/commands"
	queriesmock "stayhub/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPaymentCommands
	mockQueries  *queriesmock.MockPaymentQueries
	actor        actor
	handler      *api.PaymentHandler
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.actor = actor{}

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPaymentQueries(s.mockCtrl)
	s.handler = api.NewPaymentHandler(s.mockCommands, s.mockQueries)

	authed := s.router.Group("/payments", s.actor.middleware())
	authed.POST("", s.handler.Capture)
	authed.GET("", s.handler.List)
	authed.GET("/:id", s.handler.Get)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func (s *PaymentHandlerTestSuite) TestCapture() {
	pb := builder.NewPaymentBuilder()
	reqBody := pb.BuildCaptureRequestDTO()
	s.actor.as(pb.GuestID, user.RoleGuest)

	s.Run("success: first capture returns 201", func() {
		s.mockCommands.EXPECT().Capture(gomock.Any(), pb.GuestID, reqBody.ToCommand("")).
			Return(&commands.CapturePaymentResult{PaymentID: pb.ID}, nil)
		s.mockQueries.EXPECT().Get(gomock.Any(), pb.ID, pb.GuestID).Return(pb.BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payments", reqBody, "")

		var response resdto.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(pb.ID, response.ID)
		s.Equal("750.00", response.Amount)
		s.Equal("credit_card", response.PaymentMethod)
		s.True(response.IsSuccessful)
		s.Empty(rec.Header().Get(api.IdempotencyReplayedHeader))
	})

	s.Run("success: the idempotency key reaches the command", func() {
		s.mockCommands.EXPECT().Capture(gomock.Any(), pb.GuestID, reqBody.ToCommand("abc-123")).
			Return(&commands.CapturePaymentResult{PaymentID: pb.ID}, nil)
		s.mockQueries.EXPECT().Get(gomock.Any(), pb.ID, pb.GuestID).Return(pb.BuildView(), nil)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/payments", reqBody,
			map[string]string{api.IdempotencyKeyHeader: "abc-123"}, "")

		s.Equal(http.StatusCreated, rec.Code, rec.Body.String())
	})

	s.Run("success: a replay returns 200 with the replay header", func() {
		s.mockCommands.EXPECT().Capture(gomock.Any(), pb.GuestID, gomock.Any()).
			Return(&commands.CapturePaymentResult{PaymentID: pb.ID, IsReplayed: true}, nil)
		s.mockQueries.EXPECT().Get(gomock.Any(), pb.ID, pb.GuestID).Return(pb.BuildView(), nil)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/payments", reqBody,
			map[string]string{api.IdempotencyKeyHeader: "abc-123"}, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		httptest.AssertHeaders(s.T(), rec, map[string]string{api.IdempotencyReplayedHeader: "true"})
	})

	s.Run("error: 400 Bad Request for an oversized idempotency key", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/payments", reqBody,
			map[string]string{api.IdempotencyKeyHeader: strings.Repeat("k", 256)}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Idempotency-Key must be at most 255 characters")
	})

	s.Run("error: maps command failures to status codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{name: "same key in flight", err: errs.ErrIdempotencyInProgress, expectCode: http.StatusConflict, expectMsg: "already being processed"},
			{name: "idempotency store down", err: errs.Mark(errs.New("redis: connection refused"), errs.ErrIdempotencyCheckFailed), expectCode: http.StatusServiceUnavailable, expectMsg: "temporarily unavailable"},
			{name: "another guest's booking", err: payment.ErrNotBookingGuest, expectCode: http.StatusForbidden, expectMsg: "permission"},
			{name: "canceled booking", err: booking.ErrBookingCanceled, expectCode: http.StatusBadRequest, expectMsg: "booking is canceled"},
			{name: "dates taken meanwhile", err: booking.ErrDatesUnavailable, expectCode: http.StatusBadRequest, expectMsg: "not available"},
			{name: "unknown booking", err: booking.ErrBookingNotFound, expectCode: http.StatusNotFound, expectMsg: "booking not found"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Capture(gomock.Any(), pb.GuestID, gomock.Any()).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payments", reqBody, "")

				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			})
		}
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: booking_id", mutate: testutil.Field("booking_id", nil)},
			{name: "amount zero", mutate: testutil.Field("amount", "0")},
			{name: "amount with three decimals", mutate: testutil.Field("amount", "10.001")},
			{name: "amount not a number", mutate: testutil.Field("amount", "ten")},
			{name: "unknown payment method", mutate: testutil.Field("payment_method", "cash")},
			{name: "transaction id too long", mutate: testutil.Field("transaction_id", strings.Repeat("t", 256))},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payments", body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})
}

func (s *PaymentHandlerTestSuite) TestList() {
	pb := builder.NewPaymentBuilder().WithTransactionID("txn_42")
	s.actor.as(pb.GuestID, user.RoleGuest)

	s.Run("success: returns the caller's payments", func() {
		s.mockQueries.EXPECT().ListMine(gomock.Any(), pb.GuestID).Return([]*queries.PaymentView{pb.BuildView()}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments", nil, "")

		var response []resdto.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Require().NotNil(response[0].TransactionID)
		s.Equal("txn_42", *response[0].TransactionID)
	})

	s.Run("success: empty list renders as an array", func() {
		s.mockQueries.EXPECT().ListMine(gomock.Any(), pb.GuestID).Return([]*queries.PaymentView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})
}

func (s *PaymentHandlerTestSuite) TestGet() {
	pb := builder.NewPaymentBuilder()
	s.actor.as(pb.GuestID, user.RoleGuest)

	s.Run("error: 404 Not Found for someone else's payment", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), pb.ID, pb.GuestID).Return(nil, payment.ErrPaymentNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments/"+pb.ID.String(), nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "payment not found")
	})
}
