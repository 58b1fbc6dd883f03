//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"stayhub/internal/domain/user"
	"stayhub/internal/handler/api"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/tests/common/builder"
	"stayhub/tests/common/httptest"
	queriesmock "stayhub/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserHandler_Get(t *testing.T) {
	router := newTestRouter()
	ctrl := gomock.NewController(t)
	q := queriesmock.NewMockUserQueries(ctrl)
	router.GET("/users/:id", api.NewUserHandler(q).Get)

	ub := builder.NewUserBuilder().AsHost().WithPhone("03-0000-0000")

	t.Run("success: public profile hides contact details", func(t *testing.T) {
		q.EXPECT().GetUser(gomock.Any(), ub.ID).Return(ub.BuildView(), nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/users/"+ub.ID.String(), nil, "")

		var response resdto.PublicUserResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &response)
		assert.Equal(t, ub.ID, response.ID)
		assert.Equal(t, "host", response.Role)
		assert.NotContains(t, rec.Body.String(), "email")
		assert.NotContains(t, rec.Body.String(), "phone_number")
		assert.Contains(t, rec.Body.String(), "date_joined")
	})

	t.Run("error: 404 Not Found", func(t *testing.T) {
		q.EXPECT().GetUser(gomock.Any(), ub.ID).Return(nil, user.ErrUserNotFound)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/users/"+ub.ID.String(), nil, "")

		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "user not found")
	})
}

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error { return p.err }

func TestHealthHandler_Check(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
		wantBody   string
	}{
		{name: "success: database reachable", wantStatus: http.StatusOK, wantBody: `{"status":"ok","message":"Service is healthy"}`},
		{name: "error: database unreachable", pingErr: errors.New("dial tcp: connection refused"), wantStatus: http.StatusServiceUnavailable, wantBody: `{"status":"unavailable","message":"Database is unreachable"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter()
			router.GET("/health", api.NewHealthHandler(stubPinger{err: tt.pingErr}).Check)

			rec := httptest.PerformRequest(t, router, http.MethodGet, "/health", nil, "")

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
