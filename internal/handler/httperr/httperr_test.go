//go:build unit

package httperr_test

import (
	"net/http"
	"testing"

	"stayhub/internal/handler/httperr"
	"stayhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "validation", err: errs.Validation("rating must be between 1 and 5"), wantStatus: http.StatusBadRequest, wantMsg: "rating must be between 1 and 5"},
		{name: "not found", err: errs.Mark(errs.New("booking not found"), errs.ErrNotFound), wantStatus: http.StatusNotFound, wantMsg: "booking not found"},
		{name: "conflict keeps 400", err: errs.Mark(errs.New("dates taken"), errs.ErrConflict), wantStatus: http.StatusBadRequest, wantMsg: "dates taken"},
		{name: "forbidden", err: errs.Forbidden("not yours"), wantStatus: http.StatusForbidden, wantMsg: "not yours"},
		{name: "unauthenticated", err: errs.Mark(errs.New("bad token"), errs.ErrUnauthenticated), wantStatus: http.StatusUnauthorized, wantMsg: "bad token"},
		{name: "idempotency in progress", err: errs.ErrIdempotencyInProgress, wantStatus: http.StatusConflict, wantMsg: "already being processed"},
		{name: "idempotency store down", err: errs.Mark(errs.New("redis down"), errs.ErrIdempotencyCheckFailed), wantStatus: http.StatusServiceUnavailable, wantMsg: "temporarily unavailable"},
		{name: "wrapped category survives", err: errs.Wrap(errs.Validation("bad cursor"), "list bookings"), wantStatus: http.StatusBadRequest, wantMsg: "bad cursor"},
		{name: "uncategorized is hidden", err: errs.New("pq: relation does not exist"), wantStatus: http.StatusInternalServerError, wantMsg: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := httperr.Classify(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Contains(t, msg, tt.wantMsg)
		})
	}
}
