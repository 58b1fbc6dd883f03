//go:build unit

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stayhub/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(rps float64, burst int, now *time.Time) *RateLimiter {
	rl := NewRateLimiter(config.RateLimitConfig{Enabled: true, RPS: rps, Burst: burst})
	rl.now = func() time.Time { return *now }
	return rl
}

func TestRateLimiter_allow(t *testing.T) {
	now := time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)

	t.Run("success: burst is spent then refilled per second", func(t *testing.T) {
		rl := newTestLimiter(1, 2, &now)

		assert.True(t, rl.allow("10.0.0.1"))
		assert.True(t, rl.allow("10.0.0.1"))
		assert.False(t, rl.allow("10.0.0.1"))

		now = now.Add(time.Second)
		assert.True(t, rl.allow("10.0.0.1"))
		assert.False(t, rl.allow("10.0.0.1"))
	})

	t.Run("success: clients have separate buckets", func(t *testing.T) {
		rl := newTestLimiter(1, 1, &now)

		assert.True(t, rl.allow("10.0.0.1"))
		assert.False(t, rl.allow("10.0.0.1"))
		assert.True(t, rl.allow("10.0.0.2"))
		assert.Equal(t, 2, rl.Size())
	})

	t.Run("success: idle clients are swept", func(t *testing.T) {
		rl := newTestLimiter(1, 1, &now)
		rl.allow("10.0.0.1")
		rl.allow("10.0.0.2")
		require.Equal(t, 2, rl.Size())

		now = now.Add(limiterIdleTTL + time.Minute)
		rl.allow("10.0.0.3")

		assert.Equal(t, 1, rl.Size())
	})
}

func TestRateLimiter_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)
	rl := newTestLimiter(1, 1, &now)

	router := gin.New()
	router.Use(rl.Middleware())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "192.0.2.10:5555"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	first := do()
	assert.Equal(t, http.StatusNoContent, first.Code)

	second := do()
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "1", second.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":{"message":"Rate limit exceeded. Try again later."}}`, second.Body.String())
}
