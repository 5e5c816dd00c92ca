package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpin "coffee/internal/adapters/in/http"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Allow(t *testing.T) {
	t.Run("should allow a burst then refuse", func(t *testing.T) {
		limiter := httpin.NewRateLimiter(0.001, 2)

		assert.True(t, limiter.Allow("10.0.0.1"))
		assert.True(t, limiter.Allow("10.0.0.1"))
		assert.False(t, limiter.Allow("10.0.0.1"))
	})

	t.Run("should track clients separately", func(t *testing.T) {
		limiter := httpin.NewRateLimiter(0.001, 1)

		assert.True(t, limiter.Allow("10.0.0.1"))
		assert.False(t, limiter.Allow("10.0.0.1"))
		assert.True(t, limiter.Allow("10.0.0.2"))
	})
}

func TestRateLimiter_IdleEviction(t *testing.T) {
	current := time.Unix(1_700_000_000, 0)
	clock := func() time.Time { return current }

	t.Run("should drop buckets of idle clients", func(t *testing.T) {
		limiter := httpin.NewRateLimiter(1, 1, httpin.WithIdleTTL(time.Minute), httpin.WithClock(clock))

		limiter.Allow("10.0.0.1")
		limiter.Allow("10.0.0.2")
		assert.Equal(t, 2, limiter.Len())

		current = current.Add(30 * time.Second)
		limiter.Allow("10.0.0.2")

		current = current.Add(50 * time.Second)
		limiter.Allow("10.0.0.3")

		assert.Equal(t, 2, limiter.Len())

		current = current.Add(2 * time.Minute)
		limiter.Allow("10.0.0.4")

		assert.Equal(t, 1, limiter.Len())
	})

	t.Run("should start an evicted client with a full bucket", func(t *testing.T) {
		limiter := httpin.NewRateLimiter(0.001, 1, httpin.WithIdleTTL(time.Minute), httpin.WithClock(clock))

		assert.True(t, limiter.Allow("10.0.0.9"))
		assert.False(t, limiter.Allow("10.0.0.9"))

		current = current.Add(2 * time.Minute)

		assert.True(t, limiter.Allow("10.0.0.9"))
	})
}

func TestRateLimit(t *testing.T) {
	get := func(e *echo.Echo) int {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(echo.HeaderXRealIP, "192.0.2.7")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Code
	}

	t.Run("should answer 429 over the limit", func(t *testing.T) {
		e := newRealEcho()
		e.Use(httpin.RateLimit(httpin.NewRateLimiter(0.001, 1), discardLogger()))

		assert.Equal(t, http.StatusOK, get(e))
		assert.Equal(t, http.StatusTooManyRequests, get(e))
	})

	t.Run("should pass everything when disabled", func(t *testing.T) {
		e := newRealEcho()
		e.Use(httpin.RateLimit(nil, discardLogger()))

		for range 5 {
			assert.Equal(t, http.StatusOK, get(e))
		}
	})
}
