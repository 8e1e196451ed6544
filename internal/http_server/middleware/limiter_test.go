package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestLimiter(window time.Duration, max int, clock *time.Time) *SlidingWindowLimiter {
	limiter := NewSlidingWindowLimiter(window, max)
	limiter.now = func() time.Time { return *clock }
	return limiter
}

func TestSlidingWindowLimiterAllow(t *testing.T) {
	clock := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	limiter := newTestLimiter(time.Minute, 2, &clock)

	assert.True(t, limiter.Allow("a"))
	assert.True(t, limiter.Allow("a"))
	assert.False(t, limiter.Allow("a"))
	assert.True(t, limiter.Allow("b"), "keys are limited independently")

	clock = clock.Add(30 * time.Second)
	assert.False(t, limiter.Allow("a"))

	clock = clock.Add(31 * time.Second)
	assert.True(t, limiter.Allow("a"), "records older than the window are released")
}

func TestSlidingWindowLimiterCleanup(t *testing.T) {
	clock := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	limiter := newTestLimiter(time.Minute, 5, &clock)

	limiter.Allow("old")
	clock = clock.Add(90 * time.Second)
	limiter.Allow("recent")
	clock = clock.Add(45 * time.Second)

	limiter.cleanup()
	assert.Equal(t, 1, limiter.size())
	assert.True(t, limiter.Allow("recent"))
}

func TestRateLimitMiddleware(t *testing.T) {
	e := echo.New()
	limiter := NewSlidingWindowLimiter(time.Minute, 1)
	e.Use(RateLimitMiddleware(limiter, CombinedKeyFunc))
	e.GET("/api/personnel", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/api/mandatarios", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	request := func(path string) int {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.RemoteAddr = "10.0.0.7:51000"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, request("/api/personnel"))
	assert.Equal(t, http.StatusTooManyRequests, request("/api/personnel"))
	assert.Equal(t, http.StatusOK, request("/api/mandatarios"))
}
