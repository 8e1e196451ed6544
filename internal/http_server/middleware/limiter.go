// Package middleware
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// SlidingWindowLimiter allows at most maxRequests per key within windowSize
type SlidingWindowLimiter struct {
	windowSize     time.Duration
	maxRequests    int
	requestRecords map[string][]time.Time
	mu             sync.Mutex
	now            func() time.Time
}

func NewSlidingWindowLimiter(windowSize time.Duration, maxRequests int) *SlidingWindowLimiter {
	return &SlidingWindowLimiter{
		windowSize:     windowSize,
		maxRequests:    maxRequests,
		requestRecords: make(map[string][]time.Time),
		now:            time.Now,
	}
}

func (l *SlidingWindowLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	windowStart := now.Add(-l.windowSize)
	records := l.requestRecords[key]
	for len(records) > 0 && !records[0].After(windowStart) {
		records = records[1:]
	}

	if len(records) >= l.maxRequests {
		l.requestRecords[key] = records
		return false
	}

	l.requestRecords[key] = append(records, now)
	return true
}

// StartCleanup drops idle keys every interval until stop is closed
func (l *SlidingWindowLimiter) StartCleanup(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				l.cleanup()
			case <-stop:
				return
			}
		}
	}()
}

func (l *SlidingWindowLimiter) cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	threshold := l.now().Add(-2 * l.windowSize)
	for key, records := range l.requestRecords {
		if len(records) == 0 || records[len(records)-1].Before(threshold) {
			delete(l.requestRecords, key)
		}
	}
}

func (l *SlidingWindowLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.requestRecords)
}

func RateLimitMiddleware(limiter *SlidingWindowLimiter, keyFunc func(c echo.Context) string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow(keyFunc(c)) {
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"code":    "RATE_LIMIT_EXCEEDED",
					"message": "Demasiadas solicitudes, intente más tarde",
					"data":    nil,
				})
			}
			return next(c)
		}
	}
}

func IPKeyFunc(c echo.Context) string {
	return c.RealIP()
}

// CombinedKeyFunc keys on the client address and the matched route
func CombinedKeyFunc(c echo.Context) string {
	return c.RealIP() + "|" + c.Path()
}
