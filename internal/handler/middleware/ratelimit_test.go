//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"student-travels/internal/handler/middleware"
	"student-travels/internal/pkg/config"
	"student-travels/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newLimitedRouter(limiter *middleware.RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/bookings", limiter.Booking(), func(c *gin.Context) { c.Status(http.StatusCreated) })
	return r
}

func TestRateLimiterPassthrough(t *testing.T) {
	enabled := config.RateLimitConfig{Enabled: true, BookingRPM: 1, BookingBurst: 1}

	unreachable := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = unreachable.Close() })

	tests := []struct {
		name    string
		limiter *middleware.RateLimiter
	}{
		{name: "disabled", limiter: middleware.NewRateLimiter(config.RateLimitConfig{BookingRPM: 1, BookingBurst: 1}, unreachable)},
		{name: "nil client", limiter: middleware.NewRateLimiter(enabled, nil)},
		{name: "zero burst", limiter: middleware.NewRateLimiter(config.RateLimitConfig{Enabled: true, BookingRPM: 1}, unreachable)},
		{name: "redis down fails open", limiter: middleware.NewRateLimiter(enabled, unreachable)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newLimitedRouter(tt.limiter)
			for range 3 {
				rec := httptest.PerformRequest(t, router, http.MethodPost, "/bookings", nil, "")
				assert.Equal(t, http.StatusCreated, rec.Code)
				assert.Empty(t, rec.Header().Get("Retry-After"))
			}
		})
	}
}
