package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"student-travels/internal/handler/httperr"
	"student-travels/internal/pkg/config"
	"student-travels/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const rateKeyPrefix = "rl"

var errRateLimited = errs.New("rate limit exceeded")

// Token bucket kept in a redis hash. Returns {allowed, remaining, retry_after_ms}.
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local interval_ms = tonumber(ARGV[3])
local ttl_seconds = tonumber(ARGV[4])

local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
local tokens = tonumber(state[1])
local last_refill = tonumber(state[2])

if tokens == nil or last_refill == nil then
	tokens = capacity
	last_refill = now_ms
end

if interval_ms > 0 then
	local elapsed = math.max(0, now_ms - last_refill)
	local intervals = math.floor(elapsed / interval_ms)
	if intervals > 0 then
		tokens = math.min(capacity, tokens + intervals)
		last_refill = last_refill + (intervals * interval_ms)
	end
end

local allowed = 0
local retry_after_ms = 0
if tokens > 0 then
	allowed = 1
	tokens = tokens - 1
else
	retry_after_ms = math.max(0, interval_ms - (now_ms - last_refill))
end

redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
redis.call('EXPIRE', key, ttl_seconds)

return { allowed, tokens, retry_after_ms }
`)

// RateLimiter guards write-heavy routes. A nil redis client or a disabled
// config lets every request through, and so does any redis failure.
type RateLimiter struct {
	cfg config.RateLimitConfig
	rdb *redis.Client
	now func() time.Time
}

func NewRateLimiter(cfg config.RateLimitConfig, rdb *redis.Client) *RateLimiter {
	return &RateLimiter{cfg: cfg, rdb: rdb, now: time.Now}
}

func (r *RateLimiter) Booking() gin.HandlerFunc {
	return r.Limit("booking", r.cfg.BookingRPM, r.cfg.BookingBurst)
}

func (r *RateLimiter) Login() gin.HandlerFunc {
	return r.Limit("login", r.cfg.LoginRPM, r.cfg.LoginBurst)
}

func (r *RateLimiter) Message() gin.HandlerFunc {
	return r.Limit("message", r.cfg.MessageRPM, r.cfg.MessageBurst)
}

// Limit allows burst requests at once, refilled at perMinute.
func (r *RateLimiter) Limit(name string, perMinute, burst int) gin.HandlerFunc {
	if !r.cfg.Enabled || r.rdb == nil || perMinute <= 0 || burst <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	interval := time.Minute / time.Duration(perMinute)
	ttl := int64(math.Ceil((time.Duration(burst)*interval + time.Minute).Seconds()))

	return func(c *gin.Context) {
		key := r.key(name, c)
		vals, err := tokenBucketScript.Run(c.Request.Context(), r.rdb, []string{key},
			r.now().UnixMilli(), burst, interval.Milliseconds(), ttl,
		).Int64Slice()
		if err != nil || len(vals) != 3 {
			slog.Warn("rate limiter unavailable, allowing request", "key", key, "error", err)
			c.Next()
			return
		}

		allowed, remaining, retryMs := vals[0] == 1, vals[1], vals[2]
		c.Header("X-RateLimit-Limit", strconv.Itoa(burst))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if !allowed {
			secs := int(math.Ceil(float64(retryMs) / 1000.0))
			c.Header("Retry-After", strconv.Itoa(secs))
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Rate limit exceeded", gin.H{"retry_after": secs})
			return
		}
		c.Next()
	}
}

// Authenticated callers share a bucket across addresses; anonymous callers
// are keyed by IP.
func (r *RateLimiter) key(name string, c *gin.Context) string {
	parts := []string{rateKeyPrefix, name}
	if actor := GetActor(c); actor.IsAuthenticated() {
		parts = append(parts, "user", actor.ID.String())
	} else {
		ip := c.ClientIP()
		if ip == "" {
			ip = "unknown"
		}
		parts = append(parts, "ip", ip)
	}
	return strings.Join(parts, ":")
}
