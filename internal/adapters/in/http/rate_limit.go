package http

import (
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// DefaultIdleTTL is how long a client may stay silent before its bucket is dropped.
const DefaultIdleTTL = 3 * time.Minute

// RateLimiter keeps one token bucket per client IP. Buckets of clients idle for
// longer than the idle TTL are swept on a later request, at most once per TTL,
// so memory follows the number of recently active clients.
type RateLimiter struct {
	visitors  sync.Map
	rate      rate.Limit
	burst     int
	idleTTL   time.Duration
	now       func() time.Time
	lastSweep atomic.Int64
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

// RateLimiterOption customizes a RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithIdleTTL sets how long an idle client keeps its bucket. Defaults to DefaultIdleTTL.
func WithIdleTTL(ttl time.Duration) RateLimiterOption {
	return func(rl *RateLimiter) {
		if ttl > 0 {
			rl.idleTTL = ttl
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) RateLimiterOption {
	return func(rl *RateLimiter) { rl.now = now }
}

// NewRateLimiter allows r requests per second per client, with bursts of up to burst.
func NewRateLimiter(r float64, burst int, opts ...RateLimiterOption) *RateLimiter {
	rl := &RateLimiter{
		rate:    rate.Limit(r),
		burst:   burst,
		idleTTL: DefaultIdleTTL,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(rl)
	}
	return rl
}

// Allow reports whether a request from ip may proceed now.
func (rl *RateLimiter) Allow(ip string) bool {
	now := rl.now()
	rl.sweep(now)
	return rl.getVisitor(ip, now).limiter.AllowN(now, 1)
}

// Len returns the number of clients currently holding a bucket.
func (rl *RateLimiter) Len() int {
	n := 0
	rl.visitors.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

func (rl *RateLimiter) getVisitor(ip string, now time.Time) *visitor {
	v, ok := rl.visitors.Load(ip)
	if !ok {
		v, _ = rl.visitors.LoadOrStore(ip, &visitor{limiter: rate.NewLimiter(rl.rate, rl.burst)})
	}

	vis := v.(*visitor)
	vis.lastSeen.Store(now.UnixNano())
	return vis
}

func (rl *RateLimiter) sweep(now time.Time) {
	last := rl.lastSweep.Load()
	if now.UnixNano()-last < int64(rl.idleTTL) {
		return
	}
	if !rl.lastSweep.CompareAndSwap(last, now.UnixNano()) {
		return
	}

	cutoff := now.Add(-rl.idleTTL).UnixNano()
	rl.visitors.Range(func(key, v any) bool {
		if v.(*visitor).lastSeen.Load() < cutoff {
			rl.visitors.Delete(key)
		}
		return true
	})
}

// RateLimit answers 429 once a client exceeds its bucket. A nil limiter disables it.
func RateLimit(limiter *RateLimiter, logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if limiter == nil {
			return next
		}

		return func(ctx echo.Context) error {
			ip := ctx.RealIP()
			if !limiter.Allow(ip) {
				logger.WarnContext(ctx.Request().Context(), "Rate limit exceeded", "client_ip", ip)
				return ctx.JSON(http.StatusTooManyRequests, Error{
					Code:    http.StatusTooManyRequests,
					Message: "Too many requests, please try again later",
				})
			}
			return next(ctx)
		}
	}
}
