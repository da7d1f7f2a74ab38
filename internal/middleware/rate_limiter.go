package middleware

import (
	"sync"
	"time"

	"networth-tracker/internal/errors"
	"networth-tracker/internal/handlers"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	visitorTTL      = 3 * time.Minute
	cleanupInterval = time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterRegistry tracks one token bucket per client IP and evicts buckets
// that have been idle longer than visitorTTL.
type limiterRegistry struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rps      rate.Limit
	burst    int
}

func newLimiterRegistry(rps, burst int) *limiterRegistry {
	r := &limiterRegistry{
		visitors: make(map[string]*visitor),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
	go r.cleanupLoop()
	return r
}

func (r *limiterRegistry) get(ip string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, exists := r.visitors[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(r.rps, r.burst)}
		r.visitors[ip] = v
	}
	v.lastSeen = time.Now()
	return v.limiter
}

func (r *limiterRegistry) cleanupLoop() {
	for {
		time.Sleep(cleanupInterval)
		r.sweep()
	}
}

func (r *limiterRegistry) sweep() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for ip, v := range r.visitors {
		if time.Since(v.lastSeen) > visitorTTL {
			delete(r.visitors, ip)
		}
	}
}

// RateLimiterWithConfig creates a per-IP rate limiting middleware with the
// given sustained rate and burst size.
func RateLimiterWithConfig(rps int, burst int) echo.MiddlewareFunc {
	registry := newLimiterRegistry(rps, burst)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !registry.get(clientIP(c)).Allow() {
				return handlers.SendError(c, errors.CodeRateLimited)
			}
			return next(c)
		}
	}
}

// clientIP resolves the originating client address, preferring proxy headers
// over the socket peer.
func clientIP(c echo.Context) string {
	if xff := c.Request().Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := c.Request().Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return c.RealIP()
}
