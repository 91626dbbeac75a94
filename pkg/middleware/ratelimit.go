package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// RateLimit allows perMinute requests per client IP with a burst of the same
// size.
// perMinute <= 0 disables limiting.
func RateLimit(perMinute int) echo.MiddlewareFunc {
	if perMinute <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	l := &ipLimiter{
		every:    time.Minute / time.Duration(perMinute),
		burst:    perMinute,
		limiters: map[string]*visitor{},
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !l.allow(c.RealIP(), time.Now()) {
				return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "too many requests"})
			}
			return next(c)
		}
	}
}

type visitor struct {
	lim  *rate.Limiter
	seen time.Time
}

type ipLimiter struct {
	mu       sync.Mutex
	every    time.Duration
	burst    int
	limiters map[string]*visitor
	swept    time.Time
}

func (l *ipLimiter) allow(ip string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	// drop visitors idle for ten minutes
	if now.Sub(l.swept) > time.Minute {
		for k, v := range l.limiters {
			if now.Sub(v.seen) > 10*time.Minute {
				delete(l.limiters, k)
			}
		}
		l.swept = now
	}

	v, ok := l.limiters[ip]
	if !ok {
		v = &visitor{lim: rate.NewLimiter(rate.Every(l.every), l.burst)}
		l.limiters[ip] = v
	}
	v.seen = now
	return v.lim.AllowN(now, 1)
}
