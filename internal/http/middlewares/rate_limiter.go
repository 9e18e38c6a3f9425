package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/rueidis"
)

// RateLimiter is a fixed-window per-IP limiter held in process memory.
// Suitable for a single instance; use RedisRateLimiter when more than one
// replica serves traffic.
func RateLimiter(limit int, window time.Duration) echo.MiddlewareFunc {
	type bucket struct {
		count int
		start time.Time
	}

	var (
		mu      sync.Mutex
		buckets = make(map[string]*bucket)
	)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			now := time.Now()
			key := c.RealIP()

			mu.Lock()
			b, ok := buckets[key]
			if !ok || now.Sub(b.start) > window {
				b = &bucket{start: now}
				buckets[key] = b
			}

			if b.count >= limit {
				mu.Unlock()
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}

			b.count++
			mu.Unlock()

			return next(c)
		}
	}
}

// RedisRateLimiter is the shared-state variant: one INCR per request on a
// window-scoped key, EXPIRE on first hit. Fails open when redis is down so
// an outage does not take the API with it.
func RedisRateLimiter(client rueidis.Client, limit int, window time.Duration) echo.MiddlewareFunc {
	windowSecs := int64(window.Seconds())

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := "ratelimit:" + c.RealIP() + ":" +
				strconv.FormatInt(time.Now().Unix()/windowSecs, 10)

			count, err := client.Do(ctx, client.B().Incr().Key(key).Build()).AsInt64()
			if err != nil {
				return next(c)
			}
			if count == 1 {
				_ = client.Do(ctx, client.B().Expire().Key(key).Seconds(windowSecs).Build()).Error()
			}
			if count > int64(limit) {
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}

			return next(c)
		}
	}
}
