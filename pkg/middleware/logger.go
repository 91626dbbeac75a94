package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Logger only logs slow (>= slow) or failed (status >= 400) requests.
func Logger(log *zap.Logger, slow time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			latency := time.Since(start)
			status := c.Response().Status
			if status < 400 && latency < slow {
				return nil
			}
			fields := []zap.Field{
				zap.Int("status", status),
				zap.Duration("latency", latency),
				zap.String("method", c.Request().Method),
				zap.String("path", c.Path()),
				zap.String("session", SessionID(c)),
			}
			if err != nil {
				fields = append(fields, zap.Error(err))
			}
			if status >= 500 {
				log.Error("request", fields...)
			} else {
				log.Warn("request", fields...)
			}
			return nil
		}
	}
}
