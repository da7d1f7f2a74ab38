package middleware

import (
	"time"

	"networth-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// RequestMetrics records method, route, status and latency for every request.
// The route template (c.Path) is used instead of the raw URL so per-resource
// IDs do not explode label cardinality.
func RequestMetrics(metrics services.MetricsRecorderInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}
			metrics.RecordRequest(c.Request().Method, path, c.Response().Status, time.Since(start))
			return err
		}
	}
}
