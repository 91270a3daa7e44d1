package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
)

// HTTPObserver receives one observation per served request.
type HTTPObserver interface {
	ObserveHTTP(method, route string, status int, elapsed time.Duration)
}

// MetricsMiddleware reports request counts and latencies by route template.
type MetricsMiddleware struct {
	observer HTTPObserver
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(observer HTTPObserver) *MetricsMiddleware {
	return &MetricsMiddleware{observer: observer}
}

// Handle observes the request once its response status is known.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		if err := next(c); err != nil {
			c.Error(err)
		}

		// Route templates keep label cardinality bounded; unmatched paths share one label.
		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		m.observer.ObserveHTTP(c.Request().Method, route, c.Response().Status, time.Since(start))

		return nil
	}
}
