package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"pghive/internal/pkg/metrics"
)

// Metrics records request counts and durations per route
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		path := c.Route().Path
		labels := []string{c.Method(), path, strconv.Itoa(status)}
		metrics.HTTPRequestsTotal.WithLabelValues(labels...).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())

		return err
	}
}
