package middleware

import (
	"strconv"
	"time"

	"github.com/fadilmartias/ai-interviewer/internal/metrics"
	"github.com/gofiber/fiber/v2"
)

// Metrics records request counts and latency keyed by route pattern, so
// /api/jobs/:id stays one series.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		metrics.ObserveHTTP(c.Method(), c.Route().Path, strconv.Itoa(status), time.Since(start).Seconds())
		return err
	}
}
