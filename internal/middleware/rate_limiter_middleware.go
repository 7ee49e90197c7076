package middleware

import (
	"fmt"
	"time"

	"github.com/fadilmartias/ai-interviewer/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RateLimiter counts requests per client IP inside scope, so the global
// budget and each route budget are spent independently. A negative max
// disables it.
func RateLimiter(scope string, max int, expiration time.Duration) fiber.Handler {
	if max == 0 {
		max = 50
	}
	if expiration == 0 {
		expiration = 1 * time.Minute
	}
	disabled := max < 0

	return limiter.New(limiter.Config{
		Next: func(c *fiber.Ctx) bool {
			return disabled
		},
		Max:        max,
		Expiration: expiration,
		KeyGenerator: func(c *fiber.Ctx) string {
			return scope + ":" + c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusTooManyRequests,
				Error:   "Too many requests",
				Message: fmt.Sprintf("Only %d %s requests are allowed per %s, please try again shortly", max, scope, expiration),
			})
		},
		LimiterMiddleware: limiter.SlidingWindow{},
	})
}
