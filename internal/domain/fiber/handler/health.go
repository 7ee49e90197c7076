package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func healthCheck(service string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "ok",
			"service":   service,
			"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		})
	}
}
