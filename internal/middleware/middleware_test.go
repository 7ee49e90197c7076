package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, app *fiber.App, path string) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestRateLimiterBlocksAfterMax(t *testing.T) {
	app := fiber.New()
	app.Get("/", RateLimiter("turn", 2, time.Minute), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	assert.Equal(t, fiber.StatusOK, get(t, app, "/"))
	assert.Equal(t, fiber.StatusOK, get(t, app, "/"))

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Too many requests", body["error"])
	assert.Contains(t, body["message"], "2 turn requests")
}

func TestRateLimiterScopesAreIndependent(t *testing.T) {
	app := fiber.New()
	ok := func(c *fiber.Ctx) error { return c.SendString("ok") }
	app.Get("/process", RateLimiter("turn", 1, time.Minute), ok)
	app.Get("/parse", RateLimiter("resume", 1, time.Minute), ok)

	assert.Equal(t, fiber.StatusOK, get(t, app, "/process"))
	assert.Equal(t, fiber.StatusOK, get(t, app, "/parse"))
	assert.Equal(t, fiber.StatusTooManyRequests, get(t, app, "/process"))
	assert.Equal(t, fiber.StatusTooManyRequests, get(t, app, "/parse"))
}

func TestRateLimiterDisabled(t *testing.T) {
	app := fiber.New()
	app.Get("/", RateLimiter("global", -1, time.Minute), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	for i := 0; i < 10; i++ {
		assert.Equal(t, fiber.StatusOK, get(t, app, "/"))
	}
}

func TestMetricsPassesThrough(t *testing.T) {
	app := fiber.New()
	app.Use(Metrics())
	app.Get("/jobs/:id", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusTeapot).SendString(c.Params("id"))
	})

	assert.Equal(t, fiber.StatusTeapot, get(t, app, "/jobs/42"))
}
