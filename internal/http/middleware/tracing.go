package middleware

import (
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
)

// Tracing starts a server span per request through otelfiber. Probes,
// metrics scrapes and static assets are not traced.
func Tracing() fiber.Handler {
	traced := otelfiber.Middleware()
	return func(c *fiber.Ctx) error {
		if quiet(c.Path()) {
			return c.Next()
		}
		return traced(c)
	}
}
