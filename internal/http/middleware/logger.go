package middleware

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Logger writes one JSON access log line per request to stdout.
func Logger(loc *time.Location) fiber.Handler {
	return LoggerWithWriter(os.Stdout, loc)
}

// LoggerWithWriter is Logger with an explicit sink. Each line carries
// request_id, method, path, status, latency (ms) and ts in loc. Static
// assets and probes are not logged.
func LoggerWithWriter(w io.Writer, loc *time.Location) fiber.Handler {
	enc := json.NewEncoder(w)
	if loc == nil {
		loc = time.UTC
	}

	return func(c *fiber.Ctx) error {
		if quiet(c.Path()) {
			return c.Next()
		}
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = statusOf(err)
		}
		entry := map[string]any{
			"ts":         time.Now().In(loc).Format(time.RFC3339Nano),
			"request_id": RequestIDFrom(c),
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     status,
			"latency":    float64(time.Since(start).Microseconds()) / 1000,
		}
		if cid := ClientIDFrom(c); cid != "" {
			entry["client_id"] = cid
		}
		_ = enc.Encode(entry)

		return err
	}
}

func quiet(path string) bool {
	return path == "/healthz" || path == "/metrics" || path == "/favicon.ico" || strings.HasPrefix(path, "/static/")
}

func statusOf(err error) int {
	if fe, ok := err.(*fiber.Error); ok {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
