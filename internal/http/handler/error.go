package handler

import (
	"errors"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"karirkit/internal/apiclient"
	"karirkit/internal/http/middleware"
	"karirkit/internal/logging"
	"karirkit/internal/service"
	"karirkit/internal/view"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError writes a standardized JSON error response without leaking internal errors.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: middleware.RequestIDFrom(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

type failure struct {
	status int
	code   string
	// message is for API clients, page for people.
	message string
	page    string
}

var failures = map[int]failure{
	fiber.StatusBadRequest:            {fiber.StatusBadRequest, "BAD_REQUEST", "bad request", "Permintaan tidak valid."},
	fiber.StatusUnauthorized:          {fiber.StatusUnauthorized, "UNAUTHORIZED", "authentication required", "Silakan masuk terlebih dahulu."},
	fiber.StatusForbidden:             {fiber.StatusForbidden, "FORBIDDEN", "access denied", "Anda tidak memiliki akses ke halaman ini."},
	fiber.StatusNotFound:              {fiber.StatusNotFound, "NOT_FOUND", "resource not found", "Halaman atau data tidak ditemukan."},
	fiber.StatusMethodNotAllowed:      {fiber.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed", "Metode tidak diizinkan."},
	fiber.StatusRequestEntityTooLarge: {fiber.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "payload too large", "Berkas terlalu besar."},
	fiber.StatusBadGateway:            {fiber.StatusBadGateway, "UPSTREAM_ERROR", "upstream service error", "Layanan KarirKit sedang bermasalah. Coba lagi nanti."},
	fiber.StatusServiceUnavailable:    {fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable", "Layanan sedang tidak tersedia."},
	fiber.StatusInternalServerError:   {fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error", "Terjadi kesalahan pada server."},
}

// classify maps err to a response without exposing upstream details.
func classify(err error) failure {
	var fe *fiber.Error
	var apiErr *apiclient.APIError
	switch {
	case errors.As(err, &fe):
		if f, ok := failures[fe.Code]; ok {
			return f
		}
		if fe.Code < fiber.StatusInternalServerError {
			return failure{fe.Code, "REQUEST_ERROR", strings.ToLower(fe.Message), fe.Message}
		}
	case errors.Is(err, service.ErrNotFound), apiclient.IsNotFound(err):
		return failures[fiber.StatusNotFound]
	case apiclient.IsUnauthorized(err):
		return failures[fiber.StatusUnauthorized]
	case apiclient.IsForbidden(err):
		return failures[fiber.StatusForbidden]
	case errors.As(err, &apiErr):
		return failures[fiber.StatusBadGateway]
	}
	return failures[fiber.StatusInternalServerError]
}

func isAPI(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Path(), "/api/") || c.Path() == "/health"
}

// ErrorHandler renders failures as the HTML error page for browsers and as the
// JSON error envelope under /api. A rejected session sends the browser back
// to the login page.
func ErrorHandler(log logging.Logger) fiber.ErrorHandler {
	if log == nil {
		log = logging.Nop()
	}
	return func(c *fiber.Ctx, err error) error {
		f := classify(err)
		if f.status >= fiber.StatusInternalServerError {
			log.Error(c.UserContext(), "request failed",
				"request_id", middleware.RequestIDFrom(c),
				"method", c.Method(),
				"path", c.Path(),
				"error", err,
			)
		}

		if isAPI(c) {
			return writeError(c, f.status, f.code, f.message)
		}
		if f.status == fiber.StatusUnauthorized {
			next := "/"
			if c.Method() == fiber.MethodGet {
				next = c.OriginalURL()
			}
			return c.Redirect("/login?next="+url.QueryEscape(next), fiber.StatusSeeOther)
		}

		c.Status(f.status)
		page := view.Page{
			Title:     "Kesalahan",
			User:      middleware.UserFrom(c),
			RequestID: middleware.RequestIDFrom(c),
			Data:      view.ErrorPage{Status: f.status, Message: f.page},
		}
		if rerr := c.Render("error", page, "bare"); rerr != nil {
			log.Error(c.UserContext(), "error page failed", "error", rerr)
			return writeError(c, f.status, f.code, f.message)
		}
		return nil
	}
}
