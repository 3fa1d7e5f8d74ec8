package middleware

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"

	"karirkit/internal/view"
)

const (
	// FlashCookie carries one toast across a redirect.
	FlashCookie   = "karirkit_flash"
	flashLocalKey = "flash"
)

// Flash reads the pending toast, if any, and expires the cookie so it is
// shown exactly once.
func Flash() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if raw := c.Cookies(FlashCookie); raw != "" {
			if f, ok := decodeFlash(raw); ok {
				c.Locals(flashLocalKey, f)
			}
			c.Cookie(&fiber.Cookie{Name: FlashCookie, Path: "/", Expires: time.Unix(0, 0), MaxAge: -1, HTTPOnly: true})
		}
		return c.Next()
	}
}

// SetFlash queues a toast for the next page view.
func SetFlash(c *fiber.Ctx, kind, message string) {
	b, err := json.Marshal(view.Flash{Kind: kind, Message: message})
	if err != nil {
		return
	}
	c.Cookie(&fiber.Cookie{
		Name:     FlashCookie,
		Value:    base64.RawURLEncoding.EncodeToString(b),
		Path:     "/",
		Expires:  time.Now().Add(time.Minute),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// FlashFrom returns the toast read by Flash.
func FlashFrom(c *fiber.Ctx) *view.Flash {
	f, _ := c.Locals(flashLocalKey).(*view.Flash)
	return f
}

func decodeFlash(raw string) (*view.Flash, bool) {
	b, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return nil, false
	}
	var f view.Flash
	if err := json.Unmarshal(b, &f); err != nil || f.Message == "" {
		return nil, false
	}
	return &f, true
}
