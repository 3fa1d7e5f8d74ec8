package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// ClientIDCookie identifies the browser for column preferences.
	ClientIDCookie = "karirkit_cid"
	// ClientIDLocalKey stores the client id in context locals.
	ClientIDLocalKey = "client_id"
)

// ClientID assigns each browser a stable random id. Malformed cookies are
// replaced.
func ClientID(secure bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Cookies(ClientIDCookie)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     ClientIDCookie,
				Value:    id,
				Path:     "/",
				Expires:  time.Now().AddDate(1, 0, 0),
				HTTPOnly: true,
				Secure:   secure,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}
		c.Locals(ClientIDLocalKey, id)
		return c.Next()
	}
}

// ClientIDFrom returns the id stored by ClientID, or "".
func ClientIDFrom(c *fiber.Ctx) string {
	id, _ := c.Locals(ClientIDLocalKey).(string)
	return id
}
