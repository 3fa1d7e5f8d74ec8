package middleware

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"karirkit/internal/apiclient"
	"karirkit/internal/model"
)

const (
	// TokenCookie holds the bearer token issued by the API on login.
	TokenCookie = "karirkit_token"
	// UserLocalKey stores the signed-in *model.User.
	UserLocalKey = "user"

	tokenTTL = 7 * 24 * time.Hour
)

// UserSource resolves the account behind the token in ctx.
type UserSource interface {
	Me(ctx context.Context) (*model.User, error)
}

// Session moves the token cookie into the request context, where the API
// client picks it up.
func Session() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := c.Cookies(TokenCookie); token != "" {
			c.SetUserContext(apiclient.WithToken(c.UserContext(), token))
		}
		return c.Next()
	}
}

// RequireAuth redirects anonymous visitors to the login page and loads the
// current user for everyone else. A token the API no longer accepts is
// dropped.
func RequireAuth(users UserSource, secure bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if apiclient.TokenFrom(c.UserContext()) == "" {
			return redirectToLogin(c)
		}
		u, err := users.Me(c.UserContext())
		if err != nil {
			if apiclient.IsUnauthorized(err) {
				ClearToken(c, secure)
				return redirectToLogin(c)
			}
			return err
		}
		c.Locals(UserLocalKey, u)
		return c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if u := UserFrom(c); u == nil || !u.IsAdmin() {
			return fiber.ErrForbidden
		}
		return c.Next()
	}
}

// UserFrom returns the user loaded by RequireAuth.
func UserFrom(c *fiber.Ctx) *model.User {
	u, _ := c.Locals(UserLocalKey).(*model.User)
	return u
}

func redirectToLogin(c *fiber.Ctx) error {
	if strings.HasPrefix(c.Path(), "/api/") {
		return fiber.ErrUnauthorized
	}
	next := c.OriginalURL()
	if c.Method() != fiber.MethodGet {
		next = "/"
	}
	return c.Redirect("/login?next="+url.QueryEscape(next), fiber.StatusSeeOther)
}

// SetToken stores the bearer token after a successful login.
func SetToken(c *fiber.Ctx, token string, secure bool) {
	c.Cookie(&fiber.Cookie{
		Name:     TokenCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(tokenTTL),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// ClearToken expires the token cookie.
func ClearToken(c *fiber.Ctx, secure bool) {
	c.Cookie(&fiber.Cookie{
		Name:     TokenCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
