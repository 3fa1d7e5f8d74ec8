package handler

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"karirkit/internal/apiclient"
	"karirkit/internal/http/middleware"
	"karirkit/internal/logging"
	"karirkit/internal/view"
)

// Authenticator is the session part of the KarirKit API.
type Authenticator interface {
	Login(ctx context.Context, identifier, password string) (*apiclient.LoginResult, error)
	Logout(ctx context.Context) error
}

// Auth serves the login and logout pages.
type Auth struct {
	api    Authenticator
	shell  *Shell
	log    logging.Logger
	secure bool
}

func NewAuth(api Authenticator, shell *Shell, log logging.Logger, secureCookies bool) *Auth {
	if log == nil {
		log = logging.Nop()
	}
	return &Auth{api: api, shell: shell, log: log, secure: secureCookies}
}

// LoginForm renders the sign-in page.
func (a *Auth) LoginForm(c *fiber.Ctx) error {
	next := safeReturn(c.Query("next"), "/")
	if apiclient.TokenFrom(c.UserContext()) != "" {
		return redirect(c, next)
	}
	return a.shell.RenderBare(c, fiber.StatusOK, "login", "Masuk", view.LoginPage{Next: next})
}

// Login exchanges the submitted credentials for a token cookie.
func (a *Auth) Login(c *fiber.Ctx) error {
	page := view.LoginPage{
		Identifier: strings.TrimSpace(c.FormValue("identifier")),
		Next:       safeReturn(c.FormValue("next"), "/"),
	}
	password := c.FormValue("password")
	if page.Identifier == "" || password == "" {
		page.Error = "Email/username dan kata sandi wajib diisi."
		return a.shell.RenderBare(c, fiber.StatusUnprocessableEntity, "login", "Masuk", page)
	}

	res, err := a.api.Login(c.UserContext(), page.Identifier, password)
	if err != nil {
		status := fiber.StatusUnauthorized
		page.Error = "Email/username atau kata sandi salah."
		var apiErr *apiclient.APIError
		if !errors.As(err, &apiErr) || apiErr.Status >= fiber.StatusInternalServerError {
			a.log.Error(c.UserContext(), "login failed", "error", err)
			status = fiber.StatusBadGateway
			page.Error = "Layanan sedang tidak tersedia. Coba lagi nanti."
		}
		return a.shell.RenderBare(c, status, "login", "Masuk", page)
	}

	middleware.SetToken(c, res.Token, a.secure)
	middleware.SetFlash(c, "success", "Selamat datang, "+res.User.Name+".")
	a.log.Info(c.UserContext(), "signed in", "user_id", res.User.ID)
	return redirect(c, page.Next)
}

// Logout revokes the token upstream (best effort) and clears the cookie.
func (a *Auth) Logout(c *fiber.Ctx) error {
	if apiclient.TokenFrom(c.UserContext()) != "" {
		if err := a.api.Logout(c.UserContext()); err != nil {
			a.log.Warn(c.UserContext(), "logout upstream failed", "error", err)
		}
	}
	middleware.ClearToken(c, a.secure)
	middleware.SetFlash(c, "info", "Anda telah keluar.")
	return redirect(c, "/login")
}
