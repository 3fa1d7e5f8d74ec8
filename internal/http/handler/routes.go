package handler

import (
	"database/sql"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"karirkit/internal/http/middleware"
	"karirkit/internal/logging"
	"karirkit/internal/storage"
	"karirkit/internal/view"
)

// Routes is everything RegisterRoutes wires together.
type Routes struct {
	DB       *sql.DB
	Upstream Pinger
	Users    middleware.UserSource
	Auth     *Auth
	Shell    *Shell
	Modules  []Module
	API      *API
	// Store is set when uploads live in object storage; /uploads then
	// streams them back.
	Store    storage.Storage
	Gatherer prometheus.Gatherer
	Secure   bool
	Log      logging.Logger
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Pages and /api are behind the session guard; admin resources also need the
// admin role.
func RegisterRoutes(app *fiber.App, r Routes) {
	app.Use("/static", filesystem.New(filesystem.Config{
		Root:   http.FS(view.Static()),
		MaxAge: 3600,
	}))
	if r.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(r.Gatherer, promhttp.HandlerOpts{})))
	}

	app.Get("/health", HealthCheck(r.DB, r.Upstream))
	app.Get("/healthz", LivenessProbe())

	app.Get("/login", r.Auth.LoginForm)
	app.Post("/login", r.Auth.Login)
	app.Post("/logout", r.Auth.Logout)

	auth := middleware.RequireAuth(r.Users, r.Secure)
	admin := middleware.RequireAdmin()

	app.Get("/", auth, Dashboard(r.Shell, r.Modules, r.Log))
	for _, m := range r.Modules {
		if m.Entry().AdminOnly {
			m.Mount(app, auth, admin)
			continue
		}
		m.Mount(app, auth)
	}

	if r.Store != nil {
		app.Get("/uploads/*", auth, ServeUploads(r.Store))
	}

	api := app.Group("/api")
	api.Get("/preferences/:resource", auth, r.API.GetPreference)
	api.Put("/preferences/:resource", auth, r.API.PutPreference)
	api.Delete("/preferences/:resource", auth, r.API.DeletePreference)
	api.Post("/uploads", auth, r.API.Upload)
	api.Get("/slug", auth, r.API.Slug)
}
