package main

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"karirkit/docs"
	"karirkit/internal/apiclient"
	"karirkit/internal/cache"
	"karirkit/internal/config"
	"karirkit/internal/database"
	"karirkit/internal/database/migration"
	handlers "karirkit/internal/http/handler"
	"karirkit/internal/http/middleware"
	"karirkit/internal/logging"
	"karirkit/internal/model"
	"karirkit/internal/otel"
	"karirkit/internal/repository"
	"karirkit/internal/repository/memory"
	"karirkit/internal/repository/postgres"
	"karirkit/internal/resource"
	"karirkit/internal/service"
	"karirkit/internal/storage"
	"karirkit/internal/upload"
	"karirkit/internal/view"
)

const shutdownTimeout = 10 * time.Second

// @title						KarirKit Console API
// @version					1.0
// @description				JSON endpoints used by the KarirKit web console pages.
// @BasePath					/
// @securityDefinitions.apikey	SessionCookie
// @in							cookie
// @name						karirkit_token
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	log := logging.New(os.Stdout, cfg.LogLevel, cfg.Location())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error(context.Background(), "server_exited", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.AppConfig, log logging.Logger) error {
	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Warn(context.Background(), "tracing_shutdown_failed", "error", err)
		}
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// Column preferences live in PostgreSQL when configured, in memory otherwise.
	db, prefRepo, err := openPreferences(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	var objStore storage.Storage
	if cfg.Upload.Driver == "minio" {
		objStore, err = storage.NewMinIO(ctx, cfg.MinIO)
		if err != nil {
			return err
		}
	}

	client, err := apiclient.New(cfg.API, reg)
	if err != nil {
		return err
	}
	queryCache, err := cache.New(cfg.CacheTTL, reg)
	if err != nil {
		return err
	}
	uploader, err := upload.New(cfg.Upload, client, objStore)
	if err != nil {
		return err
	}

	lookups := resource.NewLookups(resource.LookupSources{
		Companies:      apiclient.NewResource[model.Company](client, "companies", "/admin/companies"),
		JobRoles:       apiclient.NewResource[model.JobRole](client, "job_roles", "/admin/job-roles"),
		BlogCategories: apiclient.NewResource[model.BlogCategory](client, "blog_categories", "/admin/blog-categories"),
		Templates:      apiclient.NewResource[model.Template](client, "templates", "/templates"),
	}, queryCache, log.With("component", "lookups"))

	prefs := service.NewPreferenceService(prefRepo, log)
	shell := handlers.NewShell(
		resource.Jobs().Entry(),
		resource.Applications().Entry(),
		resource.CVs().Entry(),
		resource.ApplicationLetters().Entry(),
		resource.Portfolios().Entry(),
		resource.Documents().Entry(),
		resource.AdminJobs().Entry(),
		resource.Blogs().Entry(),
		resource.Companies().Entry(),
		resource.Users().Entry(),
	)
	deps := handlers.PageDeps{
		Shell:    shell,
		Lookups:  lookups,
		Prefs:    prefs,
		Uploader: uploader,
		Log:      log,
		PerPage:  cfg.DefaultPerPage,
	}
	env := moduleEnv{client: client, cache: queryCache, deps: deps, log: log}
	modules := []handlers.Module{
		pages(env, resource.Jobs()),
		pages(env, resource.Applications()),
		pages(env, resource.CVs()),
		pages(env, resource.ApplicationLetters()),
		pages(env, resource.Portfolios()),
		pages(env, resource.Documents()),
		pages(env, resource.AdminJobs()),
		pages(env, resource.Blogs()),
		pages(env, resource.Companies()),
		pages(env, resource.Users()),
	}

	engine := view.New(cfg.AssetBaseURL, cfg.Location())
	if err := engine.Load(); err != nil {
		return err
	}

	app := fiber.New(fiber.Config{
		AppName:      "karirkit-web",
		Views:        engine,
		ErrorHandler: handlers.ErrorHandler(log),
		BodyLimit:    int(cfg.Upload.MaxBytes) + 1<<20,
		ReadTimeout:  30 * time.Second,
	})

	prom, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return err
	}

	// Register global middleware
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(cfg.Location()))
	app.Use(prom.Handler())
	app.Use(middleware.Tracing())
	app.Use(middleware.ClientID(cfg.CookieSecure))
	app.Use(middleware.Session())
	app.Use(middleware.Flash())

	handlers.RegisterRoutes(app, handlers.Routes{
		DB:       db,
		Upstream: client,
		Users:    client,
		Auth:     handlers.NewAuth(client, shell, log, cfg.CookieSecure),
		Shell:    shell,
		Modules:  modules,
		API:      handlers.NewAPI(modules, prefs, uploader, log),
		Store:    objStore,
		Gatherer: reg,
		Secure:   cfg.CookieSecure,
		Log:      log,
	})

	// Swagger UI with dynamic host and scheme
	docs.SwaggerInfo.Host = cfg.AppHost
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	go func() {
		<-ctx.Done()
		log.Info(context.Background(), "shutting_down")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			log.Error(context.Background(), "shutdown_failed", "error", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Info(ctx, "listening", "addr", addr, "api", cfg.API.BaseURL, "upload_driver", cfg.Upload.Driver)
	return app.Listen(addr)
}

func openPreferences(ctx context.Context, cfg config.DatabaseConfig, log logging.Logger) (*sql.DB, repository.PreferenceRepository, error) {
	db, err := database.NewPostgres(ctx, cfg)
	if errors.Is(err, database.ErrNotConfigured) {
		log.Warn(ctx, "database_not_configured", "preferences", "memory")
		return nil, memory.NewPreferenceMemory(), nil
	}
	if err != nil {
		return nil, nil, err
	}
	if err := migration.EnsureMigrated(ctx, db, log); err != nil {
		db.Close()
		return nil, nil, err
	}
	return db, postgres.NewPreferencePostgres(db), nil
}

type moduleEnv struct {
	client *apiclient.Client
	cache  *cache.Cache
	deps   handlers.PageDeps
	log    logging.Logger
}

func pages[T model.Entity](env moduleEnv, d resource.Descriptor[T]) handlers.Module {
	api := apiclient.NewResource[T](env.client, d.Key, d.APIPath)
	svc := service.NewResourceService[T](api, env.cache, env.log).Invalidating(d.Invalidates...)
	return handlers.NewPages(d, svc, env.deps)
}
