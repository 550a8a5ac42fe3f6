package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/storefront/internal/storefront/http"
	"github.com/aussiebroadwan/storefront/internal/storefront/service"
	"github.com/aussiebroadwan/storefront/internal/storefront/session"
	"github.com/aussiebroadwan/storefront/internal/storefront/store"
	"github.com/aussiebroadwan/storefront/internal/storefront/store/drivers/postgres"
	"github.com/aussiebroadwan/storefront/internal/storefront/store/drivers/sqlite"
	"github.com/aussiebroadwan/storefront/internal/storefront/upstream"
	"github.com/aussiebroadwan/storefront/internal/storefront/upstream/corp"
	"github.com/aussiebroadwan/storefront/internal/storefront/upstream/identity"
	"github.com/aussiebroadwan/storefront/internal/storefront/upstream/ticketing"
	"github.com/aussiebroadwan/storefront/pkg/metricsx"
	"github.com/aussiebroadwan/storefront/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"

	metricsNamespace = "storefront"
)

// Application encapsulates the storefront service with all its dependencies
type Application struct {
	cfg     Config
	logger  *slog.Logger
	metrics *metricsx.Metrics

	// Core dependencies
	db    store.Store
	cache session.Cache

	// Upstream clients
	identity  *identity.Client
	corp      *corp.Client
	ticketing *ticketing.Client

	// Services
	gateway         *service.AuthGateway
	profileService  *service.ProfileService
	customerService *service.CustomerService
	articleService  *service.ArticleService
	issueService    *service.IssueService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(ctx context.Context, cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "storefront",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
		metrics: metricsx.New(metricsNamespace),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initCache(ctx); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initUpstreams()
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler returns the fully wired HTTP handler.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("storefront starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"database", app.cfg.DatabaseDriver,
		"session_cache", app.cfg.SessionCache,
	)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown stops the HTTP server, then releases the cache and database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down storefront...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	return app.Close()
}

// Close releases the cache connection and the database pool.
func (app *Application) Close() error {
	if c, ok := app.cache.(io.Closer); ok {
		if err := c.Close(); err != nil {
			app.logger.Error("error closing session cache", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("storefront stopped")
	return nil
}

// initDatabase opens the configured store and applies migrations
func (app *Application) initDatabase() error {
	var (
		db  store.Store
		err error
	)
	switch app.cfg.DatabaseDriver {
	case DriverPostgres:
		db, err = postgres.Open(app.cfg.DatabaseURL)
	default:
		db, err = sqlite.NewStore(app.cfg.SQLiteDSN())
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.DatabaseDriver)
	return nil
}

// initCache connects the session cache. Redis must answer a ping at start-up.
func (app *Application) initCache(ctx context.Context) error {
	if app.cfg.SessionCache == CacheMemory {
		app.cache = session.NewMemoryCache(app.cfg.SessionKeyPrefix, time.Now)
		app.logger.Warn("using in-memory session cache; sessions are not shared between instances")
		return nil
	}

	cache, err := session.NewRedisCache(ctx, session.RedisConfig{
		URL:      app.cfg.RedisURL,
		Addr:     app.cfg.RedisAddr,
		Password: app.cfg.RedisPassword,
		Prefix:   app.cfg.SessionKeyPrefix,
	})
	if err != nil {
		return fmt.Errorf("failed to connect session cache: %w", err)
	}
	app.cache = cache
	return nil
}

// initUpstreams builds the outbound clients, each with its own timed transport
func (app *Application) initUpstreams() {
	app.identity = identity.New(identity.Config{
		ProfileURL:     app.cfg.AuthProfileURL,
		AccessTokenURL: app.cfg.AuthAccessTokenURL,
		ClientID:       app.cfg.ClientID,
		RedirectURI:    app.cfg.RedirectURI,
		Timeout:        app.cfg.UpstreamTimeout,
		HTTPClient:     upstream.NewHTTPClient("identity", app.metrics),
	})

	app.corp = corp.New(corp.Config{
		TokenURL:     app.cfg.CorpTokenURL,
		ClientID:     app.cfg.ClientID,
		ClientSecret: app.cfg.ClientSecret,
		BaseURL:      app.cfg.CorpUserDataURL,
		Timeout:      app.cfg.UpstreamTimeout,
		HTTPClient:   upstream.NewHTTPClient("corp", app.metrics),
	})

	app.ticketing = ticketing.New(ticketing.Config{
		CreateURL:  app.cfg.IssueCreateURL,
		Timeout:    app.cfg.UpstreamTimeout,
		HTTPClient: upstream.NewHTTPClient("ticketing", app.metrics),
	})
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.gateway = &service.AuthGateway{
		Cache:    app.cache,
		Identity: app.identity,
		TTL:      app.cfg.SessionTTL,
		Metrics:  app.metrics,
	}
	app.profileService = &service.ProfileService{Store: app.db, Corp: app.corp}
	app.customerService = &service.CustomerService{Store: app.db}
	app.articleService = &service.ArticleService{Store: app.db}
	app.issueService = &service.IssueService{
		Store:     app.db,
		Tickets:   app.ticketing,
		PublicURL: app.cfg.PublicURL,
		ProjectID: app.cfg.IssueProjectID,
		TrackerID: app.cfg.IssueTrackerID,
	}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.cache, app.metrics, app.logger)

	// Wire services to router
	router.Gateway = app.gateway
	router.CodeExchanger = app.identity
	router.ProfileService = app.profileService
	router.CustomerService = app.customerService
	router.ArticleService = app.articleService
	router.IssueService = app.issueService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
