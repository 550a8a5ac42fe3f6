package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/internal/storefront/service"
	"github.com/aussiebroadwan/storefront/internal/storefront/session"
	"github.com/aussiebroadwan/storefront/internal/storefront/store"
	"github.com/aussiebroadwan/storefront/internal/storefront/upstream/identity"
	"github.com/aussiebroadwan/storefront/pkg/httpx"
	"github.com/aussiebroadwan/storefront/pkg/metricsx"
	"github.com/aussiebroadwan/storefront/pkg/slogx"

	_ "github.com/aussiebroadwan/storefront/api/storefront" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// CodeExchanger trades an authorization code for an access token.
type CodeExchanger interface {
	ExchangeCode(ctx context.Context, code string) (identity.TokenResponse, error)
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	metrics      *metricsx.Metrics

	store store.Store
	cache session.Cache

	Gateway         Authenticator
	CodeExchanger   CodeExchanger
	ProfileService  *service.ProfileService
	CustomerService *service.CustomerService
	ArticleService  *service.ArticleService
	IssueService    *service.IssueService
}

func NewRouter(
	buildVersion string,
	st store.Store,
	cache session.Cache,
	m *metricsx.Metrics,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		metrics:      m,
		store:        st,
		cache:        cache,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		r.metrics.Instrument,
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerSystem()
	r.registerAuth()
	r.registerProfiles()
	r.registerArticles()
	r.registerIssues()

	r.Mux.Handle("GET /swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Storefront API
//	@version		0.1.0
//	@description	Customer, catalogue and issue reporting backend for the storefront.
//	@description
//	@description				Every /v1 route needs a bearer token issued by the identity provider.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/storefront
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Identity provider access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured chains the bearer authentication and per user rate limit in front
// of h, followed by any extra middleware.
func (r *Router) secured(h http.Handler, limit httpx.RateLimitConfig, extra ...httpx.Middleware) http.Handler {
	mws := append([]httpx.Middleware{
		AuthnMiddleware(r.Gateway),
		httpx.RateLimitByUser(limit),
	}, extra...)
	return httpx.Chain(h, mws...)
}

func (r *Router) registerSystem() {
	public := httpx.RateLimitByIP(httpx.PublicLimit)

	r.Mux.Handle("GET /healthz", httpx.Chain(HealthzHandler(), public))
	r.Mux.Handle("GET /livez", httpx.Chain(LivezHandler(r.startTime, r.buildVersion), public))
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.cache), public),
	)
	r.Mux.Handle("GET /metrics", r.metrics.Handler())
}

func (r *Router) registerAuth() {
	h := &AuthHandler{Exchanger: r.CodeExchanger}

	// GET /auth - authenticated ping used by the frontend after login
	r.Mux.Handle("GET /auth", r.secured(http.HandlerFunc(h.HandleStatus), httpx.LenientLimit))

	// GET /authback/{code} - strict rate limit by IP (credential exchange)
	r.Mux.Handle("GET /authback/{code}",
		httpx.Chain(http.HandlerFunc(h.HandleCallback),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerProfiles() {
	h := &ProfilesHandler{
		ProfileService:  r.ProfileService,
		CustomerService: r.CustomerService,
	}

	r.Mux.Handle("GET /v1/profile/{user_id}",
		r.secured(withCaller(h.HandleGet), httpx.LenientLimit))
	r.Mux.Handle("GET /v1/profiles",
		r.secured(withCaller(h.HandleList), httpx.LenientLimit, httpx.RequireRole(domain.RoleAdmin)))
	r.Mux.Handle("POST /v1/profile",
		r.secured(withCaller(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("PUT /v1/profile/{user_id}",
		r.secured(withCaller(h.HandleUpdate), httpx.ModerateLimit))
}

func (r *Router) registerArticles() {
	h := &ArticlesHandler{ArticleService: r.ArticleService}
	admin := httpx.RequireRole(domain.RoleAdmin)

	r.Mux.Handle("GET /v1/articulos", r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("GET /v1/articulo/{id}", r.secured(http.HandlerFunc(h.HandleGet), httpx.LenientLimit))
	r.Mux.Handle("POST /v1/articulo",
		r.secured(withCaller(h.HandleCreate), httpx.ModerateLimit, admin))
	r.Mux.Handle("PUT /v1/articulo/{id}",
		r.secured(withCaller(h.HandleUpdate), httpx.ModerateLimit, admin))
}

func (r *Router) registerIssues() {
	h := &IssuesHandler{IssueService: r.IssueService}

	// POST /v1/issues - moderate rate limit by user (fans out to the tracker)
	r.Mux.Handle("POST /v1/issues", r.secured(withCaller(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/issues/{type}/{id}", r.secured(withCaller(h.HandleList), httpx.LenientLimit))
}
