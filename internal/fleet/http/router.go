package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/agi-health/medfleet/internal/fleet/domain"
	"github.com/agi-health/medfleet/internal/fleet/service"
	"github.com/agi-health/medfleet/internal/fleet/store"
	"github.com/agi-health/medfleet/pkg/httpx"
	"github.com/agi-health/medfleet/pkg/jwtx"
	"github.com/agi-health/medfleet/pkg/slogx"

	_ "github.com/agi-health/medfleet/api/fleet" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     *jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	agentAPIKey  string

	store                store.Store
	AuthService          *service.AuthService
	OrganizationsService *service.OrganizationsService
	RolesService         *service.RolesService
	ModulesService       *service.ModulesService
	UsersService         *service.UsersService
	EquipmentService     *service.EquipmentService
	SubscriptionsService *service.SubscriptionsService
	ReportsService       *service.ReportsService

	// MetricsHandler serves /metrics when set.
	MetricsHandler http.Handler
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier *jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
	agentAPIKey string,
	requestTimeout time.Duration,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
		agentAPIKey:  agentAPIKey,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.RequestTimeout(requestTimeout),
	}

	return r
}

// Use appends middleware to the global chain, outermost last-added innermost.
func (r *Router) Use(mw ...httpx.Middleware) {
	r.middlewares = append(r.middlewares, mw...)
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerOrganizations()
	r.registerRoles()
	r.registerModules()
	r.registerUsers()
	r.registerEquipment()
	r.registerSubscriptions()
	r.registerWebhooks()
	r.registerReports()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			MedFleet API
//	@version		0.1.0
//	@description	Multi-tenant fleet management for connected medical equipment: organizations, users and
//	@description	role-based permissions, equipment enrollment and discovery, subscriptions and reporting.
//	@description
//	@description				Access tokens are EdDSA-signed JWTs verifiable via the JWKS endpoint. Monitoring
//	@description				agents authenticate with a shared X-API-Key instead of a bearer token.
//
//	@contact.name				AGI Health Platform Team
//	@contact.url				https://github.com/agi-health/medfleet
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	// Credential endpoints - strict rate limit by IP (brute force prevention)
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerOrganizations() {
	h := &OrganizationsHandler{OrganizationsService: r.OrganizationsService}

	manage := func(handler http.HandlerFunc) http.Handler {
		return httpx.Chain(handler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequirePermission(domain.PermManageOrganizations),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("POST /v1/organizations", manage(h.HandleCreate))
	r.Mux.Handle("GET /v1/organizations", manage(h.HandleList))
	r.Mux.Handle("GET /v1/organizations/{id}", manage(h.HandleGet))
	r.Mux.Handle("PUT /v1/organizations/{id}", manage(h.HandleUpdate))

	// Branding is open to any authenticated user so UIs can theme themselves.
	r.Mux.Handle("GET /v1/organizations/my/branding",
		httpx.Chain(http.HandlerFunc(h.HandleMyBranding),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerRoles() {
	h := &RolesHandler{RolesService: r.RolesService}

	// GET /roles is open to any authenticated user (role pickers need it)
	r.Mux.Handle("GET /v1/roles",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	manage := func(handler http.HandlerFunc) http.Handler {
		return httpx.Chain(handler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequirePermission(domain.PermManageRoles),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("POST /v1/roles", manage(h.HandleCreate))
	r.Mux.Handle("PUT /v1/roles/{id}", manage(h.HandleUpdate))
	r.Mux.Handle("DELETE /v1/roles/{id}", manage(h.HandleDelete))
}

func (r *Router) registerModules() {
	h := &ModulesHandler{ModulesService: r.ModulesService}

	// Catalogue listing is open to any authenticated user (enrollment forms
	// resolve module IDs from it).
	r.Mux.Handle("GET /v1/modules",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("POST /v1/modules",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequirePermission(domain.PermCreateModules),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UsersService: r.UsersService}

	manage := func(handler http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
		return httpx.Chain(handler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequirePermission(domain.PermManageUsers),
			httpx.RateLimitByUser(limit),
		)
	}

	r.Mux.Handle("GET /v1/users", manage(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/users/{id}", manage(h.HandleGet, httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/users/{id}/role", manage(h.HandleUpdateRole, httpx.ModerateLimit))
}

func (r *Router) registerEquipment() {
	h := &EquipmentHandler{
		EquipmentService: r.EquipmentService,
		ReportsService:   r.ReportsService,
	}

	enroll := func(handler http.HandlerFunc) http.Handler {
		return httpx.Chain(handler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequirePermission(domain.PermEnrollEquipment),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("POST /v1/equipment", enroll(h.HandleEnroll))
	r.Mux.Handle("PATCH /v1/equipment/{id}/approve", enroll(h.HandleApprove))
	r.Mux.Handle("PUT /v1/equipment/{id}", enroll(h.HandleUpdate))

	// Status toggles are a separate permission so technicians can flip units
	// without being able to enroll or re-key them.
	r.Mux.Handle("PATCH /v1/equipment/status/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleSetStatus),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequirePermission(domain.PermManageEquipmentStatus),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	view := func(handler http.HandlerFunc) http.Handler {
		return httpx.Chain(handler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequirePermission(
				domain.PermViewEquipmentStatus,
				domain.PermManageEquipmentStatus,
				domain.PermEnrollEquipment,
			),
			httpx.RateLimitByUser(httpx.LenientLimit),
		)
	}

	r.Mux.Handle("GET /v1/equipment", view(h.HandleList))
	r.Mux.Handle("GET /v1/equipment/{id}", view(h.HandleGet))

	// Agent discovery channel: shared API key, no user identity.
	r.Mux.Handle("POST /v1/equipment/discover",
		httpx.Chain(http.HandlerFunc(h.HandleDiscover),
			httpx.RequireAPIKey(r.agentAPIKey),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSubscriptions() {
	h := &SubscriptionsHandler{SubscriptionsService: r.SubscriptionsService}

	r.Mux.Handle("POST /v1/subscriptions",
		httpx.Chain(http.HandlerFunc(h.HandleUpsert),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequirePermission(domain.PermManageSubscriptions),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("GET /v1/subscriptions/organization/{org_id}",
		httpx.Chain(http.HandlerFunc(h.HandleGetByOrganization),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequirePermission(
				domain.PermManageSubscriptions,
				domain.PermViewOrganizationDashboard,
			),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerWebhooks() {
	h := &WebhooksHandler{EquipmentService: r.EquipmentService}

	// Agent event ingestion - lenient limit, fleets report in bursts.
	r.Mux.Handle("POST /v1/webhooks/events",
		httpx.Chain(http.HandlerFunc(h.HandleEvent),
			httpx.RequireAPIKey(r.agentAPIKey),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerReports() {
	h := &ReportsHandler{ReportsService: r.ReportsService}

	// Equipment report is open to any authenticated user; the service pins
	// non-global callers to their own organization.
	r.Mux.Handle("GET /v1/reports/equipment",
		httpx.Chain(http.HandlerFunc(h.HandleEquipment),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("GET /v1/reports/audit",
		httpx.Chain(http.HandlerFunc(h.HandleAudit),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequirePermission(domain.PermManageUsers, domain.PermManageOrganizations),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("GET /v1/reports/summary",
		httpx.Chain(http.HandlerFunc(h.HandleSummary),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequirePermission(domain.PermViewAllData),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /.well-known/jwks.json",
		httpx.Chain(JWKSHandler(r.keys),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	if r.MetricsHandler != nil {
		r.Mux.Handle("GET /metrics", r.MetricsHandler)
	}
}
