package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/viovio/internal/config"
	"github.com/heartmarshall/viovio/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// RouterDeps holds everything NewRouter mounts.
type RouterDeps struct {
	Logger    *slog.Logger
	Auth      *AuthHandler
	Lookup    *LookupHandler
	History   *HistoryHandler
	Health    *HealthHandler
	Validator tokenValidator
	CORS      config.CORSConfig

	// Limiter applies per-IP budgets; nil disables rate limiting.
	Limiter         *middleware.RateLimiter
	LookupRateLimit int
	AuthRateLimit   int

	// Metrics and Gatherer are optional; /metrics is mounted when Gatherer is set.
	Metrics  *middleware.HTTPMetrics
	Gatherer prometheus.Gatherer
}

// budget is a per-IP request allowance shared by the routes of one scope.
type budget struct {
	scope     string
	perMinute int
}

// NewRouter builds the HTTP handler of the API.
func NewRouter(d RouterDeps) http.Handler {
	mux := http.NewServeMux()

	route := func(pattern, name string, b budget, h http.HandlerFunc, extra ...middleware.Middleware) {
		var mws []middleware.Middleware
		if d.Metrics != nil {
			mws = append(mws, d.Metrics.Instrument(name))
		}
		if d.Limiter != nil && b.perMinute > 0 {
			mws = append(mws, d.Limiter.Limit(b.scope, b.perMinute))
		}
		mws = append(mws, extra...)
		mux.Handle(pattern, middleware.Chain(mws...)(h))
	}
	requireUser := middleware.Middleware(middleware.RequireUser)
	authBudget := budget{scope: "auth", perMinute: d.AuthRateLimit}
	lookupBudget := budget{scope: "lookup", perMinute: d.LookupRateLimit}
	unlimited := budget{}

	route("POST /auth/signup", "auth_signup", authBudget, d.Auth.Signup)
	route("POST /auth/login", "auth_login", authBudget, d.Auth.Login)
	route("POST /auth/confirm", "auth_confirm", authBudget, d.Auth.Confirm)
	route("GET /auth/confirm", "auth_confirm", authBudget, d.Auth.Confirm)
	route("POST /auth/refresh", "auth_refresh", authBudget, d.Auth.Refresh)
	route("POST /auth/logout", "auth_logout", unlimited, d.Auth.Logout, requireUser)
	route("GET /auth/user", "auth_user", unlimited, d.Auth.GetUser, requireUser)
	route("PATCH /auth/user", "auth_user", unlimited, d.Auth.UpdateUser, requireUser)

	route("POST /api/lookup", "lookup", lookupBudget, d.Lookup.Lookup)
	route("GET /api/history", "history", unlimited, d.History.List)
	route("POST /api/history", "history", unlimited, d.History.Save)
	route("DELETE /api/history/{id}", "history", unlimited, d.History.Delete)

	mux.HandleFunc("GET /live", d.Health.Live)
	mux.HandleFunc("GET /ready", d.Health.Ready)
	mux.HandleFunc("GET /health", d.Health.Health)
	if d.Gatherer != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))
	}

	return middleware.Chain(
		middleware.RequestID,
		middleware.Logger(d.Logger),
		middleware.Recovery(d.Logger),
		middleware.CORS(d.CORS),
		middleware.Auth(d.Validator),
	)(mux)
}
