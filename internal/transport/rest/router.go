package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/myenglish-srs/internal/config"
	"github.com/heartmarshall/myenglish-srs/internal/transport/middleware"
)

// RouterDeps bundles what the HTTP surface needs.
type RouterDeps struct {
	Study     *StudyHandler
	Analytics *AnalyticsHandler
	Settings  *SettingsHandler
	Health    *HealthHandler
	// GraphQL is mounted at POST /api/v1/graphql when set.
	GraphQL http.Handler

	Tokens      middleware.TokenValidator
	RateLimiter *middleware.RateLimiter
	CORS        config.CORSConfig
	Logger      *slog.Logger
}

// NewRouter wires routes and the middleware chain. Health endpoints skip auth
// and rate limiting; everything under /api/v1 requires a bearer token.
func NewRouter(d RouterDeps) http.Handler {
	api := http.NewServeMux()

	api.HandleFunc("POST /api/v1/items/{itemId}/sessions", d.Study.CreateForItem)
	api.HandleFunc("DELETE /api/v1/items/{itemId}/sessions", d.Study.DeactivateForItem)
	api.HandleFunc("GET /api/v1/sessions/due", d.Study.Due)
	api.HandleFunc("GET /api/v1/sessions/active", d.Study.Active)
	api.HandleFunc("GET /api/v1/sessions/{id}", d.Study.Get)
	api.HandleFunc("POST /api/v1/sessions/{id}/outcome", d.Study.Outcome)
	api.HandleFunc("POST /api/v1/reset", d.Study.Reset)
	api.Handle("POST /api/v1/admin/owners/{ownerId}/reset", middleware.RequireAdmin(http.HandlerFunc(d.Study.ResetOwner)))

	api.HandleFunc("GET /api/v1/analytics/mastery-levels", d.Analytics.MasteryLevels)
	api.HandleFunc("GET /api/v1/analytics/recent-activity", d.Analytics.RecentActivity)
	api.HandleFunc("GET /api/v1/analytics/overview", d.Analytics.Overview)
	api.HandleFunc("GET /api/v1/analytics/daily-stats", d.Analytics.DailyStats)

	if d.GraphQL != nil {
		api.Handle("POST /api/v1/graphql", d.GraphQL)
	}

	api.HandleFunc("GET /api/v1/settings/intervals", d.Settings.GetIntervals)
	api.HandleFunc("PUT /api/v1/settings/intervals", d.Settings.UpdateIntervals)

	var limit middleware.Middleware
	if d.RateLimiter != nil {
		limit = d.RateLimiter.Middleware
	}

	root := http.NewServeMux()
	root.HandleFunc("GET /live", d.Health.Live)
	root.HandleFunc("GET /ready", d.Health.Ready)
	root.HandleFunc("GET /health", d.Health.Health)
	root.Handle("/api/v1/", middleware.Chain(limit, middleware.Auth(d.Tokens, d.Logger))(api))

	return middleware.Chain(
		middleware.RequestID,
		middleware.Logger(d.Logger),
		middleware.Recovery(d.Logger),
		middleware.CORS(d.CORS),
	)(root)
}
