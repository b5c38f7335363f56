package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/myenglish-srs/internal/domain"
	"github.com/heartmarshall/myenglish-srs/internal/service/analytics"
)

type analyticsService interface {
	MasteryLevelCounts(ctx context.Context) (domain.MasteryLevelCounts, error)
	RecentActivity(ctx context.Context, input analytics.RecentActivityInput) ([]domain.ActivityEvent, error)
	Overview(ctx context.Context) (domain.StudyOverview, error)
	DailyStats(ctx context.Context, input analytics.DailyStatsInput) ([]domain.DailyStats, error)
}

// AnalyticsHandler serves read-only study statistics.
type AnalyticsHandler struct {
	svc analyticsService
	log *slog.Logger
}

// NewAnalyticsHandler creates an AnalyticsHandler.
func NewAnalyticsHandler(svc analyticsService, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc, log: logger.With("handler", "analytics")}
}

// MasteryLevels returns active session counts per level.
// GET /api/v1/analytics/mastery-levels
func (h *AnalyticsHandler) MasteryLevels(w http.ResponseWriter, r *http.Request) {
	counts, err := h.svc.MasteryLevelCounts(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toMasteryLevels(counts))
}

// RecentActivity returns the newest activity events.
// GET /api/v1/analytics/recent-activity?limit=10
func (h *AnalyticsHandler) RecentActivity(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	events, err := h.svc.RecentActivity(r.Context(), analytics.RecentActivityInput{Limit: limit})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]activityResponse, 0, len(events))
	for _, e := range events {
		out = append(out, toActivityResponse(e))
	}
	writeJSON(w, http.StatusOK, map[string]any{"events": out})
}

// Overview returns the study dashboard.
// GET /api/v1/analytics/overview
func (h *AnalyticsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	ov, err := h.svc.Overview(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toOverviewResponse(ov))
}

// DailyStats returns per-day counters, one entry per day in the range.
// GET /api/v1/analytics/daily-stats?from=2026-02-23&to=2026-03-01
func (h *AnalyticsHandler) DailyStats(w http.ResponseWriter, r *http.Request) {
	var input analytics.DailyStatsInput
	var err error

	if input.From, err = queryDate(r, "from"); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if input.To, err = queryDate(r, "to"); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	days, err := h.svc.DailyStats(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]dailyStatsResponse, 0, len(days))
	for _, d := range days {
		out = append(out, toDailyStatsResponse(d))
	}
	writeJSON(w, http.StatusOK, map[string]any{"days": out})
}
