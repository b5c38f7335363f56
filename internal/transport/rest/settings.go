package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/myenglish-srs/internal/domain"
	"github.com/heartmarshall/myenglish-srs/internal/service/settings"
)

type settingsService interface {
	GetIntervals(ctx context.Context) (domain.StudySettings, error)
	UpdateIntervals(ctx context.Context, input settings.UpdateIntervalsInput) (domain.StudySettings, error)
}

// SettingsHandler serves the interval table endpoints.
type SettingsHandler struct {
	svc settingsService
	log *slog.Logger
}

// NewSettingsHandler creates a SettingsHandler.
func NewSettingsHandler(svc settingsService, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{svc: svc, log: logger.With("handler", "settings")}
}

// GetIntervals returns the caller's interval table.
// GET /api/v1/settings/intervals
func (h *SettingsHandler) GetIntervals(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.GetIntervals(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toIntervalsResponse(st))
}

type updateIntervalsRequest struct {
	Days []int `json:"days"`
}

// UpdateIntervals replaces the caller's interval table.
// PUT /api/v1/settings/intervals
func (h *SettingsHandler) UpdateIntervals(w http.ResponseWriter, r *http.Request) {
	var req updateIntervalsRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	st, err := h.svc.UpdateIntervals(r.Context(), settings.UpdateIntervalsInput{Days: req.Days})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toIntervalsResponse(st))
}
