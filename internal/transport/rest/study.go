package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-srs/internal/domain"
	"github.com/heartmarshall/myenglish-srs/internal/service/study"
)

type studyService interface {
	HandleItemCreated(ctx context.Context, itemID uuid.UUID, modes []domain.ReviewMode) ([]domain.ReviewSession, error)
	HandleItemDeleted(ctx context.Context, itemID uuid.UUID) (int, error)
	GetDueSessions(ctx context.Context, input study.GetDueInput) ([]domain.ReviewSession, error)
	GetActiveSessions(ctx context.Context) ([]domain.ReviewSession, error)
	GetSession(ctx context.Context, id uuid.UUID) (*domain.ReviewSession, error)
	ApplyOutcome(ctx context.Context, input study.ApplyOutcomeInput) (*domain.ReviewSession, error)
	ResetAll(ctx context.Context) (study.ResetResult, error)
	ResetOwner(ctx context.Context, ownerID uuid.UUID) (study.ResetResult, error)
}

// StudyHandler serves session lifecycle and review endpoints.
type StudyHandler struct {
	svc studyService
	log *slog.Logger
}

// NewStudyHandler creates a StudyHandler.
func NewStudyHandler(svc studyService, logger *slog.Logger) *StudyHandler {
	return &StudyHandler{svc: svc, log: logger.With("handler", "study")}
}

type createSessionsRequest struct {
	Modes []string `json:"modes"`
}

// CreateForItem starts sessions for a newly added item.
// POST /api/v1/items/{itemId}/sessions
func (h *StudyHandler) CreateForItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathUUID(r, "itemId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req createSessionsRequest
	if err := decodeJSON(w, r, &req, true); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var modes []domain.ReviewMode
	for _, m := range req.Modes {
		modes = append(modes, domain.ReviewMode(m))
	}

	created, err := h.svc.HandleItemCreated(r.Context(), itemID, modes)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, sessionListResponse{Sessions: toSessionList(created), Count: len(created)})
}

// DeactivateForItem retires the sessions of a deleted item.
// DELETE /api/v1/items/{itemId}/sessions
func (h *StudyHandler) DeactivateForItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathUUID(r, "itemId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	n, err := h.svc.HandleItemDeleted(r.Context(), itemID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"deactivated": n})
}

// Due lists sessions due for review.
// GET /api/v1/sessions/due?asOf=2026-01-02T15:04:05Z&limit=20
func (h *StudyHandler) Due(w http.ResponseWriter, r *http.Request) {
	var input study.GetDueInput

	q := r.URL.Query()
	if v := q.Get("asOf"); v != "" {
		asOf, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("asOf", "must be an RFC 3339 timestamp"))
			return
		}
		input.AsOf = &asOf
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	input.Limit = limit

	due, err := h.svc.GetDueSessions(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionListResponse{Sessions: toSessionList(due), Count: len(due)})
}

// Active lists every active session.
// GET /api/v1/sessions/active
func (h *StudyHandler) Active(w http.ResponseWriter, r *http.Request) {
	active, err := h.svc.GetActiveSessions(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionListResponse{Sessions: toSessionList(active), Count: len(active)})
}

// Get returns one session.
// GET /api/v1/sessions/{id}
func (h *StudyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	s, err := h.svc.GetSession(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(*s))
}

type outcomeRequest struct {
	Correct   *bool   `json:"correct"`
	Grade     *string `json:"grade"`
	Intervals []int   `json:"intervals"`
}

// Outcome records an answer for a session.
// POST /api/v1/sessions/{id}/outcome
func (h *StudyHandler) Outcome(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req outcomeRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	input := study.ApplyOutcomeInput{SessionID: id, Correct: req.Correct}
	if req.Grade != nil {
		g := domain.ReviewGrade(*req.Grade)
		input.Grade = &g
	}
	if req.Intervals != nil {
		table, err := domain.NewIntervalTable(req.Intervals)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		input.Intervals = &table
	}

	s, err := h.svc.ApplyOutcome(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(*s))
}

// Reset wipes the caller's progress.
// POST /api/v1/reset
func (h *StudyHandler) Reset(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.ResetAll(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toResetResponse(res))
}

// ResetOwner wipes another owner's progress. Admin only.
// POST /api/v1/admin/owners/{ownerId}/reset
func (h *StudyHandler) ResetOwner(w http.ResponseWriter, r *http.Request) {
	ownerID, err := pathUUID(r, "ownerId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.ResetOwner(r.Context(), ownerID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toResetResponse(res))
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a UUID")
	}
	return id, nil
}

func queryDate(r *http.Request, name string) (*time.Time, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, v)
	if err != nil {
		return nil, domain.NewValidationError(name, "must be a date in YYYY-MM-DD form")
	}
	return &t, nil
}

func queryInt(r *http.Request, name string) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer")
	}
	return n, nil
}
