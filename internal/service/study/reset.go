package study

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-srs/internal/domain"
	"github.com/heartmarshall/myenglish-srs/pkg/ctxutil"
)

// ResetResult reports what a reset removed.
type ResetResult struct {
	SessionsDeleted int
	EventsDeleted   int
	DaysDeleted     int
}

// ResetAll deletes the calling owner's sessions, activity events and daily
// counters, and leaves a single PROGRESS_RESET event behind.
func (s *Service) ResetAll(ctx context.Context) (ResetResult, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return ResetResult{}, domain.ErrUnauthorized
	}
	return s.reset(ctx, ownerID, ownerID)
}

// ResetOwner is the administrative variant of ResetAll for another owner.
func (s *Service) ResetOwner(ctx context.Context, ownerID uuid.UUID) (ResetResult, error) {
	callerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return ResetResult{}, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return ResetResult{}, domain.ErrForbidden
	}
	if ownerID == uuid.Nil {
		return ResetResult{}, domain.NewValidationError("owner_id", "required")
	}
	return s.reset(ctx, callerID, ownerID)
}

func (s *Service) reset(ctx context.Context, callerID, ownerID uuid.UUID) (ResetResult, error) {
	now := s.now()
	var res ResetResult

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		res.SessionsDeleted, err = s.sessions.DeleteByOwner(txCtx, ownerID)
		if err != nil {
			return fmt.Errorf("delete sessions: %w", err)
		}
		res.EventsDeleted, err = s.activity.DeleteByOwner(txCtx, ownerID)
		if err != nil {
			return fmt.Errorf("delete activity: %w", err)
		}
		res.DaysDeleted, err = s.stats.DeleteByOwner(txCtx, ownerID)
		if err != nil {
			return fmt.Errorf("delete daily stats: %w", err)
		}

		e := domain.NewActivityEvent(ownerID, domain.ActivityProgressReset, now)
		e.Details = fmt.Sprintf("sessions=%d", res.SessionsDeleted)
		if callerID != ownerID {
			e.Details += " by=" + callerID.String()
		}
		return s.record(txCtx, e)
	})
	if err != nil {
		return ResetResult{}, err
	}

	s.log.InfoContext(ctx, "progress reset",
		slog.String("user_id", ownerID.String()),
		slog.String("caller_id", callerID.String()),
		slog.Int("sessions_deleted", res.SessionsDeleted),
		slog.Int("events_deleted", res.EventsDeleted),
		slog.Int("days_deleted", res.DaysDeleted),
	)

	return res, nil
}
