package study

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-srs/internal/domain"
	"github.com/heartmarshall/myenglish-srs/internal/service/study/mastery"
	"github.com/heartmarshall/myenglish-srs/pkg/ctxutil"
)

// ApplyOutcome records the learner's answer for a session and moves it to its
// next mastery state. The read-modify-write runs in one transaction holding a
// lock on the session row, so concurrent outcomes on the same session are
// applied one after another.
func (s *Service) ApplyOutcome(ctx context.Context, input ApplyOutcomeInput) (*domain.ReviewSession, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.maxIntervalDays); err != nil {
		return nil, err
	}

	now := s.now()
	correct := input.correct()

	var before, after domain.ReviewSession

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		rs, err := s.sessions.GetByIDForUpdate(txCtx, ownerID, input.SessionID)
		if err != nil {
			return fmt.Errorf("get session: %w", err)
		}
		if !rs.Active {
			return domain.NewValidationError("session_id", "session is inactive")
		}

		table, err := s.resolveIntervals(txCtx, ownerID, input)
		if err != nil {
			return err
		}

		tr, err := mastery.NextState(rs.MasteryLevel, correct, table, now)
		if err != nil {
			return fmt.Errorf("session %s: %w", rs.ID, err)
		}

		before = *rs
		after = *rs
		after.MasteryLevel = tr.Level
		after.NextDueAt = tr.NextDueAt
		after.LastReviewedAt = now
		after.ReviewCount++
		if correct {
			after.CorrectCount++
		}
		after.UpdatedAt = now

		if err := s.sessions.UpdateState(txCtx, after); err != nil {
			return fmt.Errorf("update session: %w", err)
		}

		e := domain.NewActivityEvent(ownerID, domain.ActivityOutcomeApplied, now).ForSession(after)
		e.Details = outcomeDetails(input, correct, before.MasteryLevel, after.MasteryLevel)
		if err := s.record(txCtx, e); err != nil {
			return err
		}
		return s.count(txCtx, domain.OutcomeStats(ownerID, now, correct, before.MasteryLevel, after.MasteryLevel))
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvariantViolation) {
			s.log.ErrorContext(ctx, "scheduling invariant violated",
				slog.String("user_id", ownerID.String()),
				slog.String("session_id", input.SessionID.String()),
				slog.String("error", err.Error()),
			)
		}
		return nil, err
	}

	s.log.InfoContext(ctx, "outcome applied",
		slog.String("user_id", ownerID.String()),
		slog.String("session_id", after.ID.String()),
		slog.Bool("correct", correct),
		slog.Int("old_level", before.MasteryLevel),
		slog.Int("new_level", after.MasteryLevel),
	)

	return &after, nil
}

// resolveIntervals prefers the table passed by the caller and otherwise reads
// the owner's settings fresh.
func (s *Service) resolveIntervals(ctx context.Context, ownerID uuid.UUID, input ApplyOutcomeInput) (domain.IntervalTable, error) {
	if input.Intervals != nil {
		return *input.Intervals, nil
	}
	return s.intervalsFor(ctx, ownerID)
}

func outcomeDetails(input ApplyOutcomeInput, correct bool, from, to int) string {
	d := "correct=" + strconv.FormatBool(correct) +
		" level=" + strconv.Itoa(from) + "->" + strconv.Itoa(to)
	if input.Grade != nil {
		d += " grade=" + input.Grade.String()
	}
	return d
}
