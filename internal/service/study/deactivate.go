package study

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-srs/internal/domain"
	"github.com/heartmarshall/myenglish-srs/pkg/ctxutil"
)

// DeactivateSessionsForItem marks every active session of the item inactive
// and returns how many were affected. Inactive sessions keep their history
// but drop out of due selection and analytics.
func (s *Service) DeactivateSessionsForItem(ctx context.Context, itemID uuid.UUID) (int, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	if itemID == uuid.Nil {
		return 0, domain.NewValidationError("item_id", "required")
	}

	now := s.now()
	var n int

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		n, err = s.sessions.DeactivateByItem(txCtx, ownerID, itemID, now)
		if err != nil {
			return fmt.Errorf("deactivate sessions: %w", err)
		}
		if n == 0 {
			return nil
		}

		e := domain.NewActivityEvent(ownerID, domain.ActivityItemDeactivated, now)
		e.ItemID = &itemID
		e.Details = "sessions=" + strconv.Itoa(n)
		return s.record(txCtx, e)
	})
	if err != nil {
		return 0, err
	}

	if n > 0 {
		s.log.InfoContext(ctx, "item sessions deactivated",
			slog.String("user_id", ownerID.String()),
			slog.String("item_id", itemID.String()),
			slog.Int("count", n),
		)
	}

	return n, nil
}
