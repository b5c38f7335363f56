package study

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/myenglish-srs/internal/domain"
	"github.com/heartmarshall/myenglish-srs/pkg/ctxutil"
)

// CreateSessionsForItem starts one level-0 session per mode for a new item.
// All sessions are due immediately. A mode that already has an active session
// for the item fails the whole batch with domain.ErrAlreadyExists.
func (s *Service) CreateSessionsForItem(ctx context.Context, input CreateSessionsInput) ([]domain.ReviewSession, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	modes := input.modes()

	created := make([]domain.ReviewSession, 0, len(modes))
	for _, m := range modes {
		created = append(created, domain.NewReviewSession(ownerID, input.ItemID, m, now))
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.sessions.Create(txCtx, created); err != nil {
			return fmt.Errorf("create sessions: %w", err)
		}
		for _, rs := range created {
			e := domain.NewActivityEvent(ownerID, domain.ActivitySessionCreated, now).ForSession(rs)
			if err := s.record(txCtx, e); err != nil {
				return err
			}
		}
		return s.count(txCtx, domain.NewSessionsStats(ownerID, now, len(created)))
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "review sessions created",
		slog.String("user_id", ownerID.String()),
		slog.String("item_id", input.ItemID.String()),
		slog.Int("count", len(created)),
	)

	return created, nil
}
