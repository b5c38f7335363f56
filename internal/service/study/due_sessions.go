package study

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-srs/internal/domain"
	"github.com/heartmarshall/myenglish-srs/pkg/ctxutil"
)

// GetDueSessions returns the owner's active sessions due at input.AsOf
// (default now), earliest due first with ties broken by id. Reading has no
// side effects, so repeated calls return the same set.
func (s *Service) GetDueSessions(ctx context.Context, input GetDueInput) ([]domain.ReviewSession, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.maxDueLimit); err != nil {
		return nil, err
	}

	asOf := s.now()
	if input.AsOf != nil {
		asOf = input.AsOf.UTC()
	}

	due, err := s.sessions.ListDue(ctx, ownerID, asOf, input.Limit)
	if err != nil {
		return nil, fmt.Errorf("list due sessions: %w", err)
	}
	return due, nil
}

// GetActiveSessions returns every active session of the owner.
func (s *Service) GetActiveSessions(ctx context.Context) ([]domain.ReviewSession, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	active, err := s.sessions.ListActive(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list active sessions: %w", err)
	}
	return active, nil
}

// GetSession returns one session of the owner, active or not.
func (s *Service) GetSession(ctx context.Context, id uuid.UUID) (*domain.ReviewSession, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if id == uuid.Nil {
		return nil, domain.NewValidationError("session_id", "required")
	}

	rs, err := s.sessions.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return rs, nil
}
