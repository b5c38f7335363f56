package study

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-srs/internal/domain"
)

// HandleItemCreated reacts to an item being added to the owner's collection.
func (s *Service) HandleItemCreated(ctx context.Context, itemID uuid.UUID, modes []domain.ReviewMode) ([]domain.ReviewSession, error) {
	return s.CreateSessionsForItem(ctx, CreateSessionsInput{ItemID: itemID, Modes: modes})
}

// HandleItemDeleted reacts to an item being removed from the owner's collection.
func (s *Service) HandleItemDeleted(ctx context.Context, itemID uuid.UUID) (int, error) {
	return s.DeactivateSessionsForItem(ctx, itemID)
}
