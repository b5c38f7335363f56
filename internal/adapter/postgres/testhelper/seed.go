package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/myenglish-srs/internal/domain"
)

// Now returns the current time in the precision PostgreSQL stores.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedSession inserts an active level-0 session for a fresh item of ownerID.
func SeedSession(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, mode domain.ReviewMode) domain.ReviewSession {
	t.Helper()

	s := domain.NewReviewSession(ownerID, uuid.New(), mode, Now())

	_, err := pool.Exec(context.Background(),
		`INSERT INTO review_sessions
		   (id, owner_id, item_id, mode, mastery_level, last_reviewed_at, next_due_at,
		    review_count, correct_count, active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		s.ID, s.OwnerID, s.ItemID, string(s.Mode), s.MasteryLevel, s.LastReviewedAt, s.NextDueAt,
		s.ReviewCount, s.CorrectCount, s.Active, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSession insert: %v", err)
	}

	return s
}
