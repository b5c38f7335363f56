// Package settings persists per-owner study settings using PostgreSQL.
package settings

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/myenglish-srs/internal/adapter/postgres"
	"github.com/heartmarshall/myenglish-srs/internal/domain"
)

const table = "study_settings"

var columns = []string{"owner_id", "level0_days", "level1_days", "level2_days", "level3_days", "level4_days", "updated_at"}

// Repo provides study settings persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new settings repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	OwnerID   uuid.UUID `db:"owner_id"`
	Level0    int       `db:"level0_days"`
	Level1    int       `db:"level1_days"`
	Level2    int       `db:"level2_days"`
	Level3    int       `db:"level3_days"`
	Level4    int       `db:"level4_days"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Get returns the owner's settings or domain.ErrNotFound if none were saved.
func (r *Repo) Get(ctx context.Context, ownerID uuid.UUID) (*domain.StudySettings, error) {
	sql, args, err := postgres.Builder().Select(columns...).From(table).
		Where(squirrel.Eq{"owner_id": ownerID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("study settings %s: %w", ownerID, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "study settings", ownerID)
	}

	return &domain.StudySettings{
		OwnerID:   dst.OwnerID,
		Intervals: domain.IntervalTable{dst.Level0, dst.Level1, dst.Level2, dst.Level3, dst.Level4},
		UpdatedAt: dst.UpdatedAt.UTC(),
	}, nil
}

// Upsert creates or replaces the owner's settings.
func (r *Repo) Upsert(ctx context.Context, s domain.StudySettings) error {
	iv := s.Intervals
	sql, args, err := postgres.Builder().Insert(table).Columns(columns...).
		Values(s.OwnerID, iv[0], iv[1], iv[2], iv[3], iv[4], s.UpdatedAt).
		Suffix(`ON CONFLICT (owner_id) DO UPDATE SET
			level0_days = EXCLUDED.level0_days,
			level1_days = EXCLUDED.level1_days,
			level2_days = EXCLUDED.level2_days,
			level3_days = EXCLUDED.level3_days,
			level4_days = EXCLUDED.level4_days,
			updated_at  = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "study settings", s.OwnerID)
	}
	return nil
}
