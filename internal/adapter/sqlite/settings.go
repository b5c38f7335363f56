package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-srs/internal/domain"
)

const settingsTable = "study_settings"

var settingsColumns = []string{"owner_id", "level0_days", "level1_days", "level2_days", "level3_days", "level4_days", "updated_at"}

// SettingsRepo stores per-owner study settings in SQLite.
type SettingsRepo struct {
	db *sql.DB
}

// NewSettingsRepo creates a new SettingsRepo.
func NewSettingsRepo(db *sql.DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

type settingsRow struct {
	OwnerID   uuid.UUID `db:"owner_id"`
	Level0    int       `db:"level0_days"`
	Level1    int       `db:"level1_days"`
	Level2    int       `db:"level2_days"`
	Level3    int       `db:"level3_days"`
	Level4    int       `db:"level4_days"`
	UpdatedAt int64     `db:"updated_at"`
}

// Get returns the owner's settings or domain.ErrNotFound if none were saved.
func (r *SettingsRepo) Get(ctx context.Context, ownerID uuid.UUID) (*domain.StudySettings, error) {
	query, args, err := builder().Select(settingsColumns...).From(settingsTable).
		Where(squirrel.Eq{"owner_id": ownerID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var dst settingsRow
	if err := sqlscan.Get(ctx, QuerierFromCtx(ctx, r.db), &dst, query, args...); err != nil {
		if sqlscan.NotFound(err) {
			return nil, fmt.Errorf("study settings %s: %w", ownerID, domain.ErrNotFound)
		}
		return nil, mapError(err, "study settings", ownerID)
	}

	return &domain.StudySettings{
		OwnerID:   dst.OwnerID,
		Intervals: domain.IntervalTable{dst.Level0, dst.Level1, dst.Level2, dst.Level3, dst.Level4},
		UpdatedAt: fromMicros(dst.UpdatedAt),
	}, nil
}

// Upsert creates or replaces the owner's settings.
func (r *SettingsRepo) Upsert(ctx context.Context, s domain.StudySettings) error {
	iv := s.Intervals
	query, args, err := builder().Insert(settingsTable).Columns(settingsColumns...).
		Values(s.OwnerID, iv[0], iv[1], iv[2], iv[3], iv[4], toMicros(s.UpdatedAt)).
		Suffix(`ON CONFLICT (owner_id) DO UPDATE SET
			level0_days = excluded.level0_days,
			level1_days = excluded.level1_days,
			level2_days = excluded.level2_days,
			level3_days = excluded.level3_days,
			level4_days = excluded.level4_days,
			updated_at  = excluded.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	if _, err := QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return mapError(err, "study settings", s.OwnerID)
	}
	return nil
}
