package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-srs/internal/domain"
)

const (
	dailyStatsTable = "daily_stats"
	dayLayout       = time.DateOnly
)

var dailyStatsColumns = []string{
	"owner_id", "day", "reviews", "correct", "new_sessions",
	"promoted_0_1", "promoted_1_2", "promoted_2_3", "promoted_3_4", "lapses",
}

// DailyStatsRepo stores per-day study counters in SQLite. Days are kept as
// YYYY-MM-DD text so range filters compare lexically.
type DailyStatsRepo struct {
	db *sql.DB
}

// NewDailyStatsRepo creates a new DailyStatsRepo.
func NewDailyStatsRepo(db *sql.DB) *DailyStatsRepo {
	return &DailyStatsRepo{db: db}
}

type dailyStatsRow struct {
	OwnerID     uuid.UUID `db:"owner_id"`
	Day         string    `db:"day"`
	Reviews     int       `db:"reviews"`
	Correct     int       `db:"correct"`
	NewSessions int       `db:"new_sessions"`
	Promoted01  int       `db:"promoted_0_1"`
	Promoted12  int       `db:"promoted_1_2"`
	Promoted23  int       `db:"promoted_2_3"`
	Promoted34  int       `db:"promoted_3_4"`
	Lapses      int       `db:"lapses"`
}

func formatDay(t time.Time) string {
	return t.UTC().Format(dayLayout)
}

// Add increments the counters of (d.OwnerID, d.Day) by the values in d.
func (r *DailyStatsRepo) Add(ctx context.Context, d domain.DailyStats) error {
	p := d.Promotions
	query, args, err := builder().Insert(dailyStatsTable).Columns(append(append([]string{}, dailyStatsColumns...), "updated_at")...).
		Values(d.OwnerID, formatDay(d.Day), d.Reviews, d.Correct, d.NewSessions,
			p[0], p[1], p[2], p[3], d.Lapses, toMicros(time.Now())).
		Suffix(`ON CONFLICT (owner_id, day) DO UPDATE SET
			reviews      = daily_stats.reviews      + excluded.reviews,
			correct      = daily_stats.correct      + excluded.correct,
			new_sessions = daily_stats.new_sessions + excluded.new_sessions,
			promoted_0_1 = daily_stats.promoted_0_1 + excluded.promoted_0_1,
			promoted_1_2 = daily_stats.promoted_1_2 + excluded.promoted_1_2,
			promoted_2_3 = daily_stats.promoted_2_3 + excluded.promoted_2_3,
			promoted_3_4 = daily_stats.promoted_3_4 + excluded.promoted_3_4,
			lapses       = daily_stats.lapses       + excluded.lapses,
			updated_at   = excluded.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	if _, err := QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return mapError(err, "daily stats of owner", d.OwnerID)
	}
	return nil
}

// ListRange returns the owner's stored days in [from, to], oldest first.
func (r *DailyStatsRepo) ListRange(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]domain.DailyStats, error) {
	query, args, err := builder().Select(dailyStatsColumns...).From(dailyStatsTable).
		Where(squirrel.Eq{"owner_id": ownerID}).
		Where(squirrel.GtOrEq{"day": formatDay(from)}).
		Where(squirrel.LtOrEq{"day": formatDay(to)}).
		OrderBy("day ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var rows []dailyStatsRow
	if err := sqlscan.Select(ctx, QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, mapError(err, "daily stats of owner", ownerID)
	}

	out := make([]domain.DailyStats, 0, len(rows))
	for _, row := range rows {
		day, err := time.Parse(dayLayout, row.Day)
		if err != nil {
			return nil, fmt.Errorf("daily stats day %q: %w", row.Day, domain.ErrStorage)
		}
		out = append(out, domain.DailyStats{
			OwnerID:     row.OwnerID,
			Day:         day,
			Reviews:     row.Reviews,
			Correct:     row.Correct,
			NewSessions: row.NewSessions,
			Promotions:  [domain.MaxMasteryLevel]int{row.Promoted01, row.Promoted12, row.Promoted23, row.Promoted34},
			Lapses:      row.Lapses,
		})
	}
	return out, nil
}

// DeleteByOwner removes every day of the owner.
func (r *DailyStatsRepo) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	query, args, err := builder().Delete(dailyStatsTable).Where(squirrel.Eq{"owner_id": ownerID}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete: %w", err)
	}

	res, err := QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, mapError(err, "daily stats of owner", ownerID)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, mapError(err, "daily stats of owner", ownerID)
	}
	return int(n), nil
}
