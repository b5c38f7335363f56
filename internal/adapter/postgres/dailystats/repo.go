// Package dailystats keeps per-owner, per-day study counters in PostgreSQL.
package dailystats

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

const table = "daily_stats"

var columns = []string{
	"owner_id", "day", "reviews", "correct", "new_sessions",
	"promoted_0_1", "promoted_1_2", "promoted_2_3", "promoted_3_4", "lapses",
}

var insertColumns = append(append([]string{}, columns...), "updated_at")

// Repo provides daily counter persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new daily stats repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	OwnerID     uuid.UUID `db:"owner_id"`
	Day         time.Time `db:"day"`
	Reviews     int       `db:"reviews"`
	Correct     int       `db:"correct"`
	NewSessions int       `db:"new_sessions"`
	Promoted01  int       `db:"promoted_0_1"`
	Promoted12  int       `db:"promoted_1_2"`
	Promoted23  int       `db:"promoted_2_3"`
	Promoted34  int       `db:"promoted_3_4"`
	Lapses      int       `db:"lapses"`
}

func (r row) toDomain() domain.DailyStats {
	return domain.DailyStats{
		OwnerID:     r.OwnerID,
		Day:         domain.StartOfDay(r.Day),
		Reviews:     r.Reviews,
		Correct:     r.Correct,
		NewSessions: r.NewSessions,
		Promotions:  [domain.MaxMasteryLevel]int{r.Promoted01, r.Promoted12, r.Promoted23, r.Promoted34},
		Lapses:      r.Lapses,
	}
}

// Add increments the counters of (d.OwnerID, d.Day) by the values in d,
// creating the row on first use. Call it in the transaction that made the change.
func (r *Repo) Add(ctx context.Context, d domain.DailyStats) error {
	p := d.Promotions
	sql, args, err := postgres.Builder().Insert(table).Columns(insertColumns...).
		Values(d.OwnerID, domain.StartOfDay(d.Day), d.Reviews, d.Correct, d.NewSessions,
			p[0], p[1], p[2], p[3], d.Lapses, squirrel.Expr("now()")).
		Suffix(`ON CONFLICT (owner_id, day) DO UPDATE SET
			reviews      = daily_stats.reviews      + EXCLUDED.reviews,
			correct      = daily_stats.correct      + EXCLUDED.correct,
			new_sessions = daily_stats.new_sessions + EXCLUDED.new_sessions,
			promoted_0_1 = daily_stats.promoted_0_1 + EXCLUDED.promoted_0_1,
			promoted_1_2 = daily_stats.promoted_1_2 + EXCLUDED.promoted_1_2,
			promoted_2_3 = daily_stats.promoted_2_3 + EXCLUDED.promoted_2_3,
			promoted_3_4 = daily_stats.promoted_3_4 + EXCLUDED.promoted_3_4,
			lapses       = daily_stats.lapses       + EXCLUDED.lapses,
			updated_at   = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "daily stats of owner", d.OwnerID)
	}
	return nil
}

// ListRange returns the owner's stored days in [from, to], oldest first.
func (r *Repo) ListRange(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]domain.DailyStats, error) {
	sql, args, err := postgres.Builder().Select(columns...).From(table).
		Where(squirrel.Eq{"owner_id": ownerID}).
		Where(squirrel.GtOrEq{"day": domain.StartOfDay(from)}).
		Where(squirrel.LtOrEq{"day": domain.StartOfDay(to)}).
		OrderBy("day ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "daily stats of owner", ownerID)
	}

	out := make([]domain.DailyStats, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// DeleteByOwner removes every day of the owner.
func (r *Repo) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	sql, args, err := postgres.Builder().Delete(table).Where(squirrel.Eq{"owner_id": ownerID}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "daily stats of owner", ownerID)
	}
	return int(tag.RowsAffected()), nil
}
