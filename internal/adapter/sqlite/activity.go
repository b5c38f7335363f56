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

const activityTable = "activity_events"

var activityColumns = []string{"id", "owner_id", "type", "item_id", "session_id", "mode", "details", "occurred_at"}

// ActivityRepo stores the capped activity feed in SQLite.
type ActivityRepo struct {
	db *sql.DB
}

// NewActivityRepo creates a new ActivityRepo.
func NewActivityRepo(db *sql.DB) *ActivityRepo {
	return &ActivityRepo{db: db}
}

type activityRow struct {
	ID         uuid.UUID  `db:"id"`
	OwnerID    uuid.UUID  `db:"owner_id"`
	Type       string     `db:"type"`
	ItemID     *uuid.UUID `db:"item_id"`
	SessionID  *uuid.UUID `db:"session_id"`
	Mode       *string    `db:"mode"`
	Details    string     `db:"details"`
	OccurredAt int64      `db:"occurred_at"`
}

// Append stores e and prunes the owner's feed down to the newest keep events.
func (r *ActivityRepo) Append(ctx context.Context, e domain.ActivityEvent, keep int) error {
	var mode *string
	if e.Mode != nil {
		m := string(*e.Mode)
		mode = &m
	}

	query, args, err := builder().Insert(activityTable).Columns(activityColumns...).
		Values(e.ID, e.OwnerID, string(e.Type), e.ItemID, e.SessionID, mode, e.Details, toMicros(e.OccurredAt)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	q := QuerierFromCtx(ctx, r.db)
	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return mapError(err, "activity event", e.ID)
	}

	if keep <= 0 {
		return nil
	}

	newestSQL, newestArgs, err := builder().Select("id").From(activityTable).
		Where(squirrel.Eq{"owner_id": e.OwnerID}).
		OrderBy("occurred_at DESC", "id DESC").
		Limit(uint64(keep)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build prune subquery: %w", err)
	}

	query, args, err = builder().Delete(activityTable).
		Where(squirrel.Eq{"owner_id": e.OwnerID}).
		Where(squirrel.Expr("id NOT IN ("+newestSQL+")", newestArgs...)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build prune: %w", err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return mapError(err, "activity of owner", e.OwnerID)
	}
	return nil
}

// ListRecent returns up to limit events of the owner, newest first.
func (r *ActivityRepo) ListRecent(ctx context.Context, ownerID uuid.UUID, limit int) ([]domain.ActivityEvent, error) {
	q := builder().Select(activityColumns...).From(activityTable).
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("occurred_at DESC", "id DESC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var rows []activityRow
	if err := sqlscan.Select(ctx, QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, mapError(err, "activity of owner", ownerID)
	}

	out := make([]domain.ActivityEvent, 0, len(rows))
	for _, row := range rows {
		e := domain.ActivityEvent{
			ID:         row.ID,
			OwnerID:    row.OwnerID,
			Type:       domain.ActivityType(row.Type),
			ItemID:     row.ItemID,
			SessionID:  row.SessionID,
			Details:    row.Details,
			OccurredAt: fromMicros(row.OccurredAt),
		}
		if row.Mode != nil {
			m := domain.ReviewMode(*row.Mode)
			e.Mode = &m
		}
		out = append(out, e)
	}
	return out, nil
}

// DeleteByOwner removes the owner's whole feed.
func (r *ActivityRepo) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	query, args, err := builder().Delete(activityTable).Where(squirrel.Eq{"owner_id": ownerID}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete: %w", err)
	}
	return r.execCount(ctx, query, args, ownerID)
}

// DeleteOlderThan removes events of all owners that occurred before cutoff.
func (r *ActivityRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	query, args, err := builder().Delete(activityTable).Where(squirrel.Lt{"occurred_at": toMicros(cutoff)}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete: %w", err)
	}
	return r.execCount(ctx, query, args, cutoff.Format(time.RFC3339))
}

func (r *ActivityRepo) execCount(ctx context.Context, query string, args []any, id any) (int, error) {
	res, err := QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, mapError(err, "activity", id)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, mapError(err, "activity", id)
	}
	return int(n), nil
}
