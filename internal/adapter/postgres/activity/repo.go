// Package activity implements the capped per-owner activity feed using PostgreSQL.
package activity

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

const table = "activity_events"

var columns = []string{"id", "owner_id", "type", "item_id", "session_id", "mode", "details", "occurred_at"}

// Repo provides activity event persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new activity repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID         uuid.UUID  `db:"id"`
	OwnerID    uuid.UUID  `db:"owner_id"`
	Type       string     `db:"type"`
	ItemID     *uuid.UUID `db:"item_id"`
	SessionID  *uuid.UUID `db:"session_id"`
	Mode       *string    `db:"mode"`
	Details    string     `db:"details"`
	OccurredAt time.Time  `db:"occurred_at"`
}

func (r row) toDomain() domain.ActivityEvent {
	e := domain.ActivityEvent{
		ID:         r.ID,
		OwnerID:    r.OwnerID,
		Type:       domain.ActivityType(r.Type),
		ItemID:     r.ItemID,
		SessionID:  r.SessionID,
		Details:    r.Details,
		OccurredAt: r.OccurredAt.UTC(),
	}
	if r.Mode != nil {
		m := domain.ReviewMode(*r.Mode)
		e.Mode = &m
	}
	return e
}

// Append stores e and prunes the owner's feed down to the newest keep events.
// Call it inside a transaction so insert and prune commit together.
func (r *Repo) Append(ctx context.Context, e domain.ActivityEvent, keep int) error {
	var mode *string
	if e.Mode != nil {
		m := string(*e.Mode)
		mode = &m
	}

	sql, args, err := postgres.Builder().Insert(table).Columns(columns...).
		Values(e.ID, e.OwnerID, string(e.Type), e.ItemID, e.SessionID, mode, e.Details, e.OccurredAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "activity event", e.ID)
	}

	if keep <= 0 {
		return nil
	}

	// Rendered with "?" placeholders; the outer builder numbers them.
	newest := squirrel.Select("id").From(table).
		Where(squirrel.Eq{"owner_id": e.OwnerID}).
		OrderBy("occurred_at DESC", "id DESC").
		Limit(uint64(keep))

	newestSQL, newestArgs, err := newest.ToSql()
	if err != nil {
		return fmt.Errorf("build prune subquery: %w", err)
	}

	sql, args, err = postgres.Builder().Delete(table).
		Where(squirrel.Eq{"owner_id": e.OwnerID}).
		Where(squirrel.Expr("id NOT IN ("+newestSQL+")", newestArgs...)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build prune: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "activity of owner", e.OwnerID)
	}
	return nil
}

// ListRecent returns up to limit events of the owner, newest first.
func (r *Repo) ListRecent(ctx context.Context, ownerID uuid.UUID, limit int) ([]domain.ActivityEvent, error) {
	q := postgres.Builder().Select(columns...).From(table).
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("occurred_at DESC", "id DESC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "activity of owner", ownerID)
	}

	out := make([]domain.ActivityEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// DeleteByOwner removes the owner's whole feed.
func (r *Repo) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	sql, args, err := postgres.Builder().Delete(table).Where(squirrel.Eq{"owner_id": ownerID}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "activity of owner", ownerID)
	}
	return int(tag.RowsAffected()), nil
}

// DeleteOlderThan removes events of all owners that occurred before cutoff.
func (r *Repo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	sql, args, err := postgres.Builder().Delete(table).Where(squirrel.Lt{"occurred_at": cutoff}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "activity before", cutoff.Format(time.RFC3339))
	}
	return int(tag.RowsAffected()), nil
}
