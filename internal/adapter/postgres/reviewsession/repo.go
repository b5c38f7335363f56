// Package reviewsession implements the ReviewSession repository using PostgreSQL.
// Statements are built with squirrel and scanned with scany.
package reviewsession

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

const table = "review_sessions"

var columns = []string{
	"id", "owner_id", "item_id", "mode", "mastery_level",
	"last_reviewed_at", "next_due_at", "review_count", "correct_count",
	"active", "created_at", "updated_at",
}

// Repo provides review session persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new review session repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// row mirrors one review_sessions record.
type row struct {
	ID             uuid.UUID `db:"id"`
	OwnerID        uuid.UUID `db:"owner_id"`
	ItemID         uuid.UUID `db:"item_id"`
	Mode           string    `db:"mode"`
	MasteryLevel   int       `db:"mastery_level"`
	LastReviewedAt time.Time `db:"last_reviewed_at"`
	NextDueAt      time.Time `db:"next_due_at"`
	ReviewCount    int       `db:"review_count"`
	CorrectCount   int       `db:"correct_count"`
	Active         bool      `db:"active"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.ReviewSession {
	return domain.ReviewSession{
		ID:             r.ID,
		OwnerID:        r.OwnerID,
		ItemID:         r.ItemID,
		Mode:           domain.ReviewMode(r.Mode),
		MasteryLevel:   r.MasteryLevel,
		LastReviewedAt: r.LastReviewedAt.UTC(),
		NextDueAt:      r.NextDueAt.UTC(),
		ReviewCount:    r.ReviewCount,
		CorrectCount:   r.CorrectCount,
		Active:         r.Active,
		CreatedAt:      r.CreatedAt.UTC(),
		UpdatedAt:      r.UpdatedAt.UTC(),
	}
}

func toDomainList(rows []row) []domain.ReviewSession {
	out := make([]domain.ReviewSession, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out
}

func selectSessions() squirrel.SelectBuilder {
	return postgres.Builder().Select(columns...).From(table)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts all sessions in one statement.
// A second active session for the same (owner, item, mode) yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, sessions []domain.ReviewSession) error {
	if len(sessions) == 0 {
		return nil
	}

	q := postgres.Builder().Insert(table).Columns(columns...)
	for _, s := range sessions {
		q = q.Values(
			s.ID, s.OwnerID, s.ItemID, string(s.Mode), s.MasteryLevel,
			s.LastReviewedAt, s.NextDueAt, s.ReviewCount, s.CorrectCount,
			s.Active, s.CreatedAt, s.UpdatedAt,
		)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "review session for item", sessions[0].ItemID)
	}
	return nil
}

// UpdateState persists the scheduling fields of s.
// Returns domain.ErrNotFound if the session does not exist for s.OwnerID.
func (r *Repo) UpdateState(ctx context.Context, s domain.ReviewSession) error {
	sql, args, err := postgres.Builder().Update(table).
		Set("mastery_level", s.MasteryLevel).
		Set("last_reviewed_at", s.LastReviewedAt).
		Set("next_due_at", s.NextDueAt).
		Set("review_count", s.ReviewCount).
		Set("correct_count", s.CorrectCount).
		Set("updated_at", s.UpdatedAt).
		Where(squirrel.Eq{"id": s.ID, "owner_id": s.OwnerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "review session", s.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("review session %s: %w", s.ID, domain.ErrNotFound)
	}
	return nil
}

// DeactivateByItem marks every active session of the item inactive and
// returns how many rows changed.
func (r *Repo) DeactivateByItem(ctx context.Context, ownerID, itemID uuid.UUID, now time.Time) (int, error) {
	sql, args, err := postgres.Builder().Update(table).
		Set("active", false).
		Set("updated_at", now).
		Where(squirrel.Eq{"owner_id": ownerID, "item_id": itemID, "active": true}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "review sessions for item", itemID)
	}
	return int(tag.RowsAffected()), nil
}

// DeleteByOwner removes every session of the owner, active or not.
func (r *Repo) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	sql, args, err := postgres.Builder().Delete(table).
		Where(squirrel.Eq{"owner_id": ownerID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "review sessions of owner", ownerID)
	}
	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a session by primary key filtered by owner.
// Returns domain.ErrNotFound if it does not exist or belongs to another owner.
func (r *Repo) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.ReviewSession, error) {
	return r.get(ctx, selectSessions().Where(squirrel.Eq{"id": id, "owner_id": ownerID}), id)
}

// GetByIDForUpdate is GetByID that also takes a row lock until the
// surrounding transaction ends. It must run inside TxManager.RunInTx.
func (r *Repo) GetByIDForUpdate(ctx context.Context, ownerID, id uuid.UUID) (*domain.ReviewSession, error) {
	return r.get(ctx, selectSessions().Where(squirrel.Eq{"id": id, "owner_id": ownerID}).Suffix("FOR UPDATE"), id)
}

func (r *Repo) get(ctx context.Context, q squirrel.SelectBuilder, id uuid.UUID) (*domain.ReviewSession, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("review session %s: %w", id, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "review session", id)
	}

	s := dst.toDomain()
	return &s, nil
}

// ListDue returns active sessions with next_due_at <= asOf, earliest first.
// limit <= 0 means no limit.
func (r *Repo) ListDue(ctx context.Context, ownerID uuid.UUID, asOf time.Time, limit int) ([]domain.ReviewSession, error) {
	q := selectSessions().
		Where(squirrel.Eq{"owner_id": ownerID, "active": true}).
		Where(squirrel.LtOrEq{"next_due_at": asOf}).
		OrderBy("next_due_at ASC", "id ASC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	return r.list(ctx, q, ownerID)
}

// ListActive returns all active sessions of the owner in creation order.
func (r *Repo) ListActive(ctx context.Context, ownerID uuid.UUID) ([]domain.ReviewSession, error) {
	q := selectSessions().
		Where(squirrel.Eq{"owner_id": ownerID, "active": true}).
		OrderBy("created_at ASC", "id ASC")
	return r.list(ctx, q, ownerID)
}

func (r *Repo) list(ctx context.Context, q squirrel.SelectBuilder, ownerID uuid.UUID) ([]domain.ReviewSession, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "review sessions of owner", ownerID)
	}
	return toDomainList(rows), nil
}

// ---------------------------------------------------------------------------
// Aggregates
// ---------------------------------------------------------------------------

type levelCount struct {
	Level int `db:"mastery_level"`
	Count int `db:"cnt"`
}

// CountByLevel tallies active sessions per mastery level.
func (r *Repo) CountByLevel(ctx context.Context, ownerID uuid.UUID) (domain.MasteryLevelCounts, error) {
	var counts domain.MasteryLevelCounts

	sql, args, err := postgres.Builder().
		Select("mastery_level", "count(*) AS cnt").
		From(table).
		Where(squirrel.Eq{"owner_id": ownerID, "active": true}).
		GroupBy("mastery_level").
		ToSql()
	if err != nil {
		return counts, fmt.Errorf("build select: %w", err)
	}

	var rows []levelCount
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return counts, postgres.MapError(err, "mastery counts of owner", ownerID)
	}

	for _, lc := range rows {
		if !domain.ValidMasteryLevel(lc.Level) {
			return counts, fmt.Errorf("mastery level %d: %w", lc.Level, domain.ErrInvariantViolation)
		}
		counts[lc.Level] = lc.Count
	}
	return counts, nil
}

// CountActive returns the number of active sessions.
func (r *Repo) CountActive(ctx context.Context, ownerID uuid.UUID) (int, error) {
	return r.count(ctx, squirrel.Eq{"owner_id": ownerID, "active": true}, ownerID)
}

// CountDue returns the number of active sessions due at asOf.
func (r *Repo) CountDue(ctx context.Context, ownerID uuid.UUID, asOf time.Time) (int, error) {
	return r.count(ctx, squirrel.And{
		squirrel.Eq{"owner_id": ownerID, "active": true},
		squirrel.LtOrEq{"next_due_at": asOf},
	}, ownerID)
}

func (r *Repo) count(ctx context.Context, where squirrel.Sqlizer, ownerID uuid.UUID) (int, error) {
	sql, args, err := postgres.Builder().Select("count(*)").From(table).Where(where).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "review sessions of owner", ownerID)
	}
	return n, nil
}

// Totals sums review and correct counters over active sessions.
func (r *Repo) Totals(ctx context.Context, ownerID uuid.UUID) (domain.ReviewTotals, error) {
	sql, args, err := postgres.Builder().
		Select("COALESCE(SUM(review_count), 0)", "COALESCE(SUM(correct_count), 0)").
		From(table).
		Where(squirrel.Eq{"owner_id": ownerID, "active": true}).
		ToSql()
	if err != nil {
		return domain.ReviewTotals{}, fmt.Errorf("build totals: %w", err)
	}

	var reviews, correct int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&reviews, &correct); err != nil {
		return domain.ReviewTotals{}, postgres.MapError(err, "review totals of owner", ownerID)
	}
	return domain.ReviewTotals{ReviewCount: int(reviews), CorrectCount: int(correct)}, nil
}
