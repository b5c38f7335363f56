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

const sessionsTable = "review_sessions"

var sessionColumns = []string{
	"id", "owner_id", "item_id", "mode", "mastery_level",
	"last_reviewed_at", "next_due_at", "review_count", "correct_count",
	"active", "created_at", "updated_at",
}

// ReviewSessionRepo stores review sessions in SQLite.
type ReviewSessionRepo struct {
	db *sql.DB
}

// NewReviewSessionRepo creates a new ReviewSessionRepo.
func NewReviewSessionRepo(db *sql.DB) *ReviewSessionRepo {
	return &ReviewSessionRepo{db: db}
}

type sessionRow struct {
	ID             uuid.UUID `db:"id"`
	OwnerID        uuid.UUID `db:"owner_id"`
	ItemID         uuid.UUID `db:"item_id"`
	Mode           string    `db:"mode"`
	MasteryLevel   int       `db:"mastery_level"`
	LastReviewedAt int64     `db:"last_reviewed_at"`
	NextDueAt      int64     `db:"next_due_at"`
	ReviewCount    int       `db:"review_count"`
	CorrectCount   int       `db:"correct_count"`
	Active         bool      `db:"active"`
	CreatedAt      int64     `db:"created_at"`
	UpdatedAt      int64     `db:"updated_at"`
}

func (r sessionRow) toDomain() domain.ReviewSession {
	return domain.ReviewSession{
		ID:             r.ID,
		OwnerID:        r.OwnerID,
		ItemID:         r.ItemID,
		Mode:           domain.ReviewMode(r.Mode),
		MasteryLevel:   r.MasteryLevel,
		LastReviewedAt: fromMicros(r.LastReviewedAt),
		NextDueAt:      fromMicros(r.NextDueAt),
		ReviewCount:    r.ReviewCount,
		CorrectCount:   r.CorrectCount,
		Active:         r.Active,
		CreatedAt:      fromMicros(r.CreatedAt),
		UpdatedAt:      fromMicros(r.UpdatedAt),
	}
}

// Create inserts all sessions in one statement.
func (r *ReviewSessionRepo) Create(ctx context.Context, sessions []domain.ReviewSession) error {
	if len(sessions) == 0 {
		return nil
	}

	q := builder().Insert(sessionsTable).Columns(sessionColumns...)
	for _, s := range sessions {
		q = q.Values(
			s.ID, s.OwnerID, s.ItemID, string(s.Mode), s.MasteryLevel,
			toMicros(s.LastReviewedAt), toMicros(s.NextDueAt), s.ReviewCount, s.CorrectCount,
			s.Active, toMicros(s.CreatedAt), toMicros(s.UpdatedAt),
		)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return mapError(err, "review session for item", sessions[0].ItemID)
	}
	return nil
}

// UpdateState persists the scheduling fields of s.
func (r *ReviewSessionRepo) UpdateState(ctx context.Context, s domain.ReviewSession) error {
	query, args, err := builder().Update(sessionsTable).
		Set("mastery_level", s.MasteryLevel).
		Set("last_reviewed_at", toMicros(s.LastReviewedAt)).
		Set("next_due_at", toMicros(s.NextDueAt)).
		Set("review_count", s.ReviewCount).
		Set("correct_count", s.CorrectCount).
		Set("updated_at", toMicros(s.UpdatedAt)).
		Where(squirrel.Eq{"id": s.ID, "owner_id": s.OwnerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	res, err := QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return mapError(err, "review session", s.ID)
	}
	if n, err := res.RowsAffected(); err != nil {
		return mapError(err, "review session", s.ID)
	} else if n == 0 {
		return fmt.Errorf("review session %s: %w", s.ID, domain.ErrNotFound)
	}
	return nil
}

// DeactivateByItem marks every active session of the item inactive.
func (r *ReviewSessionRepo) DeactivateByItem(ctx context.Context, ownerID, itemID uuid.UUID, now time.Time) (int, error) {
	query, args, err := builder().Update(sessionsTable).
		Set("active", false).
		Set("updated_at", toMicros(now)).
		Where(squirrel.Eq{"owner_id": ownerID, "item_id": itemID, "active": true}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build update: %w", err)
	}
	return r.execCount(ctx, query, args, "review sessions for item", itemID)
}

// DeleteByOwner removes every session of the owner.
func (r *ReviewSessionRepo) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	query, args, err := builder().Delete(sessionsTable).Where(squirrel.Eq{"owner_id": ownerID}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete: %w", err)
	}
	return r.execCount(ctx, query, args, "review sessions of owner", ownerID)
}

func (r *ReviewSessionRepo) execCount(ctx context.Context, query string, args []any, entity string, id uuid.UUID) (int, error) {
	res, err := QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, mapError(err, entity, id)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, mapError(err, entity, id)
	}
	return int(n), nil
}

// GetByID returns a session by primary key filtered by owner.
func (r *ReviewSessionRepo) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.ReviewSession, error) {
	query, args, err := builder().Select(sessionColumns...).From(sessionsTable).
		Where(squirrel.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var dst sessionRow
	if err := sqlscan.Get(ctx, QuerierFromCtx(ctx, r.db), &dst, query, args...); err != nil {
		if sqlscan.NotFound(err) {
			return nil, fmt.Errorf("review session %s: %w", id, domain.ErrNotFound)
		}
		return nil, mapError(err, "review session", id)
	}

	s := dst.toDomain()
	return &s, nil
}

// GetByIDForUpdate reads the session inside the caller's transaction.
// SQLite has no row locks; the single connection already serialises writers.
func (r *ReviewSessionRepo) GetByIDForUpdate(ctx context.Context, ownerID, id uuid.UUID) (*domain.ReviewSession, error) {
	return r.GetByID(ctx, ownerID, id)
}

// ListDue returns active sessions with next_due_at <= asOf, earliest first.
func (r *ReviewSessionRepo) ListDue(ctx context.Context, ownerID uuid.UUID, asOf time.Time, limit int) ([]domain.ReviewSession, error) {
	q := builder().Select(sessionColumns...).From(sessionsTable).
		Where(squirrel.Eq{"owner_id": ownerID, "active": true}).
		Where(squirrel.LtOrEq{"next_due_at": toMicros(asOf)}).
		OrderBy("next_due_at ASC", "id ASC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	return r.list(ctx, q, ownerID)
}

// ListActive returns all active sessions of the owner in creation order.
func (r *ReviewSessionRepo) ListActive(ctx context.Context, ownerID uuid.UUID) ([]domain.ReviewSession, error) {
	q := builder().Select(sessionColumns...).From(sessionsTable).
		Where(squirrel.Eq{"owner_id": ownerID, "active": true}).
		OrderBy("created_at ASC", "id ASC")
	return r.list(ctx, q, ownerID)
}

func (r *ReviewSessionRepo) list(ctx context.Context, q squirrel.SelectBuilder, ownerID uuid.UUID) ([]domain.ReviewSession, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var rows []sessionRow
	if err := sqlscan.Select(ctx, QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, mapError(err, "review sessions of owner", ownerID)
	}

	out := make([]domain.ReviewSession, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

type levelCount struct {
	Level int `db:"mastery_level"`
	Count int `db:"cnt"`
}

// CountByLevel tallies active sessions per mastery level.
func (r *ReviewSessionRepo) CountByLevel(ctx context.Context, ownerID uuid.UUID) (domain.MasteryLevelCounts, error) {
	var counts domain.MasteryLevelCounts

	query, args, err := builder().Select("mastery_level", "count(*) AS cnt").From(sessionsTable).
		Where(squirrel.Eq{"owner_id": ownerID, "active": true}).
		GroupBy("mastery_level").
		ToSql()
	if err != nil {
		return counts, fmt.Errorf("build select: %w", err)
	}

	var rows []levelCount
	if err := sqlscan.Select(ctx, QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return counts, mapError(err, "mastery counts of owner", ownerID)
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
func (r *ReviewSessionRepo) CountActive(ctx context.Context, ownerID uuid.UUID) (int, error) {
	return r.count(ctx, squirrel.Eq{"owner_id": ownerID, "active": true}, ownerID)
}

// CountDue returns the number of active sessions due at asOf.
func (r *ReviewSessionRepo) CountDue(ctx context.Context, ownerID uuid.UUID, asOf time.Time) (int, error) {
	return r.count(ctx, squirrel.And{
		squirrel.Eq{"owner_id": ownerID, "active": true},
		squirrel.LtOrEq{"next_due_at": toMicros(asOf)},
	}, ownerID)
}

func (r *ReviewSessionRepo) count(ctx context.Context, where squirrel.Sqlizer, ownerID uuid.UUID) (int, error) {
	query, args, err := builder().Select("count(*)").From(sessionsTable).Where(where).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}

	var n int
	if err := QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, mapError(err, "review sessions of owner", ownerID)
	}
	return n, nil
}

// Totals sums review and correct counters over active sessions.
func (r *ReviewSessionRepo) Totals(ctx context.Context, ownerID uuid.UUID) (domain.ReviewTotals, error) {
	query, args, err := builder().
		Select("COALESCE(SUM(review_count), 0)", "COALESCE(SUM(correct_count), 0)").
		From(sessionsTable).
		Where(squirrel.Eq{"owner_id": ownerID, "active": true}).
		ToSql()
	if err != nil {
		return domain.ReviewTotals{}, fmt.Errorf("build totals: %w", err)
	}

	var totals domain.ReviewTotals
	if err := QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...).Scan(&totals.ReviewCount, &totals.CorrectCount); err != nil {
		return domain.ReviewTotals{}, mapError(err, "review totals of owner", ownerID)
	}
	return totals, nil
}
