package study

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-srs/internal/config"
	"github.com/heartmarshall/myenglish-srs/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type sessionRepo interface {
	Create(ctx context.Context, sessions []domain.ReviewSession) error
	UpdateState(ctx context.Context, s domain.ReviewSession) error
	DeactivateByItem(ctx context.Context, ownerID, itemID uuid.UUID, now time.Time) (int, error)
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) (int, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.ReviewSession, error)
	GetByIDForUpdate(ctx context.Context, ownerID, id uuid.UUID) (*domain.ReviewSession, error)
	ListDue(ctx context.Context, ownerID uuid.UUID, asOf time.Time, limit int) ([]domain.ReviewSession, error)
	ListActive(ctx context.Context, ownerID uuid.UUID) ([]domain.ReviewSession, error)
}

type activityRepo interface {
	Append(ctx context.Context, e domain.ActivityEvent, keep int) error
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) (int, error)
}

type dailyStatsRepo interface {
	Add(ctx context.Context, d domain.DailyStats) error
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) (int, error)
}

type settingsRepo interface {
	Get(ctx context.Context, ownerID uuid.UUID) (*domain.StudySettings, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service owns the lifecycle of review sessions: creation, due selection,
// outcome application and resets.
type Service struct {
	sessions sessionRepo
	activity activityRepo
	stats    dailyStatsRepo
	settings settingsRepo
	tx       txManager
	log      *slog.Logger

	defaultIntervals domain.IntervalTable
	activityCap      int
	maxDueLimit      int
	maxIntervalDays  int

	now func() time.Time
}

// NewService creates a new study service.
func NewService(
	log *slog.Logger,
	sessions sessionRepo,
	activity activityRepo,
	stats dailyStatsRepo,
	settings settingsRepo,
	tx txManager,
	cfg config.SRSConfig,
) *Service {
	return &Service{
		sessions:         sessions,
		activity:         activity,
		stats:            stats,
		settings:         settings,
		tx:               tx,
		log:              log.With("service", "study"),
		defaultIntervals: domain.IntervalTable(cfg.Intervals),
		activityCap:      cfg.ActivityCap,
		maxDueLimit:      cfg.MaxDueLimit,
		maxIntervalDays:  cfg.MaxIntervalDays,
		now:              clock,
	}
}

// clock returns the current instant in UTC at the precision both storage
// backends keep, so a persisted timestamp equals the one returned to callers.
func clock() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// intervalsFor returns the owner's saved table or the configured default.
func (s *Service) intervalsFor(ctx context.Context, ownerID uuid.UUID) (domain.IntervalTable, error) {
	st, err := s.settings.Get(ctx, ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return s.defaultIntervals, nil
		}
		return domain.IntervalTable{}, fmt.Errorf("get settings: %w", err)
	}
	if err := st.Intervals.ValidateMax(s.maxIntervalDays); err != nil {
		return domain.IntervalTable{}, fmt.Errorf("stored intervals of owner %s: %w", ownerID, domain.ErrInvariantViolation)
	}
	return st.Intervals, nil
}

func (s *Service) record(ctx context.Context, e domain.ActivityEvent) error {
	if err := s.activity.Append(ctx, e, s.activityCap); err != nil {
		return fmt.Errorf("append activity: %w", err)
	}
	return nil
}

func (s *Service) count(ctx context.Context, d domain.DailyStats) error {
	if err := s.stats.Add(ctx, d); err != nil {
		return fmt.Errorf("add daily stats: %w", err)
	}
	return nil
}
