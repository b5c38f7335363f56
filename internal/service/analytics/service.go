// Package analytics derives read-only aggregates from the review-session store.
package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/myenglish-srs/internal/config"
	"github.com/heartmarshall/myenglish-srs/internal/domain"
	"github.com/heartmarshall/myenglish-srs/pkg/ctxutil"
)

type sessionStats interface {
	CountByLevel(ctx context.Context, ownerID uuid.UUID) (domain.MasteryLevelCounts, error)
	CountActive(ctx context.Context, ownerID uuid.UUID) (int, error)
	CountDue(ctx context.Context, ownerID uuid.UUID, asOf time.Time) (int, error)
	Totals(ctx context.Context, ownerID uuid.UUID) (domain.ReviewTotals, error)
}

type activityFeed interface {
	ListRecent(ctx context.Context, ownerID uuid.UUID, limit int) ([]domain.ActivityEvent, error)
}

type dailyStatsReader interface {
	ListRange(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]domain.DailyStats, error)
}

// Service implements the analytics read model.
type Service struct {
	sessions sessionStats
	activity activityFeed
	stats    dailyStatsReader
	log      *slog.Logger

	defaultLimit int
	maxLimit     int

	now func() time.Time
}

// NewService creates a new analytics service.
func NewService(log *slog.Logger, sessions sessionStats, activity activityFeed, stats dailyStatsReader, cfg config.SRSConfig) *Service {
	return &Service{
		sessions:     sessions,
		activity:     activity,
		stats:        stats,
		log:          log.With("service", "analytics"),
		defaultLimit: cfg.RecentActivityLimit,
		maxLimit:     cfg.ActivityCap,
		now:          func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

// RecentActivityInput holds the parameters for reading the activity feed.
type RecentActivityInput struct {
	// Limit 0 selects the configured default.
	Limit int
}

// Validate checks the limit against the retention cap.
func (i *RecentActivityInput) Validate(maxLimit int) error {
	if i.Limit < 0 || i.Limit > maxLimit {
		return domain.NewValidationError("limit", fmt.Sprintf("must be between 0 and %d", maxLimit))
	}
	return nil
}

// MasteryLevelCounts tallies the owner's active sessions per mastery level.
// The counts sum to the number of active sessions.
func (s *Service) MasteryLevelCounts(ctx context.Context) (domain.MasteryLevelCounts, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return domain.MasteryLevelCounts{}, domain.ErrUnauthorized
	}

	counts, err := s.sessions.CountByLevel(ctx, ownerID)
	if err != nil {
		return domain.MasteryLevelCounts{}, fmt.Errorf("count by level: %w", err)
	}
	return counts, nil
}

// RecentActivity returns the owner's newest activity events first.
func (s *Service) RecentActivity(ctx context.Context, input RecentActivityInput) ([]domain.ActivityEvent, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.maxLimit); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.defaultLimit
	}

	events, err := s.activity.ListRecent(ctx, ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent activity: %w", err)
	}
	return events, nil
}

// Overview assembles the owner's study dashboard. The independent counts
// are loaded concurrently.
func (s *Service) Overview(ctx context.Context) (domain.StudyOverview, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return domain.StudyOverview{}, domain.ErrUnauthorized
	}

	now := s.now()
	var ov domain.StudyOverview

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ov.ActiveCount, err = s.sessions.CountActive(gctx, ownerID)
		if err != nil {
			return fmt.Errorf("count active: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		ov.DueCount, err = s.sessions.CountDue(gctx, ownerID, now)
		if err != nil {
			return fmt.Errorf("count due: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		ov.LevelCounts, err = s.sessions.CountByLevel(gctx, ownerID)
		if err != nil {
			return fmt.Errorf("count by level: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		ov.Totals, err = s.sessions.Totals(gctx, ownerID)
		if err != nil {
			return fmt.Errorf("review totals: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.StudyOverview{}, err
	}

	ov.AccuracyRate = ov.Totals.AccuracyRate()

	s.log.DebugContext(ctx, "overview computed",
		slog.String("user_id", ownerID.String()),
		slog.Int("active", ov.ActiveCount),
		slog.Int("due", ov.DueCount),
	)

	return ov, nil
}
