// Package settings manages the per-owner interval table used by the scheduler.
package settings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-srs/internal/config"
	"github.com/heartmarshall/myenglish-srs/internal/domain"
	"github.com/heartmarshall/myenglish-srs/pkg/ctxutil"
)

type settingsRepo interface {
	Get(ctx context.Context, ownerID uuid.UUID) (*domain.StudySettings, error)
	Upsert(ctx context.Context, s domain.StudySettings) error
}

// Service reads and updates owners' study settings.
type Service struct {
	repo             settingsRepo
	log              *slog.Logger
	defaultIntervals domain.IntervalTable
	maxIntervalDays  int
	now              func() time.Time
}

// NewService creates a new settings service.
func NewService(log *slog.Logger, repo settingsRepo, cfg config.SRSConfig) *Service {
	return &Service{
		repo:             repo,
		log:              log.With("service", "settings"),
		defaultIntervals: domain.IntervalTable(cfg.Intervals),
		maxIntervalDays:  cfg.MaxIntervalDays,
		now:              func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

// UpdateIntervalsInput holds a new interval table, one day count per level.
type UpdateIntervalsInput struct {
	Days []int
}

// Validate checks the table shape and bounds.
func (i *UpdateIntervalsInput) Validate(maxDays int) (domain.IntervalTable, error) {
	table, err := domain.NewIntervalTable(i.Days)
	if err != nil {
		return domain.IntervalTable{}, err
	}

	if err := table.ValidateMax(maxDays); err != nil {
		return domain.IntervalTable{}, err
	}
	return table, nil
}

// GetIntervals returns the owner's saved settings, or defaults when none exist.
func (s *Service) GetIntervals(ctx context.Context) (domain.StudySettings, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return domain.StudySettings{}, domain.ErrUnauthorized
	}

	st, err := s.repo.Get(ctx, ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.DefaultStudySettings(ownerID, s.defaultIntervals), nil
		}
		return domain.StudySettings{}, fmt.Errorf("get settings: %w", err)
	}
	return *st, nil
}

// UpdateIntervals replaces the owner's interval table. The scheduler picks
// the new table up on the next outcome.
func (s *Service) UpdateIntervals(ctx context.Context, input UpdateIntervalsInput) (domain.StudySettings, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return domain.StudySettings{}, domain.ErrUnauthorized
	}

	table, err := input.Validate(s.maxIntervalDays)
	if err != nil {
		return domain.StudySettings{}, err
	}

	st := domain.StudySettings{OwnerID: ownerID, Intervals: table, UpdatedAt: s.now()}
	if err := s.repo.Upsert(ctx, st); err != nil {
		return domain.StudySettings{}, fmt.Errorf("upsert settings: %w", err)
	}

	s.log.InfoContext(ctx, "intervals updated",
		slog.String("user_id", ownerID.String()),
		slog.Any("days", table.Days()),
	)

	return st, nil
}
