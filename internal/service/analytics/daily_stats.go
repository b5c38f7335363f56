package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/myenglish-srs/internal/domain"
	"github.com/heartmarshall/myenglish-srs/pkg/ctxutil"
)

const (
	// DefaultStatsDays is the window used when From is omitted.
	DefaultStatsDays = 7
	// MaxStatsDays bounds a single DailyStats request.
	MaxStatsDays = 366
)

// DailyStatsInput selects an inclusive range of UTC days.
type DailyStatsInput struct {
	// From defaults to DefaultStatsDays-1 days before To.
	From *time.Time
	// To defaults to today.
	To *time.Time
}

// Validate checks the range against MaxStatsDays. Defaults must be resolved.
func (i *DailyStatsInput) Validate() error {
	var errs []domain.FieldError

	if i.From == nil || i.From.IsZero() {
		errs = append(errs, domain.FieldError{Field: "from", Message: "must be a valid date"})
	}
	if i.To == nil || i.To.IsZero() {
		errs = append(errs, domain.FieldError{Field: "to", Message: "must be a valid date"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}

	from, to := domain.StartOfDay(*i.From), domain.StartOfDay(*i.To)
	switch {
	case from.After(to):
		return domain.NewValidationError("from", "must not be after to")
	case daysBetween(from, to) >= MaxStatsDays:
		return domain.NewValidationError("from", fmt.Sprintf("range must not exceed %d days", MaxStatsDays))
	}
	return nil
}

func (i DailyStatsInput) withDefaults(now time.Time) DailyStatsInput {
	if i.To == nil {
		to := domain.StartOfDay(now)
		i.To = &to
	}
	if i.From == nil && !i.To.IsZero() {
		from := domain.StartOfDay(*i.To).AddDate(0, 0, -(DefaultStatsDays - 1))
		i.From = &from
	}
	return i
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from) / domain.Day)
}

// DailyStats returns one entry per UTC day in [From, To], oldest first.
// Days without activity are reported with zero counters.
func (s *Service) DailyStats(ctx context.Context, input DailyStatsInput) ([]domain.DailyStats, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input = input.withDefaults(s.now())
	if err := input.Validate(); err != nil {
		return nil, err
	}
	from, to := domain.StartOfDay(*input.From), domain.StartOfDay(*input.To)

	stored, err := s.stats.ListRange(ctx, ownerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list daily stats: %w", err)
	}

	byDay := make(map[time.Time]domain.DailyStats, len(stored))
	for _, d := range stored {
		byDay[domain.StartOfDay(d.Day)] = d
	}

	out := make([]domain.DailyStats, 0, daysBetween(from, to)+1)
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		d, ok := byDay[day]
		if !ok {
			d = domain.DailyStats{OwnerID: ownerID, Day: day}
		}
		out = append(out, d)
	}

	s.log.DebugContext(ctx, "daily stats loaded",
		slog.String("user_id", ownerID.String()),
		slog.Int("days", len(out)),
		slog.Int("stored", len(stored)),
	)

	return out, nil
}
