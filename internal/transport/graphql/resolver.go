package graphql

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-srs/internal/domain"
	"github.com/heartmarshall/myenglish-srs/internal/service/analytics"
	"github.com/heartmarshall/myenglish-srs/internal/service/study"
)

// studyService defines what the resolver needs from the study service.
type studyService interface {
	HandleItemCreated(ctx context.Context, itemID uuid.UUID, modes []domain.ReviewMode) ([]domain.ReviewSession, error)
	HandleItemDeleted(ctx context.Context, itemID uuid.UUID) (int, error)
	GetDueSessions(ctx context.Context, input study.GetDueInput) ([]domain.ReviewSession, error)
	GetActiveSessions(ctx context.Context) ([]domain.ReviewSession, error)
	GetSession(ctx context.Context, id uuid.UUID) (*domain.ReviewSession, error)
	ApplyOutcome(ctx context.Context, input study.ApplyOutcomeInput) (*domain.ReviewSession, error)
	ResetAll(ctx context.Context) (study.ResetResult, error)
}

// analyticsService defines what the resolver needs from the analytics service.
type analyticsService interface {
	MasteryLevelCounts(ctx context.Context) (domain.MasteryLevelCounts, error)
	RecentActivity(ctx context.Context, input analytics.RecentActivityInput) ([]domain.ActivityEvent, error)
	Overview(ctx context.Context) (domain.StudyOverview, error)
	DailyStats(ctx context.Context, input analytics.DailyStatsInput) ([]domain.DailyStats, error)
}

// Resolver maps root fields onto service calls.
type Resolver struct {
	study     studyService
	analytics analyticsService
}

func (r *Resolver) resolve(ctx context.Context, field string, args map[string]any) (any, error) {
	switch field {
	case "dueSessions":
		return r.dueSessions(ctx, args)
	case "activeSessions":
		sessions, err := r.study.GetActiveSessions(ctx)
		if err != nil {
			return nil, err
		}
		return sessionList(sessions), nil
	case "session":
		id, err := argUUID(args, "id")
		if err != nil {
			return nil, err
		}
		s, err := r.study.GetSession(ctx, id)
		if err != nil {
			return nil, err
		}
		return sessionObject(*s), nil
	case "masteryLevelCounts":
		counts, err := r.analytics.MasteryLevelCounts(ctx)
		if err != nil {
			return nil, err
		}
		return levelsObject(counts), nil
	case "overview":
		ov, err := r.analytics.Overview(ctx)
		if err != nil {
			return nil, err
		}
		return overviewObject(ov), nil
	case "recentActivity":
		return r.recentActivity(ctx, args)
	case "dailyStats":
		return r.dailyStats(ctx, args)
	case "createSessions":
		return r.createSessions(ctx, args)
	case "deactivateSessions":
		itemID, err := argUUID(args, "itemId")
		if err != nil {
			return nil, err
		}
		return r.study.HandleItemDeleted(ctx, itemID)
	case "applyOutcome":
		return r.applyOutcome(ctx, args)
	case "resetProgress":
		res, err := r.study.ResetAll(ctx)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"sessionsDeleted": res.SessionsDeleted,
			"eventsDeleted":   res.EventsDeleted,
			"daysDeleted":     res.DaysDeleted,
		}, nil
	default:
		return nil, fmt.Errorf("no resolver for field %s", field)
	}
}

func (r *Resolver) dueSessions(ctx context.Context, args map[string]any) (any, error) {
	var input study.GetDueInput
	asOf, err := argTime(args, "asOf", time.RFC3339Nano, "must be an RFC 3339 timestamp")
	if err != nil {
		return nil, err
	}
	input.AsOf = asOf
	if input.Limit, err = argInt(args, "limit"); err != nil {
		return nil, err
	}

	due, err := r.study.GetDueSessions(ctx, input)
	if err != nil {
		return nil, err
	}
	return sessionList(due), nil
}

func (r *Resolver) recentActivity(ctx context.Context, args map[string]any) (any, error) {
	limit, err := argInt(args, "limit")
	if err != nil {
		return nil, err
	}
	events, err := r.analytics.RecentActivity(ctx, analytics.RecentActivityInput{Limit: limit})
	if err != nil {
		return nil, err
	}
	out := make([]map[string]any, 0, len(events))
	for _, e := range events {
		out = append(out, activityObject(e))
	}
	return out, nil
}

func (r *Resolver) dailyStats(ctx context.Context, args map[string]any) (any, error) {
	var input analytics.DailyStatsInput
	var err error
	if input.From, err = argTime(args, "from", time.DateOnly, "must be a date in YYYY-MM-DD form"); err != nil {
		return nil, err
	}
	if input.To, err = argTime(args, "to", time.DateOnly, "must be a date in YYYY-MM-DD form"); err != nil {
		return nil, err
	}

	days, err := r.analytics.DailyStats(ctx, input)
	if err != nil {
		return nil, err
	}
	out := make([]map[string]any, 0, len(days))
	for _, d := range days {
		out = append(out, dailyStatsObject(d))
	}
	return out, nil
}

func (r *Resolver) createSessions(ctx context.Context, args map[string]any) (any, error) {
	itemID, err := argUUID(args, "itemId")
	if err != nil {
		return nil, err
	}
	var modes []domain.ReviewMode
	for _, m := range argList(args, "modes") {
		s, _ := m.(string)
		modes = append(modes, domain.ReviewMode(s))
	}

	created, err := r.study.HandleItemCreated(ctx, itemID, modes)
	if err != nil {
		return nil, err
	}
	return sessionList(created), nil
}

func (r *Resolver) applyOutcome(ctx context.Context, args map[string]any) (any, error) {
	sessionID, err := argUUID(args, "sessionId")
	if err != nil {
		return nil, err
	}
	input := study.ApplyOutcomeInput{SessionID: sessionID}
	if c, ok := args["correct"].(bool); ok {
		input.Correct = &c
	}
	if g, ok := args["grade"].(string); ok {
		grade := domain.ReviewGrade(g)
		input.Grade = &grade
	}
	if raw := argList(args, "intervals"); raw != nil {
		days := make([]int, 0, len(raw))
		for i, v := range raw {
			n, err := toInt(v)
			if err != nil {
				return nil, domain.NewValidationError(fmt.Sprintf("intervals[%d]", i), "must be an integer")
			}
			days = append(days, n)
		}
		table, err := domain.NewIntervalTable(days)
		if err != nil {
			return nil, err
		}
		input.Intervals = &table
	}

	s, err := r.study.ApplyOutcome(ctx, input)
	if err != nil {
		return nil, err
	}
	return sessionObject(*s), nil
}

// argList normalises a list argument. Input coercion may wrap a single value
// into a typed slice, so any slice kind is accepted.
func argList(args map[string]any, name string) []any {
	v, ok := args[name]
	if !ok || v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return []any{v}
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

func argUUID(args map[string]any, name string) (uuid.UUID, error) {
	s, _ := args[name].(string)
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a UUID")
	}
	return id, nil
}

func argTime(args map[string]any, name, layout, msg string) (*time.Time, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return nil, nil
	}
	s, _ := v.(string)
	t, err := time.Parse(layout, s)
	if err != nil {
		return nil, domain.NewValidationError(name, msg)
	}
	return &t, nil
}

func argInt(args map[string]any, name string) (int, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return 0, nil
	}
	n, err := toInt(v)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer")
	}
	return n, nil
}

// toInt accepts the integer shapes produced by literal parsing and by
// variable coercion of a UseNumber-decoded body.
func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		if n > math.MaxInt32 || n < math.MinInt32 {
			return 0, fmt.Errorf("%d out of range", n)
		}
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, err
		}
		return toInt(i)
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("%v is not an integer", n)
		}
		return toInt(int64(n))
	default:
		return 0, fmt.Errorf("unexpected %T", v)
	}
}

func sessionObject(s domain.ReviewSession) map[string]any {
	return map[string]any{
		"id":             s.ID.String(),
		"itemId":         s.ItemID.String(),
		"mode":           s.Mode.String(),
		"masteryLevel":   s.MasteryLevel,
		"lastReviewedAt": formatTime(s.LastReviewedAt),
		"nextDueAt":      formatTime(s.NextDueAt),
		"reviewCount":    s.ReviewCount,
		"correctCount":   s.CorrectCount,
		"active":         s.Active,
		"createdAt":      formatTime(s.CreatedAt),
		"updatedAt":      formatTime(s.UpdatedAt),
	}
}

func sessionList(ss []domain.ReviewSession) []map[string]any {
	out := make([]map[string]any, 0, len(ss))
	for _, s := range ss {
		out = append(out, sessionObject(s))
	}
	return out
}

func levelsObject(c domain.MasteryLevelCounts) map[string]any {
	return map[string]any{
		"level0": c[0],
		"level1": c[1],
		"level2": c[2],
		"level3": c[3],
		"level4": c[4],
		"total":  c.Total(),
	}
}

func overviewObject(ov domain.StudyOverview) map[string]any {
	return map[string]any{
		"activeCount":  ov.ActiveCount,
		"dueCount":     ov.DueCount,
		"levels":       levelsObject(ov.LevelCounts),
		"reviewCount":  ov.Totals.ReviewCount,
		"correctCount": ov.Totals.CorrectCount,
		"accuracyRate": ov.AccuracyRate,
	}
}

func activityObject(e domain.ActivityEvent) map[string]any {
	obj := map[string]any{
		"id":         e.ID.String(),
		"type":       e.Type.String(),
		"itemId":     nil,
		"sessionId":  nil,
		"mode":       nil,
		"details":    nil,
		"occurredAt": formatTime(e.OccurredAt),
	}
	if e.ItemID != nil {
		obj["itemId"] = e.ItemID.String()
	}
	if e.SessionID != nil {
		obj["sessionId"] = e.SessionID.String()
	}
	if e.Mode != nil {
		obj["mode"] = e.Mode.String()
	}
	if e.Details != "" {
		obj["details"] = e.Details
	}
	return obj
}

func dailyStatsObject(d domain.DailyStats) map[string]any {
	p := d.Promotions
	return map[string]any{
		"date":         d.Day.Format(time.DateOnly),
		"reviews":      d.Reviews,
		"correct":      d.Correct,
		"accuracyRate": d.Totals().AccuracyRate(),
		"newSessions":  d.NewSessions,
		"masteryProgression": map[string]any{
			"level0to1": p[0],
			"level1to2": p[1],
			"level2to3": p[2],
			"level3to4": p[3],
		},
		"lapses": d.Lapses,
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
