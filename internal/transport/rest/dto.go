package rest

import (
	"time"

	"github.com/heartmarshall/myenglish-srs/internal/domain"
	"github.com/heartmarshall/myenglish-srs/internal/service/study"
)

type sessionResponse struct {
	ID             string    `json:"id"`
	ItemID         string    `json:"itemId"`
	Mode           string    `json:"mode"`
	MasteryLevel   int       `json:"masteryLevel"`
	LastReviewedAt time.Time `json:"lastReviewedAt"`
	NextDueAt      time.Time `json:"nextDueAt"`
	ReviewCount    int       `json:"reviewCount"`
	CorrectCount   int       `json:"correctCount"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func toSessionResponse(s domain.ReviewSession) sessionResponse {
	return sessionResponse{
		ID:             s.ID.String(),
		ItemID:         s.ItemID.String(),
		Mode:           s.Mode.String(),
		MasteryLevel:   s.MasteryLevel,
		LastReviewedAt: s.LastReviewedAt,
		NextDueAt:      s.NextDueAt,
		ReviewCount:    s.ReviewCount,
		CorrectCount:   s.CorrectCount,
		Active:         s.Active,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func toSessionList(ss []domain.ReviewSession) []sessionResponse {
	out := make([]sessionResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, toSessionResponse(s))
	}
	return out
}

type sessionListResponse struct {
	Sessions []sessionResponse `json:"sessions"`
	Count    int               `json:"count"`
}

type activityResponse struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	ItemID     *string   `json:"itemId,omitempty"`
	SessionID  *string   `json:"sessionId,omitempty"`
	Mode       *string   `json:"mode,omitempty"`
	Details    string    `json:"details,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

func toActivityResponse(e domain.ActivityEvent) activityResponse {
	resp := activityResponse{
		ID:         e.ID.String(),
		Type:       e.Type.String(),
		Details:    e.Details,
		OccurredAt: e.OccurredAt,
	}
	if e.ItemID != nil {
		s := e.ItemID.String()
		resp.ItemID = &s
	}
	if e.SessionID != nil {
		s := e.SessionID.String()
		resp.SessionID = &s
	}
	if e.Mode != nil {
		s := e.Mode.String()
		resp.Mode = &s
	}
	return resp
}

type masteryLevelsResponse struct {
	Level0 int `json:"level0"`
	Level1 int `json:"level1"`
	Level2 int `json:"level2"`
	Level3 int `json:"level3"`
	Level4 int `json:"level4"`
	Total  int `json:"total"`
}

func toMasteryLevels(c domain.MasteryLevelCounts) masteryLevelsResponse {
	return masteryLevelsResponse{
		Level0: c[0],
		Level1: c[1],
		Level2: c[2],
		Level3: c[3],
		Level4: c[4],
		Total:  c.Total(),
	}
}

type overviewResponse struct {
	ActiveCount  int                   `json:"activeCount"`
	DueCount     int                   `json:"dueCount"`
	Levels       masteryLevelsResponse `json:"levels"`
	ReviewCount  int                   `json:"reviewCount"`
	CorrectCount int                   `json:"correctCount"`
	AccuracyRate float64               `json:"accuracyRate"`
}

func toOverviewResponse(ov domain.StudyOverview) overviewResponse {
	return overviewResponse{
		ActiveCount:  ov.ActiveCount,
		DueCount:     ov.DueCount,
		Levels:       toMasteryLevels(ov.LevelCounts),
		ReviewCount:  ov.Totals.ReviewCount,
		CorrectCount: ov.Totals.CorrectCount,
		AccuracyRate: ov.AccuracyRate,
	}
}

type intervalsResponse struct {
	Days      []int      `json:"days"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

func toIntervalsResponse(s domain.StudySettings) intervalsResponse {
	resp := intervalsResponse{Days: s.Intervals.Days()}
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		resp.UpdatedAt = &t
	}
	return resp
}

type masteryProgressionResponse struct {
	Level0To1 int `json:"level0to1"`
	Level1To2 int `json:"level1to2"`
	Level2To3 int `json:"level2to3"`
	Level3To4 int `json:"level3to4"`
}

type dailyStatsResponse struct {
	Date               string                     `json:"date"`
	Reviews            int                        `json:"reviews"`
	Correct            int                        `json:"correct"`
	AccuracyRate       float64                    `json:"accuracyRate"`
	NewSessions        int                        `json:"newSessions"`
	MasteryProgression masteryProgressionResponse `json:"masteryProgression"`
	Lapses             int                        `json:"lapses"`
}

func toDailyStatsResponse(d domain.DailyStats) dailyStatsResponse {
	p := d.Promotions
	return dailyStatsResponse{
		Date:         d.Day.Format(time.DateOnly),
		Reviews:      d.Reviews,
		Correct:      d.Correct,
		AccuracyRate: d.Totals().AccuracyRate(),
		NewSessions:  d.NewSessions,
		MasteryProgression: masteryProgressionResponse{
			Level0To1: p[0],
			Level1To2: p[1],
			Level2To3: p[2],
			Level3To4: p[3],
		},
		Lapses: d.Lapses,
	}
}

type resetResponse struct {
	SessionsDeleted int `json:"sessionsDeleted"`
	EventsDeleted   int `json:"eventsDeleted"`
	DaysDeleted     int `json:"daysDeleted"`
}

func toResetResponse(res study.ResetResult) resetResponse {
	return resetResponse{
		SessionsDeleted: res.SessionsDeleted,
		EventsDeleted:   res.EventsDeleted,
		DaysDeleted:     res.DaysDeleted,
	}
}
