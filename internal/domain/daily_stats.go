package domain

import (
	"time"

	"github.com/google/uuid"
)

// DailyStats holds one owner's study counters for one UTC calendar day.
// Stored rows are increments applied by the scheduler; days without activity
// have no row.
type DailyStats struct {
	OwnerID     uuid.UUID
	Day         time.Time
	Reviews     int
	Correct     int
	NewSessions int
	// Promotions[i] counts answers that moved a session from level i to i+1.
	Promotions [MaxMasteryLevel]int
	// Lapses counts incorrect answers that dropped a session above level 0 back to 0.
	Lapses int
}

// StartOfDay truncates t to midnight UTC.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NewSessionsStats is the increment for n sessions created at now.
func NewSessionsStats(ownerID uuid.UUID, now time.Time, n int) DailyStats {
	return DailyStats{OwnerID: ownerID, Day: StartOfDay(now), NewSessions: n}
}

// OutcomeStats is the increment for one answer that moved a session from
// level from to level to.
func OutcomeStats(ownerID uuid.UUID, now time.Time, correct bool, from, to int) DailyStats {
	d := DailyStats{OwnerID: ownerID, Day: StartOfDay(now), Reviews: 1}
	if correct {
		d.Correct = 1
	}
	switch {
	case to == from+1 && ValidMasteryLevel(from) && from < MaxMasteryLevel:
		d.Promotions[from] = 1
	case to == MinMasteryLevel && from > MinMasteryLevel:
		d.Lapses = 1
	}
	return d
}

// Totals returns the review counters as ReviewTotals.
func (d DailyStats) Totals() ReviewTotals {
	return ReviewTotals{ReviewCount: d.Reviews, CorrectCount: d.Correct}
}
