package domain

import (
	"time"

	"github.com/google/uuid"
)

// Mastery level bounds. Level 0 means "due immediately".
const (
	MinMasteryLevel = 0
	MaxMasteryLevel = 4
)

// ReviewSession is the scheduling state of one item for one owner in one mode.
type ReviewSession struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	ItemID         uuid.UUID
	Mode           ReviewMode
	MasteryLevel   int
	LastReviewedAt time.Time
	NextDueAt      time.Time
	ReviewCount    int
	CorrectCount   int
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewReviewSession builds a fresh level-0 session that is due at now.
func NewReviewSession(ownerID, itemID uuid.UUID, mode ReviewMode, now time.Time) ReviewSession {
	return ReviewSession{
		ID:             uuid.New(),
		OwnerID:        ownerID,
		ItemID:         itemID,
		Mode:           mode,
		MasteryLevel:   MinMasteryLevel,
		LastReviewedAt: now,
		NextDueAt:      now,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// ValidMasteryLevel reports whether level lies in [MinMasteryLevel, MaxMasteryLevel].
func ValidMasteryLevel(level int) bool {
	return level >= MinMasteryLevel && level <= MaxMasteryLevel
}

// MasteryLevelCounts is the number of active sessions at each mastery level.
type MasteryLevelCounts [MaxMasteryLevel + 1]int

// Total returns the sum over all levels.
func (c MasteryLevelCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// ReviewTotals aggregates review counters over an owner's active sessions.
type ReviewTotals struct {
	ReviewCount  int
	CorrectCount int
}

// AccuracyRate returns CorrectCount / ReviewCount, or 0 when nothing was reviewed.
func (t ReviewTotals) AccuracyRate() float64 {
	if t.ReviewCount == 0 {
		return 0
	}
	return float64(t.CorrectCount) / float64(t.ReviewCount)
}

// StudyOverview holds aggregated study statistics for the owner.
type StudyOverview struct {
	ActiveCount  int
	DueCount     int
	LevelCounts  MasteryLevelCounts
	Totals       ReviewTotals
	AccuracyRate float64
}
