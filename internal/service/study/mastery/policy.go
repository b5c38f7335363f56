// Package mastery implements the level-based spaced-repetition policy.
//
// The policy is a pure function: it never reads the clock or touches storage.
// Callers capture "now" once per operation and pass it in together with the
// owner's interval table.
package mastery

import (
	"fmt"
	"time"

	"github.com/heartmarshall/myenglish-srs/internal/domain"
)

// Transition is the scheduling state produced by one answer.
type Transition struct {
	Level     int
	NextDueAt time.Time
}

// NextState computes the level and due date after an answer.
//
//	correct:   level -> min(level+1, 4)
//	incorrect: level -> 0
//
// Level 0 is due at now exactly; any other level is due now + table[level] days.
func NextState(currentLevel int, correct bool, table domain.IntervalTable, now time.Time) (Transition, error) {
	if !domain.ValidMasteryLevel(currentLevel) {
		return Transition{}, fmt.Errorf("mastery level %d: %w", currentLevel, domain.ErrInvariantViolation)
	}

	next := domain.MinMasteryLevel
	if correct {
		next = min(currentLevel+1, domain.MaxMasteryLevel)
	}

	if next == domain.MinMasteryLevel {
		return Transition{Level: next, NextDueAt: now}, nil
	}

	delay, err := table.Interval(next)
	if err != nil {
		return Transition{}, err
	}
	return Transition{Level: next, NextDueAt: now.Add(delay)}, nil
}
