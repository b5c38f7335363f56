package domain

import (
	"fmt"
	"time"
)

// Day is the unit of the interval table. Intervals are plain 24h multiples.
const Day = 24 * time.Hour

// IntervalTable maps each mastery level to the number of days until the next review.
// The zero value is not meaningful; construct it with NewIntervalTable or
// DefaultIntervalTable.
type IntervalTable [MaxMasteryLevel + 1]int

// DefaultIntervalTable returns the table used when an owner has no settings: 0, 1, 3, 7, 30 days.
func DefaultIntervalTable() IntervalTable {
	return IntervalTable{0, 1, 3, 7, 30}
}

// NewIntervalTable builds a table from exactly one day count per level.
func NewIntervalTable(days []int) (IntervalTable, error) {
	var t IntervalTable
	if len(days) != len(t) {
		return t, NewValidationError("intervals", fmt.Sprintf("must contain exactly %d values (got %d)", len(t), len(days)))
	}
	copy(t[:], days)
	if err := t.Validate(); err != nil {
		return IntervalTable{}, err
	}
	return t, nil
}

// Validate checks that every level has a non-negative interval.
func (t IntervalTable) Validate() error {
	var errs []FieldError
	for level, d := range t {
		if d < 0 {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("intervals[%d]", level),
				Message: "must be >= 0",
			})
		}
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// ValidateMax checks that every interval lies in [0, maxDays]. Large day
// counts would overflow time.Duration.
func (t IntervalTable) ValidateMax(maxDays int) error {
	var errs []FieldError
	for level, d := range t {
		field := fmt.Sprintf("intervals[%d]", level)
		switch {
		case d < 0:
			errs = append(errs, FieldError{Field: field, Message: "must be >= 0"})
		case d > maxDays:
			errs = append(errs, FieldError{Field: field, Message: fmt.Sprintf("must be <= %d", maxDays)})
		}
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// Interval returns the delay for a mastery level.
func (t IntervalTable) Interval(level int) (time.Duration, error) {
	if !ValidMasteryLevel(level) {
		return 0, fmt.Errorf("mastery level %d: %w", level, ErrInvariantViolation)
	}
	return time.Duration(t[level]) * Day, nil
}

// Days returns a copy of the table as a slice.
func (t IntervalTable) Days() []int {
	out := make([]int, len(t))
	copy(out, t[:])
	return out
}
