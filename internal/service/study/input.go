package study

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-srs/internal/domain"
)

// CreateSessionsInput holds the parameters for creating sessions of a new item.
type CreateSessionsInput struct {
	ItemID uuid.UUID
	// Modes defaults to every supported mode when empty.
	Modes []domain.ReviewMode
}

// Validate checks all fields and collects all errors.
func (i *CreateSessionsInput) Validate() error {
	var errs []domain.FieldError

	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}

	seen := make(map[domain.ReviewMode]bool, len(i.Modes))
	for idx, m := range i.Modes {
		field := fmt.Sprintf("modes[%d]", idx)
		if !m.IsValid() {
			errs = append(errs, domain.FieldError{Field: field, Message: "must be RECOGNITION or PRODUCTION"})
			continue
		}
		if seen[m] {
			errs = append(errs, domain.FieldError{Field: field, Message: "duplicate mode"})
		}
		seen[m] = true
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i *CreateSessionsInput) modes() []domain.ReviewMode {
	if len(i.Modes) == 0 {
		return domain.AllReviewModes()
	}
	return i.Modes
}

// GetDueInput holds the parameters for fetching due sessions.
type GetDueInput struct {
	// AsOf defaults to the current time.
	AsOf *time.Time
	// Limit 0 means no limit.
	Limit int
}

// Validate checks all fields against the service's maximum page size.
func (i *GetDueInput) Validate(maxLimit int) error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > maxLimit {
		errs = append(errs, domain.FieldError{
			Field:   "limit",
			Message: fmt.Sprintf("must be between 0 and %d", maxLimit),
		})
	}
	if i.AsOf != nil && i.AsOf.IsZero() {
		errs = append(errs, domain.FieldError{Field: "as_of", Message: "must be a valid timestamp"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ApplyOutcomeInput holds the learner's answer for one session.
// Exactly one of Correct and Grade must be set.
type ApplyOutcomeInput struct {
	SessionID uuid.UUID
	Correct   *bool
	Grade     *domain.ReviewGrade
	// Intervals overrides the owner's saved table for this call.
	Intervals *domain.IntervalTable
}

// Validate checks all fields and collects all errors. An override table is
// held to the same per-level cap as saved settings.
func (i *ApplyOutcomeInput) Validate(maxIntervalDays int) error {
	var errs []domain.FieldError

	if i.SessionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "session_id", Message: "required"})
	}

	switch {
	case i.Correct == nil && i.Grade == nil:
		errs = append(errs, domain.FieldError{Field: "correct", Message: "either correct or grade is required"})
	case i.Correct != nil && i.Grade != nil:
		errs = append(errs, domain.FieldError{Field: "grade", Message: "must not be combined with correct"})
	case i.Grade != nil && !i.Grade.IsValid():
		errs = append(errs, domain.FieldError{Field: "grade", Message: "must be JUST_LEARNED, STILL_LEARNING, GOOD, or EASY"})
	}

	if i.Intervals != nil {
		if err := i.Intervals.ValidateMax(maxIntervalDays); err != nil {
			var ve *domain.ValidationError
			if errors.As(err, &ve) {
				errs = append(errs, ve.Errors...)
			} else {
				errs = append(errs, domain.FieldError{Field: "intervals", Message: err.Error()})
			}
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// correct resolves the effective answer. Validate must have passed.
func (i *ApplyOutcomeInput) correct() bool {
	if i.Correct != nil {
		return *i.Correct
	}
	return i.Grade.Correct()
}
