package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActivityEvent is one entry of an owner's recent-activity feed.
type ActivityEvent struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	Type       ActivityType
	ItemID     *uuid.UUID
	SessionID  *uuid.UUID
	Mode       *ReviewMode
	Details    string
	OccurredAt time.Time
}

// NewActivityEvent builds an event of the given type for owner at now.
// IDs are UUIDv7 and increase monotonically within the process, so feeds
// ordered by (occurred_at, id) keep creation order for events sharing an instant.
func NewActivityEvent(ownerID uuid.UUID, typ ActivityType, now time.Time) ActivityEvent {
	return ActivityEvent{
		ID:         uuid.Must(uuid.NewV7()),
		OwnerID:    ownerID,
		Type:       typ,
		OccurredAt: now,
	}
}

// ForSession attaches session, item and mode references to the event.
func (e ActivityEvent) ForSession(s ReviewSession) ActivityEvent {
	sessionID, itemID, mode := s.ID, s.ItemID, s.Mode
	e.SessionID = &sessionID
	e.ItemID = &itemID
	e.Mode = &mode
	return e
}

// StudySettings holds an owner's scheduling preferences.
type StudySettings struct {
	OwnerID   uuid.UUID
	Intervals IntervalTable
	UpdatedAt time.Time
}

// DefaultStudySettings returns settings for owners who never saved any.
func DefaultStudySettings(ownerID uuid.UUID, intervals IntervalTable) StudySettings {
	return StudySettings{OwnerID: ownerID, Intervals: intervals}
}
