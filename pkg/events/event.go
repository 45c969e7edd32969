package events

import "time"

// Journal lifecycle event types published on the bus for other edge
// components (frontend notifier, sync agent).
const (
	TypeSessionEnded     = "SESSION_ENDED"
	TypeJournalCompleted = "JOURNAL_COMPLETED"
	TypeJournalFailed    = "JOURNAL_FAILED"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "SESSION_ENDED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is a plain implementation for one-off events.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}
