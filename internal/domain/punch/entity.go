package punch

import (
	"time"
)

// EventType is the closed set of clock actions a punch device or an
// administrator can record.
type EventType string

const (
	EventClockIn       EventType = "CLOCK_IN"
	EventBreakStart    EventType = "BREAK_START"
	EventBreakEnd      EventType = "BREAK_END"
	EventClockOut      EventType = "CLOCK_OUT"
	EventOvertimeStart EventType = "OVERTIME_START"
	EventOvertimeEnd   EventType = "OVERTIME_END"
)

// EventTypes lists every valid event type, in the order they occur in a
// regular working day.
var EventTypes = []EventType{
	EventClockIn,
	EventBreakStart,
	EventBreakEnd,
	EventClockOut,
	EventOvertimeStart,
	EventOvertimeEnd,
}

// IsValid reports whether t is one of the known event types.
func (t EventType) IsValid() bool {
	for _, known := range EventTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Event is one observed or manually-entered clock action. Events are
// immutable once created: corrections set EditedBy on a fresh record,
// they never overwrite the captured timestamp history.
type Event struct {
	ID         string
	EmployeeID string
	UnitID     string
	Type       EventType
	Timestamp  time.Time // absolute instant, stored UTC

	// Capture metadata from the device flow
	Latitude      *float64
	Longitude     *float64
	ProofPhotoURL *string

	// CreatedBy is set when an administrator inserted the event by hand
	// instead of it being captured by the device flow.
	CreatedBy *string
	// EditedBy is set when an originally-captured event was later corrected.
	EditedBy *string
	// Observation is a free-text note attached by a supervisor.
	Observation *string

	CreatedAt time.Time
}

// Manual reports whether the event was inserted by an administrator.
func (e Event) Manual() bool {
	return e.CreatedBy != nil
}

// Edited reports whether the event was corrected after capture.
func (e Event) Edited() bool {
	return e.EditedBy != nil
}
