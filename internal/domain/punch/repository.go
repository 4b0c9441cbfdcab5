package punch

import (
	"context"
	"time"
)

// EventRepository defines data access for the punch-event store. The
// reconciliation core consumes its output but never calls it directly;
// listing is always scoped to an employee and a closed time window.
type EventRepository interface {
	// Create persists a new punch event and returns it with generated fields.
	Create(ctx context.Context, event Event) (Event, error)

	// GetByID retrieves a single event.
	GetByID(ctx context.Context, id string) (Event, error)

	// Update persists a corrected event (EditedBy must be set by the caller).
	Update(ctx context.Context, event Event) error

	// ListByEmployeeAndRange returns every event for one employee whose
	// timestamp falls in [from, to), in original insertion order. unitID
	// narrows the result when non-empty.
	ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time, unitID string) ([]Event, error)

	// List returns events matching the filter with a total count.
	List(ctx context.Context, filter ListFilter) ([]Event, int64, error)
}
