package punch

import (
	"context"
)

// Service defines business logic for punch capture and correction.
type Service interface {
	// Register records a punch captured by the device flow.
	Register(ctx context.Context, req RegisterRequest) (EventResponse, error)

	// RegisterManual records a punch inserted by an administrator; the
	// resulting event carries CreatedBy.
	RegisterManual(ctx context.Context, req ManualEntryRequest) (EventResponse, error)

	// Correct adjusts a captured event, flagging it with EditedBy.
	Correct(ctx context.Context, req CorrectRequest) (EventResponse, error)

	// List retrieves punch events with filters (supervisor/admin).
	List(ctx context.Context, filter ListFilter) (ListEventsResponse, error)
}
