package punch

import "errors"

// Punch domain errors
var (
	ErrEventNotFound    = errors.New("punch event not found")
	ErrInvalidEventType = errors.New("invalid punch event type")
	ErrUnitForbidden    = errors.New("caller is not allowed to access this unit")
)
