package timesheet

import "errors"

// Timesheet domain errors
var (
	ErrInvalidPeriod = errors.New("period must be in YYYY-MM format")
	ErrUnitForbidden = errors.New("caller is not allowed to access this unit")
)
