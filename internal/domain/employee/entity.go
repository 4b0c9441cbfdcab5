package employee

import (
	"time"
)

// Employee is the read-only directory snapshot attached to a timesheet
// mirror. The directory itself is maintained elsewhere in the ERP; this
// core only reads it.
type Employee struct {
	ID         string
	FullName   string
	DocumentID string
	UnitID     string
	UnitName   string
	GroupName  *string
	HireDate   time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
