package timesheet

import (
	"github.com/klfacil/erp-backend-go/internal/pkg/validator"
)

// ========================================
// TIMESHEET DTOs
// ========================================

// MirrorRequest asks for one employee's monthly mirror. UnitID optionally
// narrows the query to a single unit; when set it also narrows the
// protocol stamp.
type MirrorRequest struct {
	EmployeeID string
	Period     string // "YYYY-MM"
	UnitID     string
}

func (r *MirrorRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsValidPeriod(r.Period) {
		errs = append(errs, validator.ValidationError{
			Field:   "period",
			Message: "period must be in YYYY-MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
