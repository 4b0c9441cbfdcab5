package response

import (
	"errors"
	"net/http"

	"github.com/klfacil/erp-backend-go/internal/domain/employee"
	"github.com/klfacil/erp-backend-go/internal/domain/punch"
	"github.com/klfacil/erp-backend-go/internal/domain/timesheet"
	"github.com/klfacil/erp-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Punch domain errors
	case errors.Is(err, punch.ErrEventNotFound):
		NotFound(w, "Punch event not found")
	case errors.Is(err, punch.ErrInvalidEventType):
		BadRequest(w, "Invalid punch event type", nil)
	case errors.Is(err, punch.ErrUnitForbidden):
		Forbidden(w, "Unit not in caller scope")

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrInvalidPeriod):
		BadRequest(w, "Period must be in YYYY-MM format", nil)
	case errors.Is(err, timesheet.ErrUnitForbidden):
		Forbidden(w, "Unit not in caller scope")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
