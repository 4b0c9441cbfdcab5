package punch

import (
	"time"

	"github.com/klfacil/erp-backend-go/internal/pkg/validator"
)

// ========================================
// PUNCH DTOs
// ========================================

// RegisterRequest is a punch captured by the device flow.
type RegisterRequest struct {
	EmployeeID    string   `json:"employee_id"`
	UnitID        string   `json:"unit_id"`
	Type          string   `json:"type"`
	Timestamp     string   `json:"timestamp"` // RFC3339
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	ProofPhotoURL *string  `json:"proof_photo_url"`
	Observation   *string  `json:"observation"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.UnitID) {
		errs = append(errs, validator.ValidationError{
			Field:   "unit_id",
			Message: "unit_id is required",
		})
	}

	if !EventType(r.Type).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of CLOCK_IN, BREAK_START, BREAK_END, CLOCK_OUT, OVERTIME_START, OVERTIME_END",
		})
	}

	if _, ok := validator.IsValidDateTime(r.Timestamp); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "timestamp",
			Message: "timestamp must be a valid RFC3339 instant",
		})
	}

	if r.Latitude != nil && (*r.Latitude < -90 || *r.Latitude > 90) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && (*r.Longitude < -180 || *r.Longitude > 180) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ManualEntryRequest is a punch inserted by an administrator, typically to
// fill a gap the reconciliation flagged (missing break start and the like).
type ManualEntryRequest struct {
	EmployeeID  string  `json:"employee_id"`
	UnitID      string  `json:"unit_id"`
	Type        string  `json:"type"`
	Timestamp   string  `json:"timestamp"`
	Observation *string `json:"observation"`
}

func (r *ManualEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.UnitID) {
		errs = append(errs, validator.ValidationError{
			Field:   "unit_id",
			Message: "unit_id is required",
		})
	}

	if !EventType(r.Type).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of CLOCK_IN, BREAK_START, BREAK_END, CLOCK_OUT, OVERTIME_START, OVERTIME_END",
		})
	}

	if _, ok := validator.IsValidDateTime(r.Timestamp); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "timestamp",
			Message: "timestamp must be a valid RFC3339 instant",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// CorrectRequest fixes a captured event. Only the timestamp and the
// observation can change; the correction is flagged via EditedBy.
type CorrectRequest struct {
	ID          string  `json:"-"`
	Timestamp   *string `json:"timestamp"`
	Observation *string `json:"observation"`
}

func (r *CorrectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Timestamp != nil {
		if _, ok := validator.IsValidDateTime(*r.Timestamp); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp must be a valid RFC3339 instant",
			})
		}
	}

	if r.Timestamp == nil && r.Observation == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "at least one of timestamp or observation must be provided",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ListFilter narrows event listing.
type ListFilter struct {
	EmployeeID string
	UnitID     string
	From       *time.Time
	To         *time.Time
	Page       int
	Limit      int
}

// EventResponse is the wire shape of a punch event.
type EventResponse struct {
	ID            string   `json:"id"`
	EmployeeID    string   `json:"employee_id"`
	UnitID        string   `json:"unit_id"`
	Type          string   `json:"type"`
	Timestamp     string   `json:"timestamp"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	ProofPhotoURL *string  `json:"proof_photo_url,omitempty"`
	CreatedBy     *string  `json:"created_by,omitempty"`
	EditedBy      *string  `json:"edited_by,omitempty"`
	Observation   *string  `json:"observation,omitempty"`
	CreatedAt     string   `json:"created_at"`
}

// ToEventResponse converts an Event entity to its wire shape. Timestamps
// are emitted as RFC3339 in UTC so the representation is stable across
// server zones.
func ToEventResponse(ev Event) EventResponse {
	return EventResponse{
		ID:            ev.ID,
		EmployeeID:    ev.EmployeeID,
		UnitID:        ev.UnitID,
		Type:          string(ev.Type),
		Timestamp:     ev.Timestamp.UTC().Format(time.RFC3339),
		Latitude:      ev.Latitude,
		Longitude:     ev.Longitude,
		ProofPhotoURL: ev.ProofPhotoURL,
		CreatedBy:     ev.CreatedBy,
		EditedBy:      ev.EditedBy,
		Observation:   ev.Observation,
		CreatedAt:     ev.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ListEventsResponse wraps a filtered listing.
type ListEventsResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	Events     []EventResponse `json:"events"`
}
