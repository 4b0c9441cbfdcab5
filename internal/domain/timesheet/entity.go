package timesheet

import (
	"fmt"
	"time"

	"github.com/klfacil/erp-backend-go/internal/domain/punch"
)

// Period is one civil-time month, the unit a timesheet mirror covers.
type Period struct {
	Year  int
	Month time.Month
}

// ParsePeriod parses a strict "YYYY-MM" period string.
func ParsePeriod(s string) (Period, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Period{}, ErrInvalidPeriod
	}
	return Period{Year: t.Year(), Month: t.Month()}, nil
}

// String formats the period as "YYYY-MM". This exact form feeds the
// protocol stamp, so it must not change.
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// Days returns the number of calendar days in the period, leap years
// included. Day 0 of the following month normalizes to the last day of
// this one.
func (p Period) Days() int {
	return time.Date(p.Year, p.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Start returns midnight on the first day of the period in loc.
func (p Period) Start(loc *time.Location) time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, loc)
}

// End returns midnight on the first day of the following month in loc.
func (p Period) End(loc *time.Location) time.Time {
	return time.Date(p.Year, p.Month+1, 1, 0, 0, 0, 0, loc)
}

// Entry is one populated time cell of a daily row, tied back to the punch
// event it was derived from so presentation layers can highlight manual
// insertions and corrections.
type Entry struct {
	Time        string  `json:"time"` // "15:04" in the civil timezone
	EventID     string  `json:"event_id"`
	Manual      bool    `json:"manual"`
	Edited      bool    `json:"edited"`
	Observation *string `json:"observation,omitempty"`
}

// Warning is a day-level anomaly requiring human correction. It is
// synthesized during reconciliation and never persisted.
type Warning struct {
	Time    string `json:"time,omitempty"` // "15:04", when tied to an instant
	Message string `json:"message"`
}

// DailyRow is the reconciled result for one calendar day of the period.
// TotalMinutes is fully determined by SourceEvents; no other state feeds it.
type DailyRow struct {
	Day           int                   `json:"day"`
	Weekday       string                `json:"weekday"`
	NormalStart   *Entry                `json:"normalStart"`
	NormalEnd     *Entry                `json:"normalEnd"`
	BreakStart    *Entry                `json:"breakStart"`
	BreakEnd      *Entry                `json:"breakEnd"`
	OvertimeStart *Entry                `json:"overtimeStart"`
	OvertimeEnd   *Entry                `json:"overtimeEnd"`
	TotalMinutes  int                   `json:"totalMinutes"`
	Warnings      []Warning             `json:"warnings"`
	SourceEvents  []punch.EventResponse `json:"sourceEvents"`
}

// EmployeeInfo is the directory snapshot embedded in the ledger.
type EmployeeInfo struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	DocumentID string  `json:"document_id"`
	Unit       string  `json:"unit"`
	Group      *string `json:"group,omitempty"`
}

// MonthlyLedger is the aggregate artifact handed to presentation adapters.
// The JSON field names are a documented public contract consumed by the
// front end and embedded in generated documents.
type MonthlyLedger struct {
	Rows         []DailyRow   `json:"table"`
	Protocol     string       `json:"protocolo"`
	Employee     EmployeeInfo `json:"funcionario"`
	Period       string       `json:"periodo"`
	TotalHours   int          `json:"totalHorasMes"`
	TotalMinutes int          `json:"totalMinutosMes"`
}
