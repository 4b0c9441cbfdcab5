package timesheet

import (
	"time"

	"github.com/klfacil/erp-backend-go/internal/domain/punch"
	"github.com/klfacil/erp-backend-go/internal/domain/timesheet"
)

const clockFormat = "15:04"

// weekdayLabels maps time.Weekday (0 = Sunday) to the labels printed on
// the mirror.
var weekdayLabels = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// reconcileDay turns one day's raw events into a DailyRow. Pure: the same
// event set always produces the same row.
//
// Rules:
//   - at most one event per type counts (first by arrival order);
//   - minutes are computed only when both clock-in and clock-out exist,
//     clamped to zero when punches are out of order;
//   - the break is deducted only when both break marks exist and end is
//     after start; a lone break-end yields a warning instead of a
//     deduction, so a supervisor fixes the window before the total is
//     trusted;
//   - overtime is added when both overtime marks exist and end is after
//     start;
//   - no punches at all is a day off, not an anomaly.
func reconcileDay(day int, weekday string, events []punch.Event, loc *time.Location) timesheet.DailyRow {
	row := timesheet.DailyRow{
		Day:          day,
		Weekday:      weekday,
		Warnings:     []timesheet.Warning{},
		SourceEvents: make([]punch.EventResponse, 0, len(events)),
	}

	for _, ev := range events {
		row.SourceEvents = append(row.SourceEvents, punch.ToEventResponse(ev))
	}

	first := dedupeByType(events)

	clockIn, hasClockIn := first[punch.EventClockIn]
	clockOut, hasClockOut := first[punch.EventClockOut]
	breakStart, hasBreakStart := first[punch.EventBreakStart]
	breakEnd, hasBreakEnd := first[punch.EventBreakEnd]
	overtimeStart, hasOvertimeStart := first[punch.EventOvertimeStart]
	overtimeEnd, hasOvertimeEnd := first[punch.EventOvertimeEnd]

	if hasClockIn {
		row.NormalStart = toEntry(clockIn, loc)
	}
	if hasClockOut {
		row.NormalEnd = toEntry(clockOut, loc)
	}
	if hasBreakStart {
		row.BreakStart = toEntry(breakStart, loc)
	}
	if hasBreakEnd {
		row.BreakEnd = toEntry(breakEnd, loc)
	}
	if hasOvertimeStart {
		row.OvertimeStart = toEntry(overtimeStart, loc)
	}
	if hasOvertimeEnd {
		row.OvertimeEnd = toEntry(overtimeEnd, loc)
	}

	// A break end without a break start cannot be deducted; flag it at the
	// break-end instant for manual correction.
	if hasBreakEnd && !hasBreakStart {
		row.Warnings = append(row.Warnings, timesheet.Warning{
			Time:    breakEnd.Timestamp.In(loc).Format(clockFormat),
			Message: "break end recorded without break start",
		})
	}

	// Absent clock-in or clock-out means no arithmetic: day off or still
	// open, either way zero minutes and no warning.
	if !hasClockIn || !hasClockOut {
		return row
	}

	worked := clockOut.Timestamp.Sub(clockIn.Timestamp)
	if worked < 0 {
		worked = 0
	}

	if hasBreakStart && hasBreakEnd && breakEnd.Timestamp.After(breakStart.Timestamp) {
		worked -= breakEnd.Timestamp.Sub(breakStart.Timestamp)
	}

	if hasOvertimeStart && hasOvertimeEnd && overtimeEnd.Timestamp.After(overtimeStart.Timestamp) {
		worked += overtimeEnd.Timestamp.Sub(overtimeStart.Timestamp)
	}

	minutes := int(worked.Minutes())
	if minutes < 0 {
		minutes = 0
	}
	row.TotalMinutes = minutes

	return row
}

// toEntry formats one selected event as a row cell, carrying provenance
// for downstream highlighting of manual and corrected punches.
func toEntry(ev punch.Event, loc *time.Location) *timesheet.Entry {
	return &timesheet.Entry{
		Time:        ev.Timestamp.In(loc).Format(clockFormat),
		EventID:     ev.ID,
		Manual:      ev.Manual(),
		Edited:      ev.Edited(),
		Observation: ev.Observation,
	}
}
