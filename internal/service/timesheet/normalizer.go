package timesheet

import (
	"time"

	"github.com/klfacil/erp-backend-go/internal/domain/punch"
	"github.com/klfacil/erp-backend-go/internal/domain/timesheet"
)

// bucketByDay groups a flat event list by day-of-month in the civil
// timezone. Which calendar day an event belongs to is decided by loc,
// never by the server's zone: a punch at 23:50 local must land on the
// local day even when its UTC date already rolled over.
//
// Events whose local (year, month) falls outside the period are dropped
// silently. That is tolerated input, not an error: it shows up around DST
// shifts and near-midnight punches at the period boundary.
//
// Input order is preserved within each bucket so downstream dedup can
// rely on original arrival order.
func bucketByDay(events []punch.Event, period timesheet.Period, loc *time.Location) map[int][]punch.Event {
	byDay := make(map[int][]punch.Event)

	for _, ev := range events {
		local := ev.Timestamp.In(loc)
		if local.Year() != period.Year || local.Month() != period.Month {
			continue
		}
		day := local.Day()
		byDay[day] = append(byDay[day], ev)
	}

	return byDay
}

// dedupeByType keeps only the first-arrived event of each type. Later
// duplicates are ignored for arithmetic but stay visible in the row's
// source events for audit.
func dedupeByType(events []punch.Event) map[punch.EventType]punch.Event {
	first := make(map[punch.EventType]punch.Event, len(punch.EventTypes))

	for _, ev := range events {
		if _, seen := first[ev.Type]; seen {
			continue
		}
		first[ev.Type] = ev
	}

	return first
}
