package timesheet

import (
	"testing"
	"time"

	"github.com/klfacil/erp-backend-go/internal/domain/punch"
	"github.com/klfacil/erp-backend-go/internal/domain/timesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketByDayCivilTimezone(t *testing.T) {
	period := timesheet.Period{Year: 2025, Month: time.March}

	// 23:50 local on March 10 is already March 11 in UTC; the bucket is
	// decided by the civil timezone, not the UTC calendar day.
	lateNight := punch.Event{
		ID:        "late",
		Type:      punch.EventClockOut,
		Timestamp: time.Date(2025, time.March, 10, 23, 50, 0, 0, testLoc).UTC(),
	}
	assert.Equal(t, 11, lateNight.Timestamp.Day(), "precondition: UTC day already rolled over")

	byDay := bucketByDay([]punch.Event{lateNight}, period, testLoc)

	require.Contains(t, byDay, 10)
	assert.NotContains(t, byDay, 11)
}

func TestBucketByDayExcludesOutOfPeriod(t *testing.T) {
	period := timesheet.Period{Year: 2025, Month: time.March}

	events := []punch.Event{
		{ID: "before", Type: punch.EventClockIn, Timestamp: time.Date(2025, time.February, 28, 10, 0, 0, 0, testLoc).UTC()},
		{ID: "inside", Type: punch.EventClockIn, Timestamp: time.Date(2025, time.March, 1, 10, 0, 0, 0, testLoc).UTC()},
		{ID: "after", Type: punch.EventClockIn, Timestamp: time.Date(2025, time.April, 1, 0, 10, 0, 0, testLoc).UTC()},
		{ID: "wrong-year", Type: punch.EventClockIn, Timestamp: time.Date(2024, time.March, 1, 10, 0, 0, 0, testLoc).UTC()},
	}

	byDay := bucketByDay(events, period, testLoc)

	require.Len(t, byDay, 1)
	require.Len(t, byDay[1], 1)
	assert.Equal(t, "inside", byDay[1][0].ID)
}

func TestBucketByDayPreservesArrivalOrder(t *testing.T) {
	period := timesheet.Period{Year: 2025, Month: time.March}

	a := eventOn(punch.EventClockIn, 5, 9, 0)
	b := eventOn(punch.EventClockIn, 5, 8, 0) // arrived later, earlier timestamp

	byDay := bucketByDay([]punch.Event{a, b}, period, testLoc)

	require.Len(t, byDay[5], 2)
	assert.Equal(t, a.ID, byDay[5][0].ID)
	assert.Equal(t, b.ID, byDay[5][1].ID)
}

func TestDedupeByTypeKeepsFirstArrived(t *testing.T) {
	a := eventOn(punch.EventClockIn, 5, 9, 0)
	b := eventOn(punch.EventClockIn, 5, 8, 0)
	c := eventOn(punch.EventClockOut, 5, 17, 0)

	first := dedupeByType([]punch.Event{a, b, c})

	require.Len(t, first, 2)
	assert.Equal(t, a.ID, first[punch.EventClockIn].ID)
	assert.Equal(t, c.ID, first[punch.EventClockOut].ID)
}

func TestPeriodDays(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2025, time.January, 31},
		{2025, time.February, 28},
		{2024, time.February, 29}, // leap year
		{2000, time.February, 29}, // century leap year
		{1900, time.February, 28}, // century non-leap
		{2025, time.April, 30},
		{2025, time.December, 31},
	}
	for _, c := range cases {
		p := timesheet.Period{Year: c.year, Month: c.month}
		if got := p.Days(); got != c.want {
			t.Errorf("Period{%d, %v}.Days() = %d, want %d", c.year, c.month, got, c.want)
		}
	}
}

func TestParsePeriod(t *testing.T) {
	p, err := timesheet.ParsePeriod("2025-03")
	require.NoError(t, err)
	assert.Equal(t, 2025, p.Year)
	assert.Equal(t, time.March, p.Month)
	assert.Equal(t, "2025-03", p.String())

	for _, bad := range []string{"2025-13", "2025-3", "202503", "", "marco-2025"} {
		_, err := timesheet.ParsePeriod(bad)
		assert.ErrorIs(t, err, timesheet.ErrInvalidPeriod, "input %q", bad)
	}
}
