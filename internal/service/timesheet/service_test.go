package timesheet

import (
	"context"
	"testing"
	"time"

	"github.com/klfacil/erp-backend-go/internal/domain/employee"
	"github.com/klfacil/erp-backend-go/internal/domain/punch"
	"github.com/klfacil/erp-backend-go/internal/domain/timesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory collaborators. The event store and the employee directory are
// external services; the pipeline only needs their read contracts.

type fakeEventRepo struct {
	events []punch.Event
}

func (f *fakeEventRepo) Create(ctx context.Context, ev punch.Event) (punch.Event, error) {
	f.events = append(f.events, ev)
	return ev, nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (punch.Event, error) {
	for _, ev := range f.events {
		if ev.ID == id {
			return ev, nil
		}
	}
	return punch.Event{}, punch.ErrEventNotFound
}

func (f *fakeEventRepo) Update(ctx context.Context, ev punch.Event) error { return nil }

func (f *fakeEventRepo) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time, unitID string) ([]punch.Event, error) {
	var out []punch.Event
	for _, ev := range f.events {
		if ev.EmployeeID != employeeID {
			continue
		}
		if unitID != "" && ev.UnitID != unitID {
			continue
		}
		out = append(out, ev)
	}
	return out, nil
}

func (f *fakeEventRepo) List(ctx context.Context, filter punch.ListFilter) ([]punch.Event, int64, error) {
	return f.events, int64(len(f.events)), nil
}

type fakeEmployeeRepo struct {
	emp employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if id != f.emp.ID {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return f.emp, nil
}

func testEmployee() employee.Employee {
	group := "Facilities"
	return employee.Employee{
		ID:         "emp-1",
		FullName:   "Jordan Reis",
		DocumentID: "12345678900",
		UnitID:     "unit-1",
		UnitName:   "HQ Campus",
		GroupName:  &group,
	}
}

func newTestService(events []punch.Event) timesheet.Service {
	return NewTimesheetService(
		&fakeEventRepo{events: events},
		&fakeEmployeeRepo{emp: testEmployee()},
		testLoc,
		nil,
	)
}

func TestMirrorCalendarCompleteness(t *testing.T) {
	svc := newTestService(nil)

	cases := []struct {
		period string
		days   int
	}{
		{"2025-03", 31},
		{"2025-02", 28},
		{"2024-02", 29}, // leap year
		{"2025-04", 30},
	}
	for _, c := range cases {
		ledger, err := svc.Mirror(context.Background(), timesheet.MirrorRequest{
			EmployeeID: "emp-1",
			Period:     c.period,
		})
		require.NoError(t, err)
		assert.Len(t, ledger.Rows, c.days, "period %s", c.period)
		for i, row := range ledger.Rows {
			assert.Equal(t, i+1, row.Day)
		}
	}
}

func TestMirrorTotalsAndProtocol(t *testing.T) {
	events := []punch.Event{
		eventOn(punch.EventClockIn, 10, 8, 0),
		eventOn(punch.EventBreakStart, 10, 12, 0),
		eventOn(punch.EventBreakEnd, 10, 13, 0),
		eventOn(punch.EventClockOut, 10, 17, 0),
		eventOn(punch.EventClockIn, 11, 8, 0),
		eventOn(punch.EventClockOut, 11, 12, 30),
	}
	svc := newTestService(events)

	ledger, err := svc.Mirror(context.Background(), timesheet.MirrorRequest{
		EmployeeID: "emp-1",
		Period:     "2025-03",
	})
	require.NoError(t, err)

	assert.Equal(t, 480+270, ledger.TotalMinutes)
	assert.Equal(t, 12, ledger.TotalHours) // floor(750 / 60)
	assert.Equal(t, "2025-03", ledger.Period)
	assert.Equal(t, stampProtocol("emp-1", "unit-1", "2025-03"), ledger.Protocol)
	assert.Equal(t, "Jordan Reis", ledger.Employee.Name)
	assert.Equal(t, "HQ Campus", ledger.Employee.Unit)

	// Days without punches are present and zeroed
	assert.Equal(t, 0, ledger.Rows[0].TotalMinutes)
	assert.Equal(t, 480, ledger.Rows[9].TotalMinutes)
	assert.Equal(t, 270, ledger.Rows[10].TotalMinutes)
}

func TestMirrorUnitFilterNarrowsProtocol(t *testing.T) {
	svc := newTestService(nil)

	ledger, err := svc.Mirror(context.Background(), timesheet.MirrorRequest{
		EmployeeID: "emp-1",
		Period:     "2025-03",
		UnitID:     "unit-7",
	})
	require.NoError(t, err)

	assert.Equal(t, stampProtocol("emp-1", "unit-7", "2025-03"), ledger.Protocol)
}

func TestMirrorIdempotent(t *testing.T) {
	events := []punch.Event{
		eventOn(punch.EventClockIn, 10, 8, 0),
		eventOn(punch.EventBreakEnd, 10, 13, 0),
		eventOn(punch.EventClockOut, 10, 17, 0),
	}
	svc := newTestService(events)

	req := timesheet.MirrorRequest{EmployeeID: "emp-1", Period: "2025-03"}

	first, err := svc.Mirror(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.Mirror(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestMirrorWeekdayLabels(t *testing.T) {
	svc := newTestService(nil)

	ledger, err := svc.Mirror(context.Background(), timesheet.MirrorRequest{
		EmployeeID: "emp-1",
		Period:     "2025-03",
	})
	require.NoError(t, err)

	// 2025-03-01 was a Saturday
	assert.Equal(t, "Sat", ledger.Rows[0].Weekday)
	assert.Equal(t, "Sun", ledger.Rows[1].Weekday)
	assert.Equal(t, "Mon", ledger.Rows[2].Weekday)
	assert.Equal(t, "Sat", ledger.Rows[28].Weekday)
}

func TestMirrorValidation(t *testing.T) {
	svc := newTestService(nil)

	_, err := svc.Mirror(context.Background(), timesheet.MirrorRequest{
		EmployeeID: "emp-1",
		Period:     "03/2025",
	})
	assert.Error(t, err)

	_, err = svc.Mirror(context.Background(), timesheet.MirrorRequest{
		EmployeeID: "",
		Period:     "2025-03",
	})
	assert.Error(t, err)

	_, err = svc.Mirror(context.Background(), timesheet.MirrorRequest{
		EmployeeID: "no-such-employee",
		Period:     "2025-03",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestMirrorIsolatesFailedDay(t *testing.T) {
	original := reconcile
	defer func() { reconcile = original }()
	reconcile = func(day int, weekday string, events []punch.Event, loc *time.Location) timesheet.DailyRow {
		if day == 15 {
			panic("corrupt punch data")
		}
		return original(day, weekday, events, loc)
	}

	events := []punch.Event{
		eventOn(punch.EventClockIn, 10, 8, 0),
		eventOn(punch.EventClockOut, 10, 17, 0),
	}
	svc := newTestService(events)

	ledger, err := svc.Mirror(context.Background(), timesheet.MirrorRequest{
		EmployeeID: "emp-1",
		Period:     "2025-03",
	})
	require.NoError(t, err)

	// The failed day degrades to a zeroed row with a warning; every other
	// day still reconciles.
	require.Len(t, ledger.Rows, 31)
	failed := ledger.Rows[14]
	assert.Equal(t, 0, failed.TotalMinutes)
	require.Len(t, failed.Warnings, 1)
	assert.Contains(t, failed.Warnings[0].Message, "could not be reconciled")
	assert.Equal(t, 540, ledger.Rows[9].TotalMinutes)
	assert.Equal(t, 540, ledger.TotalMinutes)
}
