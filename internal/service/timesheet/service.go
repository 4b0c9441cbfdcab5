package timesheet

import (
	"context"
	"fmt"
	"time"

	"github.com/klfacil/erp-backend-go/internal/domain/employee"
	"github.com/klfacil/erp-backend-go/internal/domain/punch"
	"github.com/klfacil/erp-backend-go/internal/domain/timesheet"
)

type TimesheetServiceImpl struct {
	punch.EventRepository
	employee.Repository
	loc      *time.Location
	renderer timesheet.Renderer
}

func NewTimesheetService(
	eventRepo punch.EventRepository,
	employeeRepo employee.Repository,
	loc *time.Location,
	renderer timesheet.Renderer,
) timesheet.Service {
	return &TimesheetServiceImpl{
		EventRepository: eventRepo,
		Repository:      employeeRepo,
		loc:             loc,
		renderer:        renderer,
	}
}

// Mirror implements timesheet.Service.
func (s *TimesheetServiceImpl) Mirror(ctx context.Context, req timesheet.MirrorRequest) (timesheet.MonthlyLedger, error) {
	if err := req.Validate(); err != nil {
		return timesheet.MonthlyLedger{}, err
	}

	period, err := timesheet.ParsePeriod(req.Period)
	if err != nil {
		return timesheet.MonthlyLedger{}, err
	}

	emp, err := s.Repository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return timesheet.MonthlyLedger{}, fmt.Errorf("failed to get employee: %w", err)
	}

	events, err := s.EventRepository.ListByEmployeeAndRange(
		ctx, req.EmployeeID, period.Start(s.loc), period.End(s.loc), req.UnitID,
	)
	if err != nil {
		return timesheet.MonthlyLedger{}, fmt.Errorf("failed to list punch events: %w", err)
	}

	return s.assemble(emp, period, req.UnitID, events), nil
}

// Export implements timesheet.Service.
func (s *TimesheetServiceImpl) Export(ctx context.Context, req timesheet.MirrorRequest) ([]byte, string, error) {
	ledger, err := s.Mirror(ctx, req)
	if err != nil {
		return nil, "", err
	}

	data, err := s.renderer.Render(ledger)
	if err != nil {
		return nil, "", fmt.Errorf("failed to render ledger: %w", err)
	}

	return data, s.renderer.ContentType(), nil
}

// assemble runs the whole pipeline: bucket events per civil-timezone day,
// reconcile every calendar day of the period, sum the totals, and stamp
// the protocol. Pure given its inputs, so concurrent mirrors need no
// coordination.
func (s *TimesheetServiceImpl) assemble(emp employee.Employee, period timesheet.Period, unitID string, events []punch.Event) timesheet.MonthlyLedger {
	byDay := bucketByDay(events, period, s.loc)

	days := period.Days()
	rows := make([]timesheet.DailyRow, 0, days)
	totalMinutes := 0

	for day := 1; day <= days; day++ {
		weekday := weekdayLabels[time.Date(period.Year, period.Month, day, 0, 0, 0, 0, s.loc).Weekday()]
		row := s.reconcileSafely(day, weekday, byDay[day])
		totalMinutes += row.TotalMinutes
		rows = append(rows, row)
	}

	stampUnit := unitID
	if stampUnit == "" {
		stampUnit = emp.UnitID
	}

	return timesheet.MonthlyLedger{
		Rows:     rows,
		Protocol: stampProtocol(emp.ID, stampUnit, period.String()),
		Employee: timesheet.EmployeeInfo{
			ID:         emp.ID,
			Name:       emp.FullName,
			DocumentID: emp.DocumentID,
			Unit:       emp.UnitName,
			Group:      emp.GroupName,
		},
		Period:       period.String(),
		TotalHours:   totalMinutes / 60,
		TotalMinutes: totalMinutes,
	}
}

// reconcileSafely isolates one day's reconciliation. A failure while
// reconciling a single day must not take down the whole month: the day
// degrades to an all-zero row carrying a warning and the remaining days
// still render.
func (s *TimesheetServiceImpl) reconcileSafely(day int, weekday string, events []punch.Event) (row timesheet.DailyRow) {
	defer func() {
		if r := recover(); r != nil {
			row = timesheet.DailyRow{
				Day:     day,
				Weekday: weekday,
				Warnings: []timesheet.Warning{
					{Message: fmt.Sprintf("day could not be reconciled, review its punches: %v", r)},
				},
				SourceEvents: []punch.EventResponse{},
			}
		}
	}()

	return reconcile(day, weekday, events, s.loc)
}

// reconcile is swappable in tests to exercise the per-day isolation path.
var reconcile = reconcileDay
