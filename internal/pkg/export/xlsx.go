package export

import (
	"fmt"

	"github.com/klfacil/erp-backend-go/internal/domain/timesheet"
	"github.com/xuri/excelize/v2"
)

// XLSXRenderer renders an assembled monthly ledger as a spreadsheet. It is
// the built-in presentation adapter; the archival PDF renderer implements
// the same timesheet.Renderer contract outside this service.
type XLSXRenderer struct{}

func NewXLSXRenderer() timesheet.Renderer {
	return &XLSXRenderer{}
}

func (r *XLSXRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

var headerRow = []string{
	"Day", "Weekday", "Clock In", "Break Start", "Break End", "Clock Out",
	"Overtime Start", "Overtime End", "Minutes", "Warnings",
}

func (r *XLSXRenderer) Render(ledger timesheet.MonthlyLedger) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	group := ""
	if ledger.Employee.Group != nil {
		group = *ledger.Employee.Group
	}

	if err := f.SetSheetRow(sheet, "A1", &[]interface{}{
		"Employee", ledger.Employee.Name, ledger.Employee.DocumentID,
	}); err != nil {
		return nil, fmt.Errorf("failed to write employee header: %w", err)
	}
	if err := f.SetSheetRow(sheet, "A2", &[]interface{}{
		"Unit", ledger.Employee.Unit, group,
	}); err != nil {
		return nil, fmt.Errorf("failed to write unit header: %w", err)
	}
	if err := f.SetSheetRow(sheet, "A3", &[]interface{}{
		"Period", ledger.Period, "Protocol", ledger.Protocol,
	}); err != nil {
		return nil, fmt.Errorf("failed to write period header: %w", err)
	}

	header := make([]interface{}, len(headerRow))
	for i, h := range headerRow {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A5", &header); err != nil {
		return nil, fmt.Errorf("failed to write table header: %w", err)
	}

	for i, row := range ledger.Rows {
		cell := fmt.Sprintf("A%d", 6+i)
		warnings := ""
		for j, warn := range row.Warnings {
			if j > 0 {
				warnings += "; "
			}
			warnings += warn.Message
		}
		values := []interface{}{
			row.Day,
			row.Weekday,
			entryTime(row.NormalStart),
			entryTime(row.BreakStart),
			entryTime(row.BreakEnd),
			entryTime(row.NormalEnd),
			entryTime(row.OvertimeStart),
			entryTime(row.OvertimeEnd),
			row.TotalMinutes,
			warnings,
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write day %d: %w", row.Day, err)
		}
	}

	totalsCell := fmt.Sprintf("A%d", 6+len(ledger.Rows))
	if err := f.SetSheetRow(sheet, totalsCell, &[]interface{}{
		"Total", "", "", "", "", "", "", "", ledger.TotalMinutes,
		fmt.Sprintf("%dh", ledger.TotalHours),
	}); err != nil {
		return nil, fmt.Errorf("failed to write totals: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize spreadsheet: %w", err)
	}

	return buf.Bytes(), nil
}

func entryTime(e *timesheet.Entry) string {
	if e == nil {
		return ""
	}
	return e.Time
}
