package timesheet

import (
	"context"
)

// Service defines the reconciliation pipeline entry points.
type Service interface {
	// Mirror builds the monthly ledger for one employee and period from a
	// point-in-time query of punch events. Idempotent: identical inputs
	// yield identical ledgers.
	Mirror(ctx context.Context, req MirrorRequest) (MonthlyLedger, error)

	// Export renders the mirror through the configured document renderer.
	Export(ctx context.Context, req MirrorRequest) ([]byte, string, error)
}

// Renderer turns an assembled ledger into document bytes. The PDF renderer
// used for archival copies lives outside this core; the built-in
// spreadsheet exporter implements the same contract.
type Renderer interface {
	Render(ledger MonthlyLedger) ([]byte, error)
	ContentType() string
}
