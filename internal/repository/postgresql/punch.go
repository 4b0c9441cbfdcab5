package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/klfacil/erp-backend-go/internal/domain/punch"
	"github.com/klfacil/erp-backend-go/internal/pkg/database"
)

type punchEventRepository struct {
	db *database.DB
}

func NewPunchEventRepository(db *database.DB) punch.EventRepository {
	return &punchEventRepository{db: db}
}

const punchEventColumns = `
	id, employee_id, unit_id, type, timestamp,
	latitude, longitude, proof_photo_url,
	created_by, edited_by, observation, created_at
`

func scanPunchEvent(row pgx.Row) (punch.Event, error) {
	var ev punch.Event
	err := row.Scan(
		&ev.ID, &ev.EmployeeID, &ev.UnitID, &ev.Type, &ev.Timestamp,
		&ev.Latitude, &ev.Longitude, &ev.ProofPhotoURL,
		&ev.CreatedBy, &ev.EditedBy, &ev.Observation, &ev.CreatedAt,
	)
	return ev, err
}

// Create implements punch.EventRepository.
func (r *punchEventRepository) Create(ctx context.Context, newEvent punch.Event) (punch.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO punch_events (
			id, employee_id, unit_id, type, timestamp,
			latitude, longitude, proof_photo_url,
			created_by, edited_by, observation
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		) RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		newEvent.ID,
		newEvent.EmployeeID,
		newEvent.UnitID,
		newEvent.Type,
		newEvent.Timestamp,
		newEvent.Latitude,
		newEvent.Longitude,
		newEvent.ProofPhotoURL,
		newEvent.CreatedBy,
		newEvent.EditedBy,
		newEvent.Observation,
	).Scan(&newEvent.CreatedAt)

	if err != nil {
		return punch.Event{}, fmt.Errorf("failed to create punch event: %w", err)
	}

	return newEvent, nil
}

// GetByID implements punch.EventRepository.
func (r *punchEventRepository) GetByID(ctx context.Context, id string) (punch.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + punchEventColumns + `
		FROM punch_events
		WHERE id = $1
	`

	ev, err := scanPunchEvent(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return punch.Event{}, punch.ErrEventNotFound
		}
		return punch.Event{}, fmt.Errorf("failed to get punch event: %w", err)
	}

	return ev, nil
}

// Update implements punch.EventRepository.
func (r *punchEventRepository) Update(ctx context.Context, event punch.Event) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE punch_events
		SET timestamp = $2, edited_by = $3, observation = $4
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, event.ID, event.Timestamp, event.EditedBy, event.Observation)
	if err != nil {
		return fmt.Errorf("failed to update punch event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return punch.ErrEventNotFound
	}

	return nil
}

// ListByEmployeeAndRange implements punch.EventRepository. Rows come back
// in insertion order (created_at, then id) because reconciliation dedup
// depends on original arrival order, not on timestamp order.
func (r *punchEventRepository) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time, unitID string) ([]punch.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + punchEventColumns + `
		FROM punch_events
		WHERE employee_id = $1
		  AND timestamp >= $2
		  AND timestamp < $3
	`
	args := []interface{}{employeeID, from, to}

	if unitID != "" {
		query += ` AND unit_id = $4`
		args = append(args, unitID)
	}

	query += ` ORDER BY created_at ASC, id ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list punch events: %w", err)
	}
	defer rows.Close()

	var events []punch.Event
	for rows.Next() {
		ev, err := scanPunchEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan punch event: %w", err)
		}
		events = append(events, ev)
	}

	return events, rows.Err()
}

// List implements punch.EventRepository.
func (r *punchEventRepository) List(ctx context.Context, filter punch.ListFilter) ([]punch.Event, int64, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}

	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("employee_id = $%d", len(args)))
	}
	if filter.UnitID != "" {
		args = append(args, filter.UnitID)
		conditions = append(conditions, fmt.Sprintf("unit_id = $%d", len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conditions = append(conditions, fmt.Sprintf("timestamp >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conditions = append(conditions, fmt.Sprintf("timestamp < $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM punch_events` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count punch events: %w", err)
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := `
		SELECT ` + punchEventColumns + `
		FROM punch_events` + where + fmt.Sprintf(`
		ORDER BY timestamp DESC
		LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list punch events: %w", err)
	}
	defer rows.Close()

	var events []punch.Event
	for rows.Next() {
		ev, err := scanPunchEvent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan punch event: %w", err)
		}
		events = append(events, ev)
	}

	return events, total, rows.Err()
}
