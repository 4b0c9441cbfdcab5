package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/klfacil/erp-backend-go/internal/domain/employee"
	"github.com/klfacil/erp-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepository{db: db}
}

// GetByID implements employee.Repository. The directory tables are owned
// by the HR modules; this repository only reads the snapshot the ledger
// needs.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.full_name, e.document_id, e.unit_id, u.name, e.group_name,
		       e.hire_date, e.created_at, e.updated_at
		FROM employees e
		JOIN units u ON u.id = e.unit_id
		WHERE e.id = $1
		  AND e.deleted_at IS NULL
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.FullName, &emp.DocumentID, &emp.UnitID, &emp.UnitName, &emp.GroupName,
		&emp.HireDate, &emp.CreatedAt, &emp.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}
