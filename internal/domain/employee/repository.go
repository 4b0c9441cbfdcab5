package employee

import "context"

// Repository reads the employee directory maintained by the rest of the ERP.
type Repository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
}
