package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/employee-records-api/internal/domain/entity"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmailTaken       = errors.New("employee email already taken")
)

// EmployeeRepository defines the persistence operations on employees.
// Lookups by id or email return ErrEmployeeNotFound when no row matches.
type EmployeeRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Employee, error)
	FindByEmail(ctx context.Context, email string) (*entity.Employee, error)
	FindAll(ctx context.Context) ([]*entity.Employee, error)
	SearchByName(ctx context.Context, term string) ([]*entity.Employee, error)
	// Create inserts e and returns a copy carrying the storage-assigned id.
	Create(ctx context.Context, e *entity.Employee) (*entity.Employee, error)
	// Update replaces every mutable column of the row identified by e.ID.
	Update(ctx context.Context, e *entity.Employee) error
	DeleteByID(ctx context.Context, id int64) error
}
