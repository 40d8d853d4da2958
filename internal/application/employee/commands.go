package employee

import (
	"time"

	"github.com/oksasatya/employee-records-api/internal/domain/entity"
)

// CreateEmployeeCommand carries the fields accepted when hiring an employee.
// New employees are always active, so there is no IsActive here.
type CreateEmployeeCommand struct {
	Name        string        `json:"name" validate:"required,min=2,max=100"`
	Email       string        `json:"email" validate:"required,email"`
	Address     string        `json:"address" validate:"required,min=5,max=200"`
	PhoneNumber string        `json:"phoneNumber" validate:"required,phone"`
	DateOfBirth time.Time     `json:"dateOfBirth" validate:"required,notfuture"`
	Gender      entity.Gender `json:"gender" validate:"required,gender"`
	Position    string        `json:"position" validate:"required,min=2,max=100"`
	Department  string        `json:"department" validate:"required,min=2,max=100"`
	HireDate    time.Time     `json:"hireDate" validate:"required,notfuture,onorafter=DateOfBirth"`

	// UnparsedDates names the date fields ("dateOfBirth", "hireDate") whose
	// input could not be read as a date. They are left zero here.
	UnparsedDates []string `json:"-" validate:"-"`
}

// UpdateEmployeeCommand replaces every mutable field of employee ID.
type UpdateEmployeeCommand struct {
	ID          int64         `json:"id" validate:"required,gt=0"`
	Name        string        `json:"name" validate:"required,min=2,max=100"`
	Email       string        `json:"email" validate:"required,email"`
	Address     string        `json:"address" validate:"required,min=5,max=200"`
	PhoneNumber string        `json:"phoneNumber" validate:"required,phone"`
	DateOfBirth time.Time     `json:"dateOfBirth" validate:"required,notfuture"`
	Gender      entity.Gender `json:"gender" validate:"required,gender"`
	Position    string        `json:"position" validate:"required,min=2,max=100"`
	Department  string        `json:"department" validate:"required,min=2,max=100"`
	HireDate    time.Time     `json:"hireDate" validate:"required,notfuture,onorafter=DateOfBirth"`
	IsActive    *bool         `json:"isActive" validate:"required"`

	UnparsedDates []string `json:"-" validate:"-"`
}

type DeleteEmployeeCommand struct {
	ID int64 `json:"id" validate:"required,gt=0"`
}

type GetEmployeeQuery struct {
	ID int64
}

type GetAllEmployeesQuery struct{}

// SearchEmployeesQuery matches employees whose name contains Term.
type SearchEmployeesQuery struct {
	Term string
}
