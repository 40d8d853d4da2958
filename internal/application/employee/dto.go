package employee

import (
	"time"

	"github.com/oksasatya/employee-records-api/internal/domain/entity"
)

// ISOLayout is the wire format for every date and timestamp: UTC, millisecond precision.
const ISOLayout = "2006-01-02T15:04:05.000Z"

// EmployeeDTO is the external shape of an employee.
type EmployeeDTO struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender"`
	Position    string `json:"position"`
	Department  string `json:"department"`
	HireDate    string `json:"hireDate"`
	IsActive    bool   `json:"isActive"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// FormatISO renders t in ISOLayout.
func FormatISO(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

// ToDTO maps an entity to its external shape. It has no side effects.
func ToDTO(e *entity.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:          e.ID,
		Email:       e.Email,
		Name:        e.Name,
		Address:     e.Address,
		PhoneNumber: e.PhoneNumber,
		DateOfBirth: FormatISO(e.DateOfBirth),
		Gender:      string(e.Gender),
		Position:    e.Position,
		Department:  e.Department,
		HireDate:    FormatISO(e.HireDate),
		IsActive:    e.IsActive,
		CreatedAt:   FormatISO(e.CreatedAt),
		UpdatedAt:   FormatISO(e.UpdatedAt),
	}
}

// ToDTOList maps every entity. The result is never nil so it encodes as [].
func ToDTOList(es []*entity.Employee) []EmployeeDTO {
	out := make([]EmployeeDTO, 0, len(es))
	for _, e := range es {
		out = append(out, ToDTO(e))
	}
	return out
}
