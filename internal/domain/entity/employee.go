package entity

import "time"

// Gender is the closed set of genders an employee record accepts.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Valid reports whether g is one of the accepted genders.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Employee is the aggregate root for the employee domain.
// ID is zero until the record is persisted. ID and CreatedAt never change afterwards.
type Employee struct {
	ID          int64
	Email       string
	Name        string
	Address     string
	PhoneNumber string
	DateOfBirth time.Time
	Gender      Gender
	Position    string
	Department  string
	HireDate    time.Time
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
