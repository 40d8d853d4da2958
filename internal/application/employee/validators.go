package employee

import (
	"time"

	"github.com/oksasatya/employee-records-api/internal/domain/entity"
	"github.com/oksasatya/employee-records-api/pkg/validation"
)

// ValidationResult is the outcome of validating one command.
type ValidationResult struct {
	IsValid bool
	Errors  []string
}

var employeeMessages = validation.Messages{
	"name.required":         "Name is required",
	"name.min":              "Name must be at least 2 characters long",
	"name.max":              "Name must not exceed 100 characters",
	"email.required":        "Email is required",
	"email.email":           "Please provide a valid email address",
	"address.required":      "Address is required",
	"address.min":           "Address must be at least 5 characters long",
	"address.max":           "Address must not exceed 200 characters",
	"phoneNumber.required":  "Phone number is required",
	"phoneNumber.phone":     "Please provide a valid phone number",
	"dateOfBirth.required":  "Date of birth is required",
	"dateOfBirth.notfuture": "Date of birth cannot be in the future",
	"gender.required":       "Gender is required",
	"gender.gender":         "Gender must be Male, Female, or Other",
	"position.required":     "Position is required",
	"position.min":          "Position must be at least 2 characters long",
	"position.max":          "Position must not exceed 100 characters",
	"department.required":   "Department is required",
	"department.min":        "Department must be at least 2 characters long",
	"department.max":        "Department must not exceed 100 characters",
	"hireDate.required":     "Hire date is required",
	"hireDate.notfuture":    "Hire date cannot be in the future",
	"hireDate.onorafter":    "Hire date cannot be before date of birth",
	"isActive.required":     "isActive is required",
	"id.required":           "ID is required",
	"id.gt":                 "ID must be positive",
}

// unparsedDateMessages replace the "required" failure of a date field whose
// input was present but unreadable.
var unparsedDateMessages = map[string]string{
	"dateOfBirth": "Date of birth must be a valid date",
	"hireDate":    "Hire date must be a valid date",
}

func newEngine(clock Clock) *validation.Validator {
	v := validation.New(func() time.Time { return clock.Now() }, employeeMessages)
	v.MustRegister("gender", func(s string) bool { return entity.Gender(s).Valid() })
	return v
}

// withUnparsedDates swaps the "required" message of each unparsed date field
// for its "must be a valid date" message, keeping field order.
func withUnparsedDates(errs []string, fields []string) []string {
	for _, f := range fields {
		msg, ok := unparsedDateMessages[f]
		if !ok {
			continue
		}
		required := employeeMessages[f+".required"]
		replaced := false
		for i, e := range errs {
			if e == required {
				errs[i] = msg
				replaced = true
				break
			}
		}
		if !replaced {
			errs = append(errs, msg)
		}
	}
	return errs
}

func result(errs []string) ValidationResult {
	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

type CreateEmployeeValidator struct {
	v *validation.Validator
}

func NewCreateEmployeeValidator(clock Clock) *CreateEmployeeValidator {
	return &CreateEmployeeValidator{v: newEngine(clock)}
}

func (cv *CreateEmployeeValidator) Validate(cmd CreateEmployeeCommand) ValidationResult {
	return result(withUnparsedDates(cv.v.Struct(cmd), cmd.UnparsedDates))
}

type UpdateEmployeeValidator struct {
	v *validation.Validator
}

func NewUpdateEmployeeValidator(clock Clock) *UpdateEmployeeValidator {
	return &UpdateEmployeeValidator{v: newEngine(clock)}
}

func (uv *UpdateEmployeeValidator) Validate(cmd UpdateEmployeeCommand) ValidationResult {
	return result(withUnparsedDates(uv.v.Struct(cmd), cmd.UnparsedDates))
}

type DeleteEmployeeValidator struct {
	v *validation.Validator
}

func NewDeleteEmployeeValidator(clock Clock) *DeleteEmployeeValidator {
	return &DeleteEmployeeValidator{v: newEngine(clock)}
}

func (dv *DeleteEmployeeValidator) Validate(cmd DeleteEmployeeCommand) ValidationResult {
	return result(dv.v.Struct(cmd))
}
