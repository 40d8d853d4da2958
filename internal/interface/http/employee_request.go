package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/employee-records-api/internal/application/employee"
	"github.com/oksasatya/employee-records-api/internal/domain/apperror"
	"github.com/oksasatya/employee-records-api/internal/domain/entity"
)

const (
	msgInvalidPayload = "Invalid request payload"
	msgBodyTooLarge   = "Request body too large"
	msgInvalidID      = "Invalid employee ID - must be a valid number"
	msgSearchRequired = "Search term is required"
)

// dateLayouts are tried in order for dateOfBirth and hireDate.
var dateLayouts = []string{"2006-01-02", time.RFC3339Nano}

// employeeRequest is the wire shape of create and update bodies.
// Dates stay strings here so a bad value becomes a field error instead of a decode failure.
type employeeRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender"`
	Position    string `json:"position"`
	Department  string `json:"department"`
	HireDate    string `json:"hireDate"`
	IsActive    *bool  `json:"isActive"`
}

// parsedDates holds the decoded dates. unparsed lists the fields whose value
// could not be read; the validator reports them with the other field errors.
type parsedDates struct {
	dob, hire time.Time
	unparsed  []string
}

func bindEmployeeRequest(c *gin.Context) (employeeRequest, parsedDates, error) {
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return req, parsedDates{}, apperror.BadRequest(msgBodyTooLarge)
		}
		return req, parsedDates{}, apperror.BadRequest(msgInvalidPayload)
	}

	var (
		d  parsedDates
		ok bool
	)
	if d.dob, ok = parseDate(req.DateOfBirth); !ok {
		d.unparsed = append(d.unparsed, "dateOfBirth")
	}
	if d.hire, ok = parseDate(req.HireDate); !ok {
		d.unparsed = append(d.unparsed, "hireDate")
	}
	return req, d, nil
}

// parseDate treats a blank value as unset so the required rule reports it.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, true
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func toCreateCommand(c *gin.Context) (employee.CreateEmployeeCommand, error) {
	req, d, err := bindEmployeeRequest(c)
	if err != nil {
		return employee.CreateEmployeeCommand{}, err
	}
	return employee.CreateEmployeeCommand{
		Name:        req.Name,
		Email:       req.Email,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
		DateOfBirth: d.dob,
		Gender:      entity.Gender(req.Gender),
		Position:    req.Position,
		Department:  req.Department,
		HireDate:    d.hire,

		UnparsedDates: d.unparsed,
	}, nil
}

func toUpdateCommand(c *gin.Context) (employee.UpdateEmployeeCommand, error) {
	id, err := parseID(c)
	if err != nil {
		return employee.UpdateEmployeeCommand{}, err
	}
	req, d, err := bindEmployeeRequest(c)
	if err != nil {
		return employee.UpdateEmployeeCommand{}, err
	}
	return employee.UpdateEmployeeCommand{
		ID:          id,
		Name:        req.Name,
		Email:       req.Email,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
		DateOfBirth: d.dob,
		Gender:      entity.Gender(req.Gender),
		Position:    req.Position,
		Department:  req.Department,
		HireDate:    d.hire,
		IsActive:    req.IsActive,

		UnparsedDates: d.unparsed,
	}, nil
}

func toGetQuery(c *gin.Context) (employee.GetEmployeeQuery, error) {
	id, err := parseID(c)
	return employee.GetEmployeeQuery{ID: id}, err
}

func toDeleteCommand(c *gin.Context) (employee.DeleteEmployeeCommand, error) {
	id, err := parseID(c)
	return employee.DeleteEmployeeCommand{ID: id}, err
}

func toSearchQuery(c *gin.Context) (employee.SearchEmployeesQuery, error) {
	term := strings.TrimSpace(c.Query("q"))
	if term == "" {
		return employee.SearchEmployeesQuery{}, apperror.BadRequest(msgSearchRequired)
	}
	return employee.SearchEmployeesQuery{Term: term}, nil
}

// parseID accepts base-10 integers only; "12abc" and "1.5" are rejected.
func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperror.BadRequest(msgInvalidID)
	}
	return id, nil
}
