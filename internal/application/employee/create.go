package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/employee-records-api/internal/domain/apperror"
	"github.com/oksasatya/employee-records-api/internal/domain/entity"
	repo "github.com/oksasatya/employee-records-api/internal/domain/repository"
)

const (
	msgInvalidEmployee = "Invalid employee data"
	msgDuplicateEmail  = "Employee with this email already exists"
	msgEmailUnique     = "Email must be unique"
)

func errDuplicateEmail() error {
	return apperror.Validation(msgDuplicateEmail, msgEmailUnique)
}

func errNotFound(id int64) error {
	return apperror.NotFound("Employee with ID %d not found", id)
}

type CreateEmployeeHandler struct {
	repo      repo.EmployeeRepository
	validator *CreateEmployeeValidator
	clock     Clock
	publisher Publisher
	logger    *logrus.Logger
}

func NewCreateEmployeeHandler(d Deps) *CreateEmployeeHandler {
	d = d.withDefaults()
	return &CreateEmployeeHandler{
		repo:      d.Repo,
		validator: NewCreateEmployeeValidator(d.Clock),
		clock:     d.Clock,
		publisher: d.Publisher,
		logger:    d.Logger,
	}
}

// Handle validates cmd, rejects a taken email and persists a new active employee.
func (h *CreateEmployeeHandler) Handle(ctx context.Context, cmd CreateEmployeeCommand) (EmployeeDTO, error) {
	log := h.logger.WithField("email", cmd.Email)
	log.Info("create employee: start")

	if res := h.validator.Validate(cmd); !res.IsValid {
		return EmployeeDTO{}, apperror.Validation(msgInvalidEmployee, res.Errors...)
	}

	_, err := h.repo.FindByEmail(ctx, cmd.Email)
	switch {
	case err == nil:
		return EmployeeDTO{}, errDuplicateEmail()
	case !errors.Is(err, repo.ErrEmployeeNotFound):
		return EmployeeDTO{}, fmt.Errorf("create employee: check email: %w", err)
	}

	now := h.clock.Now()
	created, err := h.repo.Create(ctx, &entity.Employee{
		ID:          0,
		Email:       cmd.Email,
		Name:        cmd.Name,
		Address:     cmd.Address,
		PhoneNumber: cmd.PhoneNumber,
		DateOfBirth: cmd.DateOfBirth,
		Gender:      cmd.Gender,
		Position:    cmd.Position,
		Department:  cmd.Department,
		HireDate:    cmd.HireDate,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if errors.Is(err, repo.ErrEmailTaken) {
		return EmployeeDTO{}, errDuplicateEmail()
	}
	if err != nil {
		return EmployeeDTO{}, fmt.Errorf("create employee: %w", err)
	}

	dto := ToDTO(created)
	log.WithField("employee_id", created.ID).Info("create employee: done")
	notify(ctx, h.publisher, h.logger, Event{Type: EventEmployeeCreated, EmployeeID: created.ID, OccurredAt: now, Employee: &dto})
	return dto, nil
}
