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

type UpdateEmployeeHandler struct {
	repo      repo.EmployeeRepository
	validator *UpdateEmployeeValidator
	clock     Clock
	publisher Publisher
	logger    *logrus.Logger
}

func NewUpdateEmployeeHandler(d Deps) *UpdateEmployeeHandler {
	d = d.withDefaults()
	return &UpdateEmployeeHandler{
		repo:      d.Repo,
		validator: NewUpdateEmployeeValidator(d.Clock),
		clock:     d.Clock,
		publisher: d.Publisher,
		logger:    d.Logger,
	}
}

// Handle replaces the mutable fields of an existing employee.
//
// cmd.IsActive is required by validation but the stored value is carried forward;
// the active flag is not changed through this path.
func (h *UpdateEmployeeHandler) Handle(ctx context.Context, cmd UpdateEmployeeCommand) (EmployeeDTO, error) {
	log := h.logger.WithField("employee_id", cmd.ID)
	log.Info("update employee: start")

	if res := h.validator.Validate(cmd); !res.IsValid {
		return EmployeeDTO{}, apperror.Validation(msgInvalidEmployee, res.Errors...)
	}

	existing, err := h.repo.FindByID(ctx, cmd.ID)
	if errors.Is(err, repo.ErrEmployeeNotFound) {
		return EmployeeDTO{}, errNotFound(cmd.ID)
	}
	if err != nil {
		return EmployeeDTO{}, fmt.Errorf("update employee: load: %w", err)
	}

	if cmd.Email != existing.Email {
		holder, err := h.repo.FindByEmail(ctx, cmd.Email)
		switch {
		case err == nil && holder.ID != cmd.ID:
			return EmployeeDTO{}, errDuplicateEmail()
		case err != nil && !errors.Is(err, repo.ErrEmployeeNotFound):
			return EmployeeDTO{}, fmt.Errorf("update employee: check email: %w", err)
		}
	}

	now := h.clock.Now()
	updated := &entity.Employee{
		ID:          existing.ID,
		Email:       cmd.Email,
		Name:        cmd.Name,
		Address:     cmd.Address,
		PhoneNumber: cmd.PhoneNumber,
		DateOfBirth: cmd.DateOfBirth,
		Gender:      cmd.Gender,
		Position:    cmd.Position,
		Department:  cmd.Department,
		HireDate:    cmd.HireDate,
		IsActive:    existing.IsActive,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   now,
	}
	err = h.repo.Update(ctx, updated)
	switch {
	case errors.Is(err, repo.ErrEmployeeNotFound):
		return EmployeeDTO{}, errNotFound(cmd.ID)
	case errors.Is(err, repo.ErrEmailTaken):
		return EmployeeDTO{}, errDuplicateEmail()
	case err != nil:
		return EmployeeDTO{}, fmt.Errorf("update employee: %w", err)
	}

	dto := ToDTO(updated)
	log.Info("update employee: done")
	notify(ctx, h.publisher, h.logger, Event{Type: EventEmployeeUpdated, EmployeeID: updated.ID, OccurredAt: now, Employee: &dto})
	return dto, nil
}
