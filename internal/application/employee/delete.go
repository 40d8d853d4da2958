package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/employee-records-api/internal/domain/apperror"
	repo "github.com/oksasatya/employee-records-api/internal/domain/repository"
)

type DeleteEmployeeHandler struct {
	repo      repo.EmployeeRepository
	validator *DeleteEmployeeValidator
	clock     Clock
	publisher Publisher
	logger    *logrus.Logger
}

func NewDeleteEmployeeHandler(d Deps) *DeleteEmployeeHandler {
	d = d.withDefaults()
	return &DeleteEmployeeHandler{
		repo:      d.Repo,
		validator: NewDeleteEmployeeValidator(d.Clock),
		clock:     d.Clock,
		publisher: d.Publisher,
		logger:    d.Logger,
	}
}

// Handle permanently removes the employee identified by cmd.ID.
func (h *DeleteEmployeeHandler) Handle(ctx context.Context, cmd DeleteEmployeeCommand) error {
	log := h.logger.WithField("employee_id", cmd.ID)
	log.Info("delete employee: start")

	if res := h.validator.Validate(cmd); !res.IsValid {
		return apperror.Validation("Invalid employee ID", res.Errors...)
	}

	if _, err := h.repo.FindByID(ctx, cmd.ID); err != nil {
		if errors.Is(err, repo.ErrEmployeeNotFound) {
			return errNotFound(cmd.ID)
		}
		return fmt.Errorf("delete employee: load: %w", err)
	}

	if err := h.repo.DeleteByID(ctx, cmd.ID); err != nil {
		if errors.Is(err, repo.ErrEmployeeNotFound) {
			return errNotFound(cmd.ID)
		}
		return fmt.Errorf("delete employee: %w", err)
	}

	log.Info("delete employee: done")
	notify(ctx, h.publisher, h.logger, Event{Type: EventEmployeeDeleted, EmployeeID: cmd.ID, OccurredAt: h.clock.Now()})
	return nil
}
