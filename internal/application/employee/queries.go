package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	repo "github.com/oksasatya/employee-records-api/internal/domain/repository"
)

type GetEmployeeHandler struct {
	repo   repo.EmployeeRepository
	logger *logrus.Logger
}

func NewGetEmployeeHandler(d Deps) *GetEmployeeHandler {
	d = d.withDefaults()
	return &GetEmployeeHandler{repo: d.Repo, logger: d.Logger}
}

func (h *GetEmployeeHandler) Handle(ctx context.Context, q GetEmployeeQuery) (EmployeeDTO, error) {
	h.logger.WithField("employee_id", q.ID).Debug("get employee")

	e, err := h.repo.FindByID(ctx, q.ID)
	if errors.Is(err, repo.ErrEmployeeNotFound) {
		return EmployeeDTO{}, errNotFound(q.ID)
	}
	if err != nil {
		return EmployeeDTO{}, fmt.Errorf("get employee: %w", err)
	}
	return ToDTO(e), nil
}

type GetAllEmployeesHandler struct {
	repo   repo.EmployeeRepository
	logger *logrus.Logger
}

func NewGetAllEmployeesHandler(d Deps) *GetAllEmployeesHandler {
	d = d.withDefaults()
	return &GetAllEmployeesHandler{repo: d.Repo, logger: d.Logger}
}

func (h *GetAllEmployeesHandler) Handle(ctx context.Context, _ GetAllEmployeesQuery) ([]EmployeeDTO, error) {
	es, err := h.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	h.logger.WithField("results_count", len(es)).Debug("list employees")
	return ToDTOList(es), nil
}

type SearchEmployeesHandler struct {
	repo   repo.EmployeeRepository
	logger *logrus.Logger
}

func NewSearchEmployeesHandler(d Deps) *SearchEmployeesHandler {
	d = d.withDefaults()
	return &SearchEmployeesHandler{repo: d.Repo, logger: d.Logger}
}

// Handle returns employees whose name contains q.Term. An empty result is not an error.
func (h *SearchEmployeesHandler) Handle(ctx context.Context, q SearchEmployeesQuery) ([]EmployeeDTO, error) {
	es, err := h.repo.SearchByName(ctx, q.Term)
	if err != nil {
		return nil, fmt.Errorf("search employees: %w", err)
	}
	h.logger.WithFields(logrus.Fields{
		"search_term":   q.Term,
		"results_count": len(es),
	}).Info("search employees: done")
	return ToDTOList(es), nil
}
