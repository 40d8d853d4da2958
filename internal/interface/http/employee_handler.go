package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/employee-records-api/internal/application/employee"
	"github.com/oksasatya/employee-records-api/pkg/response"
)

// EmployeeHandler adapts the employee use cases to HTTP.
// Failures are attached with c.Error and rendered by middleware.ErrorHandler.
type EmployeeHandler struct {
	App    *employee.Handlers
	Logger *logrus.Logger
}

func NewEmployeeHandler(app *employee.Handlers, logger *logrus.Logger) *EmployeeHandler {
	return &EmployeeHandler{App: app, Logger: logger}
}

func (h *EmployeeHandler) GetAll(c *gin.Context) {
	list, err := h.App.GetAll.Handle(c.Request.Context(), employee.GetAllEmployeesQuery{})
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, "Employees retrieved successfully", list)
}

func (h *EmployeeHandler) GetByID(c *gin.Context) {
	q, err := toGetQuery(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	dto, err := h.App.Get.Handle(c.Request.Context(), q)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, "Employee retrieved successfully", dto)
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	cmd, err := toCreateCommand(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.Logger.WithField("email", cmd.Email).Debug("http: create employee")

	dto, err := h.App.Create.Handle(c.Request.Context(), cmd)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Created(c, "Employee created successfully", dto)
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	cmd, err := toUpdateCommand(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.Logger.WithField("employee_id", cmd.ID).Debug("http: update employee")

	dto, err := h.App.Update.Handle(c.Request.Context(), cmd)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, "Employee updated successfully", dto)
}

// Delete answers 200 with null data rather than 204 so the envelope is always present.
func (h *EmployeeHandler) Delete(c *gin.Context) {
	cmd, err := toDeleteCommand(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if err := h.App.Delete.Handle(c.Request.Context(), cmd); err != nil {
		_ = c.Error(err)
		return
	}
	response.NoContent(c, "Employee deleted successfully")
}

func (h *EmployeeHandler) Search(c *gin.Context) {
	q, err := toSearchQuery(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	list, err := h.App.Search.Handle(c.Request.Context(), q)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, "Employee search completed", list)
}
