package employee

import (
	"io"

	"github.com/sirupsen/logrus"

	repo "github.com/oksasatya/employee-records-api/internal/domain/repository"
)

// Deps are the collaborators shared by every handler. Only Repo is mandatory.
type Deps struct {
	Repo      repo.EmployeeRepository
	Logger    *logrus.Logger
	Clock     Clock
	Publisher Publisher
}

func (d Deps) withDefaults() Deps {
	if d.Logger == nil {
		d.Logger = logrus.New()
		d.Logger.SetOutput(io.Discard)
	}
	if d.Clock == nil {
		d.Clock = realClock{}
	}
	if d.Publisher == nil {
		d.Publisher = noopPublisher{}
	}
	return d
}

// Handlers groups one handler per use case.
type Handlers struct {
	Create *CreateEmployeeHandler
	Update *UpdateEmployeeHandler
	Delete *DeleteEmployeeHandler
	Get    *GetEmployeeHandler
	GetAll *GetAllEmployeesHandler
	Search *SearchEmployeesHandler
}

func NewHandlers(d Deps) *Handlers {
	d = d.withDefaults()
	return &Handlers{
		Create: NewCreateEmployeeHandler(d),
		Update: NewUpdateEmployeeHandler(d),
		Delete: NewDeleteEmployeeHandler(d),
		Get:    NewGetEmployeeHandler(d),
		GetAll: NewGetAllEmployeesHandler(d),
		Search: NewSearchEmployeesHandler(d),
	}
}
