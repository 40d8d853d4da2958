package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/employee-records-api/internal/interface/http"
)

// EmployeeModule wires the employee endpoints under /employees.
//
//	GET    /employees
//	GET    /employees/search?q=
//	GET    /employees/:id
//	POST   /employees
//	PUT    /employees/:id
//	DELETE /employees/:id
type EmployeeModule struct {
	Handler *handlers.EmployeeHandler
}

func NewEmployeeModule(h *handlers.EmployeeHandler) *EmployeeModule {
	return &EmployeeModule{Handler: h}
}

func (m *EmployeeModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/employees")
	g.GET("", m.Handler.GetAll)
	g.GET("/search", m.Handler.Search)
	g.GET("/:id", m.Handler.GetByID)
	g.POST("", m.Handler.Create)
	g.PUT("/:id", m.Handler.Update)
	g.DELETE("/:id", m.Handler.Delete)
}
