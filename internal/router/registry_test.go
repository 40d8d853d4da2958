package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type pingModule struct{}

func (pingModule) Register(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("mw")) })
}

func TestRegistryAppliesMiddlewareToModules(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	reg := NewRegistry(engine)
	reg.Use(func(c *gin.Context) { c.Set("mw", "seen"); c.Next() })
	reg.Add(pingModule{})
	reg.RegisterAll()

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "seen" {
		t.Fatalf("expected module route behind shared middleware, got %d %q", rec.Code, rec.Body.String())
	}
}

func TestRegisterAllRunsOnce(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)
	reg := NewRegistry(gin.New())
	reg.Add(pingModule{})
	reg.RegisterAll()
	// a second call would panic on the duplicate /api/ping route
	reg.RegisterAll()
}
