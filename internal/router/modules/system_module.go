package modules

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/employee-records-api/pkg/response"
)

const healthTimeout = 2 * time.Second

// Pinger reports whether a dependency answers.
type Pinger func(ctx context.Context) error

// SystemModule serves GET /health and, when a registry is set, GET /metrics.
type SystemModule struct {
	Checks  map[string]Pinger
	Metrics *prometheus.Registry
	Logger  *logrus.Logger
}

func NewSystemModule(checks map[string]Pinger, metrics *prometheus.Registry, logger *logrus.Logger) *SystemModule {
	return &SystemModule{Checks: checks, Metrics: metrics, Logger: logger}
}

func (m *SystemModule) Register(rg *gin.RouterGroup) {
	rg.GET("/health", m.health)
	if m.Metrics != nil {
		rg.GET("/metrics", gin.WrapH(promhttp.HandlerFor(m.Metrics, promhttp.HandlerOpts{})))
	}
}

type healthStatus struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func (m *SystemModule) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	names := make([]string, 0, len(m.Checks))
	for name := range m.Checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status := healthStatus{Status: "ok", Checks: make(map[string]string, len(names))}
	var failed []string
	for _, name := range names {
		if err := m.Checks[name](ctx); err != nil {
			if m.Logger != nil {
				m.Logger.WithError(err).WithField("dependency", name).Warn("health check failed")
			}
			status.Checks[name] = "down"
			failed = append(failed, name+" unavailable")
			continue
		}
		status.Checks[name] = "up"
	}

	if len(failed) > 0 {
		response.Error(c, http.StatusServiceUnavailable, "Service unavailable", failed)
		return
	}
	response.OK(c, "Service healthy", status)
}
