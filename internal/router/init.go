package router

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/employee-records-api/config"
	"github.com/oksasatya/employee-records-api/internal/application/employee"
	"github.com/oksasatya/employee-records-api/internal/container"
	pginfra "github.com/oksasatya/employee-records-api/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/employee-records-api/internal/interface/http"
	"github.com/oksasatya/employee-records-api/internal/interface/middleware"
	"github.com/oksasatya/employee-records-api/internal/router/modules"
	"github.com/oksasatya/employee-records-api/pkg/helpers"
)

func buildEmployeeHandler() *handlers.EmployeeHandler {
	deps := employee.Deps{
		Repo:   pginfra.NewEmployeeRepository(container.GetPGPool()),
		Logger: container.GetLogger(),
	}
	// a nil *RabbitPublisher must not become a non-nil interface
	if pub := container.GetRabbitPub(); pub != nil {
		deps.Publisher = pub
	}
	return handlers.NewEmployeeHandler(employee.NewHandlers(deps), container.GetLogger())
}

func buildHealthChecks() map[string]modules.Pinger {
	checks := map[string]modules.Pinger{
		"database": func(ctx context.Context) error { return container.GetPGPool().Ping(ctx) },
	}
	if rdb := container.GetRedis(); rdb != nil {
		checks["redis"] = func(ctx context.Context) error { return helpers.PingRedis(ctx, rdb, 2*time.Second) }
	}
	return checks
}

// rateLimiter picks the shared redis limiter when redis is configured, the in-process one otherwise.
func rateLimiter() gin.HandlerFunc {
	cfg := container.GetConfig()
	if !cfg.RateLimitEnabled {
		return nil
	}
	allow := rateLimitAllow(cfg)
	if rdb := container.GetRedis(); rdb != nil {
		return middleware.RateLimit(rdb, cfg.RateLimitPerMinute, time.Minute, middleware.KeyByIP(), allow, container.GetLogger())
	}
	return middleware.LocalRateLimit(cfg.RateLimitPerMinute, time.Minute, middleware.KeyByIP(), allow)
}

// rateLimitAllow exempts health and metrics, plus private-network clients when configured.
func rateLimitAllow(cfg *config.Config) middleware.AllowFunc {
	allow := middleware.AllowPaths("/api/health", "/api/metrics")
	if !cfg.RateLimitExemptPrivate {
		return allow
	}
	return middleware.AllowAny(allow, middleware.AllowPrivateIP())
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	if rl := rateLimiter(); rl != nil {
		r.Use(rl)
	}

	r.Add(modules.NewEmployeeModule(buildEmployeeHandler()))
	r.Add(modules.NewSystemModule(buildHealthChecks(), container.GetMetrics(), container.GetLogger()))
}
