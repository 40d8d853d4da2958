package postgres

import (
	"testing"
	"time"
)

func TestPoolConfig(t *testing.T) {
	t.Parallel()

	cfg, err := poolConfig("postgres://u:p@localhost:5432/employees?sslmode=disable", PoolOptions{
		AppName:     "employee-records-api",
		MaxConns:    12,
		MinConns:    3,
		MaxConnLife: time.Hour,
	})
	if err != nil {
		t.Fatalf("poolConfig returned error: %v", err)
	}
	if cfg.MaxConns != 12 || cfg.MinConns != 3 || cfg.MaxConnLifetime != time.Hour {
		t.Fatalf("unexpected sizing %d/%d/%s", cfg.MaxConns, cfg.MinConns, cfg.MaxConnLifetime)
	}
	if cfg.MaxConnIdleTime != 5*time.Minute {
		t.Fatalf("expected default idle time, got %s", cfg.MaxConnIdleTime)
	}
	if got := cfg.ConnConfig.RuntimeParams["application_name"]; got != "employee-records-api" {
		t.Fatalf("expected application_name, got %q", got)
	}
	if got := cfg.ConnConfig.RuntimeParams["timezone"]; got != "UTC" {
		t.Fatalf("expected UTC session timezone, got %q", got)
	}
}

func TestPoolConfigRejectsBadDSN(t *testing.T) {
	t.Parallel()

	if _, err := poolConfig("postgres://%zz", PoolOptions{}); err == nil {
		t.Fatalf("expected parse error")
	}
}
