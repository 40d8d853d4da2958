package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("PORT", "")

	cfg := Load()
	if cfg.Port != "3000" {
		t.Fatalf("expected default port 3000, got %q", cfg.Port)
	}
	if !cfg.MigrateOnStart {
		t.Fatalf("expected migrations on start by default")
	}
	if cfg.DBMaxConnLife != time.Hour {
		t.Fatalf("expected 1h max conn lifetime, got %v", cfg.DBMaxConnLife)
	}
	if cfg.RedisAddr != "" {
		t.Fatalf("expected redis disabled by default, got %q", cfg.RedisAddr)
	}
	if len(cfg.TrustedProxies()) != 0 || cfg.RateLimitExemptPrivate {
		t.Fatalf("expected no trusted proxies and no private exemption by default")
	}
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("PORT", "9090")
	t.Setenv("DB_MAX_CONNS", "25")
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 192.168.1.1")
	t.Setenv("RATE_LIMIT_EXEMPT_PRIVATE", "true")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.Port)
	}
	if cfg.DBMaxConns != 25 {
		t.Fatalf("expected 25 max conns, got %d", cfg.DBMaxConns)
	}
	if cfg.RateLimitEnabled {
		t.Fatalf("expected rate limiting disabled")
	}
	if got := cfg.TrustedProxies(); len(got) != 2 || got[0] != "10.0.0.0/8" || got[1] != "192.168.1.1" {
		t.Fatalf("unexpected trusted proxies: %v", got)
	}
	if !cfg.RateLimitExemptPrivate {
		t.Fatalf("expected private clients exempted")
	}
}

func TestLoadFileWithEnvironmentPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "app_name: from-file\ndb_name: filedb\nport: \"7000\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "7100")

	cfg := Load()
	if cfg.AppName != "from-file" {
		t.Fatalf("expected app name from file, got %q", cfg.AppName)
	}
	if cfg.DBName != "filedb" {
		t.Fatalf("expected db name from file, got %q", cfg.DBName)
	}
	if cfg.Port != "7100" {
		t.Fatalf("expected environment to win for port, got %q", cfg.Port)
	}
}

func TestPostgresDSN(t *testing.T) {
	t.Parallel()

	cfg := &Config{DBUser: "u", DBPassword: "p", DBHost: "db", DBPort: "5432", DBName: "employees", DBSSLMode: "disable"}
	want := "postgres://u:p@db:5432/employees?sslmode=disable"
	if got := cfg.PostgresDSN(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestCORSOrigins(t *testing.T) {
	t.Parallel()

	cfg := &Config{CORSAllowedOrigins: " http://a.test ,,http://b.test"}
	got := cfg.CORSOrigins()
	if len(got) != 2 || got[0] != "http://a.test" || got[1] != "http://b.test" {
		t.Fatalf("unexpected origins: %v", got)
	}
}
