package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/joho/godotenv"

	"github.com/oksasatya/employee-records-api/config"
	pginfra "github.com/oksasatya/employee-records-api/internal/infrastructure/postgres"
	"github.com/oksasatya/employee-records-api/pkg/helpers"
)

const usage = `usage: migrate <command>

commands:
  up        apply all pending migrations
  down      roll back the most recent migration
  version   print the current schema version
  force N   mark version N as applied and clear the dirty flag`

func main() {
	flag.Usage = func() { fmt.Fprintln(os.Stderr, usage) }
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-migrate", cfg.Env, helpers.LogOptions{Level: cfg.LogLevel})

	m, err := pginfra.NewMigrator(cfg.PostgresDSN())
	if err != nil {
		logger.Fatalf("open migrator: %v", err)
	}
	defer func() { _, _ = m.Close() }()

	switch cmd := flag.Arg(0); cmd {
	case "up":
		err = m.Up()
	case "down":
		err = m.Steps(-1)
	case "version":
		v, dirty, verr := m.Version()
		if errors.Is(verr, migrate.ErrNilVersion) {
			fmt.Println("no migrations applied")
			return
		}
		if verr != nil {
			logger.Fatalf("version: %v", verr)
		}
		fmt.Printf("version=%d dirty=%v\n", v, dirty)
		return
	case "force":
		if flag.NArg() < 2 {
			flag.Usage()
			os.Exit(2)
		}
		v, perr := strconv.Atoi(flag.Arg(1))
		if perr != nil {
			logger.Fatalf("force: invalid version %q", flag.Arg(1))
		}
		err = m.Force(v)
	default:
		flag.Usage()
		os.Exit(2)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no change")
		return
	}
	if err != nil {
		logger.Fatalf("%s: %v", flag.Arg(0), err)
	}
	logger.Infof("%s: done", flag.Arg(0))
}
