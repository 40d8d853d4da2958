package main

import (
	"context"
	"errors"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/employee-records-api/config"
	"github.com/oksasatya/employee-records-api/internal/application/employee"
	"github.com/oksasatya/employee-records-api/internal/domain/apperror"
	"github.com/oksasatya/employee-records-api/internal/domain/entity"
	pginfra "github.com/oksasatya/employee-records-api/internal/infrastructure/postgres"
	"github.com/oksasatya/employee-records-api/pkg/helpers"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// demo employees; seeding is idempotent because duplicates are skipped by email
var demo = []employee.CreateEmployeeCommand{
	{Name: "John Doe", Email: "john@example.com", Address: "123 Main St", PhoneNumber: "+1234567890",
		DateOfBirth: day("1990-01-01"), Gender: entity.GenderMale, Position: "Developer", Department: "Engineering", HireDate: day("2020-01-01")},
	{Name: "Jane Smith", Email: "jane@example.com", Address: "45 Oak Avenue", PhoneNumber: "+1987654321",
		DateOfBirth: day("1988-05-12"), Gender: entity.GenderFemale, Position: "Product Manager", Department: "Product", HireDate: day("2018-03-19")},
	{Name: "Alex Kim", Email: "alex@example.com", Address: "9 Harbor Road", PhoneNumber: "+442071234567",
		DateOfBirth: day("1995-11-30"), Gender: entity.GenderOther, Position: "Designer", Department: "Design", HireDate: day("2021-07-01")},
	{Name: "Maria Garcia", Email: "maria@example.com", Address: "77 Sunset Blvd", PhoneNumber: "+34911234567",
		DateOfBirth: day("1985-02-14"), Gender: entity.GenderFemale, Position: "HR Specialist", Department: "Human Resources", HireDate: day("2015-09-01")},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env, helpers.LogOptions{Level: cfg.LogLevel})

	ctx := context.Background()
	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), pginfra.PoolOptions{AppName: cfg.AppName + "-seed", MaxConns: 2})
	if err != nil {
		logger.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	if err := pginfra.RunMigrations(cfg.PostgresDSN(), logger); err != nil {
		logger.Fatalf("migration failed: %v", err)
	}

	app := employee.NewHandlers(employee.Deps{Repo: pginfra.NewEmployeeRepository(pool), Logger: logger})
	for _, cmd := range demo {
		dto, err := app.Create.Handle(ctx, cmd)
		var ve *apperror.ValidationError
		if errors.As(err, &ve) {
			logger.WithFields(logrus.Fields{"email": cmd.Email, "reason": ve.Message}).Info("skipped")
			continue
		}
		if err != nil {
			logger.Fatalf("failed to seed %s: %v", cmd.Email, err)
		}
		logger.WithFields(logrus.Fields{"id": dto.ID, "email": dto.Email}).Info("seeded employee")
	}
}
