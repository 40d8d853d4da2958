package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/employee-records-api/config"
	"github.com/oksasatya/employee-records-api/internal/application/employee"
	"github.com/oksasatya/employee-records-api/pkg/helpers"
)

const consumerTag = "employee-event-worker"

// event_worker consumes employee change notifications and logs each one.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-event-worker", cfg.Env, helpers.LogOptions{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
		Compress:   cfg.LogCompress,
	})

	if cfg.RabbitMQURL == "" || cfg.RabbitMQEmployeeQueue == "" {
		logger.Fatal("RabbitMQ not configured")
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		logger.Fatalf("amqp dial: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		logger.Fatalf("amqp channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	// prefetch for fair dispatch across workers
	if err := ch.Qos(16, 0, false); err != nil {
		logger.Fatalf("qos: %v", err)
	}
	if _, err := ch.QueueDeclare(cfg.RabbitMQEmployeeQueue, true, false, false, false, nil); err != nil {
		logger.Fatalf("queue declare: %v", err)
	}

	msgs, err := ch.Consume(cfg.RabbitMQEmployeeQueue, consumerTag, false, false, false, false, nil)
	if err != nil {
		logger.Fatalf("consume: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for msg := range msgs {
			handleDelivery(logger, msg)
		}
	}()

	logger.WithField("queue", cfg.RabbitMQEmployeeQueue).Info("event worker listening")
	<-ctx.Done()
	logger.Info("shutting down...")
	_ = ch.Cancel(consumerTag, false)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
	}
}

// handleDelivery drops undecodable messages instead of requeueing them forever.
func handleDelivery(logger *logrus.Logger, msg amqp.Delivery) {
	evt, err := employee.DecodeEvent(msg.Body)
	if err != nil {
		logger.WithError(err).Warn("bad employee event")
		_ = msg.Nack(false, false)
		return
	}

	fields := logrus.Fields{
		"event":       evt.Type,
		"employee_id": evt.EmployeeID,
		"occurred_at": evt.OccurredAt.Format(time.RFC3339),
	}
	if evt.Employee != nil {
		fields["email"] = evt.Employee.Email
		fields["is_active"] = evt.Employee.IsActive
	}
	logger.WithFields(fields).Info("employee changed")
	_ = msg.Ack(false)
}
