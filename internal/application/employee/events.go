package employee

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	EventEmployeeCreated = "employee.created"
	EventEmployeeUpdated = "employee.updated"
	EventEmployeeDeleted = "employee.deleted"
)

// Event is the change notification published after a successful mutation.
type Event struct {
	Type       string       `json:"type"`
	EmployeeID int64        `json:"employeeId"`
	OccurredAt time.Time    `json:"occurredAt"`
	Employee   *EmployeeDTO `json:"employee,omitempty"`
}

// Publisher delivers change notifications, e.g. to a message queue.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

type noopPublisher struct{}

func (noopPublisher) PublishJSON(context.Context, any) error { return nil }

// notify publishes evt; a failed publish is logged and never fails the mutation.
func notify(ctx context.Context, p Publisher, logger *logrus.Logger, evt Event) {
	if err := p.PublishJSON(ctx, evt); err != nil {
		logger.WithError(err).WithFields(logrus.Fields{
			"event":       evt.Type,
			"employee_id": evt.EmployeeID,
		}).Warn("publish employee event failed")
	}
}

// DecodeEvent parses a published notification and rejects unknown types.
func DecodeEvent(b []byte) (Event, error) {
	var evt Event
	if err := json.Unmarshal(b, &evt); err != nil {
		return Event{}, fmt.Errorf("decode employee event: %w", err)
	}
	switch evt.Type {
	case EventEmployeeCreated, EventEmployeeUpdated, EventEmployeeDeleted:
	default:
		return Event{}, fmt.Errorf("unknown employee event type %q", evt.Type)
	}
	if evt.EmployeeID <= 0 {
		return Event{}, fmt.Errorf("employee event %s without employee id", evt.Type)
	}
	return evt, nil
}
