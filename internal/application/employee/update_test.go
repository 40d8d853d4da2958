package employee

import (
	"context"
	"errors"
	"testing"

	"github.com/oksasatya/employee-records-api/internal/domain/apperror"
)

func TestUpdateEmployee(t *testing.T) {
	t.Parallel()

	r := newFakeEmployeeRepo()
	existing := r.seed(johnDoe())
	pub := &recordingPublisher{}
	h := newTestHandlers(r, pub)

	dto, err := h.Update.Handle(context.Background(), validUpdate(existing.ID, true))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if dto.Name != "John Smith" || dto.Position != "Lead Developer" {
		t.Fatalf("fields not replaced: %+v", dto)
	}
	if dto.CreatedAt != "2020-01-01T00:00:00.000Z" {
		t.Fatalf("createdAt must be preserved, got %s", dto.CreatedAt)
	}
	if dto.UpdatedAt != "2024-06-15T09:30:00.000Z" {
		t.Fatalf("updatedAt must be refreshed, got %s", dto.UpdatedAt)
	}

	stored, _ := r.FindByID(context.Background(), existing.ID)
	if stored.Address != "456 Side St" {
		t.Fatalf("expected stored row replaced, got %+v", stored)
	}
	if len(pub.events) != 1 || pub.events[0].Type != EventEmployeeUpdated {
		t.Fatalf("expected one updated event, got %+v", pub.events)
	}
}

// The incoming isActive is validated but the stored value is kept.
func TestUpdateEmployeeKeepsStoredActiveFlag(t *testing.T) {
	t.Parallel()

	r := newFakeEmployeeRepo()
	existing := r.seed(johnDoe())
	h := newTestHandlers(r, nil)

	dto, err := h.Update.Handle(context.Background(), validUpdate(existing.ID, false))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !dto.IsActive {
		t.Fatalf("expected stored isActive=true to be carried forward")
	}
}

func TestUpdateEmployeeRequiresActiveFlag(t *testing.T) {
	t.Parallel()

	r := newFakeEmployeeRepo()
	existing := r.seed(johnDoe())
	h := newTestHandlers(r, nil)

	cmd := validUpdate(existing.ID, true)
	cmd.IsActive = nil
	_, err := h.Update.Handle(context.Background(), cmd)

	var ve *apperror.ValidationError
	if !errors.As(err, &ve) || len(ve.Errors) != 1 || ve.Errors[0] != "isActive is required" {
		t.Fatalf("expected isActive validation error, got %v", err)
	}
}

func TestUpdateEmployeeNotFound(t *testing.T) {
	t.Parallel()

	r := newFakeEmployeeRepo()
	h := newTestHandlers(r, nil)

	_, err := h.Update.Handle(context.Background(), validUpdate(42, true))
	var nf *apperror.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected not found, got %v", err)
	}
	if nf.Message != "Employee with ID 42 not found" {
		t.Fatalf("unexpected message %q", nf.Message)
	}
}

func TestUpdateEmployeeEmailHeldByAnother(t *testing.T) {
	t.Parallel()

	r := newFakeEmployeeRepo()
	first := r.seed(johnDoe())
	other := johnDoe()
	other.Email = "jane@example.com"
	other.Name = "Jane Doe"
	r.seed(other)
	h := newTestHandlers(r, nil)

	cmd := validUpdate(first.ID, true)
	cmd.Email = "jane@example.com"
	_, err := h.Update.Handle(context.Background(), cmd)

	var ve *apperror.ValidationError
	if !errors.As(err, &ve) || ve.Errors[0] != "Email must be unique" {
		t.Fatalf("expected duplicate email error, got %v", err)
	}
}

func TestUpdateEmployeeSameEmailSameID(t *testing.T) {
	t.Parallel()

	r := newFakeEmployeeRepo()
	existing := r.seed(johnDoe())
	h := newTestHandlers(r, nil)

	cmd := validUpdate(existing.ID, true)
	cmd.Email = existing.Email
	if _, err := h.Update.Handle(context.Background(), cmd); err != nil {
		t.Fatalf("expected same email on same id to succeed, got %v", err)
	}
}

func TestUpdateEmployeeToFreeEmail(t *testing.T) {
	t.Parallel()

	r := newFakeEmployeeRepo()
	existing := r.seed(johnDoe())
	h := newTestHandlers(r, nil)

	cmd := validUpdate(existing.ID, true)
	cmd.Email = "new@example.com"
	dto, err := h.Update.Handle(context.Background(), cmd)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if dto.Email != "new@example.com" {
		t.Fatalf("expected new email, got %s", dto.Email)
	}
}

func TestUpdateEmployeeRejectsBirthAfterHire(t *testing.T) {
	t.Parallel()

	r := newFakeEmployeeRepo()
	existing := r.seed(johnDoe())
	h := newTestHandlers(r, nil)
	before := r.callCount()

	cmd := validUpdate(existing.ID, true)
	cmd.DateOfBirth = date(2021, 5, 1)
	cmd.HireDate = date(2021, 4, 30)
	_, err := h.Update.Handle(context.Background(), cmd)

	var ve *apperror.ValidationError
	if !errors.As(err, &ve) || len(ve.Errors) != 1 || ve.Errors[0] != "Hire date cannot be before date of birth" {
		t.Fatalf("expected ordering error, got %v", err)
	}
	if r.callCount() != before {
		t.Fatalf("validation must run before repository access")
	}
}

func TestUpdateEmployeeRejectsFutureDates(t *testing.T) {
	t.Parallel()

	r := newFakeEmployeeRepo()
	existing := r.seed(johnDoe())
	h := newTestHandlers(r, nil)

	cmd := validUpdate(existing.ID, true)
	cmd.DateOfBirth = date(2024, 6, 16)
	cmd.HireDate = date(2024, 6, 16)
	_, err := h.Update.Handle(context.Background(), cmd)

	var ve *apperror.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	want := []string{"Date of birth cannot be in the future", "Hire date cannot be in the future"}
	if len(ve.Errors) != 2 || ve.Errors[0] != want[0] || ve.Errors[1] != want[1] {
		t.Fatalf("expected %v, got %v", want, ve.Errors)
	}
}
