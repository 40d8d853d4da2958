package validation

import (
	"testing"
	"time"
)

type sample struct {
	Name  string    `json:"name" validate:"required,min=2,max=5"`
	Phone string    `json:"phone" validate:"required,phone"`
	Start time.Time `json:"start" validate:"required,notfuture"`
	End   time.Time `json:"end" validate:"required,notfuture,onorafter=Start"`
	Kind  string    `json:"kind" validate:"required,oneof=A B"`
	Count int64     `json:"count" validate:"gt=0"`
}

func fixedNow() time.Time { return time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC) }

func validSample() sample {
	return sample{
		Name:  "Ann",
		Phone: "+1234567890",
		Start: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
		Kind:  "A",
		Count: 1,
	}
}

func TestStructValid(t *testing.T) {
	t.Parallel()

	v := New(fixedNow, nil)
	if errs := v.Struct(validSample()); errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestStructCollectsAllErrors(t *testing.T) {
	t.Parallel()

	v := New(fixedNow, Messages{"name.required": "Name is required"})
	errs := v.Struct(sample{})
	// every field fails; collect-all must report each one
	if len(errs) != 6 {
		t.Fatalf("expected 6 errors, got %d: %v", len(errs), errs)
	}
	if errs[0] != "Name is required" {
		t.Fatalf("expected custom message first, got %q", errs[0])
	}
	if errs[1] != "phone is required" {
		t.Fatalf("expected fallback message, got %q", errs[1])
	}
}

func TestPhoneRule(t *testing.T) {
	t.Parallel()

	v := New(fixedNow, nil)
	cases := map[string]bool{
		"+1234567890":        true,
		"1":                  true,
		"1234567890123456":   true,
		"12345678901234567":  false,
		"0123456":            false,
		"+0123":              false,
		"12-34":              false,
		"++1":                false,
		"+12345678901234567": false,
		"+9999999999999999":  true,
		"phone":              false,
		"":                   false,
	}
	for phone, ok := range cases {
		s := validSample()
		s.Phone = phone
		errs := v.Struct(s)
		if ok && errs != nil {
			t.Fatalf("expected %q to pass, got %v", phone, errs)
		}
		if !ok && errs == nil {
			t.Fatalf("expected %q to fail", phone)
		}
	}
}

func TestNotFutureUsesDayGranularity(t *testing.T) {
	t.Parallel()

	v := New(fixedNow, Messages{"start.notfuture": "Start cannot be in the future"})

	s := validSample()
	s.Start = time.Date(2024, 6, 15, 23, 59, 0, 0, time.UTC)
	s.End = s.Start
	if errs := v.Struct(s); errs != nil {
		t.Fatalf("later the same day must pass, got %v", errs)
	}

	s.Start = time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC)
	s.End = s.Start
	errs := v.Struct(s)
	if len(errs) != 2 || errs[0] != "Start cannot be in the future" {
		t.Fatalf("expected both dates in the future to fail, got %v", errs)
	}
}

func TestOnOrAfter(t *testing.T) {
	t.Parallel()

	v := New(fixedNow, nil)

	s := validSample()
	s.End = s.Start.Add(3 * time.Hour)
	if errs := v.Struct(s); errs != nil {
		t.Fatalf("same day must pass, got %v", errs)
	}

	s.End = s.Start.AddDate(0, 0, -1)
	errs := v.Struct(s)
	if len(errs) != 1 || errs[0] != "end must be on or after Start" {
		t.Fatalf("expected ordering error, got %v", errs)
	}
}

func TestDateOnly(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+7", 7*3600)
	in := time.Date(2024, 1, 2, 3, 0, 0, 0, loc) // 2024-01-01T20:00Z
	got := DateOnly(in)
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestMustRegisterAddsDomainRule(t *testing.T) {
	t.Parallel()

	type colour struct {
		Value string `json:"value" validate:"required,colour"`
	}
	v := New(fixedNow, Messages{"value.colour": "Value must be red or blue"})
	v.MustRegister("colour", func(s string) bool { return s == "red" || s == "blue" })

	if errs := v.Struct(colour{Value: "red"}); errs != nil {
		t.Fatalf("expected red to pass, got %v", errs)
	}
	errs := v.Struct(colour{Value: "green"})
	if len(errs) != 1 || errs[0] != "Value must be red or blue" {
		t.Fatalf("expected custom rule message, got %v", errs)
	}
}
