package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Messages maps "<json field>.<tag>" to the full message reported for that failure.
// Failures without an entry fall back to a generic "<field> <reason>" message.
type Messages map[string]string

var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{0,15}$`)

// Validator wraps validator.v10 with the custom rules used by the API:
//   - phone:     optional leading +, then 1-16 digits not starting with 0
//   - notfuture: a time.Time that is not after today (day granularity, UTC)
//   - onorafter: a time.Time that is on or after the named sibling field (day granularity)
//
// Validation always collects every failing field.
type Validator struct {
	v        *validator.Validate
	now      func() time.Time
	messages Messages
}

// New builds a Validator. now is consulted by the notfuture rule; nil means time.Now.
func New(now func() time.Time, messages Messages) *Validator {
	if now == nil {
		now = time.Now
	}
	val := &Validator{v: validator.New(validator.WithRequiredStructEnabled()), now: now, messages: messages}

	val.v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	mustRegister(val.v, "phone", validatePhone)
	mustRegister(val.v, "notfuture", val.validateNotFuture)
	mustRegister(val.v, "onorafter", validateOnOrAfter)
	return val
}

// MustRegister adds a domain rule under tag. It panics on a bad tag, which is a
// programming error caught at startup.
func (val *Validator) MustRegister(tag string, fn func(value string) bool) {
	mustRegister(val.v, tag, func(fl validator.FieldLevel) bool {
		return fn(fl.Field().String())
	})
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %s: %v", tag, err))
	}
}

// Struct validates s and returns one message per failing field, in declaration order.
// A nil slice means s is valid.
func (val *Validator) Struct(s any) []string {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, val.message(fe))
	}
	return out
}

func (val *Validator) message(fe validator.FieldError) string {
	if msg, ok := val.messages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	return fe.Field() + " " + formatFieldError(fe)
}

// DateOnly truncates t to midnight UTC of its UTC calendar day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validatePhone(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}

func (val *Validator) validateNotFuture(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	if t.IsZero() {
		return true
	}
	return !DateOnly(t).After(DateOnly(val.now()))
}

func validateOnOrAfter(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	parent := reflect.Indirect(fl.Parent())
	other := parent.FieldByName(fl.Param())
	if !other.IsValid() {
		return false
	}
	ref, ok := other.Interface().(time.Time)
	if !ok {
		return false
	}
	if t.IsZero() || ref.IsZero() {
		return true
	}
	return !DateOnly(t).Before(DateOnly(ref))
}

func formatFieldError(fe validator.FieldError) string {
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "phone":
		return "must be a valid phone number"
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(param), ", ")
	case "min":
		if isNumberKind(fe.Kind()) {
			return "must be at least " + param
		}
		return "must be at least " + param + " characters long"
	case "max":
		if isNumberKind(fe.Kind()) {
			return "must be at most " + param
		}
		return "must not exceed " + param + " characters"
	case "gt":
		return "must be greater than " + param
	case "gte":
		return "must be greater than or equal to " + param
	case "notfuture":
		return "cannot be in the future"
	case "onorafter":
		return "must be on or after " + param
	default:
		if param != "" {
			return fmt.Sprintf("failed '%s' with parameter '%s'", fe.Tag(), param)
		}
		return fmt.Sprintf("failed '%s'", fe.Tag())
	}
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
