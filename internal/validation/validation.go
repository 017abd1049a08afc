// Package validation wraps go-playground/validator with the rules used by the
// customer, lodging and reservation inputs.
package validation

import (
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	domainerrors "lodging/internal/domain/errors"
	"lodging/internal/errors"

	"github.com/go-playground/validator/v10"
)

var (
	instance *validator.Validate
	once     sync.Once
	now      = time.Now
)

// Validator returns the shared validator with the custom rules registered.
func Validator() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonFieldName)
		mustRegister(v, "notfuture", notFuture)
		mustRegister(v, "notpast", notPast)
		mustRegister(v, "nonblank", nonBlank)
		instance = v
	})

	return instance
}

// Struct validates s and converts any failure into ErrValidationFailed whose
// details list each offending field as "field: rule".
func Struct(s any) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.Wrap(err, "validate struct")
	}

	violations := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		violations = append(violations, describe(fe))
	}
	sort.Strings(violations)

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(violations, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "nonblank":
		return fe.Field() + ": required"
	case "email":
		return fe.Field() + ": must be a valid email"
	case "e164":
		return fe.Field() + ": must be an E.164 phone number"
	case "min":
		return fe.Field() + ": must be at least " + fe.Param()
	case "max":
		return fe.Field() + ": must be at most " + fe.Param()
	case "notfuture":
		return fe.Field() + ": must not be in the future"
	case "notpast":
		return fe.Field() + ": must not be in the past"
	default:
		return fe.Field() + ": failed " + fe.Tag()
	}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}

// timeField unwraps time.Time and *time.Time. ok is false for nil pointers.
func timeField(fl validator.FieldLevel) (time.Time, bool) {
	field := fl.Field()
	if field.Kind() == reflect.Pointer {
		if field.IsNil() {
			return time.Time{}, false
		}
		field = field.Elem()
	}

	t, ok := field.Interface().(time.Time)

	return t, ok
}

func notFuture(fl validator.FieldLevel) bool {
	t, ok := timeField(fl)
	if !ok {
		return true
	}

	return !t.After(now())
}

func notPast(fl validator.FieldLevel) bool {
	t, ok := timeField(fl)
	if !ok {
		return true
	}

	return !t.Before(now())
}

func nonBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() == reflect.Pointer {
		if field.IsNil() {
			return true
		}
		field = field.Elem()
	}
	if field.Kind() != reflect.String {
		return true
	}

	return strings.TrimSpace(field.String()) != ""
}
