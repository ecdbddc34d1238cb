package resource

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	faangerrors "github.com/dbmrq/faang/internal/errors"
)

// ValidationError reports a single field that failed construction-time
// validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

// Is makes every ValidationError match faangerrors.ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == faangerrors.ErrValidation
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	msg := "multiple validation errors:"
	for _, err := range e {
		msg += "\n  - " + err.Error()
	}
	return msg
}

// Unwrap exposes each field error to errors.Is and errors.As.
func (e ValidationErrors) Unwrap() []error {
	errs := make([]error, len(e))
	for i, err := range e {
		errs[i] = err
	}
	return errs
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their wire names (url, resource_type, ...).
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "httpurl", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
	})
	mustRegister(v, "resourcetype", func(fl validator.FieldLevel) bool {
		return Type(fl.Field().String()).IsValid()
	})
	mustRegister(v, "category", func(fl validator.FieldLevel) bool {
		return Category(fl.Field().String()).IsValid()
	})
	mustRegister(v, "difficulty", func(fl validator.FieldLevel) bool {
		return Difficulty(fl.Field().String()).IsValid()
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// check validates a tagged input struct and converts validator's field
// errors into ValidationError values. A single failure is returned as a
// *ValidationError; several as ValidationErrors.
func check(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, &ValidationError{Field: fe.Field(), Reason: reason(fe)})
	}
	if len(errs) == 1 {
		return errs[0]
	}
	return errs
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "httpurl":
		return "URL must start with http:// or https://"
	case "resourcetype":
		return fmt.Sprintf("unrecognized resource type %q", fe.Value())
	case "category":
		return fmt.Sprintf("unrecognized category %q", fe.Value())
	case "difficulty":
		return fmt.Sprintf("unrecognized difficulty %q", fe.Value())
	case "gt":
		return "must be greater than " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}
