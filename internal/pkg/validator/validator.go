// Package validator runs structural checks on caller-supplied data before
// any mutation is attempted.
package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/stafftrack/hr-core-go/internal/domain/record"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidationError carries the per-field failures of one Struct call.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	var msgs []string
	for field, msg := range e.Fields {
		msgs = append(msgs, field+": "+msg)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Struct validates a DTO against its validate tags.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}
	fields := make(map[string]string, len(errs))
	for _, fe := range errs {
		fields[fe.Field()] = messageFor(fe)
	}
	return &ValidationError{Fields: fields}
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "gte":
		return "must be at least " + fe.Param()
	default:
		return "is invalid"
	}
}

// DateRange checks that start is not after end. Empty bounds are allowed;
// unparseable bounds fail.
func DateRange(start, end string) error {
	if start == "" || end == "" {
		return nil
	}
	s, okS := record.ParseTimestamp(start)
	if !okS {
		return &ValidationError{Fields: map[string]string{"startDate": "is not a valid date"}}
	}
	e, okE := record.ParseTimestamp(end)
	if !okE {
		return &ValidationError{Fields: map[string]string{"endDate": "is not a valid date"}}
	}
	if s.After(e) {
		return &ValidationError{Fields: map[string]string{"endDate": fmt.Sprintf("must not be before startDate (%s)", start)}}
	}
	return nil
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
