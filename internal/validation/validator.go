package validation

import (
	"fmt"
	"regexp"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type Validator struct {
	Errors []ValidationError
}

func New() *Validator {
	return &Validator{
		Errors: make([]ValidationError, 0),
	}
}

func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

func (v *Validator) AddError(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// Required adds an error when the value is empty.
func (v *Validator) Required(field, value string) {
	if value == "" {
		v.AddError(field, "is required")
	}
}

// Email adds an error when the value is not a plausible email address.
func (v *Validator) Email(field, value string) {
	if !emailRegex.MatchString(value) {
		v.AddError(field, "is not a valid email address")
	}
}

// MinLength adds an error when the value is shorter than n characters.
func (v *Validator) MinLength(field, value string, n int) {
	if len(value) < n {
		v.AddError(field, fmt.Sprintf("must be at least %d characters", n))
	}
}

// First returns the first error message, or an empty string.
func (v *Validator) First() string {
	if len(v.Errors) == 0 {
		return ""
	}
	return v.Errors[0].Error()
}
