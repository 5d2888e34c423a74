package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules
type Validator struct {
	validator *validator.Validate
}

// New creates a new validator instance with custom rules
func New() *Validator {
	validate := validator.New()

	registerCustomValidators(validate)

	// Use JSON field names for validation error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{
		validator: validate,
	}
}

// Validate validates a struct and returns validation errors
func (v *Validator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return NewValidationError(err.(validator.ValidationErrors))
	}
	return nil
}

// ValidateVar validates a single variable
func (v *Validator) ValidateVar(field interface{}, tag string) error {
	return v.validator.Var(field, tag)
}

// ValidationError represents a validation error with user-friendly messages
type ValidationError struct {
	Errors map[string]string `json:"errors"`
}

// Error implements the error interface
func (e ValidationError) Error() string {
	var messages []string
	for field, message := range e.Errors {
		messages = append(messages, fmt.Sprintf("%s: %s", field, message))
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, ", "))
}

// NewValidationError creates a ValidationError from validator.ValidationErrors
func NewValidationError(errs validator.ValidationErrors) *ValidationError {
	errors := make(map[string]string)

	for _, err := range errs {
		field := err.Field()
		tag := err.Tag()

		switch tag {
		case "required":
			errors[field] = fmt.Sprintf("%s is required", field)
		case "min":
			errors[field] = fmt.Sprintf("%s must be at least %s characters long", field, err.Param())
		case "max":
			errors[field] = fmt.Sprintf("%s must be at most %s characters long", field, err.Param())
		case "uuid4":
			errors[field] = fmt.Sprintf("%s must be a valid UUID", field)
		case "access_level":
			errors[field] = fmt.Sprintf("%s must be one of: read, write, admin", field)
		case "program_code":
			errors[field] = fmt.Sprintf("%s must be 2-64 uppercase letters, digits or hyphens", field)
		case "cert_subject":
			errors[field] = fmt.Sprintf("%s must be a distinguished name containing CN=", field)
		default:
			errors[field] = fmt.Sprintf("%s is invalid", field)
		}
	}

	return &ValidationError{Errors: errors}
}

// registerCustomValidators registers custom validation rules
func registerCustomValidators(validate *validator.Validate) {
	// Access level: the three grant levels accepted on the wire
	validate.RegisterValidation("access_level", func(fl validator.FieldLevel) bool {
		level := fl.Field().String()
		return level == "read" || level == "write" || level == "admin"
	})

	// Program code: uppercase letters, digits, hyphens
	validate.RegisterValidation("program_code", func(fl validator.FieldLevel) bool {
		code := fl.Field().String()
		matched, _ := regexp.MatchString(`^[A-Z0-9-]+$`, code)
		return matched && len(code) >= 2 && len(code) <= 64
	})

	// Certificate subject: a DN string, not an encoded certificate
	validate.RegisterValidation("cert_subject", func(fl validator.FieldLevel) bool {
		subject := fl.Field().String()
		return strings.Contains(subject, "CN=") && len(subject) <= 1024
	})
}

// Helper validation functions

// IsValidUUID checks if a string is a valid UUID
func IsValidUUID(uuid string) bool {
	v := New()
	return v.ValidateVar(uuid, "required,uuid4") == nil
}

// IsValidProgramCode checks if a program code is valid
func IsValidProgramCode(code string) bool {
	v := New()
	return v.ValidateVar(code, "required,program_code") == nil
}

// Common validation tags constants
const (
	TagRequired    = "required"
	TagUUID        = "uuid4"
	TagAccessLevel = "access_level"
	TagProgramCode = "program_code"
	TagCertSubject = "cert_subject"
	TagMin         = "min"
	TagMax         = "max"
)
