// Package validation enforces the write-request schemas for the library API.
// It wraps go-playground/validator and translates its output into the ordered
// field-error list carried by validation failure responses.
//
// Validation is exhaustive: every violation in the payload is collected in a
// single pass rather than stopping at the first. Field names in errors use
// the JSON names clients actually sent.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"booklib/internal/models"
)

// isbnCharsPattern accepts digits and hyphens only. Checksum verification is
// deliberately not performed; the schema matches the documented contract.
var isbnCharsPattern = regexp.MustCompile(`^[0-9-]+$`)

// Validator validates request structs against their declared schema tags.
// Safe for concurrent use.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with the library's custom rules registered:
// library_year (1000 through the current calendar year, evaluated at call
// time) and isbn_chars (digits and hyphens only).
func New() (*Validator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON field names, not Go struct names, in violations.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("library_year", validLibraryYear); err != nil {
		return nil, fmt.Errorf("register library_year rule: %w", err)
	}

	if err := v.RegisterValidation("isbn_chars", validISBNChars); err != nil {
		return nil, fmt.Errorf("register isbn_chars rule: %w", err)
	}

	return &Validator{validate: v}, nil
}

// Struct validates a request struct and returns every violation in field
// declaration order. A nil return means the value satisfies its schema.
func (v *Validator) Struct(s interface{}) []models.FieldError {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Non-schema failure (e.g. validating a non-struct); surface it as a
		// single opaque violation rather than panicking mid-request.
		return []models.FieldError{{Field: "", Message: err.Error()}}
	}

	details := make([]models.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, models.FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}

	return details
}

// validLibraryYear bounds integer year fields between 1000 and the current
// calendar year inclusive. The upper bound moves with the wall clock, so it
// is evaluated per call rather than baked into the tag.
func validLibraryYear(fl validator.FieldLevel) bool {
	year := fl.Field().Int()
	return year >= 1000 && year <= int64(time.Now().Year())
}

// validISBNChars matches the documented ISBN shape: digits and hyphens only.
func validISBNChars(fl validator.FieldLevel) bool {
	return isbnCharsPattern.MatchString(fl.Field().String())
}

// messageFor renders a violation as a display message suitable for clients.
func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", fe.Field())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%q must be at least %s characters long", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%q must be at least %s", fe.Field(), fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%q must be at most %s characters long", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%q must be at most %s", fe.Field(), fe.Param())
	case "library_year":
		return fmt.Sprintf("%q must be between 1000 and %d", fe.Field(), time.Now().Year())
	case "isbn_chars":
		return fmt.Sprintf("%q must contain only digits and hyphens", fe.Field())
	default:
		return fmt.Sprintf("%q is invalid", fe.Field())
	}
}
