package library

import (
	"fmt"
	"net/http"

	"booklib/internal/models"
)

// Error codes for the closed set of failures the service can produce.
// Every ServiceError carries exactly one of these, so the API layer can
// handle the taxonomy exhaustively instead of guessing from status codes.
const (
	CodeNotFound         = "NOT_FOUND"         // 404: entity does not exist
	CodeBadRequest       = "BAD_REQUEST"       // 400: malformed id or referential violation
	CodeValidationFailed = "VALIDATION_FAILED" // 400: schema violation, carries field details
	CodeInternal         = "INTERNAL_ERROR"    // 500: unexpected failure
)

// ServiceError represents errors from the library service with HTTP context.
// Domain errors are deterministic consequences of the input and are never
// retried; unexpected failures surface as 500 and are logged.
type ServiceError struct {
	Code       string
	Message    string
	StatusCode int
	Details    []models.FieldError
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Error constructors for the service's failure taxonomy

func NewAuthorNotFoundError(id int) *ServiceError {
	return &ServiceError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("Author with ID %d not found", id),
		StatusCode: http.StatusNotFound,
	}
}

func NewBookNotFoundError(id int) *ServiceError {
	return &ServiceError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("Book with ID %d not found", id),
		StatusCode: http.StatusNotFound,
	}
}

// NewAuthorReferenceError reports a book create/update naming an author that
// does not exist. Unlike the author lookup itself this is a client input
// problem, so it maps to 400 rather than 404.
func NewAuthorReferenceError(authorID int) *ServiceError {
	return &ServiceError{
		Code:       CodeBadRequest,
		Message:    fmt.Sprintf("Author with ID %d not found", authorID),
		StatusCode: http.StatusBadRequest,
	}
}

func NewBadRequestError(message string) *ServiceError {
	return &ServiceError{
		Code:       CodeBadRequest,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

// NewValidationFailedError carries the full ordered list of field violations
// collected in one validation pass.
func NewValidationFailedError(details []models.FieldError) *ServiceError {
	return &ServiceError{
		Code:       CodeValidationFailed,
		Message:    "Validation failed",
		StatusCode: http.StatusBadRequest,
		Details:    details,
	}
}

func NewInternalError(message string, err error) *ServiceError {
	return &ServiceError{
		Code:       CodeInternal,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}
