package errors

import "fmt"

// ErrorCode represents a strand error code.
type ErrorCode string

const (
	ErrInvalidRequest     ErrorCode = "INVALID_REQUEST"     // 400
	ErrUnparseableQuery   ErrorCode = "UNPARSEABLE_QUERY"   // 400
	ErrNotFound           ErrorCode = "NOT_FOUND"           // 404
	ErrAlreadyExists      ErrorCode = "ALREADY_EXISTS"      // 409
	ErrValueTooLarge      ErrorCode = "VALUE_TOO_LARGE"     // 413
	ErrConflictingFilters ErrorCode = "CONFLICTING_FILTERS" // 422
	ErrInternal           ErrorCode = "INTERNAL"            // 500
)

// StrandError represents a structured error with code, status, and details.
type StrandError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *StrandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *StrandError {
	return &StrandError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewUnparseableQuery creates a 400 error for natural-language text that
// matched none of the recognized query patterns.
func NewUnparseableQuery() *StrandError {
	return &StrandError{
		Code:    ErrUnparseableQuery,
		Status:  400,
		Message: "unable to parse natural language query",
	}
}

// NewNotFound creates a 404 error for when a string cannot be found.
func NewNotFound(identifier string) *StrandError {
	return &StrandError{
		Code:    ErrNotFound,
		Status:  404,
		Message: "string does not exist in the system",
		Details: map[string]any{"identifier": identifier},
	}
}

// NewAlreadyExists creates a 409 error for duplicate submissions.
func NewAlreadyExists(hash string) *StrandError {
	return &StrandError{
		Code:    ErrAlreadyExists,
		Status:  409,
		Message: "string already exists in the system",
		Details: map[string]any{"id": hash},
	}
}

// NewValueTooLarge creates a 413 error when a value exceeds the size limit.
func NewValueTooLarge(max, actual int) *StrandError {
	return &StrandError{
		Code:    ErrValueTooLarge,
		Status:  413,
		Message: fmt.Sprintf("value exceeds maximum size: %d chars (max %d)", actual, max),
		Details: map[string]any{"max_chars": max, "actual_chars": actual},
	}
}

// NewConflictingFilters creates a 422 error for a filter set whose bounds
// contradict each other (min_length greater than max_length).
func NewConflictingFilters(min, max int) *StrandError {
	return &StrandError{
		Code:    ErrConflictingFilters,
		Status:  422,
		Message: "query parsed but resulted in conflicting filters",
		Details: map[string]any{"min_length": min, "max_length": max},
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *StrandError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &StrandError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is a StrandError with the given code.
func Is(err error, code ErrorCode) bool {
	if sErr, ok := err.(*StrandError); ok {
		return sErr.Code == code
	}
	return false
}
