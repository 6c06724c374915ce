package errors

import (
	stderrors "errors"
	"net/http"
)

// ErrorKind represents the closed set of API error categories
type ErrorKind string

const (
	ErrorKindValidation ErrorKind = "validation"
	ErrorKindParse      ErrorKind = "parse"
	ErrorKindExtraction ErrorKind = "extraction"
	ErrorKindUnknown    ErrorKind = "unknown"
)

// processingPrefix is shared by extraction and unknown failures.
const processingPrefix = "Error processing PDF: "

// APIError represents a failure that is returned to the caller as
// {"error": Message, "success": false} with StatusCode.
type APIError struct {
	Kind       ErrorKind
	Message    string
	StatusCode int
	Cause      error
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// Unwrap returns the underlying error
func (e *APIError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a new validation error. The status is 400 or 413.
func NewValidationError(statusCode int, message string) *APIError {
	return &APIError{
		Kind:       ErrorKindValidation,
		Message:    message,
		StatusCode: statusCode,
	}
}

// NewParseError creates an error for a buffer the PDF engine could not open
func NewParseError(cause error) *APIError {
	return &APIError{
		Kind:       ErrorKindParse,
		Message:    "Invalid or corrupted PDF file: " + causeMessage(cause),
		StatusCode: http.StatusBadRequest,
		Cause:      cause,
	}
}

// NewExtractionError creates an error for a failure after the document was opened
func NewExtractionError(cause error) *APIError {
	return &APIError{
		Kind:       ErrorKindExtraction,
		Message:    processingPrefix + causeMessage(cause),
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// NewUnknownError creates a catch-all internal error
func NewUnknownError(cause error) *APIError {
	return &APIError{
		Kind:       ErrorKindUnknown,
		Message:    processingPrefix + causeMessage(cause),
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// AsAPIError returns err as an *APIError, wrapping anything unclassified as unknown.
// A nil error yields nil.
func AsAPIError(err error) *APIError {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr
	}
	return NewUnknownError(err)
}

// IsKind checks if the error is of a specific kind
func IsKind(err error, kind ErrorKind) bool {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr.Kind == kind
	}
	return false
}

// GetStatusCode returns the HTTP status code for an error
func GetStatusCode(err error) int {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return http.StatusInternalServerError
}

func causeMessage(cause error) string {
	if cause == nil {
		return "unknown error"
	}
	return cause.Error()
}
