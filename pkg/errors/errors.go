package errors

import "fmt"

// HTTPError is an error with a service error code and a user-facing message.
type HTTPError struct {
	Code    int    `json:"error_code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

// ValidationError carries per-field validation messages.
type ValidationError struct {
	HTTPError
	Errors map[string]string `json:"errors,omitempty"`
}

// NewValidationError creates a new ValidationError with code 400.
func NewValidationError(message string, fields map[string]string) *ValidationError {
	return &ValidationError{
		HTTPError: HTTPError{Code: 400, Message: message},
		Errors:    fields,
	}
}
