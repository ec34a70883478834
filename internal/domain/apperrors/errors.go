// Package apperrors defines the typed failures surfaced by the dashboard
// pipeline. Callers match them with errors.As to choose an HTTP status.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// FetchError reports that the products API could not be queried: the host was
// unreachable, it answered with a non-2xx status, or the body was not a JSON array.
type FetchError struct {
	URL        string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ValidationError reports an invalid predicate or request parameter.
// Field names the offending parameter (e.g. "price").
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Validationf builds a ValidationError with a formatted message.
func Validationf(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// ExportError reports that a table could not be encoded to the requested format.
type ExportError struct {
	Format string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export %s: %v", e.Format, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }

// StatusCode maps an error to the HTTP status used by the API layer.
func StatusCode(err error) int {
	var (
		fe *FetchError
		ve *ValidationError
		ee *ExportError
	)
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.As(err, &fe):
		return http.StatusBadGateway
	case errors.As(err, &ee):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
