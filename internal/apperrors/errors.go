// Package apperrors defines the error taxonomy shared by all services.
package apperrors

import (
	"errors"
	"fmt"
)

// DomainError is a typed application error with a stable code.
type DomainError struct {
	Code    string
	Message string
	Field   string // offending field for validation errors, empty otherwise
}

func (e *DomainError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (field: %s)", e.Code, e.Message, e.Field)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

const (
	CodeValidation            = "VALIDATION_ERROR"
	CodeServiceUnavailable    = "SERVICE_UNAVAILABLE"
	CodeComputationDegenerate = "COMPUTATION_DEGENERATE"
	CodeConfiguration         = "CONFIGURATION_ERROR"
)

// Validation reports malformed input. It names the offending field and is
// never retried.
func Validation(field, message string) *DomainError {
	return &DomainError{Code: CodeValidation, Message: message, Field: field}
}

// Unavailable reports a specialist that timed out or failed at the transport
// level. The coordinator recovers from it via the degraded path.
func Unavailable(agent string, cause error) *DomainError {
	msg := fmt.Sprintf("specialist %s did not respond", agent)
	if cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, cause)
	}
	return &DomainError{Code: CodeServiceUnavailable, Message: msg}
}

// Configuration reports missing or invalid reference data at process start.
// It is fatal: callers fail startup rather than surfacing it per request.
func Configuration(message string) *DomainError {
	return &DomainError{Code: CodeConfiguration, Message: message}
}

// IsValidation reports whether err is (or wraps) a validation error.
func IsValidation(err error) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Code == CodeValidation
}

// IsUnavailable reports whether err is (or wraps) a specialist availability error.
func IsUnavailable(err error) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Code == CodeServiceUnavailable
}
