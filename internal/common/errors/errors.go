// Package errors provides standardized error handling for the intent
// resolution pipeline.
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeQueryTooShort            ErrorCode = "QUERY_TOO_SHORT"
	ErrCodeUnknownOperation         ErrorCode = "UNKNOWN_OPERATION"
	ErrCodeMissingRequiredParameter ErrorCode = "MISSING_REQUIRED_PARAMETER"
	ErrCodeInvalidParameterValue    ErrorCode = "INVALID_PARAMETER_VALUE"

	ErrCodeCompletionUnavailable  ErrorCode = "COMPLETION_SERVICE_UNAVAILABLE"
	ErrCodeUnparseableResponse    ErrorCode = "UNPARSEABLE_COMPLETION_RESPONSE"
	ErrCodeResolutionFailed       ErrorCode = "RESOLUTION_FAILED"
	ErrCodeCatalogLoadFailed      ErrorCode = "CATALOG_LOAD_FAILED"
	ErrCodeCatalogSchemaViolation ErrorCode = "CATALOG_SCHEMA_VIOLATION"
)

// StandardError represents a structured application error.
//
// Soft errors are absorbed by the Reconciler and only disable the model-based
// classification path; hard errors terminate the query and surface in the
// ResolutionResult.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Soft      bool                   `json:"soft"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// IsSoft reports whether the error should drive the fallback path instead of
// surfacing to the caller.
func IsSoft(err error) bool {
	if se, ok := err.(*StandardError); ok {
		return se.Soft
	}
	return false
}

// Code extracts the ErrorCode from an error, or RESOLUTION_FAILED for
// non-standard errors.
func Code(err error) ErrorCode {
	if se, ok := err.(*StandardError); ok {
		return se.Code
	}
	return ErrCodeResolutionFailed
}

// NewQueryTooShortError creates a hard error for inputs rejected before any
// classification work.
func NewQueryTooShortError(query string) *StandardError {
	return &StandardError{
		Code:      ErrCodeQueryTooShort,
		Message:   "Query too short",
		Details:   fmt.Sprintf("query: %q", query),
		Soft:      false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUnknownOperationError creates a hard error for operations outside the catalog.
func NewUnknownOperationError(operation string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnknownOperation,
		Message:   "Operation not found in catalog",
		Details:   fmt.Sprintf("operation: %s", operation),
		Soft:      false,
		Timestamp: time.Now().UTC(),
	}
}

// NewMissingRequiredParameterError creates a hard error for a required
// parameter that could not be defaulted.
func NewMissingRequiredParameterError(operation, param string) *StandardError {
	return &StandardError{
		Code:      ErrCodeMissingRequiredParameter,
		Message:   "Missing required parameter",
		Details:   fmt.Sprintf("operation: %s, parameter: %s", operation, param),
		Soft:      false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidParameterValueError creates a hard error for an enum or pattern
// violation, carrying the offending value and the allowed set.
func NewInvalidParameterValueError(param, value, allowed string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidParameterValue,
		Message:   "Invalid parameter value",
		Details:   fmt.Sprintf("parameter: %s, value: %q, allowed: %s", param, value, allowed),
		Soft:      false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCompletionUnavailableError creates a soft error that triggers the
// pattern-only fallback.
func NewCompletionUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCompletionUnavailable,
		Message:   "Completion service unavailable",
		Details:   err.Error(),
		Soft:      true,
		Timestamp: time.Now().UTC(),
	}
}

// NewUnparseableResponseError creates a soft error for a completion reply no
// parse strategy could handle.
func NewUnparseableResponseError(response string) *StandardError {
	if len(response) > 200 {
		response = response[:200]
	}
	return &StandardError{
		Code:      ErrCodeUnparseableResponse,
		Message:   "Could not parse completion response",
		Details:   response,
		Soft:      true,
		Timestamp: time.Now().UTC(),
	}
}

// NewResolutionFailedError creates the terminal hard error reported when both
// classification paths produced nothing usable.
func NewResolutionFailedError(query string) *StandardError {
	return &StandardError{
		Code:      ErrCodeResolutionFailed,
		Message:   "Could not map query to any catalog operation",
		Details:   fmt.Sprintf("query: %q", query),
		Soft:      false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCatalogLoadFailedError creates a hard startup error.
func NewCatalogLoadFailedError(path string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogLoadFailed,
		Message:   "Catalog definition could not be loaded",
		Details:   fmt.Sprintf("path: %s, error: %s", path, err.Error()),
		Soft:      false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCatalogSchemaViolationError creates a hard startup error for a catalog
// file that fails meta-schema validation.
func NewCatalogSchemaViolationError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogSchemaViolation,
		Message:   "Catalog definition violates the catalog meta-schema",
		Details:   details,
		Soft:      false,
		Timestamp: time.Now().UTC(),
	}
}
