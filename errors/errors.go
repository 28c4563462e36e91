package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for the failure kinds the client can surface. Callers
// match against these with errors.Is to branch on the kind of failure
// without parsing messages.
var (
	// ErrConfiguration covers invalid construction inputs: an unrecognized
	// base URL, missing credentials, or a config file that fails validation.
	ErrConfiguration = newSentinel(ErrCodeConfiguration, "invalid client configuration")

	// ErrTransport covers network-level failures (DNS, connection refused,
	// timeout) that never produced an HTTP status code.
	ErrTransport = newSentinel(ErrCodeTransport, "transport failure")

	// ErrAPIResponse covers any non-2xx HTTP response from the API. The
	// concrete error carries the status code and raw response body.
	ErrAPIResponse = newSentinel(ErrCodeAPIResponse, "api error response")

	// ErrSerialization covers malformed JSON and decimal fields that cannot
	// be parsed under the accepted formats.
	ErrSerialization = newSentinel(ErrCodeSerialization, "serialization error")

	// ErrValidation covers request payloads that fail local validation
	// before any HTTP call is made.
	ErrValidation = newSentinel(ErrCodeValidation, "validation error")
)

const (
	ErrCodeConfiguration = "configuration_error"
	ErrCodeTransport     = "transport_error"
	ErrCodeAPIResponse   = "api_response_error"
	ErrCodeSerialization = "serialization_error"
	ErrCodeValidation    = "validation_error"
)

// InternalError represents a client error with a machine-readable code.
type InternalError struct {
	Code    string // Machine-readable error code
	Message string // Human-readable error message
	Err     error  // Underlying error
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Err.Error())
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// Is implements error matching for wrapped errors. Two InternalErrors
// match when their codes match, so errors.Is(err, ErrTransport) works
// through any number of wrapping layers.
func (e *InternalError) Is(target error) bool {
	if target == nil {
		return false
	}

	t, ok := target.(*InternalError)
	if !ok {
		return errors.Is(e.Err, target)
	}

	return e.Code == t.Code
}

func newSentinel(code string, message string) *InternalError {
	return &InternalError{
		Code:    code,
		Message: message,
	}
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

// IsConfiguration checks if an error is a configuration error
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

// IsTransport checks if an error is a network-level transport error
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}

// IsAPIResponse checks if an error is a non-2xx API response
func IsAPIResponse(err error) bool {
	return errors.Is(err, ErrAPIResponse)
}

// IsSerialization checks if an error is a serialization error
func IsSerialization(err error) bool {
	return errors.Is(err, ErrSerialization)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
