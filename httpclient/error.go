package httpclient

import (
	goerrors "errors"
	"fmt"

	"github.com/storekit/woocommerce-go/errors"
)

// Error represents a non-2xx API response
type Error struct {
	*errors.InternalError
	StatusCode int
	Response   []byte
}

func (e *Error) Unwrap() error {
	return e.InternalError.Unwrap()
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: status %d: %s", errors.ErrCodeAPIResponse, e.StatusCode, string(e.Response))
}

// NewError creates a new API response error
func NewError(statusCode int, response []byte) *Error {
	return &Error{
		InternalError: &errors.InternalError{
			Code:    errors.ErrCodeAPIResponse,
			Message: "api error response",
		},
		StatusCode: statusCode,
		Response:   response,
	}
}

// IsHTTPError checks if an error is an API response error
func IsHTTPError(err error) (*Error, bool) {
	var httpErr *Error
	if goerrors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}
