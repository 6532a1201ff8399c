package failure

import (
	"errors"
	"net/http"
)

// MessageInternalError is the only message a caller ever sees for a 500.
const MessageInternalError = "Internal server error"

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	cause   error
}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause, if any.
func (e *Failure) Unwrap() error {
	return e.cause
}

// Validation returns a new Failure for a request that is missing required input.
func Validation(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(msg string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error. The cause is kept
// for logging but the message is always the generic one.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: MessageInternalError,
			cause:   err,
		}
	}

	return nil
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// IsInternal reports whether err should be hidden from the caller.
func IsInternal(err error) bool {
	return GetCode(err) >= http.StatusInternalServerError
}
