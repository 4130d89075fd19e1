package shared

import (
	"errors"
	"net/http"
)

// AppError carries an HTTP status alongside the underlying error so handlers
// can return service errors directly and let the fiber error handler map them.
type AppError struct {
	StatusCode int         `json:"code"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Err        error       `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(statusCode int, message string, err error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Err: err}
}

// NewInvalidArgumentError flags an out-of-range or malformed argument (bad
// percentage, non-positive points).
func NewInvalidArgumentError(message string) *AppError {
	return &AppError{StatusCode: http.StatusBadRequest, Message: message}
}

// NewNoActiveProfileError flags a mutation attempted with no active session.
func NewNoActiveProfileError() *AppError {
	return &AppError{StatusCode: http.StatusUnauthorized, Message: "No active profile"}
}

func NewBadRequestError(err error, message string) *AppError {
	return &AppError{StatusCode: http.StatusBadRequest, Message: message, Err: err}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{StatusCode: http.StatusNotFound, Message: message}
}

func GetAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func IsInvalidArgument(err error) bool {
	appErr, ok := GetAppError(err)
	return ok && appErr.StatusCode == http.StatusBadRequest
}

func IsNoActiveProfile(err error) bool {
	appErr, ok := GetAppError(err)
	return ok && appErr.StatusCode == http.StatusUnauthorized
}
