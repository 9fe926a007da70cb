package errors

import "net/http"

// HTTPError is an error that carries the HTTP status and the public message.
type HTTPError struct {
	Code       int    `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

// NewHTTPError creates an HTTPError. Code doubles as the HTTP status when it is a valid one.
func NewHTTPError(code int, msg string) *HTTPError {
	status := code
	if http.StatusText(code) == "" {
		status = http.StatusBadRequest
	}
	return &HTTPError{
		Code:       code,
		Message:    msg,
		StatusCode: status,
	}
}

// NewHTTPErrorWithStatus creates an HTTPError whose business code differs from the HTTP status.
func NewHTTPErrorWithStatus(code int, msg string, status int) *HTTPError {
	return &HTTPError{
		Code:       code,
		Message:    msg,
		StatusCode: status,
	}
}

func (e *HTTPError) Error() string {
	return e.Message
}
