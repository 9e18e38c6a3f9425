package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Exception is a domain error that also carries the HTTP status the
// transport layer should map it to.
type Exception struct {
	Code       string
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

// Is matches exceptions by code, so a derived message still compares equal
// to its sentinel under errors.Is.
func (e *Exception) Is(target error) bool {
	var other *Exception
	if errors.As(target, &other) {
		return e.Code == other.Code
	}
	return false
}

// Withf returns a copy of the exception carrying a formatted message.
func (e *Exception) Withf(format string, args ...any) *Exception {
	return &Exception{
		Code:       e.Code,
		Message:    fmt.Sprintf(format, args...),
		StatusCode: e.StatusCode,
	}
}

// StatusCode resolves the HTTP status for an error. Anything that is not a
// domain exception is an infrastructure failure and maps to 500.
func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
