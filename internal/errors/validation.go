package errors

import "net/http"

var ErrValidation = &Exception{
	Code:       "validation_error",
	Message:    "validation error",
	StatusCode: http.StatusBadRequest,
}

// Validationf builds a validation error with a formatted message.
func Validationf(format string, args ...any) *Exception {
	return ErrValidation.Withf(format, args...)
}
