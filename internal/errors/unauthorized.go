package errors

import "net/http"

var ErrUnauthorized = &Exception{
	Code:       "unauthorized",
	Message:    "operation not permitted",
	StatusCode: http.StatusForbidden,
}
