package errors

import "net/http"

var ErrUserNotFound = &Exception{
	Code:       "user_not_found",
	Message:    "user not found",
	StatusCode: http.StatusNotFound,
}
