package errors

import "net/http"

var ErrUsernameTaken = &Exception{
	Code:       "username_taken",
	Message:    "username is already taken",
	StatusCode: http.StatusBadRequest,
}
