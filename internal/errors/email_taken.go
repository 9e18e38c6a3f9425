package errors

import "net/http"

var ErrEmailTaken = &Exception{
	Code:       "email_taken",
	Message:    "email is already registered",
	StatusCode: http.StatusBadRequest,
}
