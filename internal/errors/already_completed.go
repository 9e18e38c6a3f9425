package errors

import "net/http"

var ErrAlreadyCompleted = &Exception{
	Code:       "already_completed",
	Message:    "task is already completed",
	StatusCode: http.StatusBadRequest,
}
