package errors

import "net/http"

var ErrInvalidStateTransition = &Exception{
	Code:       "invalid_state_transition",
	Message:    "invalid task state transition",
	StatusCode: http.StatusBadRequest,
}
