package errors

import "net/http"

var ErrNotAssignable = &Exception{
	Code:       "not_assignable",
	Message:    "task cannot be assigned",
	StatusCode: http.StatusBadRequest,
}
