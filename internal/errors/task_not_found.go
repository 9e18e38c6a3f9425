package errors

import "net/http"

var ErrTaskNotFound = &Exception{
	Code:       "task_not_found",
	Message:    "task not found",
	StatusCode: http.StatusNotFound,
}
