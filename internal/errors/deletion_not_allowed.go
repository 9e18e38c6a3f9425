package errors

import "net/http"

var ErrDeletionNotAllowed = &Exception{
	Code:       "deletion_not_allowed",
	Message:    "task cannot be deleted",
	StatusCode: http.StatusBadRequest,
}
