package errors

import "net/http"

// ErrInvalidCredentials deliberately covers unknown email, inactive account
// and wrong password alike, so callers cannot enumerate users.
var ErrInvalidCredentials = &Exception{
	Code:       "invalid_credentials",
	Message:    "invalid email or password",
	StatusCode: http.StatusUnauthorized,
}
