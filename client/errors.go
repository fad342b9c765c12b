package client

import "errors"

// ErrSessionExpired is returned when a request got a 401 and the refresh
// attempt failed; both tokens have been cleared by then.
var ErrSessionExpired = errors.New("session expired")

// GenericErrorDetail is used when the backend's error body has no parseable
// detail field.
const GenericErrorDetail = "An error occurred"

// APIError is a non-2xx response from the backend, carrying the
// human-readable detail the server reported.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return e.Detail
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}
