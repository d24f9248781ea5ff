package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnknownOperation = errors.New("unknown operation")
	ErrMissingToken     = errors.New("token required")
	ErrResponseTooLarge = errors.New("response exceeds limit")
)

// APIError reports a non-2xx response or an envelope whose code is not 200.
type APIError struct {
	Method string
	Path   string
	Status int
	Code   int
	Msg    string
}

func (e *APIError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("%s %s: status %d code %d: %s", e.Method, e.Path, e.Status, e.Code, e.Msg)
	}
	return fmt.Sprintf("%s %s: status %d code %d", e.Method, e.Path, e.Status, e.Code)
}

// Unauthorized reports whether the upstream rejected the token.
func (e *APIError) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized || e.Code == http.StatusUnauthorized
}

// IsUnauthorized reports whether err carries an upstream 401.
func IsUnauthorized(err error) bool {
	if errors.Is(err, ErrMissingToken) {
		return true
	}
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Unauthorized()
}
