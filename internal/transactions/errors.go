package transactions

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/admin-console/pkg/validation"
)

var (
	ErrNotFound  = errors.New("transaction not found")
	ErrDuplicate = errors.New("transaction already exists")
)

// MapHTTPStatus maps domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, validation.ErrInvalid):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
