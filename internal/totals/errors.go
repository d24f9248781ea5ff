package totals

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/admin-console/pkg/validation"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrDuplicate     = errors.New("record already exists")
	ErrOwnerRequired = errors.New("internal_staff is required")
	ErrOwnerUnknown  = errors.New("caller identity unavailable")
)

// MapHTTPStatus maps domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrOwnerRequired), errors.Is(err, validation.ErrInvalid):
		return http.StatusBadRequest
	case errors.Is(err, ErrOwnerUnknown):
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}
