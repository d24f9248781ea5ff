package dutystaff

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/admin-console/pkg/validation"
)

var (
	ErrNotFound  = errors.New("staff member not found")
	ErrDuplicate = errors.New("staff name already exists")
)

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
