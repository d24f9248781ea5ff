package totals_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/JaimeStill/admin-console/internal/totals"
	"github.com/JaimeStill/admin-console/pkg/validation"
)

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", totals.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("update: %w", totals.ErrNotFound), http.StatusNotFound},
		{"duplicate", totals.ErrDuplicate, http.StatusConflict},
		{"owner required", totals.ErrOwnerRequired, http.StatusBadRequest},
		{"owner unknown", totals.ErrOwnerUnknown, http.StatusForbidden},
		{"invalid", validation.ErrInvalid, http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := totals.MapHTTPStatus(tt.err); got != tt.wantStatus {
				t.Errorf("MapHTTPStatus() = %d, want %d", got, tt.wantStatus)
			}
		})
	}
}
