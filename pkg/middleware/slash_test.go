package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/admin-console/pkg/middleware"
)

func TestTrimSlash(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		target   string
		wantCode int
		wantLoc  string
	}{
		{"root preserved", "", "/", http.StatusTeapot, ""},
		{"no slash passes", "", "/v1/total/list", http.StatusTeapot, ""},
		{"trailing slash", "", "/v1/total/list/", http.StatusMovedPermanently, "/v1/total/list"},
		{"keeps query", "", "/v1/total/list/?page=2", http.StatusMovedPermanently, "/v1/total/list?page=2"},
		{"keeps base path", "/api", "/v1/total/list/", http.StatusMovedPermanently, "/api/v1/total/list"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := middleware.TrimSlash()(okHandler)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.base != "" {
				req = req.WithContext(middleware.WithBasePath(req.Context(), tt.base))
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			if loc := rec.Header().Get("Location"); loc != tt.wantLoc {
				t.Errorf("Location = %q, want %q", loc, tt.wantLoc)
			}
		})
	}
}
