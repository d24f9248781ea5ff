package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/admin-console/internal/config"
	"github.com/JaimeStill/admin-console/internal/infrastructure"
	"github.com/JaimeStill/admin-console/pkg/database"
	"github.com/JaimeStill/admin-console/pkg/lifecycle"
	"github.com/JaimeStill/admin-console/pkg/logging"
)

type stubDatabase struct {
	err error
}

func (s stubDatabase) Connection() *sql.DB                { return nil }
func (s stubDatabase) Start(*lifecycle.Coordinator) error { return nil }
func (s stubDatabase) Check(context.Context) error        { return s.err }

func testInfra(db database.System) *infrastructure.Infrastructure {
	return &infrastructure.Infrastructure{
		Lifecycle: lifecycle.New(),
		Logger:    logging.Discard(),
		Database:  db,
	}
}

func serve(t *testing.T, infra *infrastructure.Infrastructure, path string) *httptest.ResponseRecorder {
	t.Helper()
	cfg := &config.Config{App: config.AppConfig{BasePath: "/app"}}
	router := buildRouter(infra, cfg)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestBuildRouter_RootRedirectsToApp(t *testing.T) {
	rec := serve(t, testInfra(stubDatabase{}), "/")

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusFound)
	}
	if loc := rec.Header().Get("Location"); loc != "/app/" {
		t.Errorf("Location = %q, want /app/", loc)
	}
}

func TestBuildRouter_Healthz(t *testing.T) {
	rec := serve(t, testInfra(stubDatabase{err: database.ErrNotReady}), "/healthz")

	if rec.Code != http.StatusOK || rec.Body.String() != "OK" {
		t.Errorf("healthz = %d %q", rec.Code, rec.Body.String())
	}
}

func TestBuildRouter_Readyz(t *testing.T) {
	tests := []struct {
		name    string
		started bool
		dbErr   error
		want    int
	}{
		{"before startup", false, nil, http.StatusServiceUnavailable},
		{"database unavailable", true, errors.New("connection refused"), http.StatusServiceUnavailable},
		{"ready", true, nil, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			infra := testInfra(stubDatabase{err: tt.dbErr})
			if tt.started {
				infra.Lifecycle.WaitForStartup()
			}

			if rec := serve(t, infra, "/readyz"); rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}
