package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/admin-console/pkg/handlers"
	"github.com/JaimeStill/admin-console/pkg/logging"
	"github.com/JaimeStill/admin-console/pkg/pagination"
	"github.com/JaimeStill/admin-console/pkg/validation"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	handlers.RespondJSON(rec, http.StatusCreated, map[string]string{"k": "v"})

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	if body := decode(t, rec); body["k"] != "v" {
		t.Errorf("body = %v", body)
	}
}

func TestRespondSuccess(t *testing.T) {
	tests := []struct {
		name    string
		msg     string
		wantMsg string
	}{
		{"default message", "", "OK"},
		{"custom message", "Created Successfully", "Created Successfully"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			handlers.RespondSuccess(rec, map[string]int{"n": 1}, tt.msg)

			body := decode(t, rec)
			if body["code"] != float64(200) || body["msg"] != tt.wantMsg {
				t.Errorf("envelope = %v", body)
			}
			if _, ok := body["total"]; ok {
				t.Error("success envelope carries total")
			}
		})
	}
}

func TestRespondPage(t *testing.T) {
	rec := httptest.NewRecorder()
	result := pagination.NewPageResult([]string{"a", "b"}, 12, 2, 2)

	handlers.RespondPage(rec, &result)

	body := decode(t, rec)
	if body["total"] != float64(12) || body["page"] != float64(2) || body["page_size"] != float64(2) {
		t.Errorf("envelope = %v", body)
	}
	if data, ok := body["data"].([]any); !ok || len(data) != 2 {
		t.Errorf("data = %v", body["data"])
	}
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()

	handlers.RespondError(rec, logging.Discard(), http.StatusNotFound, errors.New("record not found"))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d", rec.Code)
	}
	body := decode(t, rec)
	if body["code"] != float64(404) || body["msg"] != "record not found" {
		t.Errorf("envelope = %v", body)
	}
	if _, ok := body["data"]; ok {
		t.Error("error envelope carries data")
	}
}

type bindTarget struct {
	Name string `json:"name" validate:"required"`
}

func TestBind(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		maxBytes    int64
		wantErr     bool
		wantInvalid bool
	}{
		{"valid", `{"name":"x"}`, 0, false, false},
		{"unknown field", `{"name":"x","extra":1}`, 0, true, false},
		{"malformed", `{"name":`, 0, true, false},
		{"fails validation", `{"name":""}`, 0, true, true},
		{"over limit", `{"name":"a long enough name"}`, 8, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			var dst bindTarget
			err := handlers.Bind(rec, req, tt.maxBytes, &dst)

			if (err != nil) != tt.wantErr {
				t.Fatalf("Bind() error = %v, wantErr %v", err, tt.wantErr)
			}
			if errors.Is(err, validation.ErrInvalid) != tt.wantInvalid {
				t.Errorf("Bind() error = %v, wantInvalid %v", err, tt.wantInvalid)
			}
		})
	}
}
