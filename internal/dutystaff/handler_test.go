package dutystaff_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/JaimeStill/admin-console/internal/dutystaff"
	"github.com/JaimeStill/admin-console/pkg/handlers"
	"github.com/JaimeStill/admin-console/pkg/logging"
	"github.com/JaimeStill/admin-console/pkg/pagination"
	"github.com/google/uuid"
)

type fakeSystem struct {
	fieldOnly bool
	filters   dutystaff.Filters
	err       error
}

func (f *fakeSystem) List(ctx context.Context, page pagination.PageRequest, filters dutystaff.Filters) (*pagination.PageResult[dutystaff.Staff], error) {
	f.filters = filters
	count := 2
	sum := int64(600)
	result := pagination.NewPageResult([]dutystaff.Staff{
		{Name: "li", Type: dutystaff.FieldStaffType, Count: &count, ExpectedExpenditureSum: &sum},
		{Name: "zhang", Type: "内勤人员"},
	}, 2, page.Page, page.PageSize)
	return &result, f.err
}

func (f *fakeSystem) ListFieldStaff(ctx context.Context, page pagination.PageRequest, filters dutystaff.Filters) (*pagination.PageResult[dutystaff.Staff], error) {
	f.fieldOnly = true
	result := pagination.NewPageResult([]dutystaff.Staff{}, 0, page.Page, page.PageSize)
	return &result, f.err
}

func (f *fakeSystem) Find(ctx context.Context, id uuid.UUID) (*dutystaff.Staff, error) {
	return &dutystaff.Staff{ID: id}, f.err
}

func (f *fakeSystem) Create(ctx context.Context, cmd dutystaff.CreateCommand) (*dutystaff.Staff, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dutystaff.Staff{Name: cmd.Name, Type: cmd.Type}, nil
}

func (f *fakeSystem) Update(ctx context.Context, cmd dutystaff.UpdateCommand) (*dutystaff.Staff, error) {
	return &dutystaff.Staff{ID: cmd.ID}, f.err
}

func (f *fakeSystem) Delete(ctx context.Context, id uuid.UUID) error {
	return f.err
}

func serve(sys dutystaff.System, method, target, body string) *httptest.ResponseRecorder {
	h := dutystaff.NewHandler(sys, logging.Discard(), pagination.Config{DefaultPageSize: 10, MaxPageSize: 100}, 1<<20)
	mux := http.NewServeMux()
	group := h.Routes()
	for _, r := range group.Routes {
		mux.HandleFunc(r.Method+" "+group.Prefix+r.Pattern, r.Handler)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))
	return rec
}

func TestHandler_List_Enrichment(t *testing.T) {
	sys := &fakeSystem{}
	rec := serve(sys, "GET", "/duty_staff/list?type="+url.QueryEscape(dutystaff.FieldStaffType), "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if sys.filters.Type == nil || *sys.filters.Type != dutystaff.FieldStaffType {
		t.Errorf("filters = %+v", sys.filters)
	}

	var env struct {
		Data []map[string]any `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(env.Data) != 2 {
		t.Fatalf("data = %v", env.Data)
	}
	if env.Data[0]["count"] != float64(2) || env.Data[0]["expected_expenditure_sum"] != float64(600) {
		t.Errorf("field staff = %v", env.Data[0])
	}
	if _, ok := env.Data[1]["count"]; ok {
		t.Errorf("internal staff carries count: %v", env.Data[1])
	}
}

func TestHandler_ListFieldStaff(t *testing.T) {
	sys := &fakeSystem{}
	rec := serve(sys, "GET", "/duty_staff/list_fs", "")

	if rec.Code != http.StatusOK || !sys.fieldOnly {
		t.Errorf("status = %d fieldOnly = %v", rec.Code, sys.fieldOnly)
	}
}

func TestHandler_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{"created", `{"name":"li","type":"外勤人员"}`, nil, http.StatusOK},
		{"duplicate name", `{"name":"li","type":"外勤人员"}`, dutystaff.ErrDuplicate, http.StatusConflict},
		{"missing type", `{"name":"li"}`, nil, http.StatusBadRequest},
		{"store failure", `{"name":"li","type":"外勤人员"}`, errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeSystem{err: tt.err}, "POST", "/duty_staff/create", tt.body)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			var env handlers.Envelope
			json.NewDecoder(rec.Body).Decode(&env)
			if env.Code != tt.wantStatus {
				t.Errorf("envelope code = %d, want %d", env.Code, tt.wantStatus)
			}
		})
	}
}

func TestMapHTTPStatus(t *testing.T) {
	if got := dutystaff.MapHTTPStatus(dutystaff.ErrNotFound); got != http.StatusNotFound {
		t.Errorf("not found = %d", got)
	}
	if got := dutystaff.MapHTTPStatus(dutystaff.ErrDuplicate); got != http.StatusConflict {
		t.Errorf("duplicate = %d", got)
	}
}
