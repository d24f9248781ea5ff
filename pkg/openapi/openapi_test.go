package openapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/admin-console/pkg/openapi"
)

func TestNewSpec(t *testing.T) {
	spec := openapi.NewSpec("Admin Console API", "1.2.3")
	spec.SetDescription("desc")
	spec.AddServer("")
	spec.AddServer("http://localhost:8080")

	if spec.OpenAPI != "3.1.0" {
		t.Errorf("OpenAPI = %q", spec.OpenAPI)
	}
	if spec.Info.Title != "Admin Console API" || spec.Info.Version != "1.2.3" || spec.Info.Description != "desc" {
		t.Errorf("Info = %+v", spec.Info)
	}
	if len(spec.Servers) != 1 {
		t.Errorf("Servers = %d, want empty URL ignored", len(spec.Servers))
	}
	for _, name := range []string{"PageRequest", "Empty", "Error"} {
		if _, ok := spec.Components.Schemas[name]; !ok {
			t.Errorf("missing shared schema %s", name)
		}
	}
}

func TestSpec_AddOperation(t *testing.T) {
	spec := openapi.NewSpec("t", "v")
	get := &openapi.Operation{Summary: "get"}
	del := &openapi.Operation{Summary: "delete"}

	spec.AddOperation("/v1/total/get", "GET", get)
	spec.AddOperation("/v1/total/get", "DELETE", del)

	item := spec.Paths["/v1/total/get"]
	if item == nil || item.Get != get || item.Delete != del {
		t.Errorf("PathItem = %+v", item)
	}
}

func TestComponents_AddSchemas(t *testing.T) {
	c := openapi.NewComponents()
	c.AddSchemas(map[string]*openapi.Schema{
		"Total": {Type: "object"},
		"Empty": {Type: "null"},
	})

	if c.Schemas["Total"] == nil {
		t.Error("schema not added")
	}
	if c.Schemas["Empty"].Type != "null" {
		t.Error("same-named schema not replaced")
	}
}

func TestEnvelopeJSON(t *testing.T) {
	resp := openapi.EnvelopeJSON("Record", "Total")

	schema := resp.Content["application/json"].Schema
	if schema.Properties["data"].Ref != "#/components/schemas/Total" {
		t.Errorf("data ref = %q", schema.Properties["data"].Ref)
	}
	if _, ok := schema.Properties["total"]; ok {
		t.Error("single envelope carries total")
	}
}

func TestPageEnvelopeJSON(t *testing.T) {
	resp := openapi.PageEnvelopeJSON("Records", "Total")

	schema := resp.Content["application/json"].Schema
	data := schema.Properties["data"]
	if data.Type != "array" || data.Items.Ref != "#/components/schemas/Total" {
		t.Errorf("data = %+v", data)
	}
	for _, key := range []string{"total", "page", "page_size"} {
		if _, ok := schema.Properties[key]; !ok {
			t.Errorf("missing %s", key)
		}
	}
}

func TestParams(t *testing.T) {
	id := openapi.IDQueryParam("Record ID")
	if id.Name != "id" || id.In != "query" || !id.Required || id.Schema.Format != "uuid" {
		t.Errorf("IDQueryParam = %+v", id)
	}

	q := openapi.QueryParam("plate", "string", "Plate", false)
	if q.In != "query" || q.Required || q.Schema.Type != "string" {
		t.Errorf("QueryParam = %+v", q)
	}
}

func TestMarshalAndServe(t *testing.T) {
	spec := openapi.NewSpec("t", "v")
	spec.AddOperation("/v1/navigation/menu", "GET", &openapi.Operation{
		Responses: map[int]*openapi.Response{200: openapi.ResponseRef("Unauthorized")},
	})

	data, err := openapi.MarshalJSON(spec)
	if err != nil {
		t.Fatalf("MarshalJSON() error: %v", err)
	}

	rec := httptest.NewRecorder()
	openapi.ServeSpec(data)(rec, httptest.NewRequest(http.MethodGet, "/v1/openapi.json", nil))

	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var decoded map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("served spec is not JSON: %v", err)
	}
	paths := decoded["paths"].(map[string]any)
	if _, ok := paths["/v1/navigation/menu"]; !ok {
		t.Errorf("paths = %v", paths)
	}
}
