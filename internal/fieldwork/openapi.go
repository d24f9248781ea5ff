package fieldwork

import "github.com/JaimeStill/admin-console/pkg/openapi"

type spec struct {
	List   *openapi.Operation
	Find   *openapi.Operation
	Create *openapi.Operation
	Update *openapi.Operation
	Delete *openapi.Operation
}

var Spec = spec{
	List: &openapi.Operation{
		Summary: "List field work records",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("page", "integer", "Page number (1-indexed)", false),
			openapi.QueryParam("page_size", "integer", "Results per page", false),
			openapi.QueryParam("date", "string", "Filter by date (contains)", false),
			openapi.QueryParam("name", "string", "Filter by field worker name (contains)", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.PageEnvelopeJSON("Page of field work records", "FieldWork"),
		},
	},
	Find: &openapi.Operation{
		Summary:    "Get field work record",
		Parameters: []*openapi.Parameter{openapi.IDQueryParam("Record UUID")},
		Responses: map[int]*openapi.Response{
			200: openapi.EnvelopeJSON("Field work record", "FieldWork"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create field work record",
		RequestBody: openapi.RequestBodyJSON("CreateFieldWorkCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.EnvelopeJSON("Record created", "FieldWork"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Update: &openapi.Operation{
		Summary:     "Update field work record",
		Description: "Replaces every field of an existing record",
		RequestBody: openapi.RequestBodyJSON("UpdateFieldWorkCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.EnvelopeJSON("Record updated", "FieldWork"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Delete: &openapi.Operation{
		Summary:    "Delete field work record",
		Parameters: []*openapi.Parameter{openapi.IDQueryParam("Record UUID")},
		Responses: map[int]*openapi.Response{
			200: openapi.EnvelopeJSON("Record deleted", "Empty"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	fields := func() map[string]*openapi.Schema {
		return map[string]*openapi.Schema{
			"name":                 {Type: "string"},
			"number":               {Type: "integer", Description: "Vehicles handled"},
			"expected_expenditure": {Type: "integer"},
			"difference":           {Type: "integer"},
			"date":                 {Type: "string", Example: "2024-03-01"},
			"remark":               {Type: "string"},
		}
	}

	record := fields()
	record["id"] = &openapi.Schema{Type: "string", Format: "uuid"}
	record["created_at"] = &openapi.Schema{Type: "string", Format: "date-time"}
	record["updated_at"] = &openapi.Schema{Type: "string", Format: "date-time"}

	update := fields()
	update["id"] = &openapi.Schema{Type: "string", Format: "uuid"}

	return map[string]*openapi.Schema{
		"FieldWork": {Type: "object", Properties: record},
		"CreateFieldWorkCommand": {
			Type:       "object",
			Required:   []string{"name", "date"},
			Properties: fields(),
		},
		"UpdateFieldWorkCommand": {
			Type:       "object",
			Required:   []string{"id", "name", "date"},
			Properties: update,
		},
	}
}
