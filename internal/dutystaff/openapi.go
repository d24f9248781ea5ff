package dutystaff

import "github.com/JaimeStill/admin-console/pkg/openapi"

type spec struct {
	List           *openapi.Operation
	ListFieldStaff *openapi.Operation
	Find           *openapi.Operation
	Create         *openapi.Operation
	Update         *openapi.Operation
	Delete         *openapi.Operation
}

var listParams = []*openapi.Parameter{
	openapi.QueryParam("page", "integer", "Page number (1-indexed)", false),
	openapi.QueryParam("page_size", "integer", "Results per page", false),
	openapi.QueryParam("name", "string", "Filter by name (contains)", false),
	openapi.QueryParam("type", "string", "Filter by staff type (contains)", false),
}

var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List duty staff",
		Description: "Field staff entries carry count and expected_expenditure_sum from the ledger",
		Parameters:  listParams,
		Responses: map[int]*openapi.Response{
			200: openapi.PageEnvelopeJSON("Page of staff", "DutyStaff"),
		},
	},
	ListFieldStaff: &openapi.Operation{
		Summary:    "List field staff",
		Parameters: listParams,
		Responses: map[int]*openapi.Response{
			200: openapi.PageEnvelopeJSON("Page of field staff", "DutyStaff"),
		},
	},
	Find: &openapi.Operation{
		Summary:    "Get staff member",
		Parameters: []*openapi.Parameter{openapi.IDQueryParam("Staff UUID")},
		Responses: map[int]*openapi.Response{
			200: openapi.EnvelopeJSON("Staff member", "DutyStaff"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create staff member",
		RequestBody: openapi.RequestBodyJSON("CreateDutyStaffCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.EnvelopeJSON("Staff member created", "DutyStaff"),
			400: openapi.ResponseRef("BadRequest"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	Update: &openapi.Operation{
		Summary:     "Update staff member",
		RequestBody: openapi.RequestBodyJSON("UpdateDutyStaffCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.EnvelopeJSON("Staff member updated", "DutyStaff"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	Delete: &openapi.Operation{
		Summary:    "Delete staff member",
		Parameters: []*openapi.Parameter{openapi.IDQueryParam("Staff UUID")},
		Responses: map[int]*openapi.Response{
			200: openapi.EnvelopeJSON("Staff member deleted", "Empty"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"DutyStaff": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":                       {Type: "string", Format: "uuid"},
				"name":                     {Type: "string"},
				"type":                     {Type: "string", Example: FieldStaffType},
				"actual_expenditure":       {Type: "integer"},
				"count":                    {Type: "integer", Description: "Ledger records assigned (field staff only)"},
				"expected_expenditure_sum": {Type: "integer", Description: "Expected expenditure of assigned records (field staff only)"},
				"created_at":               {Type: "string", Format: "date-time"},
				"updated_at":               {Type: "string", Format: "date-time"},
			},
		},
		"CreateDutyStaffCommand": {
			Type:     "object",
			Required: []string{"name", "type"},
			Properties: map[string]*openapi.Schema{
				"name": {Type: "string"},
				"type": {Type: "string"},
			},
		},
		"UpdateDutyStaffCommand": {
			Type:     "object",
			Required: []string{"id", "name", "type", "actual_expenditure"},
			Properties: map[string]*openapi.Schema{
				"id":                 {Type: "string", Format: "uuid"},
				"name":               {Type: "string"},
				"type":               {Type: "string"},
				"actual_expenditure": {Type: "integer"},
			},
		},
	}
}
