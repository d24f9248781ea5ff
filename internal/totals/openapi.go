package totals

import "github.com/JaimeStill/admin-console/pkg/openapi"

type spec struct {
	List               *openapi.Operation
	ListFieldService   *openapi.Operation
	Summarize          *openapi.Operation
	ListOwn            *openapi.Operation
	Find               *openapi.Operation
	Create             *openapi.Operation
	Update             *openapi.Operation
	UpdateFieldService *openapi.Operation
	UpdateOwn          *openapi.Operation
	Delete             *openapi.Operation
}

// paged prepends the pagination parameters to params.
func paged(params ...*openapi.Parameter) []*openapi.Parameter {
	return append([]*openapi.Parameter{
		openapi.QueryParam("page", "integer", "Page number (1-indexed)", false),
		openapi.QueryParam("page_size", "integer", "Results per page", false),
	}, params...)
}

func ledgerFilters() []*openapi.Parameter {
	return []*openapi.Parameter{
		openapi.QueryParam("date", "string", "Filter by date (contains)", false),
		openapi.QueryParam("plate", "string", "Filter by plate (contains)", false),
		openapi.QueryParam("business", "string", "Filter by business (contains)", false),
	}
}

var Spec = spec{
	List: &openapi.Operation{
		Summary:    "List records",
		Parameters: paged(ledgerFilters()...),
		Responses: map[int]*openapi.Response{
			200: openapi.PageEnvelopeJSON("Page of records", "Total"),
		},
	},
	ListFieldService: &openapi.Operation{
		Summary:     "List field service records",
		Description: "Returns the field staff projection of the ledger",
		Parameters: paged(
			openapi.QueryParam("field_staff", "string", "Filter by field staff (contains)", false),
			openapi.QueryParam("plate", "string", "Filter by plate (contains)", false),
			openapi.QueryParam("business", "string", "Filter by business (contains)", false),
		),
		Responses: map[int]*openapi.Response{
			200: openapi.PageEnvelopeJSON("Page of field service records", "FieldService"),
		},
	},
	Summarize: &openapi.Operation{
		Summary:     "Summarize by business",
		Description: "Returns expected expenditure and income totals per business",
		Parameters: paged(
			openapi.QueryParam("business", "string", "Filter by business (contains)", false),
		),
		Responses: map[int]*openapi.Response{
			200: openapi.PageEnvelopeJSON("Page of business summaries", "BusinessSummary"),
		},
	},
	ListOwn: &openapi.Operation{
		Summary:     "List own records",
		Description: "Returns the records owned by one internal staff member",
		Parameters: paged(append(ledgerFilters(),
			openapi.QueryParam("internal_staff", "string", "Owning internal staff member", true),
		)...),
		Responses: map[int]*openapi.Response{
			200: openapi.PageEnvelopeJSON("Page of records", "Total"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Find: &openapi.Operation{
		Summary:    "Get record",
		Parameters: []*openapi.Parameter{openapi.IDQueryParam("Record UUID")},
		Responses: map[int]*openapi.Response{
			200: openapi.EnvelopeJSON("Record", "Total"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create record",
		RequestBody: openapi.RequestBodyJSON("CreateTotalCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.EnvelopeJSON("Record created", "Total"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Update: &openapi.Operation{
		Summary:     "Update record",
		Description: "Applies the provided fields to an existing record",
		RequestBody: openapi.RequestBodyJSON("UpdateTotalCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.EnvelopeJSON("Record updated", "Total"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	UpdateFieldService: &openapi.Operation{
		Summary:     "Update field service columns",
		RequestBody: openapi.RequestBodyJSON("UpdateFieldServiceCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.EnvelopeJSON("Record updated", "FieldService"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	UpdateOwn: &openapi.Operation{
		Summary:     "Update own record",
		Description: "Updates progress columns of a record owned by the caller",
		RequestBody: openapi.RequestBodyJSON("UpdateOwnCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.EnvelopeJSON("Record updated", "Total"),
			400: openapi.ResponseRef("BadRequest"),
			403: openapi.ResponseRef("Forbidden"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Delete: &openapi.Operation{
		Summary:    "Delete record",
		Parameters: []*openapi.Parameter{openapi.IDQueryParam("Record UUID")},
		Responses: map[int]*openapi.Response{
			200: openapi.EnvelopeJSON("Record deleted", "Empty"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	str := func() *openapi.Schema { return &openapi.Schema{Type: "string"} }
	integer := func() *openapi.Schema { return &openapi.Schema{Type: "integer"} }

	ledger := map[string]*openapi.Schema{
		"date":                 str(),
		"plate":                str(),
		"region":               str(),
		"company":              str(),
		"field_staff":          str(),
		"internal_staff":       str(),
		"platform":             str(),
		"account":              str(),
		"password":             str(),
		"business":             str(),
		"expected_expenditure": integer(),
		"income":               integer(),
		"destination":          str(),
		"remark":               str(),
		"docking_time":         str(),
		"handover_time":        str(),
		"is_completed":         {Type: "boolean"},
	}

	total := map[string]*openapi.Schema{
		"id":         {Type: "string", Format: "uuid"},
		"created_at": {Type: "string", Format: "date-time"},
		"updated_at": {Type: "string", Format: "date-time"},
	}
	update := map[string]*openapi.Schema{
		"id": {Type: "string", Format: "uuid"},
	}
	for k, v := range ledger {
		total[k] = v
		update[k] = v
	}

	return map[string]*openapi.Schema{
		"Total": {Type: "object", Properties: total},
		"CreateTotalCommand": {
			Type: "object",
			Required: []string{
				"date", "plate", "region", "company", "field_staff", "internal_staff",
				"platform", "account", "password", "business", "destination",
			},
			Properties: ledger,
		},
		"UpdateTotalCommand": {
			Type:       "object",
			Required:   []string{"id"},
			Properties: update,
		},
		"FieldService": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":                   {Type: "string", Format: "uuid"},
				"field_staff":          str(),
				"plate":                str(),
				"business":             str(),
				"expected_expenditure": integer(),
			},
		},
		"UpdateFieldServiceCommand": {
			Type:     "object",
			Required: []string{"id"},
			Properties: map[string]*openapi.Schema{
				"id":                   {Type: "string", Format: "uuid"},
				"field_staff":          str(),
				"plate":                str(),
				"business":             str(),
				"expected_expenditure": integer(),
			},
		},
		"UpdateOwnCommand": {
			Type:     "object",
			Required: []string{"id"},
			Properties: map[string]*openapi.Schema{
				"id":             {Type: "string", Format: "uuid"},
				"internal_staff": str(),
				"income":         integer(),
				"destination":    str(),
				"remark":         str(),
				"docking_time":   str(),
				"handover_time":  str(),
				"is_completed":   {Type: "boolean"},
			},
		},
		"BusinessSummary": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"business":             str(),
				"expected_expenditure": integer(),
				"income":               integer(),
			},
		},
	}
}
