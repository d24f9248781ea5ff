package transactions

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
		Summary:     "List transactions",
		Description: "Returns a page of transactions ordered by payment time",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("page", "integer", "Page number (1-indexed)", false),
			openapi.QueryParam("page_size", "integer", "Results per page", false),
			openapi.QueryParam("payment_time", "string", "Filter by payment time (contains)", false),
			openapi.QueryParam("payment_amount", "string", "Filter by payment amount (contains)", false),
			openapi.QueryParam("recipient", "string", "Filter by recipient (contains)", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.PageEnvelopeJSON("Page of transactions", "Transaction"),
		},
	},
	Find: &openapi.Operation{
		Summary:    "Get transaction",
		Parameters: []*openapi.Parameter{openapi.IDQueryParam("Transaction UUID")},
		Responses: map[int]*openapi.Response{
			200: openapi.EnvelopeJSON("Transaction", "Transaction"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create transaction",
		RequestBody: openapi.RequestBodyJSON("CreateTransactionCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.EnvelopeJSON("Transaction created", "Transaction"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Update: &openapi.Operation{
		Summary:     "Update transaction",
		Description: "Applies the provided fields to an existing transaction",
		RequestBody: openapi.RequestBodyJSON("UpdateTransactionCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.EnvelopeJSON("Transaction updated", "Transaction"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Delete: &openapi.Operation{
		Summary:    "Delete transaction",
		Parameters: []*openapi.Parameter{openapi.IDQueryParam("Transaction UUID")},
		Responses: map[int]*openapi.Response{
			200: openapi.EnvelopeJSON("Transaction deleted", "Empty"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Transaction": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":             {Type: "string", Format: "uuid"},
				"payment_time":   {Type: "string", Format: "date-time"},
				"payment_amount": {Type: "number"},
				"recipient":      {Type: "string"},
				"created_at":     {Type: "string", Format: "date-time"},
				"updated_at":     {Type: "string", Format: "date-time"},
			},
		},
		"CreateTransactionCommand": {
			Type:     "object",
			Required: []string{"payment_time", "recipient"},
			Properties: map[string]*openapi.Schema{
				"payment_time":   {Type: "string", Format: "date-time"},
				"payment_amount": {Type: "number", Example: 120.5},
				"recipient":      {Type: "string"},
			},
		},
		"UpdateTransactionCommand": {
			Type:     "object",
			Required: []string{"id"},
			Properties: map[string]*openapi.Schema{
				"id":             {Type: "string", Format: "uuid"},
				"payment_time":   {Type: "string", Format: "date-time"},
				"payment_amount": {Type: "number"},
				"recipient":      {Type: "string"},
			},
		},
	}
}
