package menu

import "github.com/JaimeStill/admin-console/pkg/openapi"

type spec struct {
	Tree    *openapi.Operation
	Menu    *openapi.Operation
	Resolve *openapi.Operation
}

var Spec = spec{
	Tree: &openapi.Operation{
		Summary:     "Route table",
		Description: "Returns the full route tree, hidden routes included",
		Responses: map[int]*openapi.Response{
			200: openapi.EnvelopeJSON("Route tree", "RouteList"),
		},
	},
	Menu: &openapi.Operation{
		Summary:     "Menu for caller",
		Description: "Projects the route tree onto the permissions of the caller's token, read from the token header or cookie",
		Responses: map[int]*openapi.Response{
			200: openapi.EnvelopeJSON("Visible menu", "Menu"),
			401: openapi.ResponseRef("Unauthorized"),
		},
	},
	Resolve: &openapi.Operation{
		Summary: "Resolve path",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("path", "string", "Dashboard path to resolve", true),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.EnvelopeJSON("Resolved route", "Resolution"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	meta := &openapi.Schema{
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"title": {Type: "string"},
			"icon":  {Type: "string"},
			"order": {Type: "integer"},
			"affix": {Type: "boolean"},
		},
	}

	return map[string]*openapi.Schema{
		"Route": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"name":      {Type: "string"},
				"path":      {Type: "string"},
				"component": {Type: "string", Description: "Component path"},
				"redirect":  {Type: "string"},
				"hidden":    {Type: "boolean"},
				"meta":      meta,
				"children":  {Type: "array", Items: openapi.SchemaRef("Route")},
			},
		},
		"RouteList": {Type: "array", Items: openapi.SchemaRef("Route")},
		"MenuItem": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"name":     {Type: "string"},
				"path":     {Type: "string"},
				"title":    {Type: "string"},
				"icon":     {Type: "string"},
				"order":    {Type: "integer"},
				"affix":    {Type: "boolean"},
				"children": {Type: "array", Items: openapi.SchemaRef("MenuItem")},
			},
		},
		"Menu": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"items": {Type: "array", Items: openapi.SchemaRef("MenuItem")},
			},
		},
		"Resolution": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"path":      {Type: "string"},
				"name":      {Type: "string"},
				"full_path": {Type: "string"},
				"chain":     {Type: "array", Items: &openapi.Schema{Type: "string"}},
				"redirect":  {Type: "string"},
				"hidden":    {Type: "boolean"},
				"not_found": {Type: "boolean"},
				"component": {Type: "string"},
			},
		},
	}
}
