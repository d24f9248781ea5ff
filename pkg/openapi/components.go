package openapi

// NewComponents returns the schemas and responses every document shares.
func NewComponents() *Components {
	return &Components{
		Schemas: map[string]*Schema{
			"PageRequest": {
				Type: "object",
				Properties: map[string]*Schema{
					"page":      {Type: "integer", Description: "Page number (1-indexed)", Example: 1},
					"page_size": {Type: "integer", Description: "Results per page", Example: 10},
					"search":    {Type: "string", Description: "Search query"},
					"sort":      {Type: "string", Description: "Comma-separated sort fields. Prefix with - for descending"},
				},
			},
			"Empty": {Type: "object", Description: "No data"},
			"Error": {
				Type: "object",
				Properties: map[string]*Schema{
					"code": {Type: "integer"},
					"msg":  {Type: "string"},
				},
			},
		},
		Responses: map[string]*Response{
			"BadRequest":   ResponseJSON("Invalid request", "Error"),
			"Unauthorized": ResponseJSON("Missing or invalid token", "Error"),
			"Forbidden":    ResponseJSON("Caller may not act on the resource", "Error"),
			"NotFound":     ResponseJSON("Resource not found", "Error"),
			"Conflict":     ResponseJSON("Resource already exists", "Error"),
		},
	}
}

// AddSchemas merges schemas into the components, replacing same-named entries.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	for name, schema := range schemas {
		c.Schemas[name] = schema
	}
}
