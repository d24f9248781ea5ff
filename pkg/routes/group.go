// Package routes describes HTTP endpoints as data so the same declarations
// register handlers on a ServeMux and populate the OpenAPI document.
package routes

import (
	"net/http"

	"github.com/JaimeStill/admin-console/pkg/openapi"
)

// Route represents an HTTP route with method, pattern, and handler.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}

// Group represents a collection of routes under a common URL prefix.
// Groups can contain child groups for hierarchical route organization.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Routes      []Route
	Children    []Group
	Schemas     map[string]*openapi.Schema
}

// Wrap returns a copy of the group whose handlers, and those of its
// children, run behind mw.
func (g Group) Wrap(mw func(http.Handler) http.Handler) Group {
	wrapped := g
	wrapped.Routes = make([]Route, len(g.Routes))
	for i, route := range g.Routes {
		route.Handler = mw(route.Handler).ServeHTTP
		wrapped.Routes[i] = route
	}
	wrapped.Children = make([]Group, len(g.Children))
	for i, child := range g.Children {
		wrapped.Children[i] = child.Wrap(mw)
	}
	return wrapped
}

// AddToSpec documents every route of the group, and its children, under
// basePath. Operations without explicit tags inherit the group tags.
func (g Group) AddToSpec(basePath string, spec *openapi.Spec) {
	g.addToSpec(basePath, spec)
}

func (g Group) addToSpec(parentPrefix string, spec *openapi.Spec) {
	prefix := parentPrefix + g.Prefix

	if len(g.Schemas) > 0 {
		spec.Components.AddSchemas(g.Schemas)
	}

	for _, route := range g.Routes {
		if route.OpenAPI == nil {
			continue
		}
		op := route.OpenAPI
		if len(op.Tags) == 0 {
			op.Tags = g.Tags
		}
		spec.AddOperation(prefix+route.Pattern, route.Method, op)
	}

	for _, child := range g.Children {
		child.addToSpec(prefix, spec)
	}
}

// Register mounts every group on mux relative to the module root and
// documents it in spec under basePath.
func Register(mux *http.ServeMux, basePath string, spec *openapi.Spec, groups ...Group) {
	for _, group := range groups {
		registerGroup(mux, "", group)
		group.AddToSpec(basePath, spec)
	}
}

func registerGroup(mux *http.ServeMux, parentPrefix string, group Group) {
	prefix := parentPrefix + group.Prefix
	for _, route := range group.Routes {
		mux.HandleFunc(route.Method+" "+prefix+route.Pattern, route.Handler)
	}
	for _, child := range group.Children {
		registerGroup(mux, prefix, child)
	}
}
