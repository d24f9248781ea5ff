// Package navigation assembles the dashboard route table and projects it
// into permission-filtered menus.
//
// A Builder merges ordered basic routes with modules collected in a
// Registry, appends the NotFound catch-all, enforces name uniqueness and
// produces an immutable Tree. A Tree resolves request paths to route chains
// and lazily loaded Components. Project derives the navigation Menu for a
// set of permitted route names without touching the Tree.
package navigation

import (
	"cmp"
	"slices"
)

// NotFoundName is the name of the synthetic catch-all route.
const NotFoundName = "NotFound"

// NotFoundPath is the ServeMux-style pattern of the catch-all route.
const NotFoundPath = "/{path...}"

// NotFoundRedirect is where the catch-all sends unmatched paths.
const NotFoundRedirect = "/404"

// Meta carries display metadata for a route.
type Meta struct {
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	Icon  string `json:"icon,omitempty" yaml:"icon,omitempty"`
	Order *int   `json:"order,omitempty" yaml:"order,omitempty"`
	Affix bool   `json:"affix,omitempty" yaml:"affix,omitempty"`
}

// Route maps a path to a view. Top-level paths are absolute; child paths
// are relative to their parent and an empty child path shares the parent's
// full path.
type Route struct {
	Name      string     `json:"name" yaml:"name"`
	Path      string     `json:"path" yaml:"path"`
	Component *Component `json:"component,omitempty" yaml:"component,omitempty"`
	Redirect  string     `json:"redirect,omitempty" yaml:"redirect,omitempty"`
	Hidden    bool       `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	Meta      Meta       `json:"meta" yaml:"meta"`
	Children  []Route    `json:"children,omitempty" yaml:"children,omitempty"`
}

// Order returns a pointer to n for use in Meta.Order.
func Order(n int) *int {
	return &n
}

// IsGroup reports whether r only hosts children.
func (r Route) IsGroup() bool {
	return len(r.Children) > 0 && r.Component == nil
}

// IsIndex reports whether r is an index child sharing its parent's path.
func (r Route) IsIndex() bool {
	return r.Path == ""
}

// Clone returns a deep copy of r. Components are shared, not copied.
func (r Route) Clone() Route {
	out := r
	if r.Meta.Order != nil {
		out.Meta.Order = Order(*r.Meta.Order)
	}
	if r.Children != nil {
		out.Children = cloneRoutes(r.Children)
	}
	return out
}

func cloneRoutes(routes []Route) []Route {
	out := make([]Route, len(routes))
	for i, r := range routes {
		out[i] = r.Clone()
	}
	return out
}

// sortByOrder stable-sorts routes by Meta.Order; unordered routes keep
// declaration order after the ordered ones.
func sortByOrder[T any](items []T, order func(T) *int) {
	slices.SortStableFunc(items, func(a, b T) int {
		oa, ob := order(a), order(b)
		switch {
		case oa == nil && ob == nil:
			return 0
		case oa == nil:
			return 1
		case ob == nil:
			return -1
		}
		return cmp.Compare(*oa, *ob)
	})
}
