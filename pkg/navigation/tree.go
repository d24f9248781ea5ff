package navigation

import "sort"

type node struct {
	route    *Route
	fullPath string
	parent   *node
	children []*node
}

// Tree is the immutable route table produced by Builder.Build. Accessors
// return copies; it is safe for concurrent use.
type Tree struct {
	routes     []Route
	roots      []*node
	byName     map[string]*node
	order      []*node
	components map[string]*Component
}

func newTree(routes []Route, standalone []*Component) *Tree {
	t := &Tree{
		routes:     routes,
		byName:     make(map[string]*node),
		components: make(map[string]*Component),
	}

	var walk func(r *Route, parent *node) *node
	walk = func(r *Route, parent *node) *node {
		parentPath := ""
		if parent != nil {
			parentPath = parent.fullPath
		}
		n := &node{route: r, fullPath: Join(parentPath, r.Path), parent: parent}
		t.byName[r.Name] = n
		t.order = append(t.order, n)
		for i := range r.Children {
			n.children = append(n.children, walk(&r.Children[i], n))
		}
		return n
	}
	for i := range t.routes {
		t.roots = append(t.roots, walk(&t.routes[i], nil))
	}

	t.indexComponents(standalone)
	return t
}

// indexComponents keys components by declared path first, then lets route
// full paths take precedence so a path always resolves to what its route renders.
func (t *Tree) indexComponents(standalone []*Component) {
	for _, c := range standalone {
		if _, ok := t.components[c.Path()]; !ok {
			t.components[c.Path()] = c
		}
	}
	for _, n := range t.order {
		if c := n.route.Component; c != nil {
			t.components[c.Path()] = c
		}
	}
	for _, n := range t.order {
		if c := n.route.Component; c != nil {
			t.components[n.fullPath] = c
		}
	}
}

// Routes returns a deep copy of the top-level routes, NotFound last.
func (t *Tree) Routes() []Route {
	return cloneRoutes(t.routes)
}

// Lookup returns the route with name and its full path.
func (t *Tree) Lookup(name string) (Route, string, bool) {
	n, ok := t.byName[name]
	if !ok {
		return Route{}, "", false
	}
	return n.route.Clone(), n.fullPath, true
}

// Names returns every route name in depth-first declaration order.
func (t *Tree) Names() []string {
	out := make([]string, len(t.order))
	for i, n := range t.order {
		out[i] = n.route.Name
	}
	return out
}

// Entry is one flattened route with its resolved position.
type Entry struct {
	Name      string `json:"name" yaml:"name"`
	FullPath  string `json:"full_path" yaml:"full_path"`
	Parent    string `json:"parent,omitempty" yaml:"parent,omitempty"`
	Depth     int    `json:"depth" yaml:"depth"`
	Hidden    bool   `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	Component string `json:"component,omitempty" yaml:"component,omitempty"`
	Redirect  string `json:"redirect,omitempty" yaml:"redirect,omitempty"`
	Title     string `json:"title,omitempty" yaml:"title,omitempty"`
}

// Flatten lists every route in depth-first declaration order.
func (t *Tree) Flatten() []Entry {
	out := make([]Entry, 0, len(t.order))
	for _, n := range t.order {
		e := Entry{
			Name:     n.route.Name,
			FullPath: n.fullPath,
			Hidden:   n.route.Hidden,
			Redirect: n.route.Redirect,
			Title:    n.route.Meta.Title,
		}
		for p := n.parent; p != nil; p = p.parent {
			e.Depth++
		}
		if n.parent != nil {
			e.Parent = n.parent.route.Name
		}
		if n.route.Component != nil {
			e.Component = n.route.Component.Path()
		}
		out = append(out, e)
	}
	return out
}

// Component returns the component indexed under path, by route full path
// or declared component path.
func (t *Tree) Component(path string) (*Component, bool) {
	c, ok := t.components[Normalize(path)]
	return c, ok
}

// Components returns the index keys in sorted order.
func (t *Tree) Components() []string {
	keys := make([]string, 0, len(t.components))
	for k := range t.components {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NotFound returns the catch-all route.
func (t *Tree) NotFound() Route {
	return t.byName[NotFoundName].route.Clone()
}
