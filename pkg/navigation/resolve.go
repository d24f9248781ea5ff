package navigation

// Match is the result of resolving a request path.
type Match struct {
	Path     string   `json:"path" yaml:"path"`
	Name     string   `json:"name" yaml:"name"`
	FullPath string   `json:"full_path" yaml:"full_path"`
	Chain    []string `json:"chain" yaml:"chain"`
	Redirect string   `json:"redirect,omitempty" yaml:"redirect,omitempty"`
	Hidden   bool     `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	NotFound bool     `json:"not_found,omitempty" yaml:"not_found,omitempty"`

	route *Route
}

// Route returns a copy of the matched leaf route.
func (m Match) Route() Route {
	if m.route == nil {
		return Route{}
	}
	return m.route.Clone()
}

// Component returns the matched leaf's component, if any.
func (m Match) Component() *Component {
	if m.route == nil {
		return nil
	}
	return m.route.Component
}

// Resolve matches path against the tree, preferring the deepest route.
// Index children win over their parent. A leaf without a component or
// redirect that has children redirects to its first child. Unmatched paths
// resolve to NotFound.
func (t *Tree) Resolve(path string) Match {
	path = Normalize(path)

	for _, root := range t.roots {
		if root.route.Name == NotFoundName {
			continue
		}
		if chain := matchNode(root, path); chain != nil {
			return newMatch(path, chain)
		}
	}

	nf := t.byName[NotFoundName]
	return Match{
		Path:     path,
		Name:     nf.route.Name,
		FullPath: nf.fullPath,
		Chain:    []string{nf.route.Name},
		Redirect: nf.route.Redirect,
		Hidden:   true,
		NotFound: true,
		route:    nf.route,
	}
}

func matchNode(n *node, path string) []*node {
	exact, prefix := matchPath(n.fullPath, path)
	if !exact && !prefix {
		return nil
	}

	for _, c := range n.children {
		if chain := matchNode(c, path); chain != nil {
			return append([]*node{n}, chain...)
		}
	}

	if exact {
		return []*node{n}
	}
	return nil
}

func newMatch(path string, chain []*node) Match {
	leaf := chain[len(chain)-1]
	names := make([]string, len(chain))
	for i, n := range chain {
		names[i] = n.route.Name
	}

	redirect := leaf.route.Redirect
	if redirect == "" && leaf.route.Component == nil && len(leaf.children) > 0 {
		redirect = leaf.children[0].fullPath
	}

	hidden := false
	for _, n := range chain {
		hidden = hidden || n.route.Hidden
	}

	return Match{
		Path:     path,
		Name:     leaf.route.Name,
		FullPath: leaf.fullPath,
		Chain:    names,
		Redirect: redirect,
		Hidden:   hidden,
		route:    leaf.route,
	}
}
