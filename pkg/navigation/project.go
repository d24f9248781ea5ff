package navigation

// NameSet is a set of permitted route names.
type NameSet map[string]struct{}

// NewNameSet builds a NameSet from names.
func NewNameSet(names ...string) NameSet {
	s := make(NameSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Has reports whether name is in the set. A nil set contains nothing.
func (s NameSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Add inserts names.
func (s NameSet) Add(names ...string) {
	for _, n := range names {
		s[n] = struct{}{}
	}
}

// Len returns the number of names.
func (s NameSet) Len() int {
	return len(s)
}

// MenuItem is one visible navigation entry. Path is the full path.
type MenuItem struct {
	Name     string     `json:"name" yaml:"name"`
	Path     string     `json:"path" yaml:"path"`
	Title    string     `json:"title,omitempty" yaml:"title,omitempty"`
	Icon     string     `json:"icon,omitempty" yaml:"icon,omitempty"`
	Order    *int       `json:"order,omitempty" yaml:"order,omitempty"`
	Affix    bool       `json:"affix,omitempty" yaml:"affix,omitempty"`
	Children []MenuItem `json:"children,omitempty" yaml:"children,omitempty"`
}

// Menu is the permission-filtered projection of a Tree. It renders
// navigation only and is never used to route.
type Menu struct {
	Items []MenuItem `json:"items" yaml:"items"`
}

// Names returns every item name in depth-first order.
func (m Menu) Names() []string {
	var out []string
	var walk func(items []MenuItem)
	walk = func(items []MenuItem) {
		for _, it := range items {
			out = append(out, it.Name)
			walk(it.Children)
		}
	}
	walk(m.Items)
	return out
}

// Project derives the menu visible to a holder of allowed.
//
// Hidden routes are dropped with their subtrees. A route is permitted when
// allowed names it or any ancestor. A route with surviving children is
// kept when permitted or when it only groups children; otherwise its whole
// subtree goes so every item keeps its ancestors. A route without
// surviving children is kept when permitted and clickable on its own.
// Siblings are stable-sorted by Meta.Order, unordered last.
func Project(tree *Tree, allowed NameSet) Menu {
	items := projectNodes(tree.roots, allowed, false)
	if items == nil {
		items = []MenuItem{}
	}
	return Menu{Items: items}
}

func projectNodes(nodes []*node, allowed NameSet, inherited bool) []MenuItem {
	var out []MenuItem
	for _, n := range nodes {
		r := n.route
		if r.Hidden {
			continue
		}

		permitted := inherited || allowed.Has(r.Name)
		children := projectNodes(n.children, allowed, permitted)

		switch {
		case len(children) > 0:
			if !permitted && !r.IsGroup() {
				continue
			}
		case !permitted:
			continue
		case len(r.Children) > 0 && r.Component == nil && r.Redirect == "":
			continue
		}

		out = append(out, MenuItem{
			Name:     r.Name,
			Path:     n.fullPath,
			Title:    r.Meta.Title,
			Icon:     r.Meta.Icon,
			Order:    copyOrder(r.Meta.Order),
			Affix:    r.Meta.Affix,
			Children: children,
		})
	}

	sortByOrder(out, func(it MenuItem) *int { return it.Order })
	return out
}

func copyOrder(o *int) *int {
	if o == nil {
		return nil
	}
	return Order(*o)
}
