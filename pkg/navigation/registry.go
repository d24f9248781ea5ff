package navigation

// Module supplies one route subtree. Each business area registers one.
type Module func() Route

type registration struct {
	source string
	module Module
}

// Registry collects modules in registration order.
type Registry struct {
	entries []registration
}

func NewRegistry() *Registry {
	return &Registry{entries: make([]registration, 0)}
}

// Register adds a module. source names it in build errors and warnings.
func (r *Registry) Register(source string, m Module) *Registry {
	r.entries = append(r.entries, registration{source: source, module: m})
	return r
}

// Len returns the number of registered modules.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Sources returns module sources in registration order.
func (r *Registry) Sources() []string {
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.source
	}
	return out
}
