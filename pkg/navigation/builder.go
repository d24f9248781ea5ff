package navigation

import (
	"fmt"
	"log/slog"
	"strings"
)

// Builder assembles a Tree from basic routes and registered modules.
type Builder struct {
	basic      []Route
	registry   *Registry
	components []*Component
	policy     Policy
	logger     *slog.Logger
}

// NewBuilder creates a Builder using PolicyReject and a discarding logger.
func NewBuilder(basic []Route, registry *Registry) *Builder {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Builder{
		basic:    basic,
		registry: registry,
		policy:   PolicyReject,
		logger:   slog.New(slog.DiscardHandler),
	}
}

// WithPolicy sets the duplicate policy.
func (b *Builder) WithPolicy(p Policy) *Builder {
	b.policy = p
	return b
}

// WithLogger sets the logger used for pruning warnings.
func (b *Builder) WithLogger(logger *slog.Logger) *Builder {
	b.logger = logger
	return b
}

// AddComponent indexes a component that no route references yet.
func (b *Builder) AddComponent(c ...*Component) *Builder {
	b.components = append(b.components, c...)
	return b
}

type sourced struct {
	source string
	route  Route
}

// Build merges basic routes with modules in registration order, appends
// the NotFound catch-all and validates the result.
func (b *Builder) Build() (*Tree, error) {
	if err := b.policy.Validate(); err != nil {
		return nil, err
	}

	entries := make([]sourced, 0, len(b.basic)+b.registry.Len())
	for _, r := range b.basic {
		entries = append(entries, sourced{source: "basic", route: r.Clone()})
	}
	for _, e := range b.registry.entries {
		entries = append(entries, sourced{source: e.source, route: e.module().Clone()})
	}

	for _, e := range entries {
		if err := validateRoute(e.route, "", true); err != nil {
			return nil, fmt.Errorf("%s: %w", e.source, err)
		}
	}

	entries, err := b.guardCatchAll(entries)
	if err != nil {
		return nil, err
	}

	entries, err = b.dedupeNames(entries)
	if err != nil {
		return nil, err
	}

	entries, err = b.dedupePaths(entries)
	if err != nil {
		return nil, err
	}

	routes := make([]Route, 0, len(entries)+1)
	for _, e := range entries {
		routes = append(routes, e.route)
	}
	routes = append(routes, notFoundRoute())

	return newTree(routes, b.components), nil
}

func notFoundRoute() Route {
	return Route{
		Name:     NotFoundName,
		Path:     NotFoundPath,
		Redirect: NotFoundRedirect,
		Hidden:   true,
	}
}

func validateRoute(r Route, parent string, top bool) error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: route at %q has no name", ErrInvalidRoute, Join(parent, r.Path))
	}
	if top && !strings.HasPrefix(r.Path, "/") {
		return fmt.Errorf("%w: top-level route %q path %q must be absolute", ErrInvalidRoute, r.Name, r.Path)
	}
	full := Join(parent, r.Path)
	for _, c := range r.Children {
		if err := validateRoute(c, full, false); err != nil {
			return err
		}
	}
	return nil
}

// guardCatchAll removes or rejects anything that would shadow NotFound.
func (b *Builder) guardCatchAll(entries []sourced) ([]sourced, error) {
	out := make([]sourced, 0, len(entries))
	for _, e := range entries {
		offender, ok := findCatchAll(e.route, "")
		if !ok {
			out = append(out, e)
			continue
		}
		if b.policy == PolicyReject {
			return nil, fmt.Errorf("%s: %w: %q", e.source, ErrWildcardOverride, offender)
		}
		b.logger.Warn("dropping route that overrides the not-found catch-all",
			"source", e.source, "route", offender)
		if offender == e.route.Name {
			continue
		}
		e.route = pruneWhere(e.route, "", func(r Route, full string) bool {
			return r.Name == NotFoundName || isCatchAll(full)
		})
		out = append(out, e)
	}
	return out, nil
}

func findCatchAll(r Route, parent string) (string, bool) {
	full := Join(parent, r.Path)
	if r.Name == NotFoundName || isCatchAll(full) {
		return r.Name, true
	}
	for _, c := range r.Children {
		if name, ok := findCatchAll(c, full); ok {
			return name, true
		}
	}
	return "", false
}

// pruneWhere returns r without descendants matching drop. r itself is kept.
func pruneWhere(r Route, parent string, drop func(Route, string) bool) Route {
	full := Join(parent, r.Path)
	if len(r.Children) == 0 {
		return r
	}
	kept := make([]Route, 0, len(r.Children))
	for _, c := range r.Children {
		if drop(c, Join(full, c.Path)) {
			continue
		}
		kept = append(kept, pruneWhere(c, full, drop))
	}
	r.Children = kept
	return r
}

type occurrence struct {
	entry int
	// index path from the entry root; empty for the root itself
	index  []int
	source string
}

func collectNames(entries []sourced) map[string][]occurrence {
	names := make(map[string][]occurrence)
	var walk func(r Route, entry int, index []int, source string)
	walk = func(r Route, entry int, index []int, source string) {
		names[r.Name] = append(names[r.Name], occurrence{
			entry:  entry,
			index:  append([]int(nil), index...),
			source: source,
		})
		for i, c := range r.Children {
			walk(c, entry, append(index, i), source)
		}
	}
	for i, e := range entries {
		walk(e.route, i, nil, e.source)
	}
	return names
}

// firstDuplicate returns the earliest name, in declaration order, that
// occurs more than once.
func firstDuplicate(entries []sourced, names map[string][]occurrence) (string, bool) {
	var found string
	var walk func(r Route) bool
	walk = func(r Route) bool {
		if len(names[r.Name]) > 1 {
			found = r.Name
			return true
		}
		for _, c := range r.Children {
			if walk(c) {
				return true
			}
		}
		return false
	}
	for _, e := range entries {
		if walk(e.route) {
			return found, true
		}
	}
	return "", false
}

// dedupeNames enforces unique names. Under last-write-wins the earlier
// declaration and its subtree are pruned, unless the later one is nested
// inside it, in which case the nested one goes.
func (b *Builder) dedupeNames(entries []sourced) ([]sourced, error) {
	for {
		names := collectNames(entries)
		name, ok := firstDuplicate(entries, names)
		if !ok {
			return entries, nil
		}

		occ := names[name]
		first, second := occ[0], occ[1]

		if b.policy == PolicyReject {
			return nil, fmt.Errorf("%w: %q declared by %s and %s",
				ErrDuplicateName, name, first.source, second.source)
		}

		victim := first
		if first.entry == second.entry && isAncestor(first.index, second.index) {
			victim = second
		}

		b.logger.Warn("pruning duplicate route name",
			"name", name, "kept", winnerSource(victim, first, second), "dropped", victim.source)
		entries = removeAt(entries, victim)
	}
}

func winnerSource(victim, first, second occurrence) string {
	if victim.entry == first.entry && equalIndex(victim.index, first.index) {
		return second.source
	}
	return first.source
}

func isAncestor(a, b []int) bool {
	if len(a) >= len(b) {
		return false
	}
	return equalIndex(a, b[:len(a)])
}

func equalIndex(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func removeAt(entries []sourced, o occurrence) []sourced {
	if len(o.index) == 0 {
		out := make([]sourced, 0, len(entries)-1)
		out = append(out, entries[:o.entry]...)
		return append(out, entries[o.entry+1:]...)
	}
	entries[o.entry].route = removeChild(entries[o.entry].route, o.index)
	return entries
}

func removeChild(r Route, index []int) Route {
	i := index[0]
	if len(index) == 1 {
		children := make([]Route, 0, len(r.Children)-1)
		children = append(children, r.Children[:i]...)
		r.Children = append(children, r.Children[i+1:]...)
		return r
	}
	children := make([]Route, len(r.Children))
	copy(children, r.Children)
	children[i] = removeChild(children[i], index[1:])
	r.Children = children
	return r
}

// dedupePaths enforces unique paths among siblings at every level.
func (b *Builder) dedupePaths(entries []sourced) ([]sourced, error) {
	seen := make(map[string]int)
	out := make([]sourced, 0, len(entries))
	for _, e := range entries {
		key := Normalize(e.route.Path)
		if prev, ok := seen[key]; ok {
			if b.policy == PolicyReject {
				return nil, fmt.Errorf("%w: %q declared by %s and %s",
					ErrDuplicatePath, key, out[prev].source, e.source)
			}
			b.logger.Warn("pruning duplicate top-level path",
				"path", key, "dropped", out[prev].route.Name, "kept", e.route.Name)
			out = append(out[:prev], out[prev+1:]...)
			for k, v := range seen {
				if v > prev {
					seen[k] = v - 1
				}
			}
		}
		seen[key] = len(out)
		out = append(out, e)
	}

	for i := range out {
		r, err := b.dedupeChildPaths(out[i].route, out[i].source)
		if err != nil {
			return nil, err
		}
		out[i].route = r
	}
	return out, nil
}

func (b *Builder) dedupeChildPaths(r Route, source string) (Route, error) {
	if len(r.Children) == 0 {
		return r, nil
	}

	seen := make(map[string]int)
	kept := make([]Route, 0, len(r.Children))
	for _, c := range r.Children {
		if prev, ok := seen[c.Path]; ok {
			if b.policy == PolicyReject {
				return r, fmt.Errorf("%s: %w: %q under %q", source, ErrDuplicatePath, c.Path, r.Name)
			}
			b.logger.Warn("pruning duplicate child path",
				"parent", r.Name, "path", c.Path, "dropped", kept[prev].Name, "kept", c.Name)
			kept = append(kept[:prev], kept[prev+1:]...)
			for k, v := range seen {
				if v > prev {
					seen[k] = v - 1
				}
			}
		}
		seen[c.Path] = len(kept)
		kept = append(kept, c)
	}

	for i := range kept {
		c, err := b.dedupeChildPaths(kept[i], source)
		if err != nil {
			return r, err
		}
		kept[i] = c
	}
	r.Children = kept
	return r, nil
}
