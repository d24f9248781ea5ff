package query

import "strings"

// ProjectionMap maps view field names to qualified table columns.
type ProjectionMap struct {
	schema  string
	table   string
	alias   string
	columns []string
	fields  map[string]string
}

// NewProjectionMap creates a ProjectionMap for schema.table aliased as alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema:  schema,
		table:   table,
		alias:   alias,
		columns: make([]string, 0),
		fields:  make(map[string]string),
	}
}

// Project registers column under the given view name. Columns keep
// registration order in Columns and ColumnList.
func (p *ProjectionMap) Project(column, view string) *ProjectionMap {
	qualified := p.alias + "." + column
	p.columns = append(p.columns, qualified)
	p.fields[view] = qualified
	return p
}

func (p *ProjectionMap) Alias() string {
	return p.alias
}

// Table returns the aliased table reference used in FROM clauses.
func (p *ProjectionMap) Table() string {
	return p.schema + "." + p.table + " " + p.alias
}

// Field resolves a view name to its qualified column and reports whether
// the name is registered.
func (p *ProjectionMap) Field(view string) (string, bool) {
	col, ok := p.fields[view]
	return col, ok
}

// Column resolves a view name to its qualified column. Unknown names are
// returned unchanged, so callers must only pass names they control.
func (p *ProjectionMap) Column(view string) string {
	if col, ok := p.fields[view]; ok {
		return col
	}
	return view
}

func (p *ProjectionMap) Columns() string {
	return strings.Join(p.columns, ", ")
}

func (p *ProjectionMap) ColumnList() []string {
	out := make([]string, len(p.columns))
	copy(out, p.columns)
	return out
}
