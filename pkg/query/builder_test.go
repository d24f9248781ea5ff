package query_test

import (
	"strings"
	"testing"

	"github.com/JaimeStill/admin-console/pkg/query"
)

func newTestProjection() *query.ProjectionMap {
	return query.NewProjectionMap("public", "totals", "t").
		Project("id", "ID").
		Project("plate", "Plate").
		Project("business", "Business").
		Project("income", "Income").
		Project("date", "Date")
}

func strPtr(s string) *string {
	return &s
}

func TestBuilder_BuildCount_NoConditions(t *testing.T) {
	b := query.NewBuilder(newTestProjection(), query.SortField{Field: "Date"})

	sql, args := b.BuildCount()

	want := "SELECT COUNT(*) FROM public.totals t"
	if sql != want {
		t.Errorf("BuildCount() sql = %q, want %q", sql, want)
	}
	if len(args) != 0 {
		t.Errorf("BuildCount() args = %v, want empty", args)
	}
}

func TestBuilder_BuildPage(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		pageSize  int
		wantLimit string
	}{
		{"first page", 1, 20, "LIMIT 20 OFFSET 0"},
		{"second page", 2, 20, "LIMIT 20 OFFSET 20"},
		{"third page", 3, 10, "LIMIT 10 OFFSET 20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := query.NewBuilder(newTestProjection(), query.SortField{Field: "Date", Descending: true})
			sql, _ := b.BuildPage(tt.page, tt.pageSize)

			if !strings.HasPrefix(sql, "SELECT t.id, t.plate, t.business, t.income, t.date FROM public.totals t") {
				t.Errorf("BuildPage() select = %q", sql)
			}
			if !strings.Contains(sql, "ORDER BY t.date DESC") {
				t.Errorf("BuildPage() missing default sort, got %q", sql)
			}
			if !strings.HasSuffix(sql, tt.wantLimit) {
				t.Errorf("BuildPage() missing %q, got %q", tt.wantLimit, sql)
			}
		})
	}
}

func TestBuilder_BuildSingle(t *testing.T) {
	b := query.NewBuilder(newTestProjection(), query.SortField{Field: "Date"})

	sql, args := b.BuildSingle("ID", "abc")

	want := "SELECT t.id, t.plate, t.business, t.income, t.date FROM public.totals t WHERE t.id = $1"
	if sql != want {
		t.Errorf("BuildSingle() sql = %q, want %q", sql, want)
	}
	if len(args) != 1 || args[0] != "abc" {
		t.Errorf("BuildSingle() args = %v, want [abc]", args)
	}
}

func TestBuilder_OrderBy(t *testing.T) {
	tests := []struct {
		name       string
		field      string
		descending bool
		wantOrder  string
	}{
		{"ascending", "Plate", false, "ORDER BY t.plate ASC"},
		{"descending", "Income", true, "ORDER BY t.income DESC"},
		{"empty keeps default", "", false, "ORDER BY t.date ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := query.NewBuilder(newTestProjection(), query.SortField{Field: "Date"})
			sql, _ := b.OrderBy(tt.field, tt.descending).Build()

			if !strings.HasSuffix(sql, tt.wantOrder) {
				t.Errorf("Build() = %q, want suffix %q", sql, tt.wantOrder)
			}
		})
	}
}

func TestBuilder_OrderByFields(t *testing.T) {
	b := query.NewBuilder(newTestProjection(), query.SortField{Field: "Date"})

	sql, _ := b.OrderByFields([]query.SortField{
		{Field: "Business"},
		{Field: "Income", Descending: true},
	}).Build()

	if !strings.HasSuffix(sql, "ORDER BY t.business ASC, t.income DESC") {
		t.Errorf("Build() = %q", sql)
	}
}

func TestBuilder_OrderByFields_EmptyKeepsDefault(t *testing.T) {
	b := query.NewBuilder(newTestProjection(), query.SortField{Field: "Date"})

	sql, _ := b.OrderByFields(nil).Build()

	if !strings.HasSuffix(sql, "ORDER BY t.date ASC") {
		t.Errorf("Build() = %q", sql)
	}
}

func TestBuilder_WhereContains(t *testing.T) {
	tests := []struct {
		name      string
		value     *string
		wantWhere bool
	}{
		{"nil ignored", nil, false},
		{"empty ignored", strPtr(""), false},
		{"value applied", strPtr("京A"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := query.NewBuilder(newTestProjection(), query.SortField{Field: "Date"})
			sql, args := b.WhereContains("Plate", tt.value).BuildCount()

			if got := strings.Contains(sql, "WHERE t.plate ILIKE $1"); got != tt.wantWhere {
				t.Errorf("BuildCount() = %q, want where %v", sql, tt.wantWhere)
			}
			if tt.wantWhere && args[0] != "%京A%" {
				t.Errorf("args[0] = %v, want %%京A%%", args[0])
			}
		})
	}
}

func TestBuilder_WhereTextContains(t *testing.T) {
	b := query.NewBuilder(newTestProjection(), query.SortField{Field: "Date"})

	sql, args := b.WhereTextContains("Income", strPtr("90")).BuildCount()

	if !strings.Contains(sql, "WHERE t.income::text ILIKE $1") {
		t.Errorf("BuildCount() = %q", sql)
	}
	if len(args) != 1 || args[0] != "%90%" {
		t.Errorf("args = %v", args)
	}
}

func TestBuilder_WhereEquals(t *testing.T) {
	var typedNil *string

	tests := []struct {
		name      string
		value     any
		wantWhere bool
	}{
		{"nil ignored", nil, false},
		{"typed nil ignored", typedNil, false},
		{"string applied", "年检", true},
		{"zero int applied", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := query.NewBuilder(newTestProjection(), query.SortField{Field: "Date"})
			sql, args := b.WhereEquals("Business", tt.value).BuildCount()

			if got := strings.Contains(sql, "WHERE t.business = $1"); got != tt.wantWhere {
				t.Errorf("BuildCount() = %q, want where %v", sql, tt.wantWhere)
			}
			if tt.wantWhere && len(args) != 1 {
				t.Errorf("args = %v, want 1", args)
			}
		})
	}
}

func TestBuilder_WhereIn(t *testing.T) {
	b := query.NewBuilder(newTestProjection(), query.SortField{Field: "Date"})

	sql, args := b.WhereIn("Business", []any{"年检", "过户"}).BuildCount()

	if !strings.Contains(sql, "WHERE t.business IN ($1, $2)") {
		t.Errorf("BuildCount() = %q", sql)
	}
	if len(args) != 2 {
		t.Errorf("args = %v, want 2", args)
	}

	sql, _ = query.NewBuilder(newTestProjection(), query.SortField{Field: "Date"}).WhereIn("Business", nil).BuildCount()
	if strings.Contains(sql, "WHERE") {
		t.Errorf("empty WhereIn added a condition: %q", sql)
	}
}

func TestBuilder_WhereSearch(t *testing.T) {
	b := query.NewBuilder(newTestProjection(), query.SortField{Field: "Date"})

	sql, args := b.WhereSearch(strPtr("京"), "Plate", "Business").BuildCount()

	if !strings.Contains(sql, "WHERE (t.plate ILIKE $1 OR t.business ILIKE $2)") {
		t.Errorf("BuildCount() = %q", sql)
	}
	if len(args) != 2 {
		t.Errorf("args = %v, want 2", args)
	}
}

func TestBuilder_ParameterNumbering(t *testing.T) {
	b := query.NewBuilder(newTestProjection(), query.SortField{Field: "Date"})

	sql, args := b.
		WhereContains("Plate", strPtr("京")).
		WhereEquals("Business", "年检").
		WhereSearch(strPtr("x"), "Plate", "Business").
		BuildPage(1, 10)

	want := "WHERE t.plate ILIKE $1 AND t.business = $2 AND (t.plate ILIKE $3 OR t.business ILIKE $4)"
	if !strings.Contains(sql, want) {
		t.Errorf("BuildPage() = %q, want %q", sql, want)
	}
	if len(args) != 4 {
		t.Errorf("args = %v, want 4", args)
	}
}

func TestBuilder_BuildSum(t *testing.T) {
	b := query.NewBuilder(newTestProjection(), query.SortField{Field: "Date"})

	sql, args := b.WhereEquals("Business", "年检").BuildSum("Business", "Income")

	want := "SELECT t.business, COALESCE(SUM(t.income), 0) FROM public.totals t WHERE t.business = $1 GROUP BY t.business ORDER BY t.business ASC"
	if sql != want {
		t.Errorf("BuildSum() sql = %q, want %q", sql, want)
	}
	if len(args) != 1 {
		t.Errorf("args = %v, want 1", args)
	}
}
