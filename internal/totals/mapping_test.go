package totals_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/JaimeStill/admin-console/internal/totals"
	"github.com/JaimeStill/admin-console/pkg/query"
)

func TestFiltersFromQuery(t *testing.T) {
	values, _ := url.ParseQuery("date=2024-03&plate=&business=年检&field_staff=li")
	f := totals.FiltersFromQuery(values)

	if f.Date == nil || *f.Date != "2024-03" {
		t.Errorf("Date = %v", f.Date)
	}
	if f.Plate != nil {
		t.Errorf("Plate = %q, want nil", *f.Plate)
	}
	if f.Business == nil || *f.Business != "年检" {
		t.Errorf("Business = %v", f.Business)
	}
}

func TestFieldServiceFiltersFromQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"with field_staff", "field_staff=li", "li"},
		{"empty", "", ""},
		{"ledger filters ignored", "date=2024", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, _ := url.ParseQuery(tt.query)
			f := totals.FieldServiceFiltersFromQuery(values)

			if tt.want == "" {
				if f.FieldStaff != nil {
					t.Errorf("FieldStaff = %q, want nil", *f.FieldStaff)
				}
				return
			}
			if f.FieldStaff == nil || *f.FieldStaff != tt.want {
				t.Errorf("FieldStaff = %v, want %q", f.FieldStaff, tt.want)
			}
		})
	}
}

func TestFilters_Apply(t *testing.T) {
	pm := query.NewProjectionMap("public", "totals", "t").
		Project("date", "Date").
		Project("plate", "Plate").
		Project("business", "Business")

	plate := "京A"
	business := "年检"

	b := query.NewBuilder(pm, query.SortField{Field: "Date"})
	totals.Filters{Plate: &plate, Business: &business}.Apply(b)

	sql, args := b.BuildCount()

	want := "WHERE t.plate ILIKE $1 AND t.business ILIKE $2"
	if !strings.Contains(sql, want) {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 2 {
		t.Errorf("args = %v", args)
	}
}

func TestSummarySQL(t *testing.T) {
	pm := query.NewProjectionMap("public", "totals", "t").
		Project("business", "Business").
		Project("expected_expenditure", "ExpectedExpenditure").
		Project("income", "Income")

	business := "年检"
	sql, args := query.NewBuilder(pm, query.SortField{Field: "Business"}).
		WhereContains("Business", &business).
		BuildSum("Business", "ExpectedExpenditure", "Income")

	want := "SELECT t.business, COALESCE(SUM(t.expected_expenditure), 0), COALESCE(SUM(t.income), 0) " +
		"FROM public.totals t WHERE t.business ILIKE $1 GROUP BY t.business ORDER BY t.business ASC"
	if sql != want {
		t.Errorf("sql =\n%s\nwant\n%s", sql, want)
	}
	if len(args) != 1 || args[0] != "%年检%" {
		t.Errorf("args = %v", args)
	}
}
