package dutystaff

import (
	"net/url"

	"github.com/JaimeStill/admin-console/internal/totals"
	"github.com/JaimeStill/admin-console/pkg/query"
	"github.com/JaimeStill/admin-console/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "duty_staff", "ds").
	Project("id", "ID").
	Project("name", "Name").
	Project("type", "Type").
	Project("actual_expenditure", "ActualExpenditure").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{Field: "Name"}

func scanStaff(s repository.Scanner) (Staff, error) {
	var st Staff
	err := s.Scan(
		&st.ID, &st.Name, &st.Type,
		&st.ActualExpenditure, &st.CreatedAt, &st.UpdatedAt,
	)
	return st, err
}

type Filters struct {
	Name *string
	Type *string
}

func FiltersFromQuery(values url.Values) Filters {
	var name, typ *string
	if n := values.Get("name"); n != "" {
		name = &n
	}
	if t := values.Get("type"); t != "" {
		typ = &t
	}

	return Filters{
		Name: name,
		Type: typ,
	}
}

func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereContains("Name", f.Name).
		WhereContains("Type", f.Type)
}

// fieldStaffNames returns the names of the field staff in items.
func fieldStaffNames(items []Staff) []string {
	names := make([]string, 0, len(items))
	for _, s := range items {
		if s.IsFieldStaff() {
			names = append(names, s.Name)
		}
	}
	return names
}

// enrich sets the workload of every field staff member in items. Field
// staff without ledger records get zero totals.
func enrich(items []Staff, stats map[string]totals.StaffStats) {
	for i := range items {
		if !items[i].IsFieldStaff() {
			continue
		}
		st := stats[items[i].Name]
		count, sum := st.Count, st.ExpectedExpenditureSum
		items[i].Count = &count
		items[i].ExpectedExpenditureSum = &sum
	}
}
