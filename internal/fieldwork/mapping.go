package fieldwork

import (
	"net/url"

	"github.com/JaimeStill/admin-console/pkg/query"
	"github.com/JaimeStill/admin-console/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "field_work", "fw").
	Project("id", "ID").
	Project("name", "Name").
	Project("number", "Number").
	Project("expected_expenditure", "ExpectedExpenditure").
	Project("difference", "Difference").
	Project("date", "Date").
	Project("remark", "Remark").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{Field: "Date", Descending: true}

func scanRecord(s repository.Scanner) (Record, error) {
	var r Record
	err := s.Scan(
		&r.ID, &r.Name, &r.Number, &r.ExpectedExpenditure,
		&r.Difference, &r.Date, &r.Remark, &r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

type Filters struct {
	Date *string
	Name *string
}

func FiltersFromQuery(values url.Values) Filters {
	var date, name *string
	if d := values.Get("date"); d != "" {
		date = &d
	}
	if n := values.Get("name"); n != "" {
		name = &n
	}

	return Filters{
		Date: date,
		Name: name,
	}
}

func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereContains("Date", f.Date).
		WhereContains("Name", f.Name)
}
