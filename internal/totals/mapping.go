package totals

import (
	"net/url"

	"github.com/JaimeStill/admin-console/pkg/query"
	"github.com/JaimeStill/admin-console/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "totals", "t").
	Project("id", "ID").
	Project("date", "Date").
	Project("plate", "Plate").
	Project("region", "Region").
	Project("company", "Company").
	Project("field_staff", "FieldStaff").
	Project("internal_staff", "InternalStaff").
	Project("platform", "Platform").
	Project("account", "Account").
	Project("password", "Password").
	Project("business", "Business").
	Project("expected_expenditure", "ExpectedExpenditure").
	Project("income", "Income").
	Project("destination", "Destination").
	Project("remark", "Remark").
	Project("docking_time", "DockingTime").
	Project("handover_time", "HandoverTime").
	Project("is_completed", "IsCompleted").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var fieldServiceProjection = query.
	NewProjectionMap("public", "totals", "t").
	Project("id", "ID").
	Project("field_staff", "FieldStaff").
	Project("plate", "Plate").
	Project("business", "Business").
	Project("expected_expenditure", "ExpectedExpenditure")

var defaultSort = query.SortField{Field: "Date", Descending: true}

const columns = `id, date, plate, region, company, field_staff, internal_staff,
		platform, account, password, business, expected_expenditure, income,
		destination, remark, docking_time, handover_time, is_completed,
		created_at, updated_at`

func scanTotal(s repository.Scanner) (Total, error) {
	var t Total
	err := s.Scan(
		&t.ID, &t.Date, &t.Plate, &t.Region, &t.Company,
		&t.FieldStaff, &t.InternalStaff, &t.Platform, &t.Account,
		&t.Password, &t.Business, &t.ExpectedExpenditure, &t.Income,
		&t.Destination, &t.Remark, &t.DockingTime, &t.HandoverTime,
		&t.IsCompleted, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

func scanFieldService(s repository.Scanner) (FieldService, error) {
	var f FieldService
	err := s.Scan(&f.ID, &f.FieldStaff, &f.Plate, &f.Business, &f.ExpectedExpenditure)
	return f, err
}

func scanSummary(s repository.Scanner) (BusinessSummary, error) {
	var b BusinessSummary
	err := s.Scan(&b.Business, &b.ExpectedExpenditure, &b.Income)
	return b, err
}

// Filters narrow ledger listings. Every filter is a substring match.
type Filters struct {
	Date     *string
	Plate    *string
	Business *string
}

func FiltersFromQuery(values url.Values) Filters {
	return Filters{
		Date:     optional(values, "date"),
		Plate:    optional(values, "plate"),
		Business: optional(values, "business"),
	}
}

func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereContains("Date", f.Date).
		WhereContains("Plate", f.Plate).
		WhereContains("Business", f.Business)
}

// FieldServiceFilters narrow the field service listing.
type FieldServiceFilters struct {
	FieldStaff *string
	Plate      *string
	Business   *string
}

func FieldServiceFiltersFromQuery(values url.Values) FieldServiceFilters {
	return FieldServiceFilters{
		FieldStaff: optional(values, "field_staff"),
		Plate:      optional(values, "plate"),
		Business:   optional(values, "business"),
	}
}

func (f FieldServiceFilters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereContains("FieldStaff", f.FieldStaff).
		WhereContains("Plate", f.Plate).
		WhereContains("Business", f.Business)
}

func optional(values url.Values, key string) *string {
	if v := values.Get(key); v != "" {
		return &v
	}
	return nil
}
