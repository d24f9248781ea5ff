package dutystaff

import (
	"slices"
	"testing"

	"github.com/JaimeStill/admin-console/internal/totals"
)

func TestFieldStaffNames(t *testing.T) {
	items := []Staff{
		{Name: "li", Type: FieldStaffType},
		{Name: "zhang", Type: "内勤人员"},
		{Name: "wang", Type: FieldStaffType},
	}

	got := fieldStaffNames(items)
	if !slices.Equal(got, []string{"li", "wang"}) {
		t.Errorf("fieldStaffNames() = %v", got)
	}
	if got := fieldStaffNames(nil); len(got) != 0 {
		t.Errorf("fieldStaffNames(nil) = %v", got)
	}
}

func TestEnrich(t *testing.T) {
	items := []Staff{
		{Name: "li", Type: FieldStaffType},
		{Name: "zhang", Type: "内勤人员"},
		{Name: "wang", Type: FieldStaffType},
	}
	stats := map[string]totals.StaffStats{
		"li":    {Count: 4, ExpectedExpenditureSum: 1200},
		"zhang": {Count: 9, ExpectedExpenditureSum: 1},
	}

	enrich(items, stats)

	if items[0].Count == nil || *items[0].Count != 4 || *items[0].ExpectedExpenditureSum != 1200 {
		t.Errorf("li = %+v", items[0])
	}
	if items[1].Count != nil || items[1].ExpectedExpenditureSum != nil {
		t.Errorf("non field staff enriched: %+v", items[1])
	}
	if items[2].Count == nil || *items[2].Count != 0 || *items[2].ExpectedExpenditureSum != 0 {
		t.Errorf("wang without records = %+v", items[2])
	}
}
