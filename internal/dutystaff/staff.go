package dutystaff

import (
	"time"

	"github.com/google/uuid"
)

// FieldStaffType marks staff whose workload is tracked in the ledger.
const FieldStaffType = "外勤人员"

// Staff is a member of the duty roster. Count and ExpectedExpenditureSum are
// only set for field staff and summarize their ledger records.
type Staff struct {
	ID                     uuid.UUID `json:"id"`
	Name                   string    `json:"name"`
	Type                   string    `json:"type"`
	ActualExpenditure      int       `json:"actual_expenditure"`
	Count                  *int      `json:"count,omitempty"`
	ExpectedExpenditureSum *int64    `json:"expected_expenditure_sum,omitempty"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// IsFieldStaff reports whether s works in the field.
func (s *Staff) IsFieldStaff() bool {
	return s.Type == FieldStaffType
}

type CreateCommand struct {
	Name string `json:"name" validate:"required"`
	Type string `json:"type" validate:"required"`
}

type UpdateCommand struct {
	ID                uuid.UUID `json:"id" validate:"required"`
	Name              string    `json:"name" validate:"required"`
	Type              string    `json:"type" validate:"required"`
	ActualExpenditure int       `json:"actual_expenditure" validate:"gte=0"`
}
