package totals

import (
	"time"

	"github.com/google/uuid"
)

// Total is one row of the business ledger.
type Total struct {
	ID                  uuid.UUID `json:"id"`
	Date                string    `json:"date"`
	Plate               string    `json:"plate"`
	Region              string    `json:"region"`
	Company             string    `json:"company"`
	FieldStaff          string    `json:"field_staff"`
	InternalStaff       string    `json:"internal_staff"`
	Platform            string    `json:"platform"`
	Account             string    `json:"account"`
	Password            string    `json:"password"`
	Business            string    `json:"business"`
	ExpectedExpenditure int       `json:"expected_expenditure"`
	Income              int       `json:"income"`
	Destination         string    `json:"destination"`
	Remark              string    `json:"remark"`
	DockingTime         string    `json:"docking_time"`
	HandoverTime        string    `json:"handover_time"`
	IsCompleted         bool      `json:"is_completed"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// FieldService is the slice of a record the field staff work with.
type FieldService struct {
	ID                  uuid.UUID `json:"id"`
	FieldStaff          string    `json:"field_staff"`
	Plate               string    `json:"plate"`
	Business            string    `json:"business"`
	ExpectedExpenditure int       `json:"expected_expenditure"`
}

// BusinessSummary aggregates every record of one business.
type BusinessSummary struct {
	Business            string `json:"business"`
	ExpectedExpenditure int64  `json:"expected_expenditure"`
	Income              int64  `json:"income"`
}

// StaffStats summarizes the records assigned to one field staff member.
type StaffStats struct {
	Count                  int   `json:"count"`
	ExpectedExpenditureSum int64 `json:"expected_expenditure_sum"`
}

type CreateCommand struct {
	Date                string `json:"date" validate:"required"`
	Plate               string `json:"plate" validate:"required"`
	Region              string `json:"region" validate:"required"`
	Company             string `json:"company" validate:"required"`
	FieldStaff          string `json:"field_staff" validate:"required"`
	InternalStaff       string `json:"internal_staff" validate:"required"`
	Platform            string `json:"platform" validate:"required"`
	Account             string `json:"account" validate:"required"`
	Password            string `json:"password" validate:"required"`
	Business            string `json:"business" validate:"required"`
	ExpectedExpenditure int    `json:"expected_expenditure" validate:"gte=0"`
	Income              int    `json:"income" validate:"gte=0"`
	Destination         string `json:"destination" validate:"required"`
	Remark              string `json:"remark"`
	DockingTime         string `json:"docking_time"`
	HandoverTime        string `json:"handover_time"`
	IsCompleted         bool   `json:"is_completed"`
}

// UpdateCommand modifies a record. Nil fields keep their stored value.
type UpdateCommand struct {
	ID                  uuid.UUID `json:"id" validate:"required"`
	Date                *string   `json:"date,omitempty"`
	Plate               *string   `json:"plate,omitempty"`
	Region              *string   `json:"region,omitempty"`
	Company             *string   `json:"company,omitempty"`
	FieldStaff          *string   `json:"field_staff,omitempty"`
	InternalStaff       *string   `json:"internal_staff,omitempty"`
	Platform            *string   `json:"platform,omitempty"`
	Account             *string   `json:"account,omitempty"`
	Password            *string   `json:"password,omitempty"`
	Business            *string   `json:"business,omitempty"`
	ExpectedExpenditure *int      `json:"expected_expenditure,omitempty" validate:"omitempty,gte=0"`
	Income              *int      `json:"income,omitempty" validate:"omitempty,gte=0"`
	Destination         *string   `json:"destination,omitempty"`
	Remark              *string   `json:"remark,omitempty"`
	DockingTime         *string   `json:"docking_time,omitempty"`
	HandoverTime        *string   `json:"handover_time,omitempty"`
	IsCompleted         *bool     `json:"is_completed,omitempty"`
}

// UpdateFieldServiceCommand edits the field service columns of a record.
type UpdateFieldServiceCommand struct {
	ID                  uuid.UUID `json:"id" validate:"required"`
	FieldStaff          *string   `json:"field_staff,omitempty"`
	Plate               *string   `json:"plate,omitempty"`
	Business            *string   `json:"business,omitempty"`
	ExpectedExpenditure *int      `json:"expected_expenditure,omitempty" validate:"omitempty,gte=0"`
}

// UpdateOwnCommand lets internal staff progress their own records. The
// update only applies when InternalStaff owns the record. Behind the API the
// owner is the authenticated caller, whatever the body names.
type UpdateOwnCommand struct {
	ID            uuid.UUID `json:"id" validate:"required"`
	InternalStaff string    `json:"internal_staff,omitempty"`
	Income        *int      `json:"income,omitempty" validate:"omitempty,gte=0"`
	Destination   *string   `json:"destination,omitempty"`
	Remark        *string   `json:"remark,omitempty"`
	DockingTime   *string   `json:"docking_time,omitempty"`
	HandoverTime  *string   `json:"handover_time,omitempty"`
	IsCompleted   *bool     `json:"is_completed,omitempty"`
}
