package fieldwork

import (
	"time"

	"github.com/google/uuid"
)

// Record tracks the vehicles handled by one field worker on a date.
type Record struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	Number              int       `json:"number"`
	ExpectedExpenditure int       `json:"expected_expenditure"`
	Difference          int       `json:"difference"`
	Date                string    `json:"date"`
	Remark              string    `json:"remark"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type CreateCommand struct {
	Name                string `json:"name" validate:"required"`
	Number              int    `json:"number" validate:"gte=0"`
	ExpectedExpenditure int    `json:"expected_expenditure" validate:"gte=0"`
	Difference          int    `json:"difference"`
	Date                string `json:"date" validate:"required"`
	Remark              string `json:"remark"`
}

// UpdateCommand replaces every field of the record.
type UpdateCommand struct {
	ID uuid.UUID `json:"id" validate:"required"`
	CreateCommand
}
