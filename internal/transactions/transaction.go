package transactions

import (
	"time"

	"github.com/google/uuid"
)

// Transaction is a single recorded payment.
type Transaction struct {
	ID            uuid.UUID `json:"id"`
	PaymentTime   time.Time `json:"payment_time"`
	PaymentAmount float64   `json:"payment_amount"`
	Recipient     string    `json:"recipient"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreateCommand contains the data required to record a payment.
type CreateCommand struct {
	PaymentTime   time.Time `json:"payment_time" validate:"required"`
	PaymentAmount float64   `json:"payment_amount" validate:"gte=0"`
	Recipient     string    `json:"recipient" validate:"required"`
}

// UpdateCommand modifies a payment. Nil fields keep their stored value.
type UpdateCommand struct {
	ID            uuid.UUID  `json:"id" validate:"required"`
	PaymentTime   *time.Time `json:"payment_time,omitempty"`
	PaymentAmount *float64   `json:"payment_amount,omitempty" validate:"omitempty,gte=0"`
	Recipient     *string    `json:"recipient,omitempty" validate:"omitempty,min=1"`
}
