// Package transactions records payments made to recipients.
package transactions

import (
	"context"

	"github.com/JaimeStill/admin-console/pkg/pagination"
	"github.com/google/uuid"
)

// System defines the interface for payment transaction management.
type System interface {
	// List returns a page of transactions ordered by payment time.
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Transaction], error)

	// Find returns ErrNotFound if the transaction does not exist.
	Find(ctx context.Context, id uuid.UUID) (*Transaction, error)

	Create(ctx context.Context, cmd CreateCommand) (*Transaction, error)

	// Update applies the non-nil fields of cmd.
	Update(ctx context.Context, cmd UpdateCommand) (*Transaction, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
