// Package totals manages the business ledger and its derived views: the
// field service projection, per-business aggregates, and the records owned
// by one internal staff member.
package totals

import (
	"context"

	"github.com/JaimeStill/admin-console/pkg/pagination"
	"github.com/google/uuid"
)

// System defines the interface for ledger management.
type System interface {
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Total], error)

	// ListFieldService returns the field service projection of the ledger.
	ListFieldService(ctx context.Context, page pagination.PageRequest, filters FieldServiceFilters) (*pagination.PageResult[FieldService], error)

	// ListOwn returns the records whose internal staff is owner.
	ListOwn(ctx context.Context, page pagination.PageRequest, owner string, filters Filters) (*pagination.PageResult[Total], error)

	// Summarize returns expected expenditure and income totals per business,
	// ordered by business.
	Summarize(ctx context.Context, page pagination.PageRequest, business *string) (*pagination.PageResult[BusinessSummary], error)

	// FieldStaffStats counts the records of each named field staff member.
	// Names without records are absent from the result.
	FieldStaffStats(ctx context.Context, names []string) (map[string]StaffStats, error)

	// Find returns ErrNotFound if the record does not exist.
	Find(ctx context.Context, id uuid.UUID) (*Total, error)
	Create(ctx context.Context, cmd CreateCommand) (*Total, error)
	Update(ctx context.Context, cmd UpdateCommand) (*Total, error)
	UpdateFieldService(ctx context.Context, cmd UpdateFieldServiceCommand) (*FieldService, error)

	// UpdateOwn returns ErrNotFound when the record is missing or owned by
	// someone else.
	UpdateOwn(ctx context.Context, cmd UpdateOwnCommand) (*Total, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
