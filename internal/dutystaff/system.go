// Package dutystaff manages the duty roster. Listings enrich field staff
// with the workload recorded for them in the ledger.
package dutystaff

import (
	"context"

	"github.com/JaimeStill/admin-console/internal/totals"
	"github.com/JaimeStill/admin-console/pkg/pagination"
	"github.com/google/uuid"
)

type System interface {
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Staff], error)

	// ListFieldStaff lists only staff of FieldStaffType.
	ListFieldStaff(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Staff], error)

	Find(ctx context.Context, id uuid.UUID) (*Staff, error)

	// Create returns ErrDuplicate when the name is taken.
	Create(ctx context.Context, cmd CreateCommand) (*Staff, error)
	Update(ctx context.Context, cmd UpdateCommand) (*Staff, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Stats supplies the ledger workload of field staff.
type Stats interface {
	FieldStaffStats(ctx context.Context, names []string) (map[string]totals.StaffStats, error)
}
