// Package fieldwork records the daily output of field workers.
package fieldwork

import (
	"context"

	"github.com/JaimeStill/admin-console/pkg/pagination"
	"github.com/google/uuid"
)

type System interface {
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Record], error)
	Find(ctx context.Context, id uuid.UUID) (*Record, error)
	Create(ctx context.Context, cmd CreateCommand) (*Record, error)
	Update(ctx context.Context, cmd UpdateCommand) (*Record, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
