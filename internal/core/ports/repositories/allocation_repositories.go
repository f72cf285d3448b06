package repositories

import (
	"context"

	"github.com/alj030327/arvs-fl-04-sub000/internal/core/domain"
)

// AllocationReader defines read operations for allocation data.
type AllocationReader interface {
	// FindAllocationByAssetID retrieves the allocation for an asset, if any.
	FindAllocationByAssetID(ctx context.Context, assetID string) (*domain.Allocation, error)

	// ListAllocationsByEstate retrieves all allocations of an estate.
	ListAllocationsByEstate(ctx context.Context, estateID string) ([]domain.Allocation, error)
}

// AllocationWriter defines write operations for allocation data.
type AllocationWriter interface {
	// UpsertAllocation inserts the allocation or, when one already exists for
	// the same asset, replaces it. The assets table carries a UNIQUE(asset_id)
	// constraint so the at-most-one invariant holds structurally.
	UpsertAllocation(ctx context.Context, allocation domain.Allocation) error

	// DeleteAllocationByAssetID removes the allocation for an asset, if any.
	DeleteAllocationByAssetID(ctx context.Context, assetID string) error
}

// AllocationRepositoryFacade combines all allocation repository interfaces.
type AllocationRepositoryFacade interface {
	AllocationReader
	AllocationWriter
}
