package services

import (
	"context"

	"github.com/alj030327/arvs-fl-04-sub000/internal/core/domain"
	"github.com/alj030327/arvs-fl-04-sub000/internal/dto"
)

// AllocationSvcFacade defines operations for assigning whole assets to named
// beneficiaries outside the percentage split.
type AllocationSvcFacade interface {
	// SetAllocation assigns an asset to a beneficiary, replacing any previous
	// assignment of the same asset (last write wins).
	SetAllocation(ctx context.Context, estateID string, req dto.SetAllocationRequest, userID string) (*domain.Allocation, error)

	// RemoveAllocation clears the assignment of an asset, returning it to the
	// percentage-distributable pool.
	RemoveAllocation(ctx context.Context, estateID string, assetID string, userID string) error

	// ListAllocations retrieves all allocations of the estate.
	ListAllocations(ctx context.Context, estateID string, userID string) ([]domain.Allocation, error)
}
