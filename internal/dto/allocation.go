package dto

import (
	"github.com/alj030327/arvs-fl-04-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SetAllocationRequest assigns one asset to one beneficiary. Setting an
// allocation for an asset that already has one replaces it.
type SetAllocationRequest struct {
	AssetID       string           `json:"assetID" binding:"required"`
	BeneficiaryID string           `json:"beneficiaryID" binding:"required"`
	Amount        *decimal.Decimal `json:"amount"` // Optional override of the asset's full amount
}

// AllocationResponse defines the data returned for an allocation.
type AllocationResponse struct {
	AllocationID  string           `json:"allocationID"`
	EstateID      string           `json:"estateID"`
	AssetID       string           `json:"assetID"`
	BeneficiaryID string           `json:"beneficiaryID"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
}

// ToAllocationResponse converts a domain.Allocation to AllocationResponse DTO.
func ToAllocationResponse(a *domain.Allocation) AllocationResponse {
	return AllocationResponse{
		AllocationID:  a.AllocationID,
		EstateID:      a.EstateID,
		AssetID:       a.AssetID,
		BeneficiaryID: a.BeneficiaryID,
		Amount:        a.Amount,
	}
}

// ListAllocationsResponse wraps the allocations of an estate.
type ListAllocationsResponse struct {
	Allocations []AllocationResponse `json:"allocations"`
}

// ToListAllocationsResponse converts a slice of domain.Allocation to ListAllocationsResponse.
func ToListAllocationsResponse(allocations []domain.Allocation) ListAllocationsResponse {
	res := make([]AllocationResponse, len(allocations))
	for i, a := range allocations {
		res[i] = ToAllocationResponse(&a)
	}
	return ListAllocationsResponse{Allocations: res}
}
