package domain

import "github.com/shopspring/decimal"

// Allocation assigns one asset in full to one named beneficiary, bypassing the
// percentage split. At most one allocation exists per asset; setting a new one
// replaces the previous assignment (last write wins).
type Allocation struct {
	AllocationID  string           `json:"allocationID"`     // Primary Key (e.g., UUID)
	EstateID      string           `json:"estateID"`         // FK -> estates.estate_id (Not Null)
	AssetID       string           `json:"assetID"`          // FK -> assets.asset_id (Unique)
	BeneficiaryID string           `json:"beneficiaryID"`    // FK -> beneficiaries.beneficiary_id (Not Null)
	Amount        *decimal.Decimal `json:"amount,omitempty"` // Override; nil means the asset's full amount
	AuditFields
}

// IndexAllocations builds the assetID-keyed view of a list of allocations.
// Later entries replace earlier ones for the same asset, which makes the
// at-most-one-allocation-per-asset invariant structural rather than a
// convention the caller has to uphold.
func IndexAllocations(allocations []Allocation) map[string]Allocation {
	index := make(map[string]Allocation, len(allocations))
	for _, alloc := range allocations {
		index[alloc.AssetID] = alloc
	}
	return index
}
