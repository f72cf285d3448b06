package domain

import "github.com/shopspring/decimal"

// BeneficiaryDistribution is one row of the per-beneficiary settlement ledger.
type BeneficiaryDistribution struct {
	BeneficiaryID string          `json:"beneficiaryID"`
	Name          string          `json:"name"`
	Percentage    decimal.Decimal `json:"percentage"`
	Amount        decimal.Decimal `json:"amount"` // SEK, full precision
}

// SettlementResult is the derived output of one calculation pass over an
// estate snapshot. It is never persisted; callers recompute from the source
// records whenever they need it.
type SettlementResult struct {
	TotalAssetsValue    decimal.Decimal           `json:"totalAssetsValue"`    // signed sum over all assets, debts negative
	AllocatedAssetValue decimal.Decimal           `json:"allocatedAssetValue"` // informational, already excluded from the pool
	DistributableAmount decimal.Decimal           `json:"distributableAmount"`
	SharesValid         bool                      `json:"sharesValid"` // whether percentages sum to exactly 100
	Distributions       []BeneficiaryDistribution `json:"distributions,omitempty"`
}
