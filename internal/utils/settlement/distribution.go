package settlement

import (
	"github.com/alj030327/arvs-fl-04-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ValidateShares reports whether the beneficiary percentages sum to exactly
// 100. The comparison is exact decimal equality with no epsilon: 99.9 and
// 100.1 both fail, and callers gate progression on this flag.
func ValidateShares(shares []domain.Beneficiary) bool {
	sum := decimal.Zero
	for _, share := range shares {
		sum = sum.Add(share.Percentage)
	}
	return sum.Equal(hundred)
}

// DistributionFor returns the kronor amount one beneficiary is entitled to
// out of the distributable pool: percentage/100 * pool, at full decimal
// precision. Rounding is a display concern only.
func DistributionFor(share domain.Beneficiary, distributable decimal.Decimal) decimal.Decimal {
	return share.Percentage.Div(hundred).Mul(distributable)
}

// ComputeDistribution produces the per-beneficiary ledger for the given pool.
// An invalid share sum is not an error: the rows are omitted and the validity
// flag tells the caller to block progression. Business-rule violations never
// surface as errors from this package.
func ComputeDistribution(distributable decimal.Decimal, shares []domain.Beneficiary) ([]domain.BeneficiaryDistribution, bool) {
	if !ValidateShares(shares) {
		return nil, false
	}
	rows := make([]domain.BeneficiaryDistribution, len(shares))
	for i, share := range shares {
		rows[i] = domain.BeneficiaryDistribution{
			BeneficiaryID: share.BeneficiaryID,
			Name:          share.Name,
			Percentage:    share.Percentage,
			Amount:        DistributionFor(share, distributable),
		}
	}
	return rows, true
}

// Compute runs one full calculation pass over a snapshot of an estate's
// records: valuation, allocation carve-out, pool flooring and percentage
// distribution. Structurally invalid records reject the whole calculation
// with ErrValidation; a share sum that is not exactly 100 only clears the
// SharesValid flag.
func Compute(assets []domain.Asset, allocations []domain.Allocation, shares []domain.Beneficiary) (*domain.SettlementResult, error) {
	if err := ValidateAssets(assets); err != nil {
		return nil, err
	}
	for _, share := range shares {
		if err := share.Validate(); err != nil {
			return nil, err
		}
	}

	index := domain.IndexAllocations(allocations)
	result := &domain.SettlementResult{
		TotalAssetsValue:    TotalEstateValue(assets),
		AllocatedAssetValue: AllocatedAssetValue(assets, index),
		DistributableAmount: DistributableAmount(assets, index),
	}
	result.Distributions, result.SharesValid = ComputeDistribution(result.DistributableAmount, shares)
	return result, nil
}
