// Package settlement implements the net-asset and distributable-amount
// calculation rules for an estate: signed valuation of assets and debts,
// exclusion of locked and specifically allocated amounts, and the
// percentage-based division of the remaining pool.
//
// Every function here is a pure, synchronous function of its inputs. Given
// identical inputs the outputs are identical; there is no I/O, no clock and
// no shared state, so recomputing from scratch is always safe.
package settlement

import (
	"github.com/alj030327/arvs-fl-04-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedValue returns the asset's contribution to the raw estate total:
// -amount for debt-classified assets, +amount otherwise.
func SignedValue(asset domain.Asset) decimal.Decimal {
	if asset.IsDebt() {
		return asset.Amount.Neg()
	}
	return asset.Amount
}

// TotalEstateValue sums SignedValue over all assets. This is the headline
// total with no locking or allocation adjustments applied.
func TotalEstateValue(assets []domain.Asset) decimal.Decimal {
	total := decimal.Zero
	for _, asset := range assets {
		total = total.Add(SignedValue(asset))
	}
	return total
}

// DistributableContribution returns the portion of one asset that enters the
// percentage-distributable pool, given the assetID-keyed allocation index.
//
// The rules, in priority order:
//   - toRemain with no amountToRemain locks the whole asset: zero.
//   - toRemain with amountToRemain unlocks only the remainder. For an asset
//     that is amount - amountToRemain; for a debt it is
//     signedValue + amountToRemain, with a lock covering the whole magnitude
//     absorbing the debt entirely. Either way the remainder is floored at
//     zero before entering the pool.
//   - an allocated asset is carved out entirely: zero here, its value
//     surfaces through AllocatedAssetValue instead.
//   - otherwise the full signed value.
func DistributableContribution(asset domain.Asset, allocations map[string]domain.Allocation) decimal.Decimal {
	if asset.ToRemain {
		if asset.AmountToRemain == nil {
			return decimal.Zero
		}
		var remainder decimal.Decimal
		if asset.IsDebt() {
			if asset.AmountToRemain.GreaterThanOrEqual(asset.Amount) {
				return decimal.Zero
			}
			remainder = SignedValue(asset).Add(*asset.AmountToRemain)
		} else {
			remainder = asset.Amount.Sub(*asset.AmountToRemain)
		}
		if remainder.IsNegative() {
			return decimal.Zero
		}
		return remainder
	}
	if _, allocated := allocations[asset.AssetID]; allocated {
		return decimal.Zero
	}
	return SignedValue(asset)
}

// DistributableAmount sums DistributableContribution over all assets and
// floors the pool as a whole at zero: an estate whose debts exceed its free
// assets has nothing to distribute.
func DistributableAmount(assets []domain.Asset, allocations map[string]domain.Allocation) decimal.Decimal {
	pool := decimal.Zero
	for _, asset := range assets {
		pool = pool.Add(DistributableContribution(asset, allocations))
	}
	if pool.IsNegative() {
		return decimal.Zero
	}
	return pool
}

// AllocatedAssetValue sums, over all allocations whose referenced asset is not
// locked with toRemain, the allocation's override amount or else the asset's
// own amount. The value is informational: the carve-out from the
// distributable pool already happened in DistributableContribution, so this
// is never subtracted a second time. Allocations referencing unknown assets
// are skipped.
func AllocatedAssetValue(assets []domain.Asset, allocations map[string]domain.Allocation) decimal.Decimal {
	byID := make(map[string]domain.Asset, len(assets))
	for _, asset := range assets {
		byID[asset.AssetID] = asset
	}

	total := decimal.Zero
	for assetID, alloc := range allocations {
		asset, ok := byID[assetID]
		if !ok || asset.ToRemain {
			continue
		}
		if alloc.Amount != nil {
			total = total.Add(*alloc.Amount)
			continue
		}
		total = total.Add(asset.Amount)
	}
	return total
}

// ValidateAssets checks the structural invariants of every asset record and
// returns the first violation. A calculation over invalid records is rejected
// outright rather than silently coerced.
func ValidateAssets(assets []domain.Asset) error {
	for _, asset := range assets {
		if err := asset.Validate(); err != nil {
			return err
		}
	}
	return nil
}
