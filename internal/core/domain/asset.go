package domain

import (
	"fmt"
	"sort"

	"github.com/alj030327/arvs-fl-04-sub000/internal/apperrors"
	"github.com/shopspring/decimal"
)

// debtAssetTypes is the canonical table of asset type labels that carry debt
// polarity. Membership is an exact, case-sensitive string match; any label not
// listed here is treated as an asset. The table is deliberately defined once
// and shared by the valuation engine and any display code.
var debtAssetTypes = map[string]struct{}{
	"Bolån":       {}, // mortgage
	"Privatlån":   {}, // personal loan
	"Kreditkort":  {}, // credit card
	"Blancolån":   {}, // unsecured loan
	"Billån":      {}, // car loan
	"Företagslån": {}, // business loan
}

// IsDebtType reports whether the given asset type label carries debt polarity.
// Unknown labels silently classify as assets.
func IsDebtType(assetType string) bool {
	_, ok := debtAssetTypes[assetType]
	return ok
}

// DebtAssetTypes returns the debt type labels in sorted order, for display and
// form-option purposes.
func DebtAssetTypes() []string {
	types := make([]string, 0, len(debtAssetTypes))
	for t := range debtAssetTypes {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Asset represents one financial account or physical item in an estate.
// Amount is always a non-negative magnitude; polarity follows from AssetType.
type Asset struct {
	AssetID        string           `json:"assetID"`  // Primary Key (e.g., UUID)
	EstateID       string           `json:"estateID"` // FK -> estates.estate_id (Not Null)
	Bank           string           `json:"bank"`     // Owning bank or location, display only
	AssetType      string           `json:"assetType"`
	AccountNumber  string           `json:"accountNumber"` // Nullable, display only
	Amount         decimal.Decimal  `json:"amount"`
	ToRemain       bool             `json:"toRemain"`                 // Estate keeps all or part of this asset
	AmountToRemain *decimal.Decimal `json:"amountToRemain,omitempty"` // Locked portion; nil means the whole amount
	ReasonToRemain string           `json:"reasonToRemain"`           // Nullable free text
	AuditFields
}

// IsDebt reports whether the asset is debt classified.
func (a Asset) IsDebt() bool {
	return IsDebtType(a.AssetType)
}

// Validate checks the structural invariants of an asset record:
// amount >= 0, and if set, 0 <= amountToRemain <= amount.
func (a Asset) Validate() error {
	if a.Amount.IsNegative() {
		return fmt.Errorf("asset %s: amount must not be negative: %w", a.AssetID, apperrors.ErrValidation)
	}
	if a.AmountToRemain != nil {
		if a.AmountToRemain.IsNegative() {
			return fmt.Errorf("asset %s: amountToRemain must not be negative: %w", a.AssetID, apperrors.ErrValidation)
		}
		if a.AmountToRemain.GreaterThan(a.Amount) {
			return fmt.Errorf("asset %s: amountToRemain exceeds amount: %w", a.AssetID, apperrors.ErrValidation)
		}
	}
	return nil
}
