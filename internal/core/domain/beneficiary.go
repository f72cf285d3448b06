package domain

import (
	"fmt"

	"github.com/alj030327/arvs-fl-04-sub000/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Beneficiary represents one heir entitled to a percentage share of the
// distributable estate.
type Beneficiary struct {
	BeneficiaryID  string          `json:"beneficiaryID"` // Primary Key (e.g., UUID)
	EstateID       string          `json:"estateID"`      // FK -> estates.estate_id (Not Null)
	Name           string          `json:"name"`
	PersonalNumber string          `json:"personalNumber"` // Swedish personnummer, display only
	Percentage     decimal.Decimal `json:"percentage"`     // 0-100
	AccountNumber  string          `json:"accountNumber"`  // Payout account, nullable
	AuditFields
}

// Validate checks the structural invariants of a beneficiary share:
// 0 <= percentage <= 100. Whether all shares of an estate sum to exactly 100
// is a business-rule check that belongs to the distribution calculator, not
// to the single record.
func (b Beneficiary) Validate() error {
	if b.Percentage.IsNegative() || b.Percentage.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("beneficiary %s: percentage must be between 0 and 100: %w", b.BeneficiaryID, apperrors.ErrValidation)
	}
	return nil
}
