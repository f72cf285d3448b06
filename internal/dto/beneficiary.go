package dto

import (
	"github.com/alj030327/arvs-fl-04-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBeneficiaryRequest defines the data needed to register an heir.
type CreateBeneficiaryRequest struct {
	Name           string          `json:"name" binding:"required"`
	PersonalNumber string          `json:"personalNumber" binding:"required"`
	Percentage     decimal.Decimal `json:"percentage"`
	AccountNumber  string          `json:"accountNumber"`
}

// UpdateBeneficiaryRequest defines the data allowed for updating a beneficiary.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateBeneficiaryRequest struct {
	Name           *string          `json:"name"`
	PersonalNumber *string          `json:"personalNumber"`
	Percentage     *decimal.Decimal `json:"percentage"`
	AccountNumber  *string          `json:"accountNumber"`
}

// BeneficiaryResponse defines the data returned for a beneficiary.
type BeneficiaryResponse struct {
	BeneficiaryID  string          `json:"beneficiaryID"`
	EstateID       string          `json:"estateID"`
	Name           string          `json:"name"`
	PersonalNumber string          `json:"personalNumber"`
	Percentage     decimal.Decimal `json:"percentage"`
	AccountNumber  string          `json:"accountNumber,omitempty"`
}

// ToBeneficiaryResponse converts a domain.Beneficiary to BeneficiaryResponse DTO.
func ToBeneficiaryResponse(b *domain.Beneficiary) BeneficiaryResponse {
	return BeneficiaryResponse{
		BeneficiaryID:  b.BeneficiaryID,
		EstateID:       b.EstateID,
		Name:           b.Name,
		PersonalNumber: b.PersonalNumber,
		Percentage:     b.Percentage,
		AccountNumber:  b.AccountNumber,
	}
}

// ListBeneficiariesResponse wraps the beneficiaries of an estate. SharesValid
// tells the caller whether the percentages currently reconcile to exactly 100.
type ListBeneficiariesResponse struct {
	Beneficiaries []BeneficiaryResponse `json:"beneficiaries"`
	SharesValid   bool                  `json:"sharesValid"`
}
