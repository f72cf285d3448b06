package dto

import (
	"github.com/alj030327/arvs-fl-04-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAssetRequest defines the data needed to register an asset or debt.
// Amount is the magnitude; polarity follows from the asset type.
type CreateAssetRequest struct {
	Bank           string           `json:"bank" binding:"required"`
	AssetType      string           `json:"assetType" binding:"required"`
	AccountNumber  string           `json:"accountNumber"`
	Amount         decimal.Decimal  `json:"amount"`
	ToRemain       bool             `json:"toRemain"`
	AmountToRemain *decimal.Decimal `json:"amountToRemain"`
	ReasonToRemain string           `json:"reasonToRemain"`
}

// UpdateAssetRequest defines the data allowed for updating an asset.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAssetRequest struct {
	Bank           *string          `json:"bank"`
	AssetType      *string          `json:"assetType"`
	AccountNumber  *string          `json:"accountNumber"`
	Amount         *decimal.Decimal `json:"amount"`
	ToRemain       *bool            `json:"toRemain"`
	AmountToRemain *decimal.Decimal `json:"amountToRemain"`
	ReasonToRemain *string          `json:"reasonToRemain"`
}

// AssetResponse defines the data returned for an asset.
type AssetResponse struct {
	AssetID        string           `json:"assetID"`
	EstateID       string           `json:"estateID"`
	Bank           string           `json:"bank"`
	AssetType      string           `json:"assetType"`
	AccountNumber  string           `json:"accountNumber,omitempty"`
	Amount         decimal.Decimal  `json:"amount"`
	IsDebt         bool             `json:"isDebt"`
	ToRemain       bool             `json:"toRemain"`
	AmountToRemain *decimal.Decimal `json:"amountToRemain,omitempty"`
	ReasonToRemain string           `json:"reasonToRemain,omitempty"`
}

// ToAssetResponse converts a domain.Asset to AssetResponse DTO.
func ToAssetResponse(a *domain.Asset) AssetResponse {
	return AssetResponse{
		AssetID:        a.AssetID,
		EstateID:       a.EstateID,
		Bank:           a.Bank,
		AssetType:      a.AssetType,
		AccountNumber:  a.AccountNumber,
		Amount:         a.Amount,
		IsDebt:         a.IsDebt(),
		ToRemain:       a.ToRemain,
		AmountToRemain: a.AmountToRemain,
		ReasonToRemain: a.ReasonToRemain,
	}
}

// ListAssetsResponse wraps the asset records of an estate together with the
// canonical debt type labels, so form code offers exactly the labels the
// classifier recognises.
type ListAssetsResponse struct {
	Assets    []AssetResponse `json:"assets"`
	DebtTypes []string        `json:"debtTypes"`
}

// ToListAssetsResponse converts a slice of domain.Asset to ListAssetsResponse.
func ToListAssetsResponse(assets []domain.Asset) ListAssetsResponse {
	res := make([]AssetResponse, len(assets))
	for i, a := range assets {
		res[i] = ToAssetResponse(&a)
	}
	return ListAssetsResponse{Assets: res, DebtTypes: domain.DebtAssetTypes()}
}
