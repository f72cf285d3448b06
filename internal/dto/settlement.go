package dto

import (
	"github.com/alj030327/arvs-fl-04-sub000/internal/core/domain"
	"github.com/alj030327/arvs-fl-04-sub000/internal/utils"
	"github.com/shopspring/decimal"
)

// SettlementAssetInput describes one asset or debt row in a preview request.
// The rows are self-contained: previews never touch stored estates.
type SettlementAssetInput struct {
	AssetID        string           `json:"assetID" binding:"required"`
	Bank           string           `json:"bank"`
	AssetType      string           `json:"assetType" binding:"required"`
	AccountNumber  string           `json:"accountNumber"`
	Amount         decimal.Decimal  `json:"amount"`
	ToRemain       bool             `json:"toRemain"`
	AmountToRemain *decimal.Decimal `json:"amountToRemain"`
	ReasonToRemain string           `json:"reasonToRemain"`
}

// SettlementAllocationInput reserves an asset for a specific beneficiary
// in a preview request.
type SettlementAllocationInput struct {
	AssetID       string           `json:"assetID" binding:"required"`
	BeneficiaryID string           `json:"beneficiaryID" binding:"required"`
	Amount        *decimal.Decimal `json:"amount"`
}

// SettlementShareInput describes one heir's share in a preview request.
type SettlementShareInput struct {
	BeneficiaryID string          `json:"beneficiaryID" binding:"required"`
	Name          string          `json:"name"`
	Percentage    decimal.Decimal `json:"percentage"`
}

// SettlementPreviewRequest carries a full ad-hoc snapshot to run the
// settlement calculation against, without persisting anything.
type SettlementPreviewRequest struct {
	Assets      []SettlementAssetInput      `json:"assets" binding:"required"`
	Allocations []SettlementAllocationInput `json:"allocations"`
	Shares      []SettlementShareInput      `json:"shares"`
}

// ToDomainAssets maps the preview asset rows onto domain assets.
func (r SettlementPreviewRequest) ToDomainAssets() []domain.Asset {
	assets := make([]domain.Asset, 0, len(r.Assets))
	for _, in := range r.Assets {
		assets = append(assets, domain.Asset{
			AssetID:        in.AssetID,
			Bank:           in.Bank,
			AssetType:      in.AssetType,
			AccountNumber:  in.AccountNumber,
			Amount:         in.Amount,
			ToRemain:       in.ToRemain,
			AmountToRemain: in.AmountToRemain,
			ReasonToRemain: in.ReasonToRemain,
		})
	}
	return assets
}

// ToDomainAllocations maps the preview allocation rows onto domain allocations.
func (r SettlementPreviewRequest) ToDomainAllocations() []domain.Allocation {
	allocations := make([]domain.Allocation, 0, len(r.Allocations))
	for _, in := range r.Allocations {
		allocations = append(allocations, domain.Allocation{
			AssetID:       in.AssetID,
			BeneficiaryID: in.BeneficiaryID,
			Amount:        in.Amount,
		})
	}
	return allocations
}

// ToDomainBeneficiaries maps the preview share rows onto domain beneficiaries.
func (r SettlementPreviewRequest) ToDomainBeneficiaries() []domain.Beneficiary {
	shares := make([]domain.Beneficiary, 0, len(r.Shares))
	for _, in := range r.Shares {
		shares = append(shares, domain.Beneficiary{
			BeneficiaryID: in.BeneficiaryID,
			Name:          in.Name,
			Percentage:    in.Percentage,
		})
	}
	return shares
}

// DistributionResponse is one beneficiary row of a settlement result.
type DistributionResponse struct {
	BeneficiaryID string          `json:"beneficiaryID"`
	Name          string          `json:"name"`
	Percentage    decimal.Decimal `json:"percentage"`
	Amount        decimal.Decimal `json:"amount"`
	AmountDisplay string          `json:"amountDisplay"`
}

// SettlementResponse is the full settlement calculation for an estate.
// The *Display fields carry the amounts formatted as Swedish kronor.
type SettlementResponse struct {
	TotalAssetsValue           decimal.Decimal        `json:"totalAssetsValue"`
	TotalAssetsValueDisplay    string                 `json:"totalAssetsValueDisplay"`
	AllocatedAssetValue        decimal.Decimal        `json:"allocatedAssetValue"`
	AllocatedAssetValueDisplay string                 `json:"allocatedAssetValueDisplay"`
	DistributableAmount        decimal.Decimal        `json:"distributableAmount"`
	DistributableAmountDisplay string                 `json:"distributableAmountDisplay"`
	SharesValid                bool                   `json:"sharesValid"`
	Distributions              []DistributionResponse `json:"distributions"`
}

// ToSettlementResponse converts a domain.SettlementResult to its DTO.
func ToSettlementResponse(res *domain.SettlementResult) SettlementResponse {
	resp := SettlementResponse{
		TotalAssetsValue:           res.TotalAssetsValue,
		TotalAssetsValueDisplay:    utils.FormatSEK(res.TotalAssetsValue),
		AllocatedAssetValue:        res.AllocatedAssetValue,
		AllocatedAssetValueDisplay: utils.FormatSEK(res.AllocatedAssetValue),
		DistributableAmount:        res.DistributableAmount,
		DistributableAmountDisplay: utils.FormatSEK(res.DistributableAmount),
		SharesValid:                res.SharesValid,
	}
	if res.Distributions == nil {
		return resp
	}
	resp.Distributions = make([]DistributionResponse, 0, len(res.Distributions))
	for _, d := range res.Distributions {
		resp.Distributions = append(resp.Distributions, DistributionResponse{
			BeneficiaryID: d.BeneficiaryID,
			Name:          d.Name,
			Percentage:    d.Percentage,
			Amount:        d.Amount,
			AmountDisplay: utils.FormatSEK(d.Amount),
		})
	}
	return resp
}
