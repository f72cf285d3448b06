package services

import (
	"context"

	"github.com/alj030327/arvs-fl-04-sub000/internal/core/domain"
	"github.com/alj030327/arvs-fl-04-sub000/internal/dto"
)

// BeneficiarySvcFacade defines operations on the heirs of an estate and their
// percentage shares.
type BeneficiarySvcFacade interface {
	// CreateBeneficiary persists a new beneficiary in the estate.
	CreateBeneficiary(ctx context.Context, estateID string, req dto.CreateBeneficiaryRequest, userID string) (*domain.Beneficiary, error)

	// UpdateBeneficiary updates an existing beneficiary's details or share.
	UpdateBeneficiary(ctx context.Context, estateID string, beneficiaryID string, req dto.UpdateBeneficiaryRequest, userID string) (*domain.Beneficiary, error)

	// DeleteBeneficiary removes a beneficiary and any allocation pointing at it.
	DeleteBeneficiary(ctx context.Context, estateID string, beneficiaryID string, userID string) error

	// ListBeneficiaries retrieves all beneficiaries of the estate.
	ListBeneficiaries(ctx context.Context, estateID string, userID string) ([]domain.Beneficiary, error)
}
