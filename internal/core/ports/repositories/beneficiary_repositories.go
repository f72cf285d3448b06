package repositories

import (
	"context"

	"github.com/alj030327/arvs-fl-04-sub000/internal/core/domain"
)

// BeneficiaryReader defines read operations for beneficiary data.
type BeneficiaryReader interface {
	// FindBeneficiaryByID retrieves a specific beneficiary by its identifier.
	FindBeneficiaryByID(ctx context.Context, beneficiaryID string) (*domain.Beneficiary, error)

	// ListBeneficiariesByEstate retrieves all beneficiaries of an estate.
	ListBeneficiariesByEstate(ctx context.Context, estateID string) ([]domain.Beneficiary, error)
}

// BeneficiaryWriter defines write operations for beneficiary data.
type BeneficiaryWriter interface {
	// SaveBeneficiary inserts a new beneficiary.
	SaveBeneficiary(ctx context.Context, beneficiary domain.Beneficiary) error

	// UpdateBeneficiary updates an existing beneficiary's details.
	UpdateBeneficiary(ctx context.Context, beneficiary domain.Beneficiary) error

	// DeleteBeneficiary removes a beneficiary and any allocation pointing at it.
	DeleteBeneficiary(ctx context.Context, beneficiaryID string) error
}

// BeneficiaryRepositoryFacade combines all beneficiary repository interfaces.
type BeneficiaryRepositoryFacade interface {
	BeneficiaryReader
	BeneficiaryWriter
}
