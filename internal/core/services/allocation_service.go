package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/alj030327/arvs-fl-04-sub000/internal/apperrors"
	"github.com/alj030327/arvs-fl-04-sub000/internal/core/domain"
	portsrepo "github.com/alj030327/arvs-fl-04-sub000/internal/core/ports/repositories"
	portssvc "github.com/alj030327/arvs-fl-04-sub000/internal/core/ports/services"
	"github.com/alj030327/arvs-fl-04-sub000/internal/dto"
	"github.com/google/uuid"
)

// AllocationService assigns whole assets to named beneficiaries, taking them
// out of the percentage-distributable pool.
type AllocationService struct {
	BaseService
	allocationRepo  portsrepo.AllocationRepositoryFacade
	assetRepo       portsrepo.AssetRepositoryFacade
	beneficiaryRepo portsrepo.BeneficiaryRepositoryFacade
}

// NewAllocationService creates the allocation service.
func NewAllocationService(
	allocationRepo portsrepo.AllocationRepositoryFacade,
	assetRepo portsrepo.AssetRepositoryFacade,
	beneficiaryRepo portsrepo.BeneficiaryRepositoryFacade,
	authorizer portssvc.EstateAuthorizerSvc,
) *AllocationService {
	s := &AllocationService{
		allocationRepo:  allocationRepo,
		assetRepo:       assetRepo,
		beneficiaryRepo: beneficiaryRepo,
	}
	s.EstateAuthorizer = authorizer
	return s
}

func (s *AllocationService) SetAllocation(ctx context.Context, estateID string, req dto.SetAllocationRequest, userID string) (*domain.Allocation, error) {
	if _, err := s.EstateAuthorizer.AuthorizeEstateAccess(ctx, estateID, userID); err != nil {
		return nil, err
	}

	asset, err := s.assetRepo.FindAssetByID(ctx, req.AssetID)
	if err != nil {
		return nil, err
	}
	if asset.EstateID != estateID {
		return nil, fmt.Errorf("asset %s: %w", req.AssetID, apperrors.ErrNotFound)
	}

	beneficiary, err := s.beneficiaryRepo.FindBeneficiaryByID(ctx, req.BeneficiaryID)
	if err != nil {
		return nil, err
	}
	if beneficiary.EstateID != estateID {
		return nil, fmt.Errorf("beneficiary %s: %w", req.BeneficiaryID, apperrors.ErrNotFound)
	}

	if req.Amount != nil && req.Amount.IsNegative() {
		return nil, fmt.Errorf("allocation amount must not be negative: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	allocation := domain.Allocation{
		AllocationID:  uuid.NewString(),
		EstateID:      estateID,
		AssetID:       req.AssetID,
		BeneficiaryID: req.BeneficiaryID,
		Amount:        req.Amount,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	// One allocation per asset; a repeat assignment replaces the previous one.
	if err := s.allocationRepo.UpsertAllocation(ctx, allocation); err != nil {
		s.LogError(ctx, err, "Failed to upsert allocation", slog.String("asset_id", req.AssetID))
		return nil, fmt.Errorf("failed to set allocation: %w", err)
	}

	s.LogInfo(ctx, "Allocation set",
		slog.String("asset_id", req.AssetID),
		slog.String("beneficiary_id", req.BeneficiaryID))
	return &allocation, nil
}

func (s *AllocationService) RemoveAllocation(ctx context.Context, estateID string, assetID string, userID string) error {
	if _, err := s.EstateAuthorizer.AuthorizeEstateAccess(ctx, estateID, userID); err != nil {
		return err
	}

	allocation, err := s.allocationRepo.FindAllocationByAssetID(ctx, assetID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find allocation", slog.String("asset_id", assetID))
		}
		return err
	}
	if allocation.EstateID != estateID {
		return fmt.Errorf("allocation for asset %s: %w", assetID, apperrors.ErrNotFound)
	}

	if err := s.allocationRepo.DeleteAllocationByAssetID(ctx, assetID); err != nil {
		s.LogError(ctx, err, "Failed to delete allocation", slog.String("asset_id", assetID))
		return fmt.Errorf("failed to remove allocation: %w", err)
	}

	s.LogInfo(ctx, "Allocation removed", slog.String("asset_id", assetID))
	return nil
}

func (s *AllocationService) ListAllocations(ctx context.Context, estateID string, userID string) ([]domain.Allocation, error) {
	if _, err := s.EstateAuthorizer.AuthorizeEstateAccess(ctx, estateID, userID); err != nil {
		return nil, err
	}

	allocations, err := s.allocationRepo.ListAllocationsByEstate(ctx, estateID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list allocations", slog.String("estate_id", estateID))
		return nil, fmt.Errorf("failed to list allocations: %w", err)
	}
	if allocations == nil {
		return []domain.Allocation{}, nil
	}
	return allocations, nil
}
