package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alj030327/arvs-fl-04-sub000/internal/core/domain"
	portsrepo "github.com/alj030327/arvs-fl-04-sub000/internal/core/ports/repositories"
	portssvc "github.com/alj030327/arvs-fl-04-sub000/internal/core/ports/services"
	"github.com/alj030327/arvs-fl-04-sub000/internal/dto"
	"github.com/alj030327/arvs-fl-04-sub000/internal/utils/settlement"
)

// SettlementService runs the distribution calculation, either over the stored
// snapshot of an estate or over an ad-hoc preview payload.
type SettlementService struct {
	BaseService
	assetRepo       portsrepo.AssetRepositoryFacade
	allocationRepo  portsrepo.AllocationRepositoryFacade
	beneficiaryRepo portsrepo.BeneficiaryRepositoryFacade
}

// NewSettlementService creates the settlement service.
func NewSettlementService(
	assetRepo portsrepo.AssetRepositoryFacade,
	allocationRepo portsrepo.AllocationRepositoryFacade,
	beneficiaryRepo portsrepo.BeneficiaryRepositoryFacade,
	authorizer portssvc.EstateAuthorizerSvc,
) *SettlementService {
	s := &SettlementService{
		assetRepo:       assetRepo,
		allocationRepo:  allocationRepo,
		beneficiaryRepo: beneficiaryRepo,
	}
	s.EstateAuthorizer = authorizer
	return s
}

// Summary loads the estate's full snapshot and computes the settlement.
func (s *SettlementService) Summary(ctx context.Context, estateID string, userID string) (*domain.SettlementResult, error) {
	if _, err := s.EstateAuthorizer.AuthorizeEstateAccess(ctx, estateID, userID); err != nil {
		return nil, err
	}

	assets, err := s.assetRepo.ListAssetsByEstate(ctx, estateID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load assets for settlement", slog.String("estate_id", estateID))
		return nil, fmt.Errorf("failed to load assets: %w", err)
	}

	allocations, err := s.allocationRepo.ListAllocationsByEstate(ctx, estateID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load allocations for settlement", slog.String("estate_id", estateID))
		return nil, fmt.Errorf("failed to load allocations: %w", err)
	}

	beneficiaries, err := s.beneficiaryRepo.ListBeneficiariesByEstate(ctx, estateID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load beneficiaries for settlement", slog.String("estate_id", estateID))
		return nil, fmt.Errorf("failed to load beneficiaries: %w", err)
	}

	result, err := settlement.Compute(assets, allocations, beneficiaries)
	if err != nil {
		s.LogError(ctx, err, "Settlement calculation rejected estate snapshot", slog.String("estate_id", estateID))
		return nil, err
	}

	s.LogInfo(ctx, "Settlement computed",
		slog.String("estate_id", estateID),
		slog.String("distributable", result.DistributableAmount.String()),
		slog.Bool("shares_valid", result.SharesValid))
	return result, nil
}

// Preview computes the settlement over records supplied in the request.
// Nothing is read from or written to storage.
func (s *SettlementService) Preview(ctx context.Context, req dto.SettlementPreviewRequest) (*domain.SettlementResult, error) {
	result, err := settlement.Compute(req.ToDomainAssets(), req.ToDomainAllocations(), req.ToDomainBeneficiaries())
	if err != nil {
		s.LogDebug(ctx, "Settlement preview rejected", slog.String("error", err.Error()))
		return nil, err
	}
	return result, nil
}
