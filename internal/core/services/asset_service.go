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

// AssetService manages the asset and debt records of an estate.
type AssetService struct {
	BaseService
	assetRepo      portsrepo.AssetRepositoryFacade
	allocationRepo portsrepo.AllocationRepositoryFacade
}

// AssetServiceOption configures an AssetService.
type AssetServiceOption func(*AssetService)

// WithEstateAuthorizer sets the authorizer used for ownership checks.
func WithEstateAuthorizer(authorizer portssvc.EstateAuthorizerSvc) AssetServiceOption {
	return func(s *AssetService) {
		s.EstateAuthorizer = authorizer
	}
}

// WithAllocationRepository lets asset deletion cascade to allocations.
func WithAllocationRepository(repo portsrepo.AllocationRepositoryFacade) AssetServiceOption {
	return func(s *AssetService) {
		s.allocationRepo = repo
	}
}

// NewAssetService creates the asset service.
func NewAssetService(assetRepo portsrepo.AssetRepositoryFacade, opts ...AssetServiceOption) *AssetService {
	s := &AssetService{assetRepo: assetRepo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *AssetService) CreateAsset(ctx context.Context, estateID string, req dto.CreateAssetRequest, userID string) (*domain.Asset, error) {
	if _, err := s.EstateAuthorizer.AuthorizeEstateAccess(ctx, estateID, userID); err != nil {
		return nil, err
	}

	now := time.Now()
	asset := domain.Asset{
		AssetID:        uuid.NewString(),
		EstateID:       estateID,
		Bank:           req.Bank,
		AssetType:      req.AssetType,
		AccountNumber:  req.AccountNumber,
		Amount:         req.Amount,
		ToRemain:       req.ToRemain,
		AmountToRemain: req.AmountToRemain,
		ReasonToRemain: req.ReasonToRemain,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := asset.Validate(); err != nil {
		return nil, err
	}

	if err := s.assetRepo.SaveAsset(ctx, asset); err != nil {
		s.LogError(ctx, err, "Failed to save asset", slog.String("asset_id", asset.AssetID))
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}

	s.LogInfo(ctx, "Asset created",
		slog.String("asset_id", asset.AssetID),
		slog.String("asset_type", asset.AssetType),
		slog.Bool("is_debt", asset.IsDebt()))
	return &asset, nil
}

func (s *AssetService) UpdateAsset(ctx context.Context, estateID string, assetID string, req dto.UpdateAssetRequest, userID string) (*domain.Asset, error) {
	if _, err := s.EstateAuthorizer.AuthorizeEstateAccess(ctx, estateID, userID); err != nil {
		return nil, err
	}

	asset, err := s.findAssetInEstate(ctx, estateID, assetID)
	if err != nil {
		return nil, err
	}

	if req.Bank != nil {
		asset.Bank = *req.Bank
	}
	if req.AssetType != nil {
		asset.AssetType = *req.AssetType
	}
	if req.AccountNumber != nil {
		asset.AccountNumber = *req.AccountNumber
	}
	if req.Amount != nil {
		asset.Amount = *req.Amount
	}
	if req.ToRemain != nil {
		asset.ToRemain = *req.ToRemain
	}
	if req.AmountToRemain != nil {
		asset.AmountToRemain = req.AmountToRemain
	}
	if req.ReasonToRemain != nil {
		asset.ReasonToRemain = *req.ReasonToRemain
	}
	asset.LastUpdatedAt = time.Now()
	asset.LastUpdatedBy = userID

	if err := asset.Validate(); err != nil {
		return nil, err
	}

	if err := s.assetRepo.UpdateAsset(ctx, *asset); err != nil {
		s.LogError(ctx, err, "Failed to update asset", slog.String("asset_id", assetID))
		return nil, fmt.Errorf("failed to update asset: %w", err)
	}

	s.LogInfo(ctx, "Asset updated", slog.String("asset_id", assetID))
	return asset, nil
}

func (s *AssetService) DeleteAsset(ctx context.Context, estateID string, assetID string, userID string) error {
	if _, err := s.EstateAuthorizer.AuthorizeEstateAccess(ctx, estateID, userID); err != nil {
		return err
	}

	if _, err := s.findAssetInEstate(ctx, estateID, assetID); err != nil {
		return err
	}

	// Clear any allocation first so no orphan assignment survives the asset.
	if s.allocationRepo != nil {
		if err := s.allocationRepo.DeleteAllocationByAssetID(ctx, assetID); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to clear allocation for asset", slog.String("asset_id", assetID))
			return fmt.Errorf("failed to clear allocation: %w", err)
		}
	}

	if err := s.assetRepo.DeleteAsset(ctx, assetID); err != nil {
		s.LogError(ctx, err, "Failed to delete asset", slog.String("asset_id", assetID))
		return fmt.Errorf("failed to delete asset: %w", err)
	}

	s.LogInfo(ctx, "Asset deleted", slog.String("asset_id", assetID))
	return nil
}

func (s *AssetService) ListAssets(ctx context.Context, estateID string, userID string) ([]domain.Asset, error) {
	if _, err := s.EstateAuthorizer.AuthorizeEstateAccess(ctx, estateID, userID); err != nil {
		return nil, err
	}

	assets, err := s.assetRepo.ListAssetsByEstate(ctx, estateID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list assets", slog.String("estate_id", estateID))
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	if assets == nil {
		return []domain.Asset{}, nil
	}
	return assets, nil
}

// findAssetInEstate loads the asset and verifies it belongs to the estate.
// A mismatch is reported as not found, same as a missing row.
func (s *AssetService) findAssetInEstate(ctx context.Context, estateID string, assetID string) (*domain.Asset, error) {
	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find asset", slog.String("asset_id", assetID))
		}
		return nil, err
	}
	if asset.EstateID != estateID {
		return nil, fmt.Errorf("asset %s: %w", assetID, apperrors.ErrNotFound)
	}
	return asset, nil
}
