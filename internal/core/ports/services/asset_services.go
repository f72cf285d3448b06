package services

import (
	"context"

	"github.com/alj030327/arvs-fl-04-sub000/internal/core/domain"
	"github.com/alj030327/arvs-fl-04-sub000/internal/dto"
)

// AssetSvcFacade defines operations on the asset and debt records of an
// estate. All operations verify estate ownership first.
type AssetSvcFacade interface {
	// CreateAsset persists a new asset record in the estate.
	CreateAsset(ctx context.Context, estateID string, req dto.CreateAssetRequest, userID string) (*domain.Asset, error)

	// UpdateAsset updates an existing asset record.
	UpdateAsset(ctx context.Context, estateID string, assetID string, req dto.UpdateAssetRequest, userID string) (*domain.Asset, error)

	// DeleteAsset removes an asset record and any allocation referencing it.
	DeleteAsset(ctx context.Context, estateID string, assetID string, userID string) error

	// ListAssets retrieves all asset records of the estate.
	ListAssets(ctx context.Context, estateID string, userID string) ([]domain.Asset, error)
}
