package repositories

import (
	"context"

	"github.com/alj030327/arvs-fl-04-sub000/internal/core/domain"
)

// AssetReader defines read operations for asset data.
type AssetReader interface {
	// FindAssetByID retrieves a specific asset by its unique identifier.
	FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error)

	// ListAssetsByEstate retrieves all assets of an estate. A calculation
	// always runs over the full snapshot, so there is no pagination here.
	ListAssetsByEstate(ctx context.Context, estateID string) ([]domain.Asset, error)
}

// AssetWriter defines write operations for asset data.
type AssetWriter interface {
	// SaveAsset inserts a new asset.
	SaveAsset(ctx context.Context, asset domain.Asset) error

	// UpdateAsset updates an existing asset's details.
	UpdateAsset(ctx context.Context, asset domain.Asset) error

	// DeleteAsset removes an asset and any allocation referencing it.
	DeleteAsset(ctx context.Context, assetID string) error
}

// AssetRepositoryFacade combines all asset repository interfaces.
type AssetRepositoryFacade interface {
	AssetReader
	AssetWriter
}
