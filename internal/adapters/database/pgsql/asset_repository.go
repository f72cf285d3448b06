package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/alj030327/arvs-fl-04-sub000/internal/apperrors"
	"github.com/alj030327/arvs-fl-04-sub000/internal/core/domain"
	portsrepo "github.com/alj030327/arvs-fl-04-sub000/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAssetRepository struct {
	BaseRepository
}

func newPgxAssetRepository(pool *pgxpool.Pool) portsrepo.AssetRepositoryFacade {
	return &PgxAssetRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxAssetRepository implements portsrepo.AssetRepositoryFacade
var _ portsrepo.AssetRepositoryFacade = (*PgxAssetRepository)(nil)

const assetColumns = `asset_id, estate_id, bank, asset_type, account_number, amount, to_remain, amount_to_remain, reason_to_remain, created_at, created_by, last_updated_at, last_updated_by`

func scanAsset(row pgx.Row) (*domain.Asset, error) {
	var a domain.Asset
	err := row.Scan(
		&a.AssetID,
		&a.EstateID,
		&a.Bank,
		&a.AssetType,
		&a.AccountNumber,
		&a.Amount,
		&a.ToRemain,
		&a.AmountToRemain,
		&a.ReasonToRemain,
		&a.CreatedAt,
		&a.CreatedBy,
		&a.LastUpdatedAt,
		&a.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *PgxAssetRepository) SaveAsset(ctx context.Context, asset domain.Asset) error {
	query := `
		INSERT INTO assets (asset_id, estate_id, bank, asset_type, account_number, amount, to_remain, amount_to_remain, reason_to_remain, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		asset.AssetID,
		asset.EstateID,
		asset.Bank,
		asset.AssetType,
		asset.AccountNumber,
		asset.Amount,
		asset.ToRemain,
		asset.AmountToRemain,
		asset.ReasonToRemain,
		asset.CreatedAt,
		asset.CreatedBy,
		asset.LastUpdatedAt,
		asset.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: asset %s already exists", apperrors.ErrDuplicate, asset.AssetID)
		}
		return fmt.Errorf("failed to save asset %s: %w", asset.AssetID, err)
	}
	return nil
}

func (r *PgxAssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	query := `
		SELECT ` + assetColumns + `
		FROM assets
		WHERE asset_id = $1;
	`
	asset, err := scanAsset(r.Pool.QueryRow(ctx, query, assetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("asset %s: %w", assetID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find asset %s: %w", assetID, err)
	}
	return asset, nil
}

func (r *PgxAssetRepository) ListAssetsByEstate(ctx context.Context, estateID string) ([]domain.Asset, error) {
	query := `
		SELECT ` + assetColumns + `
		FROM assets
		WHERE estate_id = $1
		ORDER BY created_at, asset_id;
	`
	rows, err := r.Pool.Query(ctx, query, estateID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assets: %w", err)
	}
	defer rows.Close()

	assets := []domain.Asset{}
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset row: %w", err)
		}
		assets = append(assets, *asset)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating asset rows: %w", rows.Err())
	}
	return assets, nil
}

func (r *PgxAssetRepository) UpdateAsset(ctx context.Context, asset domain.Asset) error {
	query := `
		UPDATE assets
		SET bank = $1, asset_type = $2, account_number = $3, amount = $4, to_remain = $5, amount_to_remain = $6, reason_to_remain = $7, last_updated_at = $8, last_updated_by = $9
		WHERE asset_id = $10;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		asset.Bank,
		asset.AssetType,
		asset.AccountNumber,
		asset.Amount,
		asset.ToRemain,
		asset.AmountToRemain,
		asset.ReasonToRemain,
		asset.LastUpdatedAt,
		asset.LastUpdatedBy,
		asset.AssetID,
	)
	if err != nil {
		return fmt.Errorf("failed to update asset %s: %w", asset.AssetID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("asset %s: %w", asset.AssetID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxAssetRepository) DeleteAsset(ctx context.Context, assetID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM assets WHERE asset_id = $1;`, assetID)
	if err != nil {
		return fmt.Errorf("failed to delete asset %s: %w", assetID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("asset %s: %w", assetID, apperrors.ErrNotFound)
	}
	return nil
}
