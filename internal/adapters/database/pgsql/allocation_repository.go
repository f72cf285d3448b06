package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/alj030327/arvs-fl-04-sub000/internal/apperrors"
	"github.com/alj030327/arvs-fl-04-sub000/internal/core/domain"
	portsrepo "github.com/alj030327/arvs-fl-04-sub000/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAllocationRepository struct {
	BaseRepository
}

func newPgxAllocationRepository(pool *pgxpool.Pool) portsrepo.AllocationRepositoryFacade {
	return &PgxAllocationRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxAllocationRepository implements portsrepo.AllocationRepositoryFacade
var _ portsrepo.AllocationRepositoryFacade = (*PgxAllocationRepository)(nil)

const allocationColumns = `allocation_id, estate_id, asset_id, beneficiary_id, amount, created_at, created_by, last_updated_at, last_updated_by`

func scanAllocation(row pgx.Row) (*domain.Allocation, error) {
	var a domain.Allocation
	err := row.Scan(
		&a.AllocationID,
		&a.EstateID,
		&a.AssetID,
		&a.BeneficiaryID,
		&a.Amount,
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

// UpsertAllocation inserts the allocation or replaces the existing one for
// the same asset. allocations carries UNIQUE (asset_id), so at most one row
// per asset can ever exist.
func (r *PgxAllocationRepository) UpsertAllocation(ctx context.Context, allocation domain.Allocation) error {
	query := `
		INSERT INTO allocations (allocation_id, estate_id, asset_id, beneficiary_id, amount, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (asset_id) DO UPDATE SET
			beneficiary_id = EXCLUDED.beneficiary_id,
			amount = EXCLUDED.amount,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		allocation.AllocationID,
		allocation.EstateID,
		allocation.AssetID,
		allocation.BeneficiaryID,
		allocation.Amount,
		allocation.CreatedAt,
		allocation.CreatedBy,
		allocation.LastUpdatedAt,
		allocation.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert allocation for asset %s: %w", allocation.AssetID, err)
	}
	return nil
}

func (r *PgxAllocationRepository) FindAllocationByAssetID(ctx context.Context, assetID string) (*domain.Allocation, error) {
	query := `
		SELECT ` + allocationColumns + `
		FROM allocations
		WHERE asset_id = $1;
	`
	allocation, err := scanAllocation(r.Pool.QueryRow(ctx, query, assetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("allocation for asset %s: %w", assetID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find allocation for asset %s: %w", assetID, err)
	}
	return allocation, nil
}

func (r *PgxAllocationRepository) ListAllocationsByEstate(ctx context.Context, estateID string) ([]domain.Allocation, error) {
	query := `
		SELECT ` + allocationColumns + `
		FROM allocations
		WHERE estate_id = $1
		ORDER BY created_at, allocation_id;
	`
	rows, err := r.Pool.Query(ctx, query, estateID)
	if err != nil {
		return nil, fmt.Errorf("failed to query allocations: %w", err)
	}
	defer rows.Close()

	allocations := []domain.Allocation{}
	for rows.Next() {
		allocation, err := scanAllocation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan allocation row: %w", err)
		}
		allocations = append(allocations, *allocation)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating allocation rows: %w", rows.Err())
	}
	return allocations, nil
}

func (r *PgxAllocationRepository) DeleteAllocationByAssetID(ctx context.Context, assetID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM allocations WHERE asset_id = $1;`, assetID)
	if err != nil {
		return fmt.Errorf("failed to delete allocation for asset %s: %w", assetID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("allocation for asset %s: %w", assetID, apperrors.ErrNotFound)
	}
	return nil
}
