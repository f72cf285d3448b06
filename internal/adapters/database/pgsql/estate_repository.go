package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alj030327/arvs-fl-04-sub000/internal/apperrors"
	"github.com/alj030327/arvs-fl-04-sub000/internal/core/domain"
	portsrepo "github.com/alj030327/arvs-fl-04-sub000/internal/core/ports/repositories"
	"github.com/alj030327/arvs-fl-04-sub000/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxEstateRepository struct {
	BaseRepository
}

func newPgxEstateRepository(pool *pgxpool.Pool) portsrepo.EstateRepositoryFacade {
	return &PgxEstateRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxEstateRepository implements portsrepo.EstateRepositoryFacade
var _ portsrepo.EstateRepositoryFacade = (*PgxEstateRepository)(nil)

const estateColumns = `estate_id, owner_user_id, deceased_name, deceased_person_nr, status, created_at, created_by, last_updated_at, last_updated_by`

func scanEstate(row pgx.Row) (*domain.Estate, error) {
	var e domain.Estate
	err := row.Scan(
		&e.EstateID,
		&e.OwnerUserID,
		&e.DeceasedName,
		&e.DeceasedPersonNr,
		&e.Status,
		&e.CreatedAt,
		&e.CreatedBy,
		&e.LastUpdatedAt,
		&e.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *PgxEstateRepository) SaveEstate(ctx context.Context, estate domain.Estate) error {
	query := `
		INSERT INTO estates (estate_id, owner_user_id, deceased_name, deceased_person_nr, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		estate.EstateID,
		estate.OwnerUserID,
		estate.DeceasedName,
		estate.DeceasedPersonNr,
		estate.Status,
		estate.CreatedAt,
		estate.CreatedBy,
		estate.LastUpdatedAt,
		estate.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: estate %s already exists", apperrors.ErrDuplicate, estate.EstateID)
		}
		return fmt.Errorf("failed to save estate %s: %w", estate.EstateID, err)
	}
	return nil
}

func (r *PgxEstateRepository) FindEstateByID(ctx context.Context, estateID string) (*domain.Estate, error) {
	query := `
		SELECT ` + estateColumns + `
		FROM estates
		WHERE estate_id = $1 AND deleted_at IS NULL;
	`
	estate, err := scanEstate(r.Pool.QueryRow(ctx, query, estateID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("estate %s: %w", estateID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find estate %s: %w", estateID, err)
	}
	return estate, nil
}

// ListEstatesByOwner pages through a user's estates newest first, keyed on
// (created_at, estate_id) so inserts between pages cannot shift results.
func (r *PgxEstateRepository) ListEstatesByOwner(ctx context.Context, ownerUserID string, limit int, nextToken string) ([]domain.Estate, string, error) {
	if limit <= 0 {
		limit = 20
	}

	args := []any{ownerUserID}
	query := `
		SELECT ` + estateColumns + `
		FROM estates
		WHERE owner_user_id = $1 AND deleted_at IS NULL
	`
	if nextToken != "" {
		lastCreatedAt, lastID, err := pagination.DecodeToken(nextToken)
		if err != nil {
			return nil, "", fmt.Errorf("invalid nextToken: %w: %s", apperrors.ErrValidation, err.Error())
		}
		query += ` AND (created_at, estate_id) < ($2, $3)`
		args = append(args, lastCreatedAt, lastID)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC, estate_id DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1) // one extra row tells us whether another page exists

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, "", fmt.Errorf("failed to query estates: %w", err)
	}
	defer rows.Close()

	estates := []domain.Estate{}
	for rows.Next() {
		estate, err := scanEstate(rows)
		if err != nil {
			return nil, "", fmt.Errorf("failed to scan estate row: %w", err)
		}
		estates = append(estates, *estate)
	}
	if rows.Err() != nil {
		return nil, "", fmt.Errorf("error iterating estate rows: %w", rows.Err())
	}

	var token string
	if len(estates) > limit {
		estates = estates[:limit]
		last := estates[len(estates)-1]
		token = pagination.EncodeToken(last.CreatedAt, last.EstateID)
	}
	return estates, token, nil
}

func (r *PgxEstateRepository) UpdateEstate(ctx context.Context, estate domain.Estate) error {
	query := `
		UPDATE estates
		SET deceased_name = $1, deceased_person_nr = $2, status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE estate_id = $6 AND deleted_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		estate.DeceasedName,
		estate.DeceasedPersonNr,
		estate.Status,
		estate.LastUpdatedAt,
		estate.LastUpdatedBy,
		estate.EstateID,
	)
	if err != nil {
		return fmt.Errorf("failed to update estate %s: %w", estate.EstateID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("estate %s: %w", estate.EstateID, apperrors.ErrNotFound)
	}
	return nil
}

// DeleteEstate soft deletes the estate and clears its allocations in one
// transaction. Asset and beneficiary rows stay behind the deleted_at filter.
func (r *PgxEstateRepository) DeleteEstate(ctx context.Context, estateID string, userID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM allocations WHERE estate_id = $1;`, estateID); err != nil {
		return fmt.Errorf("failed to clear allocations of estate %s: %w", estateID, err)
	}

	cmdTag, err := tx.Exec(ctx, `
		UPDATE estates
		SET deleted_at = $1, last_updated_at = $1, last_updated_by = $2
		WHERE estate_id = $3 AND deleted_at IS NULL;
	`, now, userID, estateID)
	if err != nil {
		return fmt.Errorf("failed to delete estate %s: %w", estateID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("estate %s: %w", estateID, apperrors.ErrNotFound)
	}

	return r.Commit(ctx, tx)
}
