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

type PgxBeneficiaryRepository struct {
	BaseRepository
}

func newPgxBeneficiaryRepository(pool *pgxpool.Pool) portsrepo.BeneficiaryRepositoryFacade {
	return &PgxBeneficiaryRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxBeneficiaryRepository implements portsrepo.BeneficiaryRepositoryFacade
var _ portsrepo.BeneficiaryRepositoryFacade = (*PgxBeneficiaryRepository)(nil)

const beneficiaryColumns = `beneficiary_id, estate_id, name, personal_number, percentage, account_number, created_at, created_by, last_updated_at, last_updated_by`

func scanBeneficiary(row pgx.Row) (*domain.Beneficiary, error) {
	var b domain.Beneficiary
	err := row.Scan(
		&b.BeneficiaryID,
		&b.EstateID,
		&b.Name,
		&b.PersonalNumber,
		&b.Percentage,
		&b.AccountNumber,
		&b.CreatedAt,
		&b.CreatedBy,
		&b.LastUpdatedAt,
		&b.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *PgxBeneficiaryRepository) SaveBeneficiary(ctx context.Context, beneficiary domain.Beneficiary) error {
	query := `
		INSERT INTO beneficiaries (beneficiary_id, estate_id, name, personal_number, percentage, account_number, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		beneficiary.BeneficiaryID,
		beneficiary.EstateID,
		beneficiary.Name,
		beneficiary.PersonalNumber,
		beneficiary.Percentage,
		beneficiary.AccountNumber,
		beneficiary.CreatedAt,
		beneficiary.CreatedBy,
		beneficiary.LastUpdatedAt,
		beneficiary.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: beneficiary %s already exists", apperrors.ErrDuplicate, beneficiary.BeneficiaryID)
		}
		return fmt.Errorf("failed to save beneficiary %s: %w", beneficiary.BeneficiaryID, err)
	}
	return nil
}

func (r *PgxBeneficiaryRepository) FindBeneficiaryByID(ctx context.Context, beneficiaryID string) (*domain.Beneficiary, error) {
	query := `
		SELECT ` + beneficiaryColumns + `
		FROM beneficiaries
		WHERE beneficiary_id = $1;
	`
	beneficiary, err := scanBeneficiary(r.Pool.QueryRow(ctx, query, beneficiaryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("beneficiary %s: %w", beneficiaryID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find beneficiary %s: %w", beneficiaryID, err)
	}
	return beneficiary, nil
}

func (r *PgxBeneficiaryRepository) ListBeneficiariesByEstate(ctx context.Context, estateID string) ([]domain.Beneficiary, error) {
	query := `
		SELECT ` + beneficiaryColumns + `
		FROM beneficiaries
		WHERE estate_id = $1
		ORDER BY created_at, beneficiary_id;
	`
	rows, err := r.Pool.Query(ctx, query, estateID)
	if err != nil {
		return nil, fmt.Errorf("failed to query beneficiaries: %w", err)
	}
	defer rows.Close()

	beneficiaries := []domain.Beneficiary{}
	for rows.Next() {
		beneficiary, err := scanBeneficiary(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan beneficiary row: %w", err)
		}
		beneficiaries = append(beneficiaries, *beneficiary)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating beneficiary rows: %w", rows.Err())
	}
	return beneficiaries, nil
}

func (r *PgxBeneficiaryRepository) UpdateBeneficiary(ctx context.Context, beneficiary domain.Beneficiary) error {
	query := `
		UPDATE beneficiaries
		SET name = $1, personal_number = $2, percentage = $3, account_number = $4, last_updated_at = $5, last_updated_by = $6
		WHERE beneficiary_id = $7;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		beneficiary.Name,
		beneficiary.PersonalNumber,
		beneficiary.Percentage,
		beneficiary.AccountNumber,
		beneficiary.LastUpdatedAt,
		beneficiary.LastUpdatedBy,
		beneficiary.BeneficiaryID,
	)
	if err != nil {
		return fmt.Errorf("failed to update beneficiary %s: %w", beneficiary.BeneficiaryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("beneficiary %s: %w", beneficiary.BeneficiaryID, apperrors.ErrNotFound)
	}
	return nil
}

// DeleteBeneficiary removes the beneficiary and any allocation pointing at it
// in one transaction, so no dangling assignments survive.
func (r *PgxBeneficiaryRepository) DeleteBeneficiary(ctx context.Context, beneficiaryID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM allocations WHERE beneficiary_id = $1;`, beneficiaryID); err != nil {
		return fmt.Errorf("failed to clear allocations of beneficiary %s: %w", beneficiaryID, err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM beneficiaries WHERE beneficiary_id = $1;`, beneficiaryID)
	if err != nil {
		return fmt.Errorf("failed to delete beneficiary %s: %w", beneficiaryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("beneficiary %s: %w", beneficiaryID, apperrors.ErrNotFound)
	}

	return r.Commit(ctx, tx)
}
