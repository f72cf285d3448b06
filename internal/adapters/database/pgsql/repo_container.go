package pgsql

import (
	portsrepo "github.com/alj030327/arvs-fl-04-sub000/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx-backed repository off one shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EstateRepo:      newPgxEstateRepository(dbPool),
		AssetRepo:       newPgxAssetRepository(dbPool),
		AllocationRepo:  newPgxAllocationRepository(dbPool),
		BeneficiaryRepo: newPgxBeneficiaryRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
	}
}
