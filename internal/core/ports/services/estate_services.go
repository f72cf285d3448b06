package services

import (
	"context"

	"github.com/alj030327/arvs-fl-04-sub000/internal/core/domain"
	"github.com/alj030327/arvs-fl-04-sub000/internal/dto"
)

// EstateReaderSvc defines read operations for estate cases.
type EstateReaderSvc interface {
	// GetEstateByID retrieves a specific estate owned by the user.
	GetEstateByID(ctx context.Context, estateID string, userID string) (*domain.Estate, error)

	// ListEstates retrieves a keyset-paginated list of the user's estates.
	ListEstates(ctx context.Context, userID string, limit int, nextToken string) ([]domain.Estate, string, error)
}

// EstateWriterSvc defines write operations for estate cases.
type EstateWriterSvc interface {
	// CreateEstate persists a new estate owned by the user.
	CreateEstate(ctx context.Context, req dto.CreateEstateRequest, userID string) (*domain.Estate, error)

	// UpdateEstate updates an estate's details or status.
	UpdateEstate(ctx context.Context, estateID string, req dto.UpdateEstateRequest, userID string) (*domain.Estate, error)

	// DeleteEstate removes an estate and all dependent records.
	DeleteEstate(ctx context.Context, estateID string, userID string) error
}

// EstateAuthorizerSvc checks that a user may act on an estate. Other services
// depend on this narrow interface instead of the full facade.
type EstateAuthorizerSvc interface {
	// AuthorizeEstateAccess returns the estate when the user owns it,
	// ErrNotFound otherwise (existence is not revealed to non-owners).
	AuthorizeEstateAccess(ctx context.Context, estateID string, userID string) (*domain.Estate, error)
}

// EstateSvcFacade combines all estate-related service interfaces.
type EstateSvcFacade interface {
	EstateReaderSvc
	EstateWriterSvc
	EstateAuthorizerSvc
}
