package repositories

import (
	"context"
	"time"

	"github.com/alj030327/arvs-fl-04-sub000/internal/core/domain"
)

// EstateReader defines read operations for estate data.
type EstateReader interface {
	// FindEstateByID retrieves a specific estate by its unique identifier.
	FindEstateByID(ctx context.Context, estateID string) (*domain.Estate, error)

	// ListEstatesByOwner retrieves a keyset-paginated list of estates owned by
	// a user. nextToken is empty for the first page.
	ListEstatesByOwner(ctx context.Context, ownerUserID string, limit int, nextToken string) ([]domain.Estate, string, error)
}

// EstateWriter defines write operations for estate data.
type EstateWriter interface {
	// SaveEstate inserts a new estate.
	SaveEstate(ctx context.Context, estate domain.Estate) error

	// UpdateEstate updates an existing estate's details and status.
	UpdateEstate(ctx context.Context, estate domain.Estate) error

	// DeleteEstate removes an estate and all of its dependent records.
	DeleteEstate(ctx context.Context, estateID string, userID string, now time.Time) error
}

// EstateRepositoryFacade combines all estate repository interfaces.
type EstateRepositoryFacade interface {
	EstateReader
	EstateWriter
}
