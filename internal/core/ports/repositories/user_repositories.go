package repositories

import (
	"context"

	"github.com/alj030327/arvs-fl-04-sub000/internal/core/domain"
)

// UserRepositoryFacade defines persistence operations for user accounts.
type UserRepositoryFacade interface {
	// SaveUser inserts a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByID retrieves a user by its unique identifier.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email address.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByProviderID retrieves a user by OAuth provider and the
	// provider's own subject identifier.
	FindUserByProviderID(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error)
}
