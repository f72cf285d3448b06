package services

import (
	"context"

	"github.com/alj030327/arvs-fl-04-sub000/internal/core/domain"
	"github.com/alj030327/arvs-fl-04-sub000/internal/dto"
)

// UserSvcFacade defines operations on estate administrator accounts.
type UserSvcFacade interface {
	// CreateUser registers a new local-credential user.
	CreateUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// CreateOAuthUser creates or retrieves a user backed by an external
	// identity provider.
	CreateOAuthUser(ctx context.Context, name, email string, provider domain.AuthProvider, providerUserID string, emailVerified bool) (*domain.User, error)

	// GetUserByID retrieves a user by its unique identifier.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByEmail retrieves a user by email address.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}
