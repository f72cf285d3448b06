package services

import (
	"context"
	"time"

	"github.com/alj030327/arvs-fl-04-sub000/internal/core/domain"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// TokenSvcFacade issues the application's own access tokens.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a new JWT access token for the given user,
	// returning the token and its expiry time.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}

// GoogleOAuthSvcFacade wraps the Google side of the sign-in flow.
type GoogleOAuthSvcFacade interface {
	// GenerateStateString creates a CSRF token for the OAuth redirect flow.
	GenerateStateString(ctx context.Context) (string, error)

	// GetGoogleLoginURL returns the consent screen URL for the given state.
	GetGoogleLoginURL(ctx context.Context, state string) string

	// ExchangeCodeForToken exchanges an authorization code for Google tokens.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)

	// ValidateGoogleIDToken validates a Google ID token and returns its payload.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
