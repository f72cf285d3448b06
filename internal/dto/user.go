package dto

import (
	"time"

	"github.com/alj030327/arvs-fl-04-sub000/internal/core/domain"
)

// RegisterRequest defines the data needed to create a local account.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest defines the data needed to log in with email and password.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// GoogleExchangeCodeRequest carries the authorization code returned by
// Google's consent screen.
type GoogleExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// GoogleLoginURLResponse carries the consent screen URL and the CSRF state
// the client must echo back on the redirect.
type GoogleLoginURLResponse struct {
	AuthURL string `json:"authURL"`
	State   string `json:"state"`
}

// UserResponse defines the user data returned by the API.
type UserResponse struct {
	UserID        string `json:"userID"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	AuthProvider  string `json:"authProvider"`
	EmailVerified bool   `json:"emailVerified"`
}

// ToUserResponse converts a domain.User to UserResponse DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:        u.UserID,
		Name:          u.Name,
		Email:         u.Email,
		AuthProvider:  string(u.AuthProvider),
		EmailVerified: u.EmailVerified,
	}
}

// LoginResponse defines the data returned after a successful login.
type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	ExpiresAt   time.Time    `json:"expiresAt"`
	User        UserResponse `json:"user"`
}
