package domain

import "time"

// AuthProvider identifies how a user authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "LOCAL"
	ProviderGoogle AuthProvider = "GOOGLE"
)

// User represents an estate administrator account.
type User struct {
	UserID         string       `json:"userID"` // Primary Key (e.g., UUID)
	Name           string       `json:"name"`
	Email          string       `json:"email"`
	PasswordHash   string       `json:"-"` // Empty for OAuth-only users
	AuthProvider   AuthProvider `json:"authProvider"`
	ProviderUserID string       `json:"-"` // Google's subject claim for OAuth users
	EmailVerified  bool         `json:"emailVerified"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}
