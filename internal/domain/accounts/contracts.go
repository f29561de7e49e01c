package accounts

import (
	"context"
	"errors"
)

// Sentinel errors returned by account repositories and services.
var (
	ErrNotFound  = errors.New("account record not found")
	ErrDuplicate = errors.New("account record already exists")
)

// UserService defines methods for provisioning user accounts.
type UserService interface {
	// Create provisions a new user together with its API token.
	// It returns the created User, the Token granting API access and any error encountered.
	Create(ctx context.Context, username, email string) (*User, *Token, error)

	// GetByID retrieves a user by its unique ID.
	GetByID(ctx context.Context, userID string) (*User, error)
}

// AuthService resolves API tokens to the users holding them.
type AuthService interface {
	// Authenticate returns the user owning the given token key.
	// It returns ErrNotFound when no such token exists.
	Authenticate(ctx context.Context, tokenKey string) (*User, error)
}

// UserRepository defines the interface for user persistence operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// TokenRepository defines the interface for API token persistence operations
type TokenRepository interface {
	Create(ctx context.Context, token *Token) error
	GetByKey(ctx context.Context, key string) (*Token, error)
}
