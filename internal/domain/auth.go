package domain

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidCredentials is returned by Login on a wrong email or password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// PasswordHasher handles salt generation, hashing, and verification.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated admin.
type TokenIssuer interface {
	Issue(userID, email string, roles []string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated user ID.
type TokenVerifier interface {
	Verify(token string) (userID string, err error)
}

// AuthService authenticates the admin account and issues bearer tokens for
// the check-in and roster endpoints.
type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, err error)
}
