package services

import (
	"context"
	"strings"
	"time"

	"campusevents/internal/domain"
)

const adminTokenExpiry = 12 * time.Hour

type authService struct {
	adminEmail string
	adminHash  string
	adminSalt  string
	hasher     domain.PasswordHasher
	issuer     domain.TokenIssuer
}

// NewAuthService creates an AuthService for the single configured admin
// account. adminHash is the bcrypt hash of the admin password with adminSalt.
func NewAuthService(adminEmail, adminHash, adminSalt string, hasher domain.PasswordHasher, issuer domain.TokenIssuer) domain.AuthService {
	return &authService{
		adminEmail: strings.TrimSpace(strings.ToLower(adminEmail)),
		adminHash:  adminHash,
		adminSalt:  adminSalt,
		hasher:     hasher,
		issuer:     issuer,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if s.adminEmail == "" || email != s.adminEmail {
		return "", domain.ErrInvalidCredentials
	}
	if err := s.hasher.Compare(s.adminHash, s.adminSalt, password); err != nil {
		return "", domain.ErrInvalidCredentials
	}
	token, err := s.issuer.Issue("admin", email, []string{"admin"}, adminTokenExpiry)
	if err != nil {
		return "", err
	}
	return token, nil
}
