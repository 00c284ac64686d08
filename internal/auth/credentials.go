package auth

import (
	"errors"

	"github.com/brokerdesk/brokerage-service/internal/config"
)

// CredentialStore holds the single administrator identity.
type CredentialStore struct {
	username     string
	passwordHash string
}

// NewCredentialStore hashes the configured password once at startup.
func NewCredentialStore(cfg config.AuthConfig) (*CredentialStore, error) {
	if cfg.AdminUsername == "" {
		return nil, errors.New("admin username is required")
	}
	hash, err := HashPassword(cfg.AdminPassword, cfg.BcryptCost)
	if err != nil {
		return nil, err
	}
	return &CredentialStore{username: cfg.AdminUsername, passwordHash: hash}, nil
}

// Username returns the configured administrator name.
func (s *CredentialStore) Username() string {
	return s.username
}

// Verify reports whether the pair matches the administrator identity.
func (s *CredentialStore) Verify(username, password string) bool {
	if username != s.username {
		return false
	}
	return ComparePassword(s.passwordHash, password) == nil
}
