package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/brokerdesk/brokerage-service/internal/auth"
	apperrors "github.com/brokerdesk/brokerage-service/pkg/util"
)

// AuthService coordinates the login flow.
type AuthService struct {
	credentials *auth.CredentialStore
	tokenMgr    *auth.TokenManager
	logger      *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(credentials *auth.CredentialStore, tokens *auth.TokenManager, logger *zap.Logger) *AuthService {
	return &AuthService{
		credentials: credentials,
		tokenMgr:    tokens,
		logger:      logger,
	}
}

// Login verifies the administrator credentials and issues a session token.
func (s *AuthService) Login(_ context.Context, username, password string) (string, time.Time, error) {
	if !s.credentials.Verify(username, password) {
		s.logger.Info("login rejected", zap.String("username", username))
		return "", time.Time{}, apperrors.NewInvalidCredentials()
	}

	token, exp, err := s.tokenMgr.GenerateToken(username)
	if err != nil {
		return "", time.Time{}, apperrors.NewInternalError(err)
	}
	s.logger.Info("login succeeded", zap.String("username", username), zap.Time("expires_at", exp))
	return token, exp, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
