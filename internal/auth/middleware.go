package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/brokerdesk/brokerage-service/internal/domain"
	apperrors "github.com/brokerdesk/brokerage-service/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller.
type Principal struct {
	Session domain.Session
}

// AuthMiddleware validates bearer tokens. It never touches record storage.
type AuthMiddleware struct {
	tokens *TokenManager
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	claims, err := m.tokens.ParseToken(BearerToken(c.Get(fiber.HeaderAuthorization)))
	switch {
	case errors.Is(err, ErrTokenMissing):
		return apperrors.NewUnauthorized(ErrTokenMissing.Error())
	case err != nil:
		return apperrors.NewForbidden(ErrTokenInvalid.Error())
	}

	c.Locals(principalKey, &Principal{Session: claims.Session()})
	return c.Next()
}

// BearerToken returns the credential part of an Authorization value.
// The scheme is not checked; the second space-separated field is the token.
func BearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
