package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/brokerdesk/brokerage-service/internal/api/dto"
	"github.com/brokerdesk/brokerage-service/internal/service"
	apperrors "github.com/brokerdesk/brokerage-service/pkg/util"
)

// AuthHandler exposes the login endpoint.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /api/login.
// An empty body is treated as empty credentials and fails with 401.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if body := c.Body(); len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			return apperrors.NewBadRequest("invalid payload")
		}
	}

	token, exp, err := h.auth.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(dto.LoginResponse{Token: token, ExpiresAt: exp})
}
