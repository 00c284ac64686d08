package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/brokerdesk/brokerage-service/internal/api/dto"
	"github.com/brokerdesk/brokerage-service/internal/auth"
	"github.com/brokerdesk/brokerage-service/internal/domain"
	apperrors "github.com/brokerdesk/brokerage-service/pkg/util"
)

func decodeDocument(c *fiber.Ctx) (domain.Document, error) {
	doc, err := domain.DecodeDocument(c.Body())
	if err != nil {
		return nil, apperrors.NewBadRequest("invalid payload")
	}
	return doc, nil
}

func actor(c *fiber.Ctx) string {
	if principal, ok := auth.PrincipalFromContext(c); ok {
		return principal.Session.Username
	}
	return ""
}

func success(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{Success: true})
}
