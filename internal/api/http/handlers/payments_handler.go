package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/brokerdesk/brokerage-service/internal/service"
)

// PaymentsHandler exposes payment transaction endpoints.
type PaymentsHandler struct {
	records *service.RecordService
}

// NewPaymentsHandler constructs handler.
func NewPaymentsHandler(records *service.RecordService) *PaymentsHandler {
	return &PaymentsHandler{records: records}
}

// List handles GET /api/data.
func (h *PaymentsHandler) List(c *fiber.Ctx) error {
	docs, err := h.records.ListPayments(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(docs)
}

// Create handles POST /api/data.
func (h *PaymentsHandler) Create(c *fiber.Ctx) error {
	doc, err := decodeDocument(c)
	if err != nil {
		return err
	}
	if err := h.records.CreatePayment(c.UserContext(), actor(c), doc); err != nil {
		return err
	}
	return success(c)
}

// Update handles PUT /api/data/:id.
func (h *PaymentsHandler) Update(c *fiber.Ctx) error {
	doc, err := decodeDocument(c)
	if err != nil {
		return err
	}
	if err := h.records.UpdatePayment(c.UserContext(), actor(c), c.Params("id"), doc); err != nil {
		return err
	}
	return success(c)
}
