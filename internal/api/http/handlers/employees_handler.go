package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/brokerdesk/brokerage-service/internal/service"
)

// EmployeesHandler exposes employee endpoints.
type EmployeesHandler struct {
	records *service.RecordService
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(records *service.RecordService) *EmployeesHandler {
	return &EmployeesHandler{records: records}
}

// List handles GET /api/employees.
func (h *EmployeesHandler) List(c *fiber.Ctx) error {
	docs, err := h.records.ListEmployees(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(docs)
}

// Create handles POST /api/employees.
func (h *EmployeesHandler) Create(c *fiber.Ctx) error {
	doc, err := decodeDocument(c)
	if err != nil {
		return err
	}
	if err := h.records.CreateEmployee(c.UserContext(), actor(c), doc); err != nil {
		return err
	}
	return success(c)
}

// Update handles PUT /api/employees/:id.
func (h *EmployeesHandler) Update(c *fiber.Ctx) error {
	doc, err := decodeDocument(c)
	if err != nil {
		return err
	}
	if err := h.records.UpdateEmployee(c.UserContext(), actor(c), c.Params("id"), doc); err != nil {
		return err
	}
	return success(c)
}

// Delete handles DELETE /api/employees/:id.
func (h *EmployeesHandler) Delete(c *fiber.Ctx) error {
	if err := h.records.DeleteEmployee(c.UserContext(), actor(c), c.Params("id")); err != nil {
		return err
	}
	return success(c)
}
