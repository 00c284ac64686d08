package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/brokerdesk/brokerage-service/internal/api/dto"
	"github.com/brokerdesk/brokerage-service/internal/service"
)

// ReportsHandler exposes derived payment views.
type ReportsHandler struct {
	reports *service.ReportService
}

// NewReportsHandler constructs handler.
func NewReportsHandler(reports *service.ReportService) *ReportsHandler {
	return &ReportsHandler{reports: reports}
}

// Payments handles GET /api/reports/payments.
func (h *ReportsHandler) Payments(c *fiber.Ctx) error {
	status, err := service.ParseStatus(c.Query("status"))
	if err != nil {
		return err
	}

	views, err := h.reports.Payments(c.UserContext(), service.PaymentFilter{
		Status:      status,
		Employee:    c.Query("employee"),
		Project:     c.Query("project"),
		ReceiveDate: c.Query("receiveDate"),
		Query:       c.Query("q"),
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPaymentViews(views))
}

// Summary handles GET /api/reports/summary.
func (h *ReportsHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.reports.Summary(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSummaryResponse(summary))
}
