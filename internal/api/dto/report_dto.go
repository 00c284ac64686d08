package dto

import (
	"github.com/brokerdesk/brokerage-service/internal/domain"
	"github.com/brokerdesk/brokerage-service/internal/service"
)

// PaymentView is a payment with derived status and resolved employee name.
type PaymentView struct {
	ID           string          `json:"id"`
	Status       string          `json:"status"`
	EmployeeName string          `json:"employeeName"`
	Record       domain.Document `json:"record"`
}

// EmployeeTotals aggregates payments per employee code.
type EmployeeTotals struct {
	Code    string  `json:"code"`
	Name    string  `json:"name"`
	Deals   int     `json:"deals"`
	Revenue float64 `json:"revenue"`
}

// ProjectTotals aggregates base price per project.
type ProjectTotals struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// MonthTotals aggregates base price per month.
type MonthTotals struct {
	Month    string  `json:"month"`
	Total    float64 `json:"total"`
	Received float64 `json:"received"`
}

// SummaryResponse is the dashboard rollup.
type SummaryResponse struct {
	Count                  int              `json:"count"`
	TotalPayments          float64          `json:"totalPayments"`
	ReceivedPayments       float64          `json:"receivedPayments"`
	PendingPayments        float64          `json:"pendingPayments"`
	TotalOwnerBrokerage    float64          `json:"totalOwnerBrokerage"`
	TotalCustomerBrokerage float64          `json:"totalCustomerBrokerage"`
	TotalCommission        float64          `json:"totalCommission"`
	StatusCounts           map[string]int   `json:"statusCounts"`
	ByEmployee             []EmployeeTotals `json:"byEmployee"`
	ByProject              []ProjectTotals  `json:"byProject"`
	Monthly                []MonthTotals    `json:"monthly"`
}

// NewPaymentViews maps service views to the response shape.
func NewPaymentViews(views []service.PaymentView) []PaymentView {
	out := make([]PaymentView, len(views))
	for i, v := range views {
		out[i] = PaymentView{
			ID:           v.ID,
			Status:       string(v.Status),
			EmployeeName: v.EmployeeName,
			Record:       v.Document,
		}
	}
	return out
}

// NewSummaryResponse maps the service summary to the response shape.
func NewSummaryResponse(s service.Summary) SummaryResponse {
	resp := SummaryResponse{
		Count:                  s.Count,
		TotalPayments:          s.TotalPayments,
		ReceivedPayments:       s.ReceivedPayments,
		PendingPayments:        s.PendingPayments,
		TotalOwnerBrokerage:    s.TotalOwnerBrokerage,
		TotalCustomerBrokerage: s.TotalCustomerBrokerage,
		TotalCommission:        s.TotalCommission,
		StatusCounts:           make(map[string]int, len(s.StatusCounts)),
		ByEmployee:             make([]EmployeeTotals, 0, len(s.ByEmployee)),
		ByProject:              make([]ProjectTotals, 0, len(s.ByProject)),
		Monthly:                make([]MonthTotals, 0, len(s.Monthly)),
	}
	for status, n := range s.StatusCounts {
		resp.StatusCounts[string(status)] = n
	}
	for _, e := range s.ByEmployee {
		resp.ByEmployee = append(resp.ByEmployee, EmployeeTotals(e))
	}
	for _, p := range s.ByProject {
		resp.ByProject = append(resp.ByProject, ProjectTotals(p))
	}
	for _, m := range s.Monthly {
		resp.Monthly = append(resp.Monthly, MonthTotals(m))
	}
	return resp
}
