package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/brokerdesk/brokerage-service/internal/domain"
	"github.com/brokerdesk/brokerage-service/internal/repository"
	apperrors "github.com/brokerdesk/brokerage-service/pkg/util"
)

const (
	maxProjects      = 8
	maxMonths        = 6
	unknownProject   = "Unknown"
	unassignedBroker = "Unassigned"
)

var paymentDateLayouts = []string{"2006-01-02", time.RFC3339, "02/01/2006"}

// PaymentFilter narrows a payment report. Empty fields match everything.
type PaymentFilter struct {
	Status      domain.PaymentStatus
	Employee    string
	Project     string
	ReceiveDate string
	Query       string
}

// PaymentView is a payment with its derived status and resolved employee name.
type PaymentView struct {
	ID           string
	Status       domain.PaymentStatus
	EmployeeName string
	Document     domain.Document
}

// EmployeeTotals aggregates payments by employee code.
type EmployeeTotals struct {
	Code    string
	Name    string
	Deals   int
	Revenue float64
}

// ProjectTotals aggregates base price by project.
type ProjectTotals struct {
	Name  string
	Value float64
}

// MonthTotals aggregates base price by payment month.
type MonthTotals struct {
	Month    string
	Total    float64
	Received float64
}

// Summary is the dashboard rollup over all payments.
type Summary struct {
	Count                  int
	TotalPayments          float64
	ReceivedPayments       float64
	PendingPayments        float64
	TotalOwnerBrokerage    float64
	TotalCustomerBrokerage float64
	TotalCommission        float64
	StatusCounts           map[domain.PaymentStatus]int
	ByEmployee             []EmployeeTotals
	ByProject              []ProjectTotals
	Monthly                []MonthTotals
}

// ReportService derives read-only views over payments and employees.
type ReportService struct {
	payments  repository.PaymentRepository
	employees repository.EmployeeRepository
}

// NewReportService builds the service.
func NewReportService(payments repository.PaymentRepository, employees repository.EmployeeRepository) *ReportService {
	return &ReportService{payments: payments, employees: employees}
}

// ParseStatus accepts received, partial or pending in any case. Empty means no filter.
func ParseStatus(raw string) (domain.PaymentStatus, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return "", nil
	case "received":
		return domain.PaymentStatusReceived, nil
	case "partial":
		return domain.PaymentStatusPartial, nil
	case "pending":
		return domain.PaymentStatusPending, nil
	default:
		return "", apperrors.NewBadRequest(fmt.Sprintf("unknown status %q", raw))
	}
}

// Payments lists payments matching filter with employee names resolved by code.
// The employee list and payment list are read separately, not as one snapshot.
func (s *ReportService) Payments(ctx context.Context, filter PaymentFilter) ([]PaymentView, error) {
	payments, directory, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(filter.Query))
	views := []PaymentView{}
	for _, rec := range payments {
		p := domain.PaymentFromDocument(rec.Document)
		status := p.Status()

		if filter.Status != "" && status != filter.Status {
			continue
		}
		if filter.Employee != "" && p.Employee != filter.Employee {
			continue
		}
		if filter.Project != "" && p.ProjectName != filter.Project {
			continue
		}
		if filter.ReceiveDate != "" && (p.ReceiveDate == nil || *p.ReceiveDate != filter.ReceiveDate) {
			continue
		}
		if query != "" && !matchesQuery(p, query) {
			continue
		}

		views = append(views, PaymentView{
			ID:           rec.ID,
			Status:       status,
			EmployeeName: directory.DisplayName(p.Employee),
			Document:     rec.Document,
		})
	}
	return views, nil
}

// Summary rolls up every payment.
func (s *ReportService) Summary(ctx context.Context) (Summary, error) {
	payments, directory, err := s.load(ctx)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{
		StatusCounts: map[domain.PaymentStatus]int{
			domain.PaymentStatusReceived: 0,
			domain.PaymentStatusPartial:  0,
			domain.PaymentStatusPending:  0,
		},
	}

	byEmployee := map[string]*EmployeeTotals{}
	byProject := map[string]*ProjectTotals{}
	var projectOrder []string
	byMonth := map[string]*MonthTotals{}
	monthStart := map[string]time.Time{}

	for _, rec := range payments {
		p := domain.PaymentFromDocument(rec.Document)
		status := p.Status()
		received := status == domain.PaymentStatusReceived

		summary.Count++
		summary.StatusCounts[status]++
		summary.TotalPayments += p.BasePrice
		summary.TotalOwnerBrokerage += p.OwnerBrokerage
		summary.TotalCustomerBrokerage += p.CustomerBrokerage
		summary.TotalCommission += p.Commission
		if received {
			summary.ReceivedPayments += p.BasePrice
		}

		emp, ok := byEmployee[p.Employee]
		if !ok {
			name := directory.DisplayName(p.Employee)
			if name == "" {
				name = unassignedBroker
			}
			emp = &EmployeeTotals{Code: p.Employee, Name: name}
			byEmployee[p.Employee] = emp
		}
		emp.Deals++
		emp.Revenue += p.BasePrice

		project := p.ProjectName
		if project == "" {
			project = unknownProject
		}
		proj, ok := byProject[project]
		if !ok {
			proj = &ProjectTotals{Name: project}
			byProject[project] = proj
			projectOrder = append(projectOrder, project)
		}
		proj.Value += p.BasePrice

		if start, ok := parsePaymentMonth(p.Date); ok {
			key := start.Format("2006-01")
			month, exists := byMonth[key]
			if !exists {
				month = &MonthTotals{Month: start.Format("Jan 2006")}
				byMonth[key] = month
				monthStart[key] = start
			}
			month.Total += p.BasePrice
			if received {
				month.Received += p.BasePrice
			}
		}
	}
	summary.PendingPayments = summary.TotalPayments - summary.ReceivedPayments

	for _, e := range byEmployee {
		summary.ByEmployee = append(summary.ByEmployee, *e)
	}
	sort.Slice(summary.ByEmployee, func(i, j int) bool {
		a, b := summary.ByEmployee[i], summary.ByEmployee[j]
		if a.Revenue != b.Revenue {
			return a.Revenue > b.Revenue
		}
		return a.Code < b.Code
	})

	if len(projectOrder) > maxProjects {
		projectOrder = projectOrder[:maxProjects]
	}
	for _, name := range projectOrder {
		summary.ByProject = append(summary.ByProject, *byProject[name])
	}

	keys := make([]string, 0, len(byMonth))
	for k := range byMonth {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return monthStart[keys[i]].Before(monthStart[keys[j]]) })
	if len(keys) > maxMonths {
		keys = keys[len(keys)-maxMonths:]
	}
	for _, k := range keys {
		summary.Monthly = append(summary.Monthly, *byMonth[k])
	}

	return summary, nil
}

func (s *ReportService) load(ctx context.Context) ([]domain.Record, domain.EmployeeDirectory, error) {
	payments, err := s.payments.List(ctx)
	if err != nil {
		return nil, domain.EmployeeDirectory{}, apperrors.NewInternalError(err)
	}
	employeeRecords, err := s.employees.List(ctx)
	if err != nil {
		return nil, domain.EmployeeDirectory{}, apperrors.NewInternalError(err)
	}

	employees := make([]domain.EmployeeRecord, len(employeeRecords))
	for i, rec := range employeeRecords {
		employees[i] = domain.EmployeeFromDocument(rec.Document)
	}
	return payments, domain.NewEmployeeDirectory(employees), nil
}

func matchesQuery(p domain.PaymentRecord, query string) bool {
	for _, field := range []string{p.ProjectName, p.CustomerName, p.OwnerName, p.Employee} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

func parsePaymentMonth(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range paymentDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}
