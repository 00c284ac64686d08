package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/brokerdesk/brokerage-service/internal/domain"
)

// Collection names shared by every backend.
const (
	PaymentsCollection  = "payments"
	EmployeesCollection = "employees"
)

// ErrInvalidIndex is returned by positional backends that bounds-check identifiers.
var ErrInvalidIndex = errors.New("invalid index")

// Collection is the storage contract every backend implements.
// Documents are stored as supplied; no field or reference validation happens here.
type Collection interface {
	List(ctx context.Context) ([]domain.Record, error)
	Insert(ctx context.Context, doc domain.Document) (string, error)
	Replace(ctx context.Context, id string, doc domain.Document) error
	Remove(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

// PaymentRepository exposes payment transactions. Payments cannot be deleted.
type PaymentRepository interface {
	List(ctx context.Context) ([]domain.Record, error)
	Create(ctx context.Context, doc domain.Document) (string, error)
	Update(ctx context.Context, id string, doc domain.Document) error
}

// EmployeeRepository exposes employee records.
type EmployeeRepository interface {
	List(ctx context.Context) ([]domain.Record, error)
	Create(ctx context.Context, doc domain.Document) (string, error)
	Update(ctx context.Context, id string, doc domain.Document) error
	Delete(ctx context.Context, id string) error
}

type paymentRepository struct {
	docs Collection
}

// NewPaymentRepository wraps a collection as the payment store.
func NewPaymentRepository(docs Collection) PaymentRepository {
	return &paymentRepository{docs: docs}
}

func (r *paymentRepository) List(ctx context.Context) ([]domain.Record, error) {
	return r.docs.List(ctx)
}

func (r *paymentRepository) Create(ctx context.Context, doc domain.Document) (string, error) {
	return r.docs.Insert(ctx, doc)
}

func (r *paymentRepository) Update(ctx context.Context, id string, doc domain.Document) error {
	return r.docs.Replace(ctx, id, doc)
}

type employeeRepository struct {
	docs Collection
}

// NewEmployeeRepository wraps a collection as the employee store.
func NewEmployeeRepository(docs Collection) EmployeeRepository {
	return &employeeRepository{docs: docs}
}

func (r *employeeRepository) List(ctx context.Context) ([]domain.Record, error) {
	return r.docs.List(ctx)
}

func (r *employeeRepository) Create(ctx context.Context, doc domain.Document) (string, error) {
	return r.docs.Insert(ctx, doc)
}

func (r *employeeRepository) Update(ctx context.Context, id string, doc domain.Document) error {
	return r.docs.Replace(ctx, id, doc)
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	return r.docs.Remove(ctx, id)
}

// parseIndex resolves a positional identifier against a collection of length n.
func parseIndex(id string, n int) (int, error) {
	idx, err := strconv.Atoi(id)
	if err != nil || idx < 0 || idx >= n {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIndex, id)
	}
	return idx, nil
}

func positionalRecords(docs []domain.Document) []domain.Record {
	records := make([]domain.Record, len(docs))
	for i, doc := range docs {
		records[i] = domain.Record{ID: strconv.Itoa(i), Document: doc.Clone()}
	}
	return records
}
