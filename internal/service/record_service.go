package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/brokerdesk/brokerage-service/internal/domain"
	"github.com/brokerdesk/brokerage-service/internal/events"
	"github.com/brokerdesk/brokerage-service/internal/repository"
	apperrors "github.com/brokerdesk/brokerage-service/pkg/util"
)

// RecordService wraps the record store for the API surface and translates store failures.
type RecordService struct {
	payments   repository.PaymentRepository
	employees  repository.EmployeeRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	now        func() time.Time
}

// RecordDependencies encapsulates repo requirements for the record service.
type RecordDependencies struct {
	PaymentRepo  repository.PaymentRepository
	EmployeeRepo repository.EmployeeRepository
	Dispatcher   events.Dispatcher
}

// NewRecordService builds the service.
func NewRecordService(deps RecordDependencies, logger *zap.Logger) *RecordService {
	return &RecordService{
		payments:   deps.PaymentRepo,
		employees:  deps.EmployeeRepo,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		now:        time.Now,
	}
}

// ListPayments returns every payment document in store order.
func (s *RecordService) ListPayments(ctx context.Context) ([]domain.Document, error) {
	records, err := s.payments.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return documents(records), nil
}

// CreatePayment stores the payload as-is.
func (s *RecordService) CreatePayment(ctx context.Context, actor string, doc domain.Document) error {
	id, err := s.payments.Create(ctx, doc)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	s.publish(ctx, events.EventPaymentCreated, repository.PaymentsCollection, id, actor)
	return nil
}

// UpdatePayment replaces the payment identified by id.
func (s *RecordService) UpdatePayment(ctx context.Context, actor, id string, doc domain.Document) error {
	if err := s.payments.Update(ctx, id, doc); err != nil {
		return mapStoreError(err)
	}
	s.publish(ctx, events.EventPaymentUpdated, repository.PaymentsCollection, id, actor)
	return nil
}

// ListEmployees returns every employee document in store order.
func (s *RecordService) ListEmployees(ctx context.Context) ([]domain.Document, error) {
	records, err := s.employees.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return documents(records), nil
}

// CreateEmployee stores the payload as-is. Codes are not checked for uniqueness.
func (s *RecordService) CreateEmployee(ctx context.Context, actor string, doc domain.Document) error {
	id, err := s.employees.Create(ctx, doc)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	s.publish(ctx, events.EventEmployeeCreated, repository.EmployeesCollection, id, actor)
	return nil
}

// UpdateEmployee replaces the employee identified by id.
func (s *RecordService) UpdateEmployee(ctx context.Context, actor, id string, doc domain.Document) error {
	if err := s.employees.Update(ctx, id, doc); err != nil {
		return mapStoreError(err)
	}
	s.publish(ctx, events.EventEmployeeUpdated, repository.EmployeesCollection, id, actor)
	return nil
}

// DeleteEmployee removes the employee. Payments referencing its code are left untouched.
func (s *RecordService) DeleteEmployee(ctx context.Context, actor, id string) error {
	if err := s.employees.Delete(ctx, id); err != nil {
		return mapStoreError(err)
	}
	s.publish(ctx, events.EventEmployeeDeleted, repository.EmployeesCollection, id, actor)
	return nil
}

func (s *RecordService) publish(ctx context.Context, eventType events.EventType, collection, id, actor string) {
	if s.dispatcher == nil {
		return
	}
	event := events.Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		Collection: collection,
		RecordID:   id,
		Actor:      actor,
		Timestamp:  s.now(),
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handler failed", zap.String("event_type", string(eventType)), zap.Error(err))
	}
}

func mapStoreError(err error) error {
	if errors.Is(err, repository.ErrInvalidIndex) {
		return apperrors.NewInvalidIndex(err)
	}
	return apperrors.NewInternalError(err)
}

func documents(records []domain.Record) []domain.Document {
	docs := make([]domain.Document, len(records))
	for i, r := range records {
		docs[i] = r.Document
	}
	return docs
}
