package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/brokerdesk/brokerage-service/internal/domain"
	"github.com/brokerdesk/brokerage-service/internal/events"
	"github.com/brokerdesk/brokerage-service/internal/repository"
	apperrors "github.com/brokerdesk/brokerage-service/pkg/util"
)

type failingCollection struct {
	repository.Collection
	err error
}

func (f failingCollection) List(context.Context) ([]domain.Record, error) { return nil, f.err }
func (f failingCollection) Insert(context.Context, domain.Document) (string, error) {
	return "", f.err
}

func newRecordService(t *testing.T, dispatcher events.Dispatcher) (*RecordService, *repository.Store) {
	t.Helper()
	store := repository.NewStore("memory", repository.NewMemoryCollection(), repository.NewMemoryCollection())
	svc := NewRecordService(RecordDependencies{
		PaymentRepo:  store.Payments,
		EmployeeRepo: store.Employees,
		Dispatcher:   dispatcher,
	}, zap.NewNop())
	return svc, store
}

func TestRecordService_PaymentLifecycle(t *testing.T) {
	ctx := context.Background()
	dispatcher := events.NewInMemoryDispatcher()
	var seen []events.Event
	for _, et := range []events.EventType{events.EventPaymentCreated, events.EventPaymentUpdated} {
		dispatcher.Subscribe(et, func(_ context.Context, e events.Event) error {
			seen = append(seen, e)
			return nil
		})
	}
	svc, _ := newRecordService(t, dispatcher)

	docs, err := svc.ListPayments(ctx)
	require.NoError(t, err)
	assert.Empty(t, docs)

	require.NoError(t, svc.CreatePayment(ctx, "admin", domain.Document{"unitNo": "A-1"}))
	require.NoError(t, svc.UpdatePayment(ctx, "admin", "0", domain.Document{"unitNo": "A-2"}))

	docs, err = svc.ListPayments(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, domain.Document{"unitNo": "A-2"}, docs[0])

	require.Len(t, seen, 2)
	assert.Equal(t, events.EventPaymentCreated, seen[0].Type)
	assert.Equal(t, "0", seen[0].RecordID)
	assert.Equal(t, "admin", seen[0].Actor)
	assert.Equal(t, repository.PaymentsCollection, seen[1].Collection)
	assert.NotEmpty(t, seen[1].ID)
}

func TestRecordService_InvalidIndex(t *testing.T) {
	ctx := context.Background()
	svc, _ := newRecordService(t, nil)
	require.NoError(t, svc.CreatePayment(ctx, "admin", domain.Document{}))
	require.NoError(t, svc.CreatePayment(ctx, "admin", domain.Document{}))

	err := svc.UpdatePayment(ctx, "admin", "999", domain.Document{"x": 1})
	de := apperrors.ToDomainError(err)
	assert.Equal(t, http.StatusBadRequest, de.HTTPStatus)
	assert.Equal(t, "Invalid index", de.Message)

	docs, err := svc.ListPayments(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 2)

	err = svc.DeleteEmployee(ctx, "admin", "0")
	assert.Equal(t, http.StatusBadRequest, apperrors.ToDomainError(err).HTTPStatus)
}

func TestRecordService_EmployeeDeleteLeavesPaymentsAlone(t *testing.T) {
	ctx := context.Background()
	svc, _ := newRecordService(t, nil)

	require.NoError(t, svc.CreateEmployee(ctx, "admin", domain.Document{"name": "Asha", "code": "E01"}))
	require.NoError(t, svc.CreatePayment(ctx, "admin", domain.Document{"employee": "E01"}))
	require.NoError(t, svc.UpdateEmployee(ctx, "admin", "0", domain.Document{"name": "Asha R", "code": "E01"}))
	require.NoError(t, svc.DeleteEmployee(ctx, "admin", "0"))

	employees, err := svc.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Empty(t, employees)

	payments, err := svc.ListPayments(ctx)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, "E01", payments[0].String("employee"))
}

func TestRecordService_PersistenceFailureIsGeneric(t *testing.T) {
	ctx := context.Background()
	cause := errors.New("connection reset by peer")
	broken := failingCollection{Collection: repository.NewMemoryCollection(), err: cause}
	svc := NewRecordService(RecordDependencies{
		PaymentRepo:  repository.NewPaymentRepository(broken),
		EmployeeRepo: repository.NewEmployeeRepository(broken),
	}, zap.NewNop())

	_, err := svc.ListPayments(ctx)
	de := apperrors.ToDomainError(err)
	assert.Equal(t, http.StatusInternalServerError, de.HTTPStatus)
	assert.Equal(t, "Internal server error", de.Message)
	assert.ErrorIs(t, err, cause)

	err = svc.CreateEmployee(ctx, "admin", domain.Document{})
	assert.Equal(t, http.StatusInternalServerError, apperrors.ToDomainError(err).HTTPStatus)
}
