package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/brokerdesk/brokerage-service/internal/events"
)

// AuditService logs every record mutation published on the dispatcher.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger) *AuditService {
	return &AuditService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (a *AuditService) RegisterHandlers() {
	if a == nil || a.dispatcher == nil {
		return
	}
	for _, t := range []events.EventType{
		events.EventPaymentCreated,
		events.EventPaymentUpdated,
		events.EventEmployeeCreated,
		events.EventEmployeeUpdated,
		events.EventEmployeeDeleted,
	} {
		a.dispatcher.Subscribe(t, a.handle)
	}
}

func (a *AuditService) handle(_ context.Context, event events.Event) error {
	a.logger.Info("record mutated",
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)),
		zap.String("collection", event.Collection),
		zap.String("record_id", event.RecordID),
		zap.String("actor", event.Actor),
		zap.Time("at", event.Timestamp),
	)
	return nil
}
