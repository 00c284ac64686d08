package events

import (
	"time"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventPaymentCreated  EventType = "payment_created"
	EventPaymentUpdated  EventType = "payment_updated"
	EventEmployeeCreated EventType = "employee_created"
	EventEmployeeUpdated EventType = "employee_updated"
	EventEmployeeDeleted EventType = "employee_deleted"
)

// Event records a mutation of the record store.
type Event struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	Collection string    `json:"collection"`
	RecordID   string    `json:"record_id"`
	Actor      string    `json:"actor"`
	Timestamp  time.Time `json:"timestamp"`
}
