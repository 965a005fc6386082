package entities

import (
	"time"

	"github.com/pawtag/order-service/internal/status"
)

type EventType string

const (
	EventOrderCreated      EventType = "order.created"
	EventOrderExpired      EventType = "order.expired"
	EventPaymentVerified   EventType = "payment.verified"
	EventPaymentFailed     EventType = "payment.failed"
	EventPaymentSubmitted  EventType = "payment.submitted"
	EventOrderStatusChange EventType = "order.status_changed"
)

// OrderEvent is what the notification dispatcher consumes from the event topic.
type OrderEvent struct {
	Type       EventType
	OrderNo    string
	UserID     string
	Status     status.Status
	Total      int64
	Currency   string
	OccurredAt time.Time
}
