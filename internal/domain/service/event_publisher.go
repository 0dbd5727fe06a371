package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// OrderEvent is published whenever an order is created or changes status.
type OrderEvent struct {
	RequestID      string          `json:"request_id,omitempty"` // For distributed tracing
	Type           string          `json:"type"`
	OrderNumber    string          `json:"order_number"`
	Email          string          `json:"email"`
	Status         string          `json:"status"`
	PreviousStatus string          `json:"previous_status,omitempty"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	OccurredAt     time.Time       `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order lifecycle event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
