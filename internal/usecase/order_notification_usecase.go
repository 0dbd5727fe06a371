package usecase

import (
	"context"

	"farmnaturals/internal/domain/service"
)

// OrderNotificationUsecase turns order events into customer emails.
type OrderNotificationUsecase interface {
	// HandleOrderEvent returns an error only when delivery should be retried.
	HandleOrderEvent(ctx context.Context, event *service.OrderEvent) error
}
