package usecase

import (
	"context"
	"encoding/json"

	"farmnaturals/internal/domain/entity"
)

// CreateOrderInput is a checkout submission. OrderData is open-ended JSON; the keys
// address, city, state, zip, orderNumber and total are interpreted.
type CreateOrderInput struct {
	Email         string
	OrderData     json.RawMessage
	Cart          []entity.OrderLine
	PaymentMethod string
}

// OrderUsecase defines order placement and tracking.
type OrderUsecase interface {
	CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error)
	GetStatus(ctx context.Context, orderNumber string) (entity.OrderStatus, error)
	ListForUser(ctx context.Context, email string) ([]*entity.OrderSummary, error)
	ListAll(ctx context.Context) ([]*entity.OrderSummary, error)
	UpdateStatus(ctx context.Context, orderNumber, status string) (*entity.Order, error)
	TrackingQR(ctx context.Context, orderNumber string) ([]byte, error)
}
