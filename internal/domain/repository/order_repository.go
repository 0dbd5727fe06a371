package repository

import (
	"context"

	"farmnaturals/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for order persistence.
var (
	ErrOrderNotFound = errors.New("order not found")
	// ErrDuplicateOrderNumber is returned when the unique order_number constraint rejects an insert.
	ErrDuplicateOrderNumber = errors.New("order number already exists")
)

// OrderRepository persists orders.
type OrderRepository interface {
	// Create inserts the order and fills its generated ID.
	Create(ctx context.Context, order *entity.Order) error

	// FindByNumber retrieves an order by its order number.
	FindByNumber(ctx context.Context, orderNumber string) (*entity.Order, error)

	// FindByNumberForUpdate is FindByNumber with a row lock held until the transaction ends.
	// Only meaningful on a transaction-bound repository.
	FindByNumberForUpdate(ctx context.Context, orderNumber string) (*entity.Order, error)

	// ListByEmail returns the user's orders, newest first.
	ListByEmail(ctx context.Context, email string) ([]*entity.OrderSummary, error)

	// ListAll returns every order, newest first.
	ListAll(ctx context.Context) ([]*entity.OrderSummary, error)

	// UpdateStatus overwrites the status column of one order.
	UpdateStatus(ctx context.Context, orderNumber string, status entity.OrderStatus) error
}
