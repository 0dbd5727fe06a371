package repository

import (
	"context"

	"farmnaturals/internal/domain/entity"
)

// CartRepository persists cart lines keyed by (email, product name).
type CartRepository interface {
	// AddQuantity inserts the line or adds quantity to the existing one in a single
	// atomic statement, and returns the resulting quantity.
	AddQuantity(ctx context.Context, email, productName string, quantity int) (int, error)

	// ListByEmail returns the user's lines ordered by product name.
	ListByEmail(ctx context.Context, email string) ([]*entity.CartLine, error)

	// DeleteByEmail removes every line of the user and reports how many were removed.
	DeleteByEmail(ctx context.Context, email string) (int64, error)
}
