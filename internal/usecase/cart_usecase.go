package usecase

import (
	"context"

	"farmnaturals/internal/domain/entity"
)

// AddToCartInput adds Quantity units of a product to a user's cart. Zero means one.
type AddToCartInput struct {
	Email       string
	ProductName string
	Quantity    int
}

// AddToCartOutput reports the line's quantity after the add.
type AddToCartOutput struct {
	Email       string
	ProductName string
	Quantity    int
}

// CartUsecase defines cart operations.
type CartUsecase interface {
	AddToCart(ctx context.Context, input *AddToCartInput) (*AddToCartOutput, error)
	ListCart(ctx context.Context, email string) ([]*entity.CartLine, error)
	ClearCart(ctx context.Context, email string) (int64, error)
}
