package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "farmnaturals/internal/delivery/context"
	"farmnaturals/internal/domain/entity"
	domainerrors "farmnaturals/internal/domain/errors"
	"farmnaturals/internal/domain/repository"
	"farmnaturals/internal/usecase"

	"github.com/pkg/errors"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo repository.CartRepository
	logger   *slog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(cartRepo repository.CartRepository, logger *slog.Logger) usecase.CartUsecase {
	return &cartService{
		cartRepo: cartRepo,
		logger:   logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddToCart merges the quantity into the user's line for the product.
// The product name is not checked against the catalog.
func (srv *cartService) AddToCart(ctx context.Context, input *usecase.AddToCartInput) (*usecase.AddToCartOutput, error) {
	email := strings.TrimSpace(input.Email)
	productName := strings.TrimSpace(input.ProductName)

	switch {
	case email == "":
		return nil, domainerrors.ErrValidationFailed.WithDetails("email is required")
	case productName == "":
		return nil, domainerrors.ErrValidationFailed.WithDetails("product_name is required")
	case input.Quantity < 0:
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must not be negative")
	}

	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}

	total, err := srv.cartRepo.AddQuantity(ctx, email, productName, quantity)
	if err != nil {
		if errors.Is(err, repository.ErrValueOutOfRange) {
			srv.log(ctx).Warn("Cart line rejected by store limits",
				slog.String("email", email),
				slog.Int("productNameBytes", len(productName)),
				slog.Any("error", err),
			)

			return nil, domainerrors.ErrValidationFailed.WithDetails("cart line exceeds storable limits")
		}

		srv.log(ctx).Error("Failed to add to cart",
			slog.String("email", email),
			slog.String("product", productName),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to add to cart")
	}

	srv.log(ctx).Debug("Cart line updated",
		slog.String("email", email),
		slog.String("product", productName),
		slog.Int("added", quantity),
		slog.Int("quantity", total),
	)

	return &usecase.AddToCartOutput{
		Email:       email,
		ProductName: productName,
		Quantity:    total,
	}, nil
}

func (srv *cartService) ListCart(ctx context.Context, email string) ([]*entity.CartLine, error) {
	lines, err := srv.cartRepo.ListByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart")
	}

	return lines, nil
}

func (srv *cartService) ClearCart(ctx context.Context, email string) (int64, error) {
	removed, err := srv.cartRepo.DeleteByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return 0, errors.Wrap(err, "failed to clear cart")
	}

	srv.log(ctx).Info("Cart cleared", slog.String("email", email), slog.Int64("lines", removed))

	return removed, nil
}
