package handler

import (
	"net/http"
	"time"

	"farmnaturals/internal/delivery/api/response"
	"farmnaturals/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler serves the shopping cart.
type CartHandler struct {
	cartUC usecase.CartUsecase
}

// NewCartHandler is the constructor for CartHandler.
func NewCartHandler(cartUC usecase.CartUsecase) *CartHandler {
	return &CartHandler{cartUC: cartUC}
}

// AddToCartRequest adds quantity units of a product. A missing or zero quantity adds one.
type AddToCartRequest struct {
	Email       string `json:"email" validate:"required"`
	ProductName string `json:"product_name" validate:"required"`
	Quantity    int    `json:"quantity" validate:"gte=0"`
}

// AddToCartResponse reports the resulting quantity of the line
type AddToCartResponse struct {
	Message     string `json:"message"`
	Email       string `json:"email"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

// CartLineResponse is the API view of a cart line
type CartLineResponse struct {
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AddToCart handles adding to a cart
func (h *CartHandler) AddToCart(c echo.Context) error {
	var req AddToCartRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.cartUC.AddToCart(c.Request().Context(), &usecase.AddToCartInput{
		Email:       req.Email,
		ProductName: req.ProductName,
		Quantity:    req.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, AddToCartResponse{
		Message:     "Product added to cart",
		Email:       out.Email,
		ProductName: out.ProductName,
		Quantity:    out.Quantity,
	})
}

// GetCart handles listing a user's cart
func (h *CartHandler) GetCart(c echo.Context) error {
	lines, err := h.cartUC.ListCart(c.Request().Context(), c.Param("email"))
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]CartLineResponse, 0, len(lines))
	for _, line := range lines {
		out = append(out, CartLineResponse{
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			UpdatedAt:   line.UpdatedAt,
		})
	}

	return response.Success(c, http.StatusOK, out)
}

// ClearCart handles emptying a user's cart
func (h *CartHandler) ClearCart(c echo.Context) error {
	if _, err := h.cartUC.ClearCart(c.Request().Context(), c.Param("email")); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Cart cleared")
}
