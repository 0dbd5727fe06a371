package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"farmnaturals/internal/delivery/api/response"
	"farmnaturals/internal/domain/entity"
	"farmnaturals/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves checkout and order tracking.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// CreateOrderRequest is a checkout submission. OrderData and every cart line are kept as the
// client sent them.
type CreateOrderRequest struct {
	Email         string            `json:"email" validate:"required"`
	OrderData     json.RawMessage   `json:"orderData"`
	Cart          []json.RawMessage `json:"cart"`
	PaymentMethod string            `json:"payment_method"`
}

// CreateOrderResponse acknowledges a placed order
type CreateOrderResponse struct {
	Message     string `json:"message"`
	OrderNumber string `json:"order_number"`
}

// UpdateStatusRequest moves an order to a new status
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderStatusResponse reports an order's status
type OrderStatusResponse struct {
	OrderNumber string `json:"order_number,omitempty"`
	Status      string `json:"status"`
}

// OrderSummaryResponse is the list view of an order
type OrderSummaryResponse struct {
	OrderNumber     string          `json:"order_number"`
	Email           string          `json:"email"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	DeliveryAddress string          `json:"delivery_address"`
	OrderDate       time.Time       `json:"order_date"`
	PaymentMethod   string          `json:"payment_method"`
	Status          string          `json:"status"`
}

func toOrderSummaryResponses(orders []*entity.OrderSummary) []OrderSummaryResponse {
	out := make([]OrderSummaryResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, OrderSummaryResponse{
			OrderNumber:     o.OrderNumber,
			Email:           o.Email,
			TotalAmount:     o.TotalAmount,
			DeliveryAddress: o.DeliveryAddress,
			OrderDate:       o.OrderDate,
			PaymentMethod:   o.PaymentMethod,
			Status:          o.Status.String(),
		})
	}

	return out
}

// CreateOrder handles checkout
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	lines := make([]entity.OrderLine, 0, len(req.Cart))
	for _, l := range req.Cart {
		lines = append(lines, entity.OrderLine(l))
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), &usecase.CreateOrderInput{
		Email:         req.Email,
		OrderData:     req.OrderData,
		Cart:          lines,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, CreateOrderResponse{
		Message:     "Order created successfully",
		OrderNumber: order.OrderNumber,
	})
}

// GetStatus handles order status lookups
func (h *OrderHandler) GetStatus(c echo.Context) error {
	status, err := h.orderUC.GetStatus(c.Request().Context(), c.Param("order_id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, OrderStatusResponse{Status: status.String()})
}

// ListForUser handles a customer's order history
func (h *OrderHandler) ListForUser(c echo.Context) error {
	orders, err := h.orderUC.ListForUser(c.Request().Context(), c.Param("email"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderSummaryResponses(orders))
}

// ListAll handles the admin order list
func (h *OrderHandler) ListAll(c echo.Context) error {
	orders, err := h.orderUC.ListAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderSummaryResponses(orders))
}

// UpdateStatus handles admin status changes
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.UpdateStatus(c.Request().Context(), c.Param("order_id"), req.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, OrderStatusResponse{
		OrderNumber: order.OrderNumber,
		Status:      order.Status.String(),
	})
}

// TrackingQR handles the order tracking QR code
func (h *OrderHandler) TrackingQR(c echo.Context) error {
	png, err := h.orderUC.TrackingQR(c.Request().Context(), c.Param("order_id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
