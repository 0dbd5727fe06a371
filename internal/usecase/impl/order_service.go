package impl

import (
	"bytes"
	"context"
	"encoding/base32"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "farmnaturals/internal/delivery/context"
	"farmnaturals/internal/domain/constants"
	"farmnaturals/internal/domain/entity"
	domainerrors "farmnaturals/internal/domain/errors"
	"farmnaturals/internal/domain/repository"
	"farmnaturals/internal/domain/service"
	"farmnaturals/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	orderNumberPrefix   = "FN"
	orderNumberSuffix   = 8
	orderNumberAttempts = 3
	orderEventTimeout   = 5 * time.Second
)

// Payload keys read from a checkout submission.
const (
	payloadKeyAddress     = "address"
	payloadKeyCity        = "city"
	payloadKeyState       = "state"
	payloadKeyZip         = "zip"
	payloadKeyOrderNumber = "orderNumber"
	payloadKeyTotal       = "total"
	payloadKeyCart        = "cart"
)

var orderNumberEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager      repository.TransactionManager
	orderRepo      repository.OrderRepository
	eventPublisher service.EventPublisher
	qrService      service.QRCodeService
	now            func() time.Time
	newOrderNumber func(time.Time) string
	logger         *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	OrderRepo      repository.OrderRepository
	EventPublisher service.EventPublisher
	QRService      service.QRCodeService
	Logger         *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:      params.TxManager,
		orderRepo:      params.OrderRepo,
		eventPublisher: params.EventPublisher,
		qrService:      params.QRService,
		now:            time.Now,
		newOrderNumber: generateOrderNumber,
		logger:         params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// generateOrderNumber returns FN<year>-<8 base32 chars of a random UUID>.
func generateOrderNumber(now time.Time) string {
	id := uuid.New()

	return fmt.Sprintf("%s%d-%s", orderNumberPrefix, now.Year(), orderNumberEncoding.EncodeToString(id[:])[:orderNumberSuffix])
}

// CreateOrder records a checkout as a frozen order. The cart rows themselves are left untouched.
func (srv *orderService) CreateOrder(ctx context.Context, input *usecase.CreateOrderInput) (*entity.Order, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email is required")
	}

	payload, err := decodeOrderPayload(input.OrderData)
	if err != nil {
		return nil, err
	}

	lines := input.Cart
	if lines == nil {
		lines = []entity.OrderLine{}
	}
	for _, line := range lines {
		if !json.Valid(line) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("cart lines must be valid JSON")
		}
	}

	total, err := orderTotal(payload, lines)
	if err != nil {
		return nil, err
	}

	delivery := entity.DeliveryDetails{
		Address: payloadString(payload, payloadKeyAddress),
		City:    payloadString(payload, payloadKeyCity),
		State:   payloadString(payload, payloadKeyState),
		Zip:     payloadString(payload, payloadKeyZip),
	}

	payload[payloadKeyCart] = lines
	orderData, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "failed to encode order data")
	}

	now := srv.now().UTC()
	order := &entity.Order{
		Email:           email,
		TotalAmount:     total,
		DeliveryAddress: delivery.Flatten(),
		OrderData:       orderData,
		OrderDate:       now,
		PaymentMethod:   strings.TrimSpace(input.PaymentMethod),
		Status:          entity.OrderStatusProcessing,
	}

	requested := payloadString(payload, payloadKeyOrderNumber)
	if err := srv.insertOrder(ctx, order, requested, now); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order created",
		slog.String("orderNumber", order.OrderNumber),
		slog.String("email", email),
		slog.String("total", order.TotalAmount.StringFixed(2)),
	)

	srv.publish(ctx, &service.OrderEvent{
		Type:        constants.EventOrderCreated,
		OrderNumber: order.OrderNumber,
		Email:       order.Email,
		Status:      order.Status.String(),
		TotalAmount: order.TotalAmount,
		OccurredAt:  now,
	})

	return order, nil
}

// insertOrder stores the order under the requested number, or under a generated one.
// Generated numbers that collide are replaced, up to orderNumberAttempts times.
func (srv *orderService) insertOrder(ctx context.Context, order *entity.Order, requested string, now time.Time) error {
	attempts := orderNumberAttempts
	if requested != "" {
		attempts = 1
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		order.OrderNumber = requested
		if requested == "" {
			order.OrderNumber = srv.newOrderNumber(now)
		}

		err := srv.orderRepo.Create(ctx, order)
		if err == nil {
			return nil
		}

		if errors.Is(err, repository.ErrValueOutOfRange) {
			srv.log(ctx).Warn("Order rejected by store limits",
				slog.String("email", order.Email),
				slog.Any("error", err),
			)

			return domainerrors.ErrValidationFailed.WithDetails("order exceeds storable limits")
		}

		if !errors.Is(err, repository.ErrDuplicateOrderNumber) {
			srv.log(ctx).Error("Failed to store order",
				slog.String("orderNumber", order.OrderNumber),
				slog.String("email", order.Email),
				slog.Any("error", err),
			)

			return errors.Wrap(domainerrors.ErrOrderCreationFailed, err.Error())
		}

		if requested != "" {
			return domainerrors.ErrOrderNumberTaken.WithDetails(requested)
		}

		srv.log(ctx).Warn("Generated order number collided",
			slog.String("orderNumber", order.OrderNumber),
			slog.Int("attempt", attempt),
		)
	}

	srv.log(ctx).Error("Exhausted order number attempts", slog.Int("attempts", attempts))

	return errors.Wrap(domainerrors.ErrOrderCreationFailed, "could not allocate a unique order number")
}

func (srv *orderService) GetStatus(ctx context.Context, orderNumber string) (entity.OrderStatus, error) {
	order, err := srv.findOrder(ctx, orderNumber)
	if err != nil {
		return "", err
	}

	return order.Status, nil
}

func (srv *orderService) ListForUser(ctx context.Context, email string) ([]*entity.OrderSummary, error) {
	orders, err := srv.orderRepo.ListByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user orders")
	}

	return orders, nil
}

func (srv *orderService) ListAll(ctx context.Context) ([]*entity.OrderSummary, error) {
	orders, err := srv.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// UpdateStatus moves an order along the status machine. The row stays locked from read to write
// so two concurrent admins cannot both apply a transition from the same state.
func (srv *orderService) UpdateStatus(ctx context.Context, orderNumber, status string) (*entity.Order, error) {
	next, ok := entity.ParseOrderStatus(status)
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown order status %q", status))
	}

	var (
		order    *entity.Order
		previous entity.OrderStatus
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		current, err := orderRepo.FindByNumberForUpdate(ctx, orderNumber)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to lock order")
		}

		if !current.Status.CanTransitionTo(next) {
			return domainerrors.ErrInvalidStatusTransition.WithDetails(
				fmt.Sprintf("%s -> %s", current.Status, next),
			)
		}

		if err := orderRepo.UpdateStatus(ctx, orderNumber, next); err != nil {
			return errors.Wrap(err, "failed to update order status")
		}

		previous = current.Status
		current.Status = next
		order = current

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Order status update rejected",
			slog.String("orderNumber", orderNumber),
			slog.String("status", status),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.log(ctx).Info("Order status updated",
		slog.String("orderNumber", orderNumber),
		slog.String("from", previous.String()),
		slog.String("to", next.String()),
	)

	srv.publish(ctx, &service.OrderEvent{
		Type:           constants.EventOrderStatusChanged,
		OrderNumber:    order.OrderNumber,
		Email:          order.Email,
		Status:         next.String(),
		PreviousStatus: previous.String(),
		TotalAmount:    order.TotalAmount,
		OccurredAt:     srv.now().UTC(),
	})

	return order, nil
}

// TrackingQR renders the tracking QR code of an existing order.
func (srv *orderService) TrackingQR(ctx context.Context, orderNumber string) ([]byte, error) {
	order, err := srv.findOrder(ctx, orderNumber)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateOrderQR(order.OrderNumber)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate order QR code")
	}

	return png, nil
}

func (srv *orderService) findOrder(ctx context.Context, orderNumber string) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByNumber(ctx, strings.TrimSpace(orderNumber))
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// publish sends the event without failing the caller. The order is already committed.
func (srv *orderService) publish(ctx context.Context, event *service.OrderEvent) {
	if srv.eventPublisher == nil {
		return
	}

	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), orderEventTimeout)
	defer cancel()

	if err := srv.eventPublisher.PublishOrderEvent(pubCtx, event); err != nil {
		srv.log(ctx).Error("Failed to publish order event",
			slog.String("type", event.Type),
			slog.String("orderNumber", event.OrderNumber),
			slog.Any("error", err),
		)
	}
}

// decodeOrderPayload parses the open-ended checkout JSON. Numbers are kept verbatim.
func decodeOrderPayload(raw json.RawMessage) (map[string]any, error) {
	payload := map[string]any{}
	if len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return payload, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("orderData must be a JSON object")
	}

	return payload, nil
}

// orderTotal prefers the caller's total and falls back to the sum of the cart lines. Lines are
// only priced when no total was given.
func orderTotal(payload map[string]any, lines []entity.OrderLine) (decimal.Decimal, error) {
	var raw string
	switch v := payload[payloadKeyTotal].(type) {
	case nil:
		total := decimal.Zero
		for _, line := range lines {
			pricing, err := line.Pricing()
			if err != nil {
				return decimal.Zero, domainerrors.ErrValidationFailed.WithDetails(err.Error())
			}
			total = total.Add(pricing.Subtotal())
		}

		return total, nil
	case json.Number:
		raw = v.String()
	case string:
		raw = strings.TrimSpace(v)
	default:
		return decimal.Zero, domainerrors.ErrValidationFailed.WithDetails("total must be a number")
	}

	total, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, domainerrors.ErrValidationFailed.WithDetails("total must be a number")
	}
	if total.IsNegative() {
		return decimal.Zero, domainerrors.ErrValidationFailed.WithDetails("total must not be negative")
	}

	return total, nil
}

func payloadString(payload map[string]any, key string) string {
	switch v := payload[key].(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}
