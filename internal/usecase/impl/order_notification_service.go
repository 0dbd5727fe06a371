package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "farmnaturals/internal/delivery/context"
	"farmnaturals/internal/domain/constants"
	"farmnaturals/internal/domain/service"
	"farmnaturals/internal/usecase"

	"github.com/pkg/errors"
)

// orderNotificationService implements the OrderNotificationUsecase interface.
type orderNotificationService struct {
	mailer service.Mailer
	logger *slog.Logger
}

// NewOrderNotificationService creates a new order notification service.
func NewOrderNotificationService(mailer service.Mailer, logger *slog.Logger) usecase.OrderNotificationUsecase {
	return &orderNotificationService{
		mailer: mailer,
		logger: logger,
	}
}

func (srv *orderNotificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HandleOrderEvent emails the customer about the event. Events that cannot produce a
// message are dropped; only a failed send asks for redelivery.
func (srv *orderNotificationService) HandleOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	if event == nil || strings.TrimSpace(event.Email) == "" {
		srv.log(ctx).Warn("Dropping order event without recipient")

		return nil
	}

	msg, ok := buildOrderMail(event)
	if !ok {
		srv.log(ctx).Warn("Dropping order event of unknown type",
			slog.String("type", event.Type),
			slog.String("orderNumber", event.OrderNumber),
		)

		return nil
	}

	if err := srv.mailer.Send(ctx, msg); err != nil {
		srv.log(ctx).Error("Failed to send order notification",
			slog.String("type", event.Type),
			slog.String("orderNumber", event.OrderNumber),
			slog.Any("error", err),
		)

		return errors.Wrap(err, "failed to send order notification")
	}

	srv.log(ctx).Info("Order notification sent",
		slog.String("type", event.Type),
		slog.String("orderNumber", event.OrderNumber),
	)

	return nil
}

func buildOrderMail(event *service.OrderEvent) (*service.MailMessage, bool) {
	var subject, body string

	switch event.Type {
	case constants.EventOrderCreated:
		subject = fmt.Sprintf("Order %s received", event.OrderNumber)
		body = fmt.Sprintf(
			"Thank you for shopping with FarmNaturals.\n\nYour order %s has been received and is now %s.\nOrder total: %s\n",
			event.OrderNumber, event.Status, event.TotalAmount.StringFixed(2),
		)
	case constants.EventOrderStatusChanged:
		subject = fmt.Sprintf("Order %s is now %s", event.OrderNumber, event.Status)
		body = fmt.Sprintf(
			"Your order %s moved from %s to %s.\n",
			event.OrderNumber, event.PreviousStatus, event.Status,
		)
	default:
		return nil, false
	}

	return &service.MailMessage{
		To:      strings.TrimSpace(event.Email),
		Subject: subject,
		Body:    body,
	}, true
}
