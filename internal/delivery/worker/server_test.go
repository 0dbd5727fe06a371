package worker

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"farmnaturals/config"
	"farmnaturals/internal/delivery/worker/handler"
	"farmnaturals/internal/domain/constants"
	"farmnaturals/internal/domain/service"
	mockUsecase "farmnaturals/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func notifierConfig() *config.Config {
	cfg := &config.Config{
		Notifier: &config.NotifierConfig{
			Port:           8081,
			PushPath:       "/pubsub/order-events",
			MaxBodySize:    "1KB",
			HandlerTimeout: time.Second,
		},
	}
	cfg.Env.Env = constants.EnvDevelop

	return cfg
}

func newTestNotifier(t *testing.T, cfg *config.Config, uc *mockUsecase.MockOrderNotificationUsecase) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	push := handler.NewPushHandler(handler.PushHandlerParams{Config: cfg, Logger: logger, NotificationUC: uc})

	return newNotifierEcho(cfg, logger, push)
}

func orderCreatedPush(t *testing.T) string {
	t.Helper()

	data, err := json.Marshal(&service.OrderEvent{Type: constants.EventOrderCreated, OrderNumber: "FN2026-ABCDEFGH"})
	require.NoError(t, err)

	return `{"message":{"data":"` + base64.StdEncoding.EncodeToString(data) + `","messageId":"m-1"}}`
}

func post(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestNotifier_Health(t *testing.T) {
	t.Run("mail logged without a relay", func(t *testing.T) {
		e := newTestNotifier(t, notifierConfig(), mockUsecase.NewMockOrderNotificationUsecase(t))

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok","service":"notifier","mail":"log","push_path":"/pubsub/order-events"}`, rec.Body.String())
	})

	t.Run("smtp relay configured", func(t *testing.T) {
		cfg := notifierConfig()
		cfg.Mail = &config.MailConfig{Host: "smtp.example.com", From: "shop@example.com"}
		e := newTestNotifier(t, cfg, mockUsecase.NewMockOrderNotificationUsecase(t))

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		var health HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
		assert.Equal(t, "smtp", health.Mail)
	})
}

func TestNotifier_PushRoute(t *testing.T) {
	uc := mockUsecase.NewMockOrderNotificationUsecase(t)
	uc.EXPECT().
		HandleOrderEvent(mock.Anything, mock.MatchedBy(func(e *service.OrderEvent) bool {
			return e.OrderNumber == "FN2026-ABCDEFGH"
		})).
		RunAndReturn(func(ctx context.Context, _ *service.OrderEvent) error {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)

			return nil
		}).
		Once()
	e := newTestNotifier(t, notifierConfig(), uc)

	assert.Equal(t, http.StatusOK, post(e, "/pubsub/order-events", orderCreatedPush(t)).Code)
	assert.Equal(t, http.StatusNotFound, post(e, "/push", orderCreatedPush(t)).Code)
}

func TestNotifier_RejectsOversizedPush(t *testing.T) {
	e := newTestNotifier(t, notifierConfig(), mockUsecase.NewMockOrderNotificationUsecase(t))

	body := `{"message":{"data":"` + strings.Repeat("A", 4096) + `"}}`

	assert.Equal(t, http.StatusRequestEntityTooLarge, post(e, "/pubsub/order-events", body).Code)
}
