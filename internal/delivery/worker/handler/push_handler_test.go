package handler

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

	"farmnaturals/config"
	deliverycontext "farmnaturals/internal/delivery/context"
	"farmnaturals/internal/domain/constants"
	"farmnaturals/internal/domain/service"
	mockUsecase "farmnaturals/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, cfg *config.Config, uc *mockUsecase.MockOrderNotificationUsecase) *PushHandler {
	t.Helper()

	return NewPushHandler(PushHandlerParams{
		Config:         cfg,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotificationUC: uc,
	})
}

func developConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Env.Env = constants.EnvDevelop

	return cfg
}

func pushBody(t *testing.T, event *service.OrderEvent, attrs map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attrs
	msg.Message.MessageID = "m-1"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func doPush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_DeliversEvent(t *testing.T) {
	uc := mockUsecase.NewMockOrderNotificationUsecase(t)
	uc.EXPECT().
		HandleOrderEvent(mock.Anything, mock.MatchedBy(func(e *service.OrderEvent) bool {
			return e.Type == constants.EventOrderCreated && e.OrderNumber == "FN2026-ABCDEFGH"
		})).
		RunAndReturn(func(ctx context.Context, _ *service.OrderEvent) error {
			assert.Equal(t, "trace-1", deliverycontext.GetRequestIDFromContext(ctx))

			return nil
		})

	h := newTestPushHandler(t, developConfig(), uc)
	body := pushBody(t, &service.OrderEvent{Type: constants.EventOrderCreated, OrderNumber: "FN2026-ABCDEFGH"},
		map[string]string{"request_id": "trace-1"})

	rec := doPush(h, body, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_AcksUndecodableMessages(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `{"message":`},
		{"bad base64", `{"message":{"data":"!!!"}}`},
		{"not an event", `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("[1,2]")) + `"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestPushHandler(t, developConfig(), mockUsecase.NewMockOrderNotificationUsecase(t))

			assert.Equal(t, http.StatusOK, doPush(h, tt.body, nil).Code)
		})
	}
}

func TestPushHandler_RetriesOnFailure(t *testing.T) {
	uc := mockUsecase.NewMockOrderNotificationUsecase(t)
	uc.EXPECT().HandleOrderEvent(mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	h := newTestPushHandler(t, developConfig(), uc)
	rec := doPush(h, pushBody(t, &service.OrderEvent{Type: constants.EventOrderCreated}, nil), nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_VerifiesTokenInGoogleMode(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{
		Provider:     constants.PubSubProviderGoogle,
		PushAudience: "https://notifier.example.com/push",
	}}
	cfg.Env.Env = "production"

	t.Run("missing token", func(t *testing.T) {
		h := newTestPushHandler(t, cfg, mockUsecase.NewMockOrderNotificationUsecase(t))

		rec := doPush(h, pushBody(t, &service.OrderEvent{}, nil), nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		uc := mockUsecase.NewMockOrderNotificationUsecase(t)
		uc.EXPECT().HandleOrderEvent(mock.Anything, mock.Anything).Return(nil)

		h := newTestPushHandler(t, cfg, uc)
		h.validate = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			assert.Equal(t, "signed", token)
			assert.Equal(t, "https://notifier.example.com/push", audience)

			return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
		}

		rec := doPush(h, pushBody(t, &service.OrderEvent{}, nil), http.Header{"Authorization": {"Bearer signed"}})

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		h := newTestPushHandler(t, cfg, mockUsecase.NewMockOrderNotificationUsecase(t))
		h.validate = func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
		}

		rec := doPush(h, pushBody(t, &service.OrderEvent{}, nil), http.Header{"Authorization": {"Bearer signed"}})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
