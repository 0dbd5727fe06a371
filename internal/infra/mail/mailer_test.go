package mail

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"farmnaturals/config"
	"farmnaturals/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomail "github.com/wneessen/go-mail"
)

func TestNewMailer_UnconfiguredLogsOnly(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	mailer, err := NewMailer(&config.Config{}, logger)
	require.NoError(t, err)
	assert.IsType(t, &logMailer{}, mailer)

	assert.NoError(t, mailer.Send(context.Background(), &service.MailMessage{To: "a@farm.test", Subject: "hi"}))
}

func TestNewMailer_Configured(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Mail: &config.MailConfig{
		Host:     "smtp.farm.test",
		Port:     587,
		Username: "user",
		Password: "pass",
		From:     "orders@farm.test",
		TLS:      true,
	}}

	mailer, err := NewMailer(cfg, logger)
	require.NoError(t, err)
	assert.IsType(t, &smtpMailer{}, mailer)
}

func TestBuildMessage(t *testing.T) {
	gm, err := buildMessage("orders@farm.test", &service.MailMessage{
		To:      "a@farm.test",
		Subject: "Your order FN2026-ABCDEFGH",
		Body:    "Thanks!",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"<a@farm.test>"}, gm.GetToString())
	assert.Equal(t, []string{"Your order FN2026-ABCDEFGH"}, gm.GetGenHeader(gomail.HeaderSubject))
}

func TestBuildMessage_InvalidRecipient(t *testing.T) {
	_, err := buildMessage("orders@farm.test", &service.MailMessage{To: "not an address"})
	assert.Error(t, err)
}
