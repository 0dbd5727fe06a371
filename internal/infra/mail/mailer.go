// Package mail sends transactional email over SMTP.
package mail

import (
	"context"
	"log/slog"

	"farmnaturals/config"
	"farmnaturals/internal/domain/service"

	"github.com/pkg/errors"
	gomail "github.com/wneessen/go-mail"
)

type smtpMailer struct {
	client *gomail.Client
	from   string
}

// logMailer stands in when no SMTP relay is configured; messages are only logged.
type logMailer struct {
	logger *slog.Logger
}

// NewMailer returns an SMTP mailer, or a logging mailer when mail is unconfigured.
func NewMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	if !cfg.Mail.Enabled() {
		logger.Info("Mail not configured, notifications will only be logged")

		return &logMailer{logger: logger}, nil
	}

	mc := cfg.Mail
	opts := []gomail.Option{
		gomail.WithPort(mc.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if mc.TLS {
		opts[1] = gomail.WithTLSPolicy(gomail.TLSMandatory)
	}
	if mc.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(mc.Username),
			gomail.WithPassword(mc.Password),
		)
	}

	client, err := gomail.NewClient(mc.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create SMTP client")
	}

	return &smtpMailer{client: client, from: mc.From}, nil
}

func (m *smtpMailer) Send(ctx context.Context, msg *service.MailMessage) error {
	gm, err := buildMessage(m.from, msg)
	if err != nil {
		return err
	}

	if err := m.client.DialAndSendWithContext(ctx, gm); err != nil {
		return errors.Wrap(err, "failed to send mail")
	}

	return nil
}

func (m *logMailer) Send(ctx context.Context, msg *service.MailMessage) error {
	m.logger.InfoContext(ctx, "Mail delivery skipped",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
	)

	return nil
}

func buildMessage(from string, msg *service.MailMessage) (*gomail.Msg, error) {
	gm := gomail.NewMsg()
	if err := gm.From(from); err != nil {
		return nil, errors.Wrap(err, "invalid sender address")
	}
	if err := gm.To(msg.To); err != nil {
		return nil, errors.Wrap(err, "invalid recipient address")
	}
	gm.Subject(msg.Subject)
	gm.SetBodyString(gomail.TypeTextPlain, msg.Body)

	return gm, nil
}
