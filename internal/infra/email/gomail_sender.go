// Package email implements the SMTP delivery channel behind the EmailSender interface.
package email

import (
	"context"
	"log/slog"

	"pulse/config"
	"pulse/internal/domain/service"

	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"
)

type gomailSender struct {
	dialer      *gomail.Dialer
	fromName    string
	fromAddress string
}

// NewEmailSender creates the SMTP sender. Without email configuration the
// channel stays disabled and the engine runs push-only.
func NewEmailSender(cfg *config.Config, logger *slog.Logger) (service.EmailSender, error) {
	emailCfg := cfg.Email
	if emailCfg == nil || emailCfg.Host == "" {
		logger.Info("Email channel not configured, running push-only")

		return nil, nil
	}
	if emailCfg.FromAddress == "" {
		return nil, errors.New("email fromAddress is required when the email channel is configured")
	}

	return &gomailSender{
		dialer:      gomail.NewDialer(emailCfg.Host, emailCfg.Port, emailCfg.Username, emailCfg.Password),
		fromName:    emailCfg.FromName,
		fromAddress: emailCfg.FromAddress,
	}, nil
}

// Send delivers one message over SMTP. gomail has no context support, so the
// dial-and-send runs in a goroutine and the call returns on cancellation; a
// late send result is discarded.
func (s *gomailSender) Send(ctx context.Context, to, subject, htmlBody, textBody string) error {
	message := gomail.NewMessage()
	message.SetHeader("From", message.FormatAddress(s.fromAddress, s.fromName))
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)
	message.SetBody("text/plain", textBody)
	message.AddAlternative("text/html", htmlBody)

	done := make(chan error, 1)
	go func() {
		done <- s.dialer.DialAndSend(message)
	}()

	select {
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "smtp send canceled")
	case err := <-done:
		if err != nil {
			return errors.Wrap(err, "smtp send failed")
		}

		return nil
	}
}
