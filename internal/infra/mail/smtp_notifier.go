package mail

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"time"

	"examhub/config"
	"examhub/internal/domain/service"

	"github.com/domodwyer/mailyak/v3"
	"github.com/pkg/errors"
)

const defaultSendTimeout = 30 * time.Second

type smtpNotifier struct {
	addr        string
	auth        smtp.Auth
	from        string
	fromName    string
	sendTimeout time.Duration
}

// NewSMTPNotifier delivers mail through the configured SMTP relay.
func NewSMTPNotifier(cfg *config.MailConfig) (service.Notifier, error) {
	if cfg == nil || cfg.Host == "" || cfg.Port == 0 {
		return nil, errors.New("smtp host and port are required")
	}
	if cfg.From == "" {
		return nil, errors.New("smtp from address is required")
	}

	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	timeout := cfg.SendTimeout
	if timeout <= 0 {
		timeout = defaultSendTimeout
	}

	return &smtpNotifier{
		addr:        net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		auth:        auth,
		from:        cfg.From,
		fromName:    cfg.FromName,
		sendTimeout: timeout,
	}, nil
}

// Send builds the message with mailyak and waits for the relay or the context, whichever ends first.
func (n *smtpNotifier) Send(ctx context.Context, to, subject, htmlBody string) error {
	mail := mailyak.New(n.addr, n.auth)
	mail.To(to)
	mail.From(n.from)
	if n.fromName != "" {
		mail.FromName(n.fromName)
	}
	mail.Subject(subject)
	mail.HTML().Set(htmlBody)

	ctx, cancel := context.WithTimeout(ctx, n.sendTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- mail.Send()
	}()

	select {
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "smtp send interrupted")
	case err := <-done:
		if err != nil {
			return errors.Wrap(err, fmt.Sprintf("smtp send to %s", n.addr))
		}
	}

	return nil
}
