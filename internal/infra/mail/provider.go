// Package mail renders and delivers transactional email.
package mail

import (
	"log/slog"

	"examhub/config"
	"examhub/internal/domain/constants"
	"examhub/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// NotifierParams holds dependencies for the Notifier, injected by Fx
type NotifierParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Publisher service.EventPublisher `optional:"true"`
}

// NewNotifier selects the delivery mode from mail.mode. Missing configuration falls back to log mode.
func NewNotifier(params NotifierParams) (service.Notifier, error) {
	cfg := params.Config.Mail
	mode := constants.MailModeLog
	if cfg != nil && cfg.Mode != "" {
		mode = cfg.Mode
	}

	switch mode {
	case constants.MailModeSMTP:
		params.Logger.Info("Mail delivered over SMTP", slog.String("host", cfg.Host))

		return NewSMTPNotifier(cfg)
	case constants.MailModeQueue:
		if params.Publisher == nil {
			return nil, errors.New("queue mail mode requires an event publisher")
		}
		params.Logger.Info("Mail delivered through the mail worker queue")

		return NewQueueNotifier(params.Publisher), nil
	case constants.MailModeLog:
		params.Logger.Warn("Mail delivery disabled, messages are only logged")

		return NewLogNotifier(params.Logger), nil
	default:
		return nil, errors.Errorf("unknown mail mode: %s", mode)
	}
}

// DeliveryNotifierParams holds dependencies for the mail worker's notifier, injected by Fx
type DeliveryNotifierParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewDeliveryNotifier builds the notifier the mail worker hands queued messages to.
// Queued messages never go back to the queue: any mode other than log delivers over SMTP.
func NewDeliveryNotifier(params DeliveryNotifierParams) (service.Notifier, error) {
	cfg := params.Config.Mail
	if cfg == nil || cfg.Mode == constants.MailModeLog {
		params.Logger.Warn("Mail worker only logs messages")

		return NewLogNotifier(params.Logger), nil
	}

	params.Logger.Info("Mail worker delivers over SMTP", slog.String("host", cfg.Host))

	return NewSMTPNotifier(cfg)
}
