package impl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"examhub/config"
	"examhub/internal/domain/service"
)

const (
	mailOutcomeSent         = "sent"
	mailOutcomeRenderFailed = "render_failed"
	mailOutcomeTokenFailed  = "token_failed"
	mailOutcomeSendFailed   = "send_failed"
)

// mailDispatcher renders and sends transactional mail after a unit of work has committed.
// Failures are logged and counted, never returned.
type mailDispatcher struct {
	renderer service.MessageRenderer
	notifier service.Notifier
	metrics  service.LifecycleMetrics
	frontend config.FrontendConfig
}

func newMailDispatcher(
	renderer service.MessageRenderer,
	notifier service.Notifier,
	metrics service.LifecycleMetrics,
	frontend config.FrontendConfig,
) *mailDispatcher {
	return &mailDispatcher{
		renderer: renderer,
		notifier: notifier,
		metrics:  metrics,
		frontend: frontend,
	}
}

func (d *mailDispatcher) dispatch(ctx context.Context, logger *slog.Logger, kind service.MessageKind, to string, data service.MessageData) {
	msg, err := d.renderer.Render(kind, data)
	if err != nil {
		logger.Error("Failed to render message", slog.Any("kind", kind), slog.Any("error", err))
		d.record(kind, mailOutcomeRenderFailed)

		return
	}

	if err := d.notifier.Send(ctx, to, msg.Subject, msg.HTML); err != nil {
		logger.Warn("Failed to deliver message", slog.Any("kind", kind), slog.String("to", to), slog.Any("error", err))
		d.record(kind, mailOutcomeSendFailed)

		return
	}

	logger.Debug("Message delivered", slog.Any("kind", kind), slog.String("to", to))
	d.record(kind, mailOutcomeSent)
}

func (d *mailDispatcher) record(kind service.MessageKind, outcome string) {
	if d.metrics != nil {
		d.metrics.RecordMail(kind, outcome)
	}
}

// link joins the frontend base URL, a route and one path parameter.
func (d *mailDispatcher) link(path, param string) string {
	base := strings.TrimRight(d.frontend.BaseURL, "/")
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return base + strings.TrimRight(path, "/") + "/" + url.PathEscape(param)
}
