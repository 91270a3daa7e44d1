package mail

import (
	"context"
	"log/slog"

	deliverycontext "examhub/internal/delivery/context"
	"examhub/internal/domain/service"
)

type logNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier writes messages to the log instead of sending them. Development only.
func NewLogNotifier(logger *slog.Logger) service.Notifier {
	return &logNotifier{logger: logger}
}

func (n *logNotifier) Send(ctx context.Context, to, subject, htmlBody string) error {
	deliverycontext.GetLoggerOrDefault(ctx, n.logger).Info("Mail not sent (log mode)",
		slog.String("to", to),
		slog.String("subject", subject),
		slog.String("html", htmlBody),
	)

	return nil
}
