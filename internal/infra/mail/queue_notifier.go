package mail

import (
	"context"

	deliverycontext "examhub/internal/delivery/context"
	"examhub/internal/domain/service"

	"github.com/google/uuid"
)

type queueNotifier struct {
	publisher service.EventPublisher
}

// NewQueueNotifier hands messages to the mail worker through the event publisher.
func NewQueueNotifier(publisher service.EventPublisher) service.Notifier {
	return &queueNotifier{publisher: publisher}
}

// Send publishes the message; delivery happens in the mail worker.
func (n *queueNotifier) Send(ctx context.Context, to, subject, htmlBody string) error {
	return n.publisher.PublishMailEvent(ctx, &service.MailEvent{
		ID:        uuid.NewString(),
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		To:        to,
		Subject:   subject,
		HTML:      htmlBody,
	})
}
