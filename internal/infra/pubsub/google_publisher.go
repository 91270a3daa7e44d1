package pubsub

import (
	"context"
	"log/slog"
	"time"

	"examhub/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

const (
	initTimeout    = 15 * time.Second
	publishTimeout = 10 * time.Second
)

// googlePublisher sends mail events to a Cloud Pub/Sub topic whose push
// subscription targets the mail worker.
type googlePublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	topic     string
	logger    *slog.Logger
}

// NewGooglePublisher connects to projectID and fails fast when topicID does not exist.
func NewGooglePublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "create pubsub client")
	}

	topic := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "mail topic %s", topic)
	}

	logger.Info("Mail topic ready", slog.String("topic", topic))

	return &googlePublisher{
		client:    client,
		publisher: client.Publisher(topicID),
		topic:     topic,
		logger:    logger,
	}, nil
}

// PublishMailEvent blocks until the server acknowledged the message or publishTimeout elapsed.
func (p *googlePublisher) PublishMailEvent(ctx context.Context, event *service.MailEvent) error {
	data, attrs, err := encodeMailEvent(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	serverID, err := p.publisher.Publish(ctx, &pubsub.Message{Data: data, Attributes: attrs}).Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "publish mail event %s to %s", event.ID, p.topic)
	}

	p.logger.Debug("Mail event published",
		slog.String("event_id", event.ID),
		slog.String("message_id", serverID),
	)

	return nil
}

// Close flushes pending messages before closing the client.
func (p *googlePublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
