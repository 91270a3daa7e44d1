package pubsub

import (
	"context"
	"log/slog"

	"examhub/config"
	"examhub/internal/domain/constants"
	"examhub/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher selects the mail event transport from the pubsub config.
// Without a provider, events are logged and dropped.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := newPublisher(params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.StopHook(publisher.Close))

	return publisher, nil
}

func newPublisher(cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || cfg.Provider == "" {
		logger.Warn("Mail queue not configured, queued mail will be dropped")

		return discardPublisher{logger: logger}, nil
	}

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}

		ctx, cancel := context.WithTimeout(context.Background(), initTimeout)
		defer cancel()

		return NewGooglePublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}

type discardPublisher struct {
	logger *slog.Logger
}

func (p discardPublisher) PublishMailEvent(_ context.Context, event *service.MailEvent) error {
	p.logger.Warn("Dropping mail event", slog.String("event_id", event.ID), slog.String("to", event.To))

	return nil
}

func (discardPublisher) Close() error { return nil }
