package mail

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"examhub/config"
	deliverycontext "examhub/internal/delivery/context"
	"examhub/internal/domain/constants"
	"examhub/internal/domain/service"
	mockSvc "examhub/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewNotifier_Modes(t *testing.T) {
	t.Run("defaults to log mode", func(t *testing.T) {
		n, err := NewNotifier(NotifierParams{Config: &config.Config{}, Logger: newDiscardLogger()})

		require.NoError(t, err)
		assert.IsType(t, &logNotifier{}, n)
		assert.NoError(t, n.Send(context.Background(), "a@example.com", "s", "<p>x</p>"))
	})

	t.Run("queue mode needs a publisher", func(t *testing.T) {
		cfg := &config.Config{Mail: &config.MailConfig{Mode: constants.MailModeQueue}}

		_, err := NewNotifier(NotifierParams{Config: cfg, Logger: newDiscardLogger()})

		require.Error(t, err)
	})

	t.Run("queue mode", func(t *testing.T) {
		cfg := &config.Config{Mail: &config.MailConfig{Mode: constants.MailModeQueue}}

		n, err := NewNotifier(NotifierParams{Config: cfg, Logger: newDiscardLogger(), Publisher: mockSvc.NewMockEventPublisher(t)})

		require.NoError(t, err)
		assert.IsType(t, &queueNotifier{}, n)
	})

	t.Run("smtp mode", func(t *testing.T) {
		cfg := &config.Config{Mail: &config.MailConfig{Mode: constants.MailModeSMTP, Host: "smtp.example.com", Port: 587, From: "no-reply@example.com"}}

		n, err := NewNotifier(NotifierParams{Config: cfg, Logger: newDiscardLogger()})

		require.NoError(t, err)
		assert.IsType(t, &smtpNotifier{}, n)
	})

	t.Run("unknown mode", func(t *testing.T) {
		cfg := &config.Config{Mail: &config.MailConfig{Mode: "pigeon"}}

		_, err := NewNotifier(NotifierParams{Config: cfg, Logger: newDiscardLogger()})

		require.Error(t, err)
	})
}

func TestNewDeliveryNotifier(t *testing.T) {
	n, err := NewDeliveryNotifier(DeliveryNotifierParams{Config: &config.Config{}, Logger: newDiscardLogger()})
	require.NoError(t, err)
	assert.IsType(t, &logNotifier{}, n)

	// A queue-mode config still delivers over SMTP in the worker.
	cfg := &config.Config{Mail: &config.MailConfig{Mode: constants.MailModeQueue, Host: "smtp.example.com", Port: 587, From: "no-reply@example.com"}}
	n, err = NewDeliveryNotifier(DeliveryNotifierParams{Config: cfg, Logger: newDiscardLogger()})
	require.NoError(t, err)
	assert.IsType(t, &smtpNotifier{}, n)
}

func TestQueueNotifier_PublishesMailEvent(t *testing.T) {
	publisher := mockSvc.NewMockEventPublisher(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")

	publisher.EXPECT().
		PublishMailEvent(ctx, mock.MatchedBy(func(event *service.MailEvent) bool {
			return event.ID != "" &&
				event.RequestID == "req-42" &&
				event.To == "ana@example.com" &&
				event.Subject == "Assunto" &&
				event.HTML == "<p>corpo</p>"
		})).
		Return(nil)

	err := NewQueueNotifier(publisher).Send(ctx, "ana@example.com", "Assunto", "<p>corpo</p>")

	require.NoError(t, err)
}

func TestQueueNotifier_PropagatesPublishError(t *testing.T) {
	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().PublishMailEvent(mock.Anything, mock.Anything).Return(errors.New("topic not found"))

	err := NewQueueNotifier(publisher).Send(context.Background(), "ana@example.com", "s", "h")

	assert.EqualError(t, err, "topic not found")
}
