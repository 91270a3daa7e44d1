package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"examhub/config"
	"examhub/internal/domain/constants"
	"examhub/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	received := make(chan PushMessage, 1)
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		var msg PushMessage
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
			w.WriteHeader(http.StatusBadRequest)

			return
		}
		received <- msg
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	event := &service.MailEvent{ID: "evt-1", RequestID: "req-1", To: "ana@example.com", Subject: "Hi", HTML: "<p>hi</p>"}

	require.NoError(t, publisher.PublishMailEvent(context.Background(), event))

	msg := <-received
	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", msg.Message.MessageID)
	assert.Equal(t, localSubscription, msg.Subscription)

	raw, err := base64.StdEncoding.DecodeString(msg.Message.Data)
	require.NoError(t, err)
	var decoded service.MailEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_FailsOnErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := publisher.PublishMailEvent(context.Background(), &service.MailEvent{ID: "evt-2"})
	assert.Error(t, err)
}

func TestEncodeMailEvent(t *testing.T) {
	_, _, err := encodeMailEvent(&service.MailEvent{To: "ana@example.com"})
	require.Error(t, err)

	_, attrs, err := encodeMailEvent(&service.MailEvent{ID: "evt-3"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{attrEventID: "evt-3"}, attrs)
}

func TestNewPublisher(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	p, err := newPublisher(nil, logger)
	require.NoError(t, err)
	assert.IsType(t, discardPublisher{}, p)
	assert.NoError(t, p.PublishMailEvent(context.Background(), &service.MailEvent{ID: "evt-4"}))

	p, err = newPublisher(&config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8090/push/mail"}, logger)
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, p)

	_, err = newPublisher(&config.PubSubConfig{Provider: constants.PubSubProviderLocal}, logger)
	assert.Error(t, err)

	_, err = newPublisher(&config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, logger)
	assert.Error(t, err)

	_, err = newPublisher(&config.PubSubConfig{Provider: "kafka"}, logger)
	assert.Error(t, err)
}
