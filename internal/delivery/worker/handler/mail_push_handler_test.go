package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"examhub/config"
	deliverycontext "examhub/internal/delivery/context"
	"examhub/internal/domain/constants"
	"examhub/internal/domain/service"
	mockSvc "examhub/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestHandler(t *testing.T, cfg *config.Config) (*MailPushHandler, *mockSvc.MockNotifier) {
	t.Helper()

	notifier := mockSvc.NewMockNotifier(t)
	h := NewMailPushHandler(MailPushHandlerParams{
		Config:   cfg,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Notifier: notifier,
	})

	return h, notifier
}

func pushBody(t *testing.T, event *service.MailEvent, attributes map[string]string) []byte {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "m-1"
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/p/subscriptions/mail"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return body
}

func serve(h *MailPushHandler, body []byte, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/push/mail", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}

	rec := httptest.NewRecorder()
	e := echo.New()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestHandlePush_Delivers(t *testing.T) {
	h, notifier := newTestHandler(t, &config.Config{})
	event := &service.MailEvent{ID: "e-1", RequestID: "req-from-event", To: "ana@example.com", Subject: "Ative sua conta", HTML: "<p>oi</p>"}

	notifier.EXPECT().
		Send(mock.MatchedBy(func(ctx context.Context) bool {
			return deliverycontext.GetRequestIDFromContext(ctx) == "req-from-attrs"
		}), "ana@example.com", "Ative sua conta", "<p>oi</p>").
		Return(nil)

	rec := serve(h, pushBody(t, event, map[string]string{"request_id": "req-from-attrs"}), "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_SendFailureIsRetried(t *testing.T) {
	h, notifier := newTestHandler(t, &config.Config{})
	notifier.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("421 try again later"))

	rec := serve(h, pushBody(t, &service.MailEvent{ID: "e-1", To: "ana@example.com", Subject: "s", HTML: "h"}, nil), "")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandlePush_InvalidEventIsAcknowledged(t *testing.T) {
	h, notifier := newTestHandler(t, &config.Config{})

	rec := serve(h, pushBody(t, &service.MailEvent{ID: "e-1", Subject: "s"}, nil), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandlePush_MalformedPayload(t *testing.T) {
	h, _ := newTestHandler(t, &config.Config{})

	assert.Equal(t, http.StatusBadRequest, serve(h, []byte(`{"message":{"data":"%%%"}}`), "").Code)

	notJSON := base64.StdEncoding.EncodeToString([]byte("not json"))
	assert.Equal(t, http.StatusBadRequest, serve(h, []byte(`{"message":{"data":"`+notJSON+`"}}`), "").Code)
}

func TestHandlePush_VerifiesGoogleToken(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, PushAudience: "https://mail.example.com/push/mail"}}
	cfg.Env.Env = constants.EnvProduction
	event := &service.MailEvent{ID: "e-1", To: "ana@example.com", Subject: "s", HTML: "h"}

	t.Run("missing token", func(t *testing.T) {
		h, _ := newTestHandler(t, cfg)
		require.True(t, h.verifyPushAuth)

		assert.Equal(t, http.StatusUnauthorized, serve(h, pushBody(t, event, nil), "").Code)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		h, _ := newTestHandler(t, cfg)
		h.validateToken = func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
		}

		assert.Equal(t, http.StatusUnauthorized, serve(h, pushBody(t, event, nil), "Bearer tok").Code)
	})

	t.Run("valid token", func(t *testing.T) {
		h, notifier := newTestHandler(t, cfg)
		var gotAudience string
		h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			gotAudience = audience

			return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
		}
		notifier.EXPECT().Send(mock.Anything, "ana@example.com", "s", "h").Return(nil)

		assert.Equal(t, http.StatusOK, serve(h, pushBody(t, event, nil), "Bearer tok").Code)
		assert.Equal(t, "https://mail.example.com/push/mail", gotAudience)
	})
}

func TestNewMailPushHandler_SkipsVerificationInDevelop(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvDevelop

	h, _ := newTestHandler(t, cfg)

	assert.False(t, h.verifyPushAuth)
}
