package worker

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"examhub/config"
	"examhub/internal/delivery/worker/handler"
	"examhub/internal/domain/service"
	mockSvc "examhub/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T) (*echo.Echo, *mockSvc.MockNotifier) {
	t.Helper()

	cfg := &config.Config{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	notifier := mockSvc.NewMockNotifier(t)
	h := handler.NewMailPushHandler(handler.MailPushHandlerParams{Config: cfg, Logger: logger, Notifier: notifier})

	return NewEcho(cfg, logger, h), notifier
}

func TestWorker_Health(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestWorker_PushRoute(t *testing.T) {
	e, notifier := newTestEcho(t)

	data, err := json.Marshal(&service.MailEvent{ID: "e-1", To: "ana@example.com", Subject: "Bem-vinda", HTML: "<p>oi</p>"})
	require.NoError(t, err)

	var msg handler.PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "m-1"
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	notifier.EXPECT().Send(mock.Anything, "ana@example.com", "Bem-vinda", "<p>oi</p>").Return(nil)

	req := httptest.NewRequest(http.MethodPost, pushRoute, bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWorkerPort(t *testing.T) {
	cfg := &config.Config{}
	cfg.HTTP.Port = 8080
	assert.Equal(t, 8080, workerPort(cfg))

	cfg.Worker = &config.WorkerConfig{Port: 8090}
	assert.Equal(t, 8090, workerPort(cfg))
}
