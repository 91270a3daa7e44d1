package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"examhub/internal/domain/entity"
	"examhub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext(req *http.Request) echo.Context {
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestGetRequestID(t *testing.T) {
	t.Run("prefers the echo value", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(WithRequestID(req.Context(), "from-ctx"))
		c := newEchoContext(req)
		SetRequestID(c, "from-echo")

		assert.Equal(t, "from-echo", GetRequestID(c))
	})

	t.Run("falls back to the request context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(WithRequestID(req.Context(), "from-ctx"))

		assert.Equal(t, "from-ctx", GetRequestID(newEchoContext(req)))
	})

	t.Run("empty outside a request", func(t *testing.T) {
		assert.Empty(t, GetRequestID(newEchoContext(httptest.NewRequest(http.MethodGet, "/", nil))))
		assert.Empty(t, GetRequestIDFromContext(context.Background()))
	})
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "r1"))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestSession(t *testing.T) {
	c := newEchoContext(httptest.NewRequest(http.MethodGet, "/", nil))

	_, ok := GetAccountID(c)
	assert.False(t, ok)
	assert.False(t, HasRole(c, entity.RoleAdmin))

	id := uuid.New()
	SetSession(c, &service.SessionClaims{AccountID: id, Role: entity.RoleEditor})

	got, ok := GetAccountID(c)
	assert.True(t, ok)
	assert.Equal(t, id, got)
	assert.True(t, HasRole(c, entity.RoleAdmin, entity.RoleEditor))
	assert.False(t, HasRole(c, entity.RoleAdmin))
}
