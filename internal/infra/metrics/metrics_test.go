package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"examhub/config"
	"examhub/internal/domain/entity"
	"examhub/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMetrics() *Metrics {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "examhub-test"

	return New(cfg)
}

func TestMetrics_Counters(t *testing.T) {
	m := newTestMetrics()

	m.RecordRegistration(entity.AccountKindWorker, "success")
	m.RecordRegistration(entity.AccountKindWorker, "success")
	m.RecordLogin("mismatch")
	m.RecordPurge(3)
	m.RecordPurge(0)
	m.RecordMail(service.MessageActivation, "failed")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.registrations.WithLabelValues("worker", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.logins.WithLabelValues("mismatch")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.purgedAccounts))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.mailDeliveries.WithLabelValues("activation", "failed")))
}

func TestMetrics_Handler(t *testing.T) {
	m := newTestMetrics()
	m.ObserveHTTP(http.MethodPost, "/api/v1/auth/login", http.StatusOK, 20*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `examhub_http_requests_total{method="POST",route="/api/v1/auth/login",service="examhub-test",status="200"} 1`)
}
