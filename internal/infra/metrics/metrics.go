// Package metrics exposes the prometheus collectors of the service.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"examhub/config"
	"examhub/internal/domain/entity"
	"examhub/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "examhub"

// Metrics owns a private registry so that tests and multiple binaries never collide on the global one.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	registrations  *prometheus.CounterVec
	logins         *prometheus.CounterVec
	purgedAccounts prometheus.Counter
	mailDeliveries *prometheus.CounterVec
}

// New builds and registers every collector.
func New(cfg *config.Config) *Metrics {
	constLabels := prometheus.Labels{"service": cfg.Env.ServiceName}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests.",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "http_request_duration_seconds",
			Help:        "Duration of HTTP requests.",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "route"}),
		registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "registrations_total",
			Help:        "Registration attempts by account kind and outcome.",
			ConstLabels: constLabels,
		}, []string{"kind", "outcome"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "logins_total",
			Help:        "Login attempts by outcome, including the internal rejection reason.",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
		purgedAccounts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "pending_accounts_purged_total",
			Help:        "Pending accounts removed after their activation window expired.",
			ConstLabels: constLabels,
		}),
		mailDeliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "mail_deliveries_total",
			Help:        "Transactional emails by message kind and outcome.",
			ConstLabels: constLabels,
		}, []string{"kind", "outcome"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.registrations,
		m.logins,
		m.purgedAccounts,
		m.mailDeliveries,
	)

	return m
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RegisterDB exports the connection pool statistics of db under the given name.
func (m *Metrics) RegisterDB(db *sql.DB, name string) error {
	return m.registry.Register(collectors.NewDBStatsCollector(db, name))
}

// ObserveHTTP records one finished request. route is the matched route pattern, never the raw path.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) RecordRegistration(kind entity.AccountKind, outcome string) {
	m.registrations.WithLabelValues(kind.String(), outcome).Inc()
}

func (m *Metrics) RecordLogin(outcome string) {
	m.logins.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordPurge(deleted int64) {
	if deleted > 0 {
		m.purgedAccounts.Add(float64(deleted))
	}
}

func (m *Metrics) RecordMail(kind service.MessageKind, outcome string) {
	m.mailDeliveries.WithLabelValues(string(kind), outcome).Inc()
}
