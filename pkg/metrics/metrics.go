// Package metrics метрики Prometheus для HTTP, БД и drag-сессий
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics коллектор метрик сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueriesTotal  *prometheus.CounterVec
	dbQueryDuration *prometheus.HistogramVec

	dbOpenConnections  *prometheus.GaugeVec
	dbIdleConnections  *prometheus.GaugeVec
	dbInUseConnections *prometheus.GaugeVec

	dragSessionsActive *prometheus.GaugeVec
	relocationsTotal   *prometheus.CounterVec
}

// New создает и регистрирует метрики сервиса
func New(serviceName string) *Metrics {
	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		dbQueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "db_queries_total",
			Help: "Total number of database queries",
		}, []string{"service", "operation", "status"}),

		dbQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "operation"}),

		dbOpenConnections: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_open_connections",
			Help: "Number of open database connections",
		}, []string{"service"}),

		dbIdleConnections: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_idle_connections",
			Help: "Number of idle database connections",
		}, []string{"service"}),

		dbInUseConnections: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_in_use_connections",
			Help: "Number of in-use database connections",
		}, []string{"service"}),

		dragSessionsActive: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "drag_sessions_active",
			Help: "Number of active drag relocation sessions",
		}, []string{"service"}),

		relocationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "appointment_relocations_total",
			Help: "Total number of committed appointment relocations",
		}, []string{"service", "status"}),
	}
}

// ObserveHTTPRequest записывает метрики HTTP запроса
func (m *Metrics) ObserveHTTPRequest(service, method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(service, method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(service, method, path).Observe(duration.Seconds())
}

// ObserveDBQuery записывает метрики запроса к БД
func (m *Metrics) ObserveDBQuery(service, operation, status string, duration time.Duration) {
	m.dbQueriesTotal.WithLabelValues(service, operation, status).Inc()
	m.dbQueryDuration.WithLabelValues(service, operation).Observe(duration.Seconds())
}

// SetDBPoolStats записывает состояние connection pool
func (m *Metrics) SetDBPoolStats(service string, open, idle, inUse int) {
	m.dbOpenConnections.WithLabelValues(service).Set(float64(open))
	m.dbIdleConnections.WithLabelValues(service).Set(float64(idle))
	m.dbInUseConnections.WithLabelValues(service).Set(float64(inUse))
}

// SetActiveDragSessions записывает количество активных drag-сессий
func (m *Metrics) SetActiveDragSessions(service string, count int) {
	m.dragSessionsActive.WithLabelValues(service).Set(float64(count))
}

// ObserveRelocation записывает результат переноса записи
func (m *Metrics) ObserveRelocation(service string, success bool) {
	status := "success"
	if !success {
		status = "failure"
	}
	m.relocationsTotal.WithLabelValues(service, status).Inc()
}
