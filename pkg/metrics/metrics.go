package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpInFlight        prometheus.Gauge

	storageCallsTotal   *prometheus.CounterVec
	storageCallDuration *prometheus.HistogramVec

	availableTables prometheus.Histogram
}

// New создает метрики и регистрирует их в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики и регистрирует их в указанном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		httpInFlight: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "http_requests_in_flight",
			Help:        "Number of HTTP requests being served",
			ConstLabels: constLabels,
		}),

		storageCallsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "dynamodb_calls_total",
			Help:        "Total number of DynamoDB calls",
			ConstLabels: constLabels,
		}, []string{"operation", "table", "outcome"}),

		storageCallDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "dynamodb_call_duration_seconds",
			Help:        "DynamoDB call latency",
			ConstLabels: constLabels,
			Buckets:     []float64{.002, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation", "table"}),

		availableTables: factory.NewHistogram(prometheus.HistogramOpts{
			Name:        "available_tables_returned",
			Help:        "Number of tables returned by the availability search",
			ConstLabels: constLabels,
			Buckets:     []float64{0, 1, 2, 5, 10, 20, 50},
		}),
	}
}

// ObserveHTTPRequest фиксирует завершенный HTTP-запрос
func (m *Metrics) ObserveHTTPRequest(method, route, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// IncInFlight увеличивает счетчик запросов в обработке
func (m *Metrics) IncInFlight() {
	m.httpInFlight.Inc()
}

// DecInFlight уменьшает счетчик запросов в обработке
func (m *Metrics) DecInFlight() {
	m.httpInFlight.Dec()
}

// ObserveStorageCall фиксирует вызов DynamoDB
func (m *Metrics) ObserveStorageCall(operation, table string, err error, duration time.Duration) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.storageCallsTotal.WithLabelValues(operation, table, outcome).Inc()
	m.storageCallDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
}

// ObserveAvailableTables фиксирует размер ответа поиска свободных столиков
func (m *Metrics) ObserveAvailableTables(count int) {
	m.availableTables.Observe(float64(count))
}
