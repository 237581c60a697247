package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	// HTTP Metrics
	HTTPRequestsTotal     *prometheus.CounterVec
	HTTPRequestDuration   *prometheus.HistogramVec
	HTTPRequestsInFlight  prometheus.Gauge
	HTTPResponseSizeBytes *prometheus.HistogramVec

	// Business Metrics
	WalletsCreated        prometheus.Counter
	BalanceRetrievalTotal *prometheus.CounterVec
	EntriesCreated        *prometheus.CounterVec
	IdempotentNoops       *prometheus.CounterVec
	RejectionsTotal       *prometheus.CounterVec

	// Database Metrics
	DBConnectionsInUse prometheus.Gauge
	DBConnectionsIdle  prometheus.Gauge
	DBQueryDuration    *prometheus.HistogramVec
	DBQueriesTotal     *prometheus.CounterVec
	DBConnectionErrors prometheus.Counter

	// System Metrics
	ServiceUptime prometheus.Gauge
	Goroutines    prometheus.Gauge
	MemoryUsage   *prometheus.GaugeVec

	// Validation Metrics
	ValidationErrors   *prometheus.CounterVec
	ValidationDuration *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "walletgateway_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "walletgateway_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "walletgateway_http_requests_in_flight",
				Help: "Number of HTTP requests currently being served",
			},
		),
		HTTPResponseSizeBytes: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "walletgateway_http_response_size_bytes",
				Help:    "Size of HTTP responses in bytes",
				Buckets: []float64{100, 1000, 10_000, 100_000, 1_000_000},
			},
			[]string{"method", "path", "status_code"},
		),

		WalletsCreated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "walletgateway_wallets_created_total",
				Help: "Total number of wallets created",
			},
		),
		BalanceRetrievalTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "walletgateway_balance_retrieval_total",
				Help: "Total number of balance retrievals",
			},
			[]string{"status"},
		),
		EntriesCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "walletgateway_ledger_entries_created_total",
				Help: "Total number of ledger entries written",
			},
			[]string{"kind"},
		),
		IdempotentNoops: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "walletgateway_idempotent_noops_total",
				Help: "Operations that completed without effect (duplicate or zero-amount deliveries)",
			},
			[]string{"kind"},
		),
		RejectionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "walletgateway_rejections_total",
				Help: "Business-rule rejections by operation kind and error code",
			},
			[]string{"kind", "code"},
		),

		DBConnectionsInUse: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "walletgateway_db_connections_in_use",
				Help: "Number of database connections currently in use",
			},
		),
		DBConnectionsIdle: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "walletgateway_db_connections_idle",
				Help: "Number of idle database connections",
			},
		),
		DBQueryDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "walletgateway_db_query_duration_seconds",
				Help:    "Duration of database queries in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
			},
			[]string{"operation", "table"},
		),
		DBQueriesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "walletgateway_db_queries_total",
				Help: "Total number of database queries",
			},
			[]string{"operation", "table", "status"},
		),
		DBConnectionErrors: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "walletgateway_db_connection_errors_total",
				Help: "Total number of database connection errors",
			},
		),

		ServiceUptime: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "walletgateway_service_uptime_seconds",
				Help: "Service uptime in seconds",
			},
		),
		Goroutines: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "walletgateway_goroutines",
				Help: "Number of goroutines currently running",
			},
		),
		MemoryUsage: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "walletgateway_memory_usage_bytes",
				Help: "Memory usage in bytes",
			},
			[]string{"type"},
		),

		ValidationErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "walletgateway_validation_errors_total",
				Help: "Total number of validation errors",
			},
			[]string{"field", "tag"},
		),
		ValidationDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "walletgateway_validation_duration_seconds",
				Help:    "Duration of validation operations in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
			},
			[]string{"endpoint"},
		),
	}
}

// --- Recording Methods ---

func (m *Metrics) RecordHTTPRequest(method, path, statusCode string, duration time.Duration, responseSize int) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration.Seconds())
	m.HTTPResponseSizeBytes.WithLabelValues(method, path, statusCode).Observe(float64(responseSize))
}

func (m *Metrics) RecordWalletCreated() {
	m.WalletsCreated.Inc()
}

func (m *Metrics) RecordBalanceRetrieval(status string) {
	m.BalanceRetrievalTotal.WithLabelValues(status).Inc()
}

func (m *Metrics) RecordEntryCreated(kind string) {
	m.EntriesCreated.WithLabelValues(kind).Inc()
}

func (m *Metrics) RecordIdempotentNoop(kind string) {
	m.IdempotentNoops.WithLabelValues(kind).Inc()
}

func (m *Metrics) RecordRejection(kind, code string) {
	m.RejectionsTotal.WithLabelValues(kind, code).Inc()
}

func (m *Metrics) RecordDBQuery(operation, table, status string, duration time.Duration) {
	m.DBQueriesTotal.WithLabelValues(operation, table, status).Inc()
	m.DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
}

func (m *Metrics) RecordDBConnectionError() {
	m.DBConnectionErrors.Inc()
}

func (m *Metrics) RecordValidationError(field, tag string) {
	m.ValidationErrors.WithLabelValues(field, tag).Inc()
}

func (m *Metrics) RecordValidationDuration(endpoint string, duration time.Duration) {
	m.ValidationDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// UpdateSystemMetrics updates system-level metrics (goroutines, uptime, memory).
func (m *Metrics) UpdateSystemMetrics(uptime time.Duration, memStats *runtime.MemStats) {
	m.ServiceUptime.Set(uptime.Seconds())
	m.Goroutines.Set(float64(runtime.NumGoroutine()))

	m.MemoryUsage.WithLabelValues("alloc").Set(float64(memStats.Alloc))
	m.MemoryUsage.WithLabelValues("total_alloc").Set(float64(memStats.TotalAlloc))
	m.MemoryUsage.WithLabelValues("sys").Set(float64(memStats.Sys))
	m.MemoryUsage.WithLabelValues("heap_alloc").Set(float64(memStats.HeapAlloc))
	m.MemoryUsage.WithLabelValues("heap_sys").Set(float64(memStats.HeapSys))
}
