package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	snapshotRefreshTotal    *prometheus.CounterVec
	snapshotRefreshDuration prometheus.Histogram
	snapshotReceipts        prometheus.Gauge
	analyticsDuration       *prometheus.HistogramVec
	windowReceipts          *prometheus.GaugeVec
	receiptListRequests     *prometheus.CounterVec
	receiptListDuration     prometheus.Histogram
	receiptMutations        *prometheus.CounterVec
	storeRetryAttempts      *prometheus.CounterVec
	circuitBreakerState     *prometheus.GaugeVec
	receiptsSeededTotal     prometheus.Counter
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		snapshotRefreshTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "receipt_snapshot_refresh_total",
				Help: "Total number of snapshot refresh attempts by result",
			},
			[]string{"result"},
		),
		snapshotRefreshDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "receipt_snapshot_refresh_duration_milliseconds",
				Help:    "Snapshot refresh duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		snapshotReceipts: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "receipt_snapshot_receipts",
				Help: "Number of receipts in the installed snapshot",
			},
		),
		analyticsDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "analytics_computation_duration_milliseconds",
				Help:    "Analytics computation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"computation"},
		),
		windowReceipts: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "analytics_window_receipts",
				Help: "Number of receipts bucketed into the trailing window",
			},
			[]string{"months"},
		),
		receiptListRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "receipt_list_requests_total",
				Help: "Total number of receipt list requests",
			},
			[]string{"status"},
		),
		receiptListDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "receipt_list_duration_milliseconds",
				Help:    "Receipt list filtering and sorting duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		receiptMutations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "receipt_mutations_total",
				Help: "Total number of receipt mutations by operation and status",
			},
			[]string{"operation", "status"},
		),
		storeRetryAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "receipt_store_retry_attempts_total",
				Help: "Total number of receipt store request retries",
			},
			[]string{"operation"},
		),
		circuitBreakerState: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		receiptsSeededTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "receipts_seeded_total",
				Help: "Total number of receipts created by the seed endpoint",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case "snapshot_refresh":
		if result := tags["result"]; result != "" {
			m.snapshotRefreshTotal.WithLabelValues(result).Inc()
		}
	case "receipt_list_request":
		if status != "" {
			m.receiptListRequests.WithLabelValues(status).Inc()
		}
	case "receipt_mutation":
		if operation := tags["operation"]; operation != "" && status != "" {
			m.receiptMutations.WithLabelValues(operation, status).Inc()
		}
	case "store.request.retry":
		m.storeRetryAttempts.WithLabelValues(tags["operation"]).Inc()
	case "circuit_breaker.open":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(1)
	case "circuit_breaker.closed":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(0)
	case "receipts_seeded":
		m.receiptsSeededTotal.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "snapshot_refresh":
		m.snapshotRefreshDuration.Observe(float64(duration.Milliseconds()))
	case "receipt_list":
		m.receiptListDuration.Observe(float64(duration.Milliseconds()))
	case "analytics_expenses", "analytics_category_stats", "analytics_monthly_trends":
		m.analyticsDuration.WithLabelValues(name).Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "snapshot_receipts":
		m.snapshotReceipts.Set(value)
	case "analytics_window_receipts":
		if months := tags["months"]; months != "" {
			m.windowReceipts.WithLabelValues(months).Set(value)
		}
	}
}
