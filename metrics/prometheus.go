package metrics

import (
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsPrefix is the prefix used for all metrics
const MetricsPrefix = "coingecko_client_"

var (
	// Request counter by outcome
	// Cardinality: ~3 (success, error, rate_limited)
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "requests_total",
			Help: "Total number of HTTP requests to the CoinGecko API by status",
		},
		[]string{"client", "status"},
	)

	// Request latency per endpoint
	// Cardinality: ~30 (number of registered endpoints)
	RequestLatencyHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: MetricsPrefix + "request_latency_seconds",
			Help: "HTTP request latency by endpoint",
		},
		[]string{"client", "endpoint"},
	)

	// Retry attempts counter
	RetryCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "retry_attempts_total",
			Help: "Total number of transport retry attempts",
		},
		[]string{"client"},
	)
)

// MetricsWriter records client metrics under a fixed client label. It
// implements the httpclient.StatusHandler interface.
type MetricsWriter struct {
	clientName string
}

// NewMetricsWriter creates a new MetricsWriter for the named client
func NewMetricsWriter(clientName string) *MetricsWriter {
	return &MetricsWriter{
		clientName: clientName,
	}
}

// GetClientName returns the client name
func (mw *MetricsWriter) GetClientName() string {
	return mw.clientName
}

// RecordRequestLatency records the duration of one endpoint call
func (mw *MetricsWriter) RecordRequestLatency(endpoint string, duration time.Duration) {
	RequestLatencyHistogram.WithLabelValues(mw.clientName, endpoint).Observe(duration.Seconds())
}

// OnRequest records an HTTP request with its status
func (mw *MetricsWriter) OnRequest(status string) {
	RequestsTotal.WithLabelValues(mw.clientName, status).Inc()
}

// OnRetry records a transport retry attempt
func (mw *MetricsWriter) OnRetry() {
	RetryCounter.WithLabelValues(mw.clientName).Inc()
	log.Printf("Metrics: %s recorded a retry attempt", mw.clientName)
}
