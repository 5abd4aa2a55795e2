package server

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metricsNamespace prefixes every metric this package registers.
const metricsNamespace = "gridview"

// Metrics holds the Prometheus instruments for the connection handler.
//
// Metrics exposed:
//   - gridview_connections_active: Gauge of open WebSocket connections
//   - gridview_connections_total: Counter of accepted connections
//   - gridview_messages_total: Counter of inbound messages by type and status
//   - gridview_write_errors_total: Counter of swallowed send failures
//   - gridview_slice_duration_seconds: Histogram of slice computation time
//   - gridview_slice_cells: Histogram of cells per slice response
type Metrics struct {
	connectionsActive prometheus.Gauge
	connectionsTotal  prometheus.Counter
	messagesTotal     *prometheus.CounterVec
	writeErrors       prometheus.Counter
	sliceDuration     prometheus.Histogram
	sliceCells        prometheus.Histogram
}

// NewMetrics registers the server metrics with the given registry. Tests pass
// a fresh prometheus.NewRegistry to avoid duplicate registration.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		connectionsActive: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "connections_active",
			Help:      "Number of open WebSocket connections",
		}),

		connectionsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "connections_total",
			Help:      "Total number of accepted WebSocket connections",
		}),

		messagesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "messages_total",
			Help:      "Total inbound messages by message type and outcome",
		}, []string{"type", "status"}),

		writeErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "write_errors_total",
			Help:      "Total send failures swallowed by the write policy",
		}),

		sliceDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "slice_duration_seconds",
			Help:      "Slice computation duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),

		sliceCells: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "slice_cells",
			Help:      "Number of cells in each slice response",
			Buckets:   []float64{0, 100, 1000, 10_000, 50_000, 200_000},
		}),
	}
}

var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// DefaultMetrics returns the process-wide metrics registered with the default
// Prometheus registerer, creating them on first use.
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		defaultMetrics = NewMetrics(prometheus.DefaultRegisterer)
	})
	return defaultMetrics
}
