// Package metrics exposes prometheus collectors for the earnings services.
package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-earnings/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	explorerRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "explorer_client",
		Name:      "operations_total",
		Help:      "Count of block explorer API operations.",
	}, []string{"operation", "network", "status"})
	explorerRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "explorer_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of block explorer API operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
)

// ExplorerClient tracks metrics for calls to the block explorer API.
type ExplorerClient struct {
	network model.Network
}

// NewExplorerClient constructs a metrics collector for explorer calls.
func NewExplorerClient(network model.Network) *ExplorerClient {
	if network == "" {
		network = "unknown"
	}
	return &ExplorerClient{network: network}
}

// Observe records a single explorer call outcome and duration.
func (m ExplorerClient) Observe(operation string, err error, started time.Time) {
	status := statusLabel(err)

	explorerRequestsTotal.WithLabelValues(operation, string(m.network), status).Inc()
	explorerRequestDuration.WithLabelValues(operation, string(m.network), status).Observe(time.Since(started).Seconds())
}

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
