package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-earnings/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	difficultyResolutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "network_service",
		Name:      "difficulty_resolutions_total",
		Help:      "Count of network difficulty resolutions from the chain tip.",
	}, []string{"network", "status"})

	estimatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "network_service",
		Name:      "estimates_total",
		Help:      "Count of daily earnings estimates.",
	}, []string{"network", "status"})

	estimateDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "network_service",
		Name:      "estimate_duration_seconds",
		Help:      "Duration of a daily earnings estimate including block fetches.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	lastEstimate = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "network_service",
		Name:      "last_estimate_btc_per_day",
		Help:      "Most recent successful daily earnings estimate per TH/s.",
	}, []string{"network"})
)

// NetworkService records metrics for difficulty resolution and estimates.
type NetworkService struct {
	network model.Network
}

// NewNetworkService constructs a metrics collector for the network service.
func NewNetworkService(network model.Network) *NetworkService {
	if network == "" {
		network = "unknown"
	}
	return &NetworkService{network: network}
}

// ObserveDifficultyResolution records the outcome of the lazy difficulty lookup.
func (m NetworkService) ObserveDifficultyResolution(err error) {
	difficultyResolutionsTotal.WithLabelValues(string(m.network), statusLabel(err)).Inc()
}

// ObserveEstimate records an estimate outcome. btcPerDay is normalized to 1 TH/s
// before being exported so the gauge is comparable across callers.
func (m NetworkService) ObserveEstimate(err error, hashrateTHs, btcPerDay float64, started time.Time) {
	status := statusLabel(err)
	estimatesTotal.WithLabelValues(string(m.network), status).Inc()
	estimateDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
	if err == nil && hashrateTHs > 0 {
		lastEstimate.WithLabelValues(string(m.network)).Set(btcPerDay / hashrateTHs)
	}
}
