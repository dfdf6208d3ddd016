package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics collects Prometheus metrics for the refresh pipeline.
type Metrics struct {
	refreshTotal    *prometheus.CounterVec
	fetchDuration   *prometheus.HistogramVec
	probeRoundtrip  prometheus.Gauge
	servicesOnline  prometheus.Gauge
	lastRefreshUnix prometheus.Gauge
}

var (
	metricsOnce sync.Once
	metricsInst *Metrics
)

// New returns the process-wide metrics collector. promauto registers
// on the default registry, so construction happens once.
func New() *Metrics {
	metricsOnce.Do(func() {
		metricsInst = &Metrics{
			refreshTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "statusboard_refresh_cycles_total",
					Help: "Refresh cycles by outcome",
				},
				[]string{"outcome"},
			),
			fetchDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "statusboard_fetch_duration_seconds",
					Help:    "Duration of relayed fetches by operation",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"op"},
			),
			probeRoundtrip: promauto.NewGauge(
				prometheus.GaugeOpts{
					Name: "statusboard_probe_roundtrip_ms",
					Help: "Last secondary-probe round trip through the relay, milliseconds (0 on failure)",
				},
			),
			servicesOnline: promauto.NewGauge(
				prometheus.GaugeOpts{
					Name: "statusboard_services_online",
					Help: "Monitored services currently reported online",
				},
			),
			lastRefreshUnix: promauto.NewGauge(
				prometheus.GaugeOpts{
					Name: "statusboard_last_refresh_timestamp_seconds",
					Help: "Unix time of the last successful refresh",
				},
			),
		}
	})
	return metricsInst
}

// ObserveCycle records the outcome of one refresh cycle.
func (m *Metrics) ObserveCycle(outcome string) {
	if m == nil {
		return
	}
	m.refreshTotal.WithLabelValues(outcome).Inc()
}

// ObserveFetch records the duration of one relayed fetch.
func (m *Metrics) ObserveFetch(op string, seconds float64) {
	if m == nil {
		return
	}
	m.fetchDuration.WithLabelValues(op).Observe(seconds)
}

// SetProbeRoundtrip records the latest probe round trip.
func (m *Metrics) SetProbeRoundtrip(ms int64) {
	if m == nil {
		return
	}
	m.probeRoundtrip.Set(float64(ms))
}

// SetServicesOnline records how many monitored services are online.
func (m *Metrics) SetServicesOnline(n int) {
	if m == nil {
		return
	}
	m.servicesOnline.Set(float64(n))
}

// SetLastRefresh records the time of the last successful refresh.
func (m *Metrics) SetLastRefresh(unix int64) {
	if m == nil {
		return
	}
	m.lastRefreshUnix.Set(float64(unix))
}
