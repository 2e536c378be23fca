// Package diagnostics exposes Prometheus metrics for NumberFlow instances.
//
// A nil *Metrics is valid and records nothing, so the widget engine can call
// it unconditionally.
package diagnostics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Measurement outcomes recorded by ObserveMeasurement.
const (
	MeasurementApplied = "applied"
	MeasurementStale   = "stale"
	MeasurementInvalid = "invalid"
	MeasurementError   = "error"
)

// Metrics holds the collectors shared by every Flow created with it.
type Metrics struct {
	updates        prometheus.Counter
	motionRequests *prometheus.CounterVec
	liveReels      prometheus.Gauge
	measurements   *prometheus.CounterVec
}

// NewMetrics registers the NumberFlow collectors on reg under namespace.
// A nil reg uses prometheus.DefaultRegisterer.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		updates: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "updates_total",
			Help:      "Total number of render plans produced",
		}),
		motionRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "motion_requests_total",
			Help:      "Digit reel motion requests by mode",
		}, []string{"mode"}),
		liveReels: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "live_reels",
			Help:      "Digit reels currently alive",
		}),
		measurements: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "measurements_total",
			Help:      "Auto-fit measurements by outcome",
		}, []string{"result"}),
	}
}

// ObserveUpdate counts one render plan.
func (m *Metrics) ObserveUpdate() {
	if m == nil {
		return
	}
	m.updates.Inc()
}

// ObserveMotion counts one reel motion request of the given mode.
func (m *Metrics) ObserveMotion(mode string) {
	if m == nil {
		return
	}
	m.motionRequests.WithLabelValues(mode).Inc()
}

// AddLiveReels adjusts the live reel gauge by delta.
func (m *Metrics) AddLiveReels(delta int) {
	if m == nil || delta == 0 {
		return
	}
	m.liveReels.Add(float64(delta))
}

// ObserveMeasurement counts one measurement delivery with the given outcome.
func (m *Metrics) ObserveMeasurement(result string) {
	if m == nil {
		return
	}
	m.measurements.WithLabelValues(result).Inc()
}
