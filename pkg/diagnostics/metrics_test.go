package diagnostics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Record(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics("numberflow", reg)

	m.ObserveUpdate()
	m.ObserveUpdate()
	m.ObserveMotion("spring")
	m.ObserveMotion("snap")
	m.ObserveMotion("spring")
	m.AddLiveReels(3)
	m.AddLiveReels(-1)
	m.ObserveMeasurement(MeasurementStale)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.updates))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.motionRequests.WithLabelValues("spring")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.motionRequests.WithLabelValues("snap")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.liveReels))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.measurements.WithLabelValues(MeasurementStale)))

	count, err := testutil.GatherAndCount(reg, "numberflow_updates_total", "numberflow_live_reels")
	assert.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveUpdate()
		m.ObserveMotion("spring")
		m.AddLiveReels(1)
		m.ObserveMeasurement(MeasurementApplied)
	})
}
