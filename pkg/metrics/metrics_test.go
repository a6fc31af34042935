package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_NilReceiverIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest("GET", "/x", "200", 0.1)
		m.ObserveDBQuery("select", 0.1)
		m.SetDBPoolStats("main", 1, 1, 0, 0)
		m.AddReservationsDerived(3)
		m.IncRegeneration("committed")
		m.IncGrade("reservations", "success")
	})
}

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegistry(reg, "test")

	m.AddReservationsDerived(3)
	m.AddReservationsDerived(0)
	m.IncRegeneration("committed")
	m.IncRegeneration("committed")
	m.IncGrade("flights", "danger")

	assert.Equal(t, 3.0, testutil.ToFloat64(m.ReservationsDerived.WithLabelValues()))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.RegenerationsTotal.WithLabelValues("committed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CompletenessGrades.WithLabelValues("flights", "danger")))
}
