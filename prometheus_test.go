package sharedstore

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNewPrometheus(t *testing.T) {
	provider := NewPrometheus("test")
	gauge := provider.NewGauge("test_gauge", "A test gauge", "label1", "label2")
	counter := provider.NewCounter("test_counter", "A test counter", "label1", "label2")
	summary := provider.NewSummary("test_summary", "A test summary", "label1", "label2")

	gauge.Set(42, "value1", "value2")
	counter.Inc("value1", "value2")
	counter.Add(1, "value1", "value2")
	summary.Observe(42, "value1", "value2")

	assert.Equal(t, 42.0, testutil.ToFloat64(provider.gauges["test_gauge"].WithLabelValues("value1", "value2", "test")))
	assert.Equal(t, 2.0, testutil.ToFloat64(provider.counters["test_counter"].WithLabelValues("value1", "value2", "test")))
}

func TestPrometheus_SameNameReusesVec(t *testing.T) {
	provider := NewPrometheus("test")
	first := provider.NewCounter("shared_counter", "A shared counter", "store")
	second := provider.NewCounter("shared_counter", "A shared counter", "store")

	first.Inc("a")
	second.Inc("a")

	assert.Equal(t, 1, len(provider.counters))
	assert.Equal(t, 2.0, testutil.ToFloat64(provider.counters["shared_counter"].WithLabelValues("a", "test")))
}
