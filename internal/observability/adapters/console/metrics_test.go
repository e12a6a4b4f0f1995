package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	metrics := NewMetrics()

	metrics.IncrementCounter("task.runs", nil)
	metrics.IncrementCounter("task.runs", nil)
	metrics.IncrementCounter("task.runs", map[string]string{"status": "failure"})

	assert.Equal(t, int64(2), metrics.GetCounter("task.runs", nil))
	assert.Equal(t, int64(1), metrics.GetCounter("task.runs", map[string]string{"status": "failure"}))
}

func TestMetrics_HistogramsAndGauges(t *testing.T) {
	metrics := NewMetrics()

	metrics.RecordHistogram("download.duration", 0.5, nil)
	metrics.RecordHistogram("download.duration", 1.5, nil)
	metrics.RecordGauge("download.bytes", 2048, nil)

	assert.Equal(t, []float64{0.5, 1.5}, metrics.GetHistogram("download.duration", nil))
	assert.Equal(t, float64(2048), metrics.GetGauge("download.bytes", nil))
}

func TestMetrics_WithTags(t *testing.T) {
	metrics := NewMetrics()
	tagged := metrics.WithTags(map[string]string{"component": "fetch"})

	tagged.IncrementCounter("task.runs", nil)

	// Derived instances share storage; the default tags become part of the key.
	assert.Equal(t, int64(1), metrics.GetCounter("task.runs", map[string]string{"component": "fetch"}))
	assert.Equal(t, int64(0), metrics.GetCounter("task.runs", nil))
}

func TestMetrics_Reset(t *testing.T) {
	metrics := NewMetrics()

	metrics.IncrementCounter("task.runs", nil)
	metrics.Reset()

	assert.Equal(t, int64(0), metrics.GetCounter("task.runs", nil))
}
