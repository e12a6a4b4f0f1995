package prom

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_IncrementCounter(t *testing.T) {
	metrics := New("urlget")

	metrics.IncrementCounter("task.runs", map[string]string{"status": "success"})
	metrics.IncrementCounter("task.runs", map[string]string{"status": "success"})
	metrics.IncrementCounter("task.runs", map[string]string{"status": "failure"})

	count, err := testutil.GatherAndCount(metrics.Registry(), "urlget_task_runs_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	families, err := metrics.Registry().Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	assert.Equal(t, "urlget_task_runs_total", families[0].GetName())
	require.Len(t, families[0].GetMetric(), 2)
}

func TestMetrics_RecordHistogramAndGauge(t *testing.T) {
	metrics := New("urlget")

	metrics.RecordHistogram("download.duration", 1.5, nil)
	metrics.RecordGauge("download.bytes", 2048, nil)

	durationCount, err := testutil.GatherAndCount(metrics.Registry(), "urlget_download_duration")
	require.NoError(t, err)
	assert.Equal(t, 1, durationCount)
	bytesCount, err := testutil.GatherAndCount(metrics.Registry(), "urlget_download_bytes")
	require.NoError(t, err)
	assert.Equal(t, 1, bytesCount)
}

func TestMetrics_WithTags(t *testing.T) {
	metrics := New("urlget")
	tagged := metrics.WithTags(map[string]string{"component": "fetch"})

	tagged.IncrementCounter("task.runs", nil)

	// Derived instances share the parent registry.
	count, err := testutil.GatherAndCount(metrics.Registry(), "urlget_task_runs_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	families, err := metrics.Registry().Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	labels := families[0].GetMetric()[0].GetLabel()
	require.Len(t, labels, 1)
	assert.Equal(t, "component", labels[0].GetName())
	assert.Equal(t, "fetch", labels[0].GetValue())
}

func TestMetrics_Push(t *testing.T) {
	var pushed bool
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pushed = true
		assert.Contains(t, r.URL.Path, "/metrics/job/urlget")
		w.WriteHeader(http.StatusOK)
	}))
	defer gateway.Close()

	metrics := New("urlget")
	metrics.IncrementCounter("task.runs", nil)

	require.NoError(t, metrics.Push(gateway.URL, "urlget"))
	assert.True(t, pushed)
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "task_runs", sanitize("task.runs"))
	assert.Equal(t, "error_kind", sanitize("error-kind"))
	assert.Equal(t, "plain", sanitize("plain"))
}
