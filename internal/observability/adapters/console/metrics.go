package console

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"urlget/internal/observability"
)

// Metrics implements observability.Metrics by logging each sample and
// keeping values in memory, which also makes assertions easy in tests.
type Metrics struct {
	tags   map[string]string
	logger *log.Logger
	mu     sync.RWMutex

	counters   map[string]int64
	histograms map[string][]float64
	gauges     map[string]float64
}

// NewMetrics creates a new console metrics instance.
func NewMetrics() *Metrics {
	return &Metrics{
		tags:       make(map[string]string),
		logger:     log.New(os.Stderr, "", 0),
		counters:   make(map[string]int64),
		histograms: make(map[string][]float64),
		gauges:     make(map[string]float64),
	}
}

// IncrementCounter increments a counter metric.
func (m *Metrics) IncrementCounter(name string, tags map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := m.buildKey(name, tags)
	m.counters[key]++
	m.logMetric("COUNTER", name, float64(m.counters[key]), tags)
}

// RecordHistogram records a histogram value.
func (m *Metrics) RecordHistogram(name string, value float64, tags map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := m.buildKey(name, tags)
	m.histograms[key] = append(m.histograms[key], value)
	m.logMetric("HISTOGRAM", name, value, tags)
}

// RecordGauge records a gauge value.
func (m *Metrics) RecordGauge(name string, value float64, tags map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := m.buildKey(name, tags)
	m.gauges[key] = value
	m.logMetric("GAUGE", name, value, tags)
}

// WithTags returns a new Metrics instance with additional default tags.
func (m *Metrics) WithTags(tags map[string]string) observability.Metrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	newTags := make(map[string]string, len(m.tags)+len(tags))
	for k, v := range m.tags {
		newTags[k] = v
	}
	for k, v := range tags {
		newTags[k] = v
	}

	return &Metrics{
		tags:       newTags,
		logger:     m.logger,
		counters:   m.counters, // share the same storage
		histograms: m.histograms,
		gauges:     m.gauges,
	}
}

// GetCounter returns the current value of a counter (useful for testing).
func (m *Metrics) GetCounter(name string, tags map[string]string) int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.counters[m.buildKey(name, tags)]
}

// GetHistogram returns all values recorded for a histogram (useful for testing).
func (m *Metrics) GetHistogram(name string, tags map[string]string) []float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	values := m.histograms[m.buildKey(name, tags)]
	result := make([]float64, len(values))
	copy(result, values)
	return result
}

// GetGauge returns the current value of a gauge (useful for testing).
func (m *Metrics) GetGauge(name string, tags map[string]string) float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.gauges[m.buildKey(name, tags)]
}

// Reset clears all metrics (useful for testing).
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters = make(map[string]int64)
	m.histograms = make(map[string][]float64)
	m.gauges = make(map[string]float64)
}

// buildKey creates a unique key for a metric with tags.
func (m *Metrics) buildKey(name string, tags map[string]string) string {
	allTags := m.combineTags(tags)

	var tagPairs []string
	for k, v := range allTags {
		tagPairs = append(tagPairs, fmt.Sprintf("%s:%s", k, v))
	}
	sort.Strings(tagPairs)

	if len(tagPairs) > 0 {
		return fmt.Sprintf("%s{%s}", name, strings.Join(tagPairs, ","))
	}
	return name
}

func (m *Metrics) logMetric(metricType string, name string, value float64, tags map[string]string) {
	timestamp := time.Now().UTC().Format(time.RFC3339)

	tagStr := ""
	if allTags := m.combineTags(tags); len(allTags) > 0 {
		var tagPairs []string
		for k, v := range allTags {
			tagPairs = append(tagPairs, fmt.Sprintf("%s=%s", k, v))
		}
		sort.Strings(tagPairs)
		tagStr = " " + strings.Join(tagPairs, " ")
	}

	m.logger.Printf("%s [METRIC] %s %s=%.2f%s", timestamp, metricType, name, value, tagStr)
}

func (m *Metrics) combineTags(tags map[string]string) map[string]string {
	allTags := make(map[string]string, len(m.tags)+len(tags))
	for k, v := range m.tags {
		allTags[k] = v
	}
	for k, v := range tags {
		allTags[k] = v
	}
	return allTags
}
