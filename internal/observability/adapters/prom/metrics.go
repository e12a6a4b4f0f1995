// Package prom provides a Prometheus-backed implementation of the Metrics
// port. One-shot invocations cannot be scraped, so collected samples are
// pushed to a Pushgateway after the run when one is configured.
package prom

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"urlget/internal/observability"
)

// Metrics implements observability.Metrics using the Prometheus client
// library with a private registry.
type Metrics struct {
	state *state
	tags  map[string]string
}

// state is shared between WithTags derivatives.
type state struct {
	namespace string
	registry  *prometheus.Registry

	mu         sync.Mutex
	counters   map[string]*prometheus.CounterVec
	histograms map[string]*prometheus.HistogramVec
	gauges     map[string]*prometheus.GaugeVec
}

// New creates a new Prometheus metrics instance. The namespace prefixes all
// metric names; metric and label names are sanitized to Prometheus rules.
func New(namespace string) *Metrics {
	return &Metrics{
		state: &state{
			namespace:  sanitize(namespace),
			registry:   prometheus.NewRegistry(),
			counters:   make(map[string]*prometheus.CounterVec),
			histograms: make(map[string]*prometheus.HistogramVec),
			gauges:     make(map[string]*prometheus.GaugeVec),
		},
		tags: make(map[string]string),
	}
}

// IncrementCounter increments a counter metric.
func (m *Metrics) IncrementCounter(name string, tags map[string]string) {
	labels := m.combineTags(tags)
	vec := m.state.counter(name, labelNames(labels))
	vec.With(prometheus.Labels(labels)).Inc()
}

// RecordHistogram records a histogram value with default buckets.
func (m *Metrics) RecordHistogram(name string, value float64, tags map[string]string) {
	labels := m.combineTags(tags)
	vec := m.state.histogram(name, labelNames(labels))
	vec.With(prometheus.Labels(labels)).Observe(value)
}

// RecordGauge records a gauge value.
func (m *Metrics) RecordGauge(name string, value float64, tags map[string]string) {
	labels := m.combineTags(tags)
	vec := m.state.gauge(name, labelNames(labels))
	vec.With(prometheus.Labels(labels)).Set(value)
}

// WithTags returns a new Metrics instance with additional default tags.
// The underlying registry is shared.
func (m *Metrics) WithTags(tags map[string]string) observability.Metrics {
	newTags := make(map[string]string, len(m.tags)+len(tags))
	for k, v := range m.tags {
		newTags[k] = v
	}
	for k, v := range tags {
		newTags[k] = v
	}
	return &Metrics{state: m.state, tags: newTags}
}

// Registry exposes the private registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.state.registry
}

// Push delivers all collected samples to a Pushgateway under the given job
// name. Call once, after the invocation has produced its result.
func (m *Metrics) Push(gatewayURL, job string) error {
	if err := push.New(gatewayURL, job).Gatherer(m.state.registry).Push(); err != nil {
		return fmt.Errorf("pushing metrics to %s: %w", gatewayURL, err)
	}
	return nil
}

func (m *Metrics) combineTags(tags map[string]string) map[string]string {
	labels := make(map[string]string, len(m.tags)+len(tags))
	for k, v := range m.tags {
		labels[sanitize(k)] = v
	}
	for k, v := range tags {
		labels[sanitize(k)] = v
	}
	return labels
}

func (s *state) counter(name string, labels []string) *prometheus.CounterVec {
	s.mu.Lock()
	defer s.mu.Unlock()

	full := s.metricName(name)
	if vec, ok := s.counters[full]; ok {
		return vec
	}
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: full + "_total",
		Help: fmt.Sprintf("Total %s events", name),
	}, labels)
	s.registry.MustRegister(vec)
	s.counters[full] = vec
	return vec
}

func (s *state) histogram(name string, labels []string) *prometheus.HistogramVec {
	s.mu.Lock()
	defer s.mu.Unlock()

	full := s.metricName(name)
	if vec, ok := s.histograms[full]; ok {
		return vec
	}
	vec := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    full,
		Help:    fmt.Sprintf("Distribution of %s", name),
		Buckets: prometheus.DefBuckets,
	}, labels)
	s.registry.MustRegister(vec)
	s.histograms[full] = vec
	return vec
}

func (s *state) gauge(name string, labels []string) *prometheus.GaugeVec {
	s.mu.Lock()
	defer s.mu.Unlock()

	full := s.metricName(name)
	if vec, ok := s.gauges[full]; ok {
		return vec
	}
	vec := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: full,
		Help: fmt.Sprintf("Current value of %s", name),
	}, labels)
	s.registry.MustRegister(vec)
	s.gauges[full] = vec
	return vec
}

func (s *state) metricName(name string) string {
	return s.namespace + "_" + sanitize(name)
}

func labelNames(labels map[string]string) []string {
	names := make([]string, 0, len(labels))
	for k := range labels {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// sanitize maps arbitrary metric/label names onto the Prometheus charset.
func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, name)
}
