package mocks

import (
	"urlget/internal/observability"
)

// NoopLogger is a Logger that discards everything. Most service tests only
// care about behavior, not log output.
type NoopLogger struct{}

func (NoopLogger) Info(msg string, fields ...interface{})  {}
func (NoopLogger) Error(msg string, fields ...interface{}) {}
func (l NoopLogger) WithFields(fields map[string]interface{}) observability.Logger {
	return l
}

// NoopMetrics is a Metrics that discards everything.
type NoopMetrics struct{}

func (NoopMetrics) IncrementCounter(name string, tags map[string]string)              {}
func (NoopMetrics) RecordHistogram(name string, value float64, tags map[string]string) {}
func (NoopMetrics) RecordGauge(name string, value float64, tags map[string]string)     {}
func (m NoopMetrics) WithTags(tags map[string]string) observability.Metrics {
	return m
}
