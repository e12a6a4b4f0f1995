package observability

// Logger defines the interface for structured logging.
type Logger interface {
	// Info logs informational messages for normal operations.
	Info(msg string, fields ...interface{})

	// Error logs error conditions. Always pass the actual error as a
	// field value; implementations extract the message.
	Error(msg string, fields ...interface{})

	// WithFields returns a new Logger with the given fields added to all
	// subsequent logs. Useful for consistent context like invocation_id.
	WithFields(fields map[string]interface{}) Logger
}

// Metrics defines the interface for recording invocation metrics.
type Metrics interface {
	// IncrementCounter increments a counter metric by 1.
	IncrementCounter(name string, tags map[string]string)

	// RecordHistogram records a value in a histogram distribution.
	// Use for latencies and sizes.
	RecordHistogram(name string, value float64, tags map[string]string)

	// RecordGauge records a point-in-time measurement.
	RecordGauge(name string, value float64, tags map[string]string)

	// WithTags returns a new Metrics instance with additional default tags.
	WithTags(tags map[string]string) Metrics
}
