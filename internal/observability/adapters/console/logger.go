package console

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"urlget/internal/observability"
)

// Logger implements observability.Logger on stderr. Stdout is reserved for
// the result object read by the calling engine.
type Logger struct {
	fields map[string]interface{}
	json   bool
	logger *log.Logger
}

// NewLogger creates a new structured logger.
func NewLogger(jsonOutput bool) observability.Logger {
	return &Logger{
		fields: make(map[string]interface{}),
		json:   jsonOutput,
		logger: log.New(os.Stderr, "", 0),
	}
}

// Info logs informational messages.
func (l *Logger) Info(msg string, fields ...interface{}) {
	l.log("INFO", msg, fields...)
}

// Error logs error messages.
func (l *Logger) Error(msg string, fields ...interface{}) {
	l.log("ERROR", msg, fields...)
}

// WithFields returns a new Logger with additional fields.
func (l *Logger) WithFields(fields map[string]interface{}) observability.Logger {
	newFields := make(map[string]interface{}, len(l.fields)+len(fields))
	for k, v := range l.fields {
		newFields[k] = v
	}
	for k, v := range fields {
		newFields[k] = v
	}
	return &Logger{
		fields: newFields,
		json:   l.json,
		logger: l.logger,
	}
}

func (l *Logger) log(level string, msg string, fields ...interface{}) {
	entry := l.createLogEntry(level, msg, fields...)
	if l.json {
		l.logJSON(entry)
	} else {
		l.logText(entry)
	}
}

func (l *Logger) createLogEntry(level string, msg string, fields ...interface{}) map[string]interface{} {
	entry := make(map[string]interface{})
	entry["timestamp"] = time.Now().UTC().Format(time.RFC3339)
	entry["level"] = level
	entry["message"] = msg

	for k, v := range l.fields {
		entry[k] = v
	}

	// Variadic fields arrive as key1, value1, key2, value2, ...
	for i := 0; i < len(fields)-1; i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		if err, ok := fields[i+1].(error); ok && err != nil {
			entry[key] = err.Error()
		} else {
			entry[key] = fields[i+1]
		}
	}

	return entry
}

func (l *Logger) logJSON(entry map[string]interface{}) {
	jsonBytes, err := json.Marshal(entry)
	if err != nil {
		l.logger.Printf("Failed to marshal log entry: %v", err)
		return
	}
	l.logger.Println(string(jsonBytes))
}

func (l *Logger) logText(entry map[string]interface{}) {
	timestamp := entry["timestamp"]
	level := entry["level"]
	message := entry["message"]
	delete(entry, "timestamp")
	delete(entry, "level")
	delete(entry, "message")

	var fieldStrs []string
	for k, v := range entry {
		fieldStrs = append(fieldStrs, fmt.Sprintf("%s=%v", k, v))
	}

	logLine := fmt.Sprintf("%s [%s] %s", timestamp, level, message)
	if len(fieldStrs) > 0 {
		logLine += " | " + strings.Join(fieldStrs, " ")
	}
	l.logger.Println(logLine)
}
