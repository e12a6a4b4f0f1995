package domain

import "fmt"

// ErrorKind classifies task failures for the caller.
type ErrorKind string

const (
	// KindConfiguration marks failures detected before any I/O.
	KindConfiguration ErrorKind = "CONFIGURATION_ERROR"
	// KindNetwork marks HEAD or GET failures (connection, DNS, TLS, status).
	KindNetwork ErrorKind = "NETWORK_ERROR"
	// KindFilesystem marks destination metadata or write failures.
	KindFilesystem ErrorKind = "FILESYSTEM_ERROR"
)

// TaskError is the single error type surfaced by a task invocation.
// Every TaskError is terminal; the calling engine owns any retry policy.
type TaskError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *TaskError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *TaskError) Unwrap() error {
	return e.Err
}

// NewTaskError creates a new task error wrapping an optional cause.
func NewTaskError(kind ErrorKind, message string, err error) *TaskError {
	return &TaskError{
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// KindOf returns the kind of a task error, or KindNetwork for
// unclassified errors so the caller always gets a stable code.
func KindOf(err error) ErrorKind {
	if te, ok := err.(*TaskError); ok {
		return te.Kind
	}
	return KindNetwork
}
