package common

import (
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
)

// LogWriter buffers trace lines and fatal errors for one logical call, the
// way the teacher's compiler passes a *LogWriter through Compile and the
// language server. Unlike the teacher, reduct and unify never touch one —
// they are pure functions — this exists for the demo binary to report what
// happened.
type LogWriter struct {
	mu     sync.Mutex
	out    io.Writer
	id     string
	traces []string
	errs   []error
}

// NewLogWriter creates a LogWriter tagged with a fresh correlation id, so
// that concurrent callers' trace lines can be told apart in a shared
// io.Writer.
func NewLogWriter(out io.Writer) *LogWriter {
	return &LogWriter{out: out, id: uuid.NewString()}
}

// Trace records an informational line.
func (l *LogWriter) Trace(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	line := fmt.Sprintf(format, args...)
	l.traces = append(l.traces, line)
	if l.out != nil {
		fmt.Fprintf(l.out, "[%s] %s\n", l.id, line)
	}
}

// Err records a fatal error without panicking.
func (l *LogWriter) Err(err error) {
	if err == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errs = append(l.errs, err)
	if l.out != nil {
		fmt.Fprintf(l.out, "[%s] error: %v\n", l.id, err)
	}
}

// HasErrors reports whether any fatal error has been recorded.
func (l *LogWriter) HasErrors() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.errs) > 0
}

// Errors returns the recorded fatal errors, in recording order.
func (l *LogWriter) Errors() []error {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]error, len(l.errs))
	copy(out, l.errs)
	return out
}

// Traces returns the recorded trace lines, in recording order.
func (l *LogWriter) Traces() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.traces))
	copy(out, l.traces)
	return out
}
