// SPDX-License-Identifier: MIT

// Package diag defines the diagnostic reporting contract used by the
// alignment engines.
//
// The engines never log directly: they receive a Reporter through their
// options and call it on validation failures (LevelError) and, in the
// pipeline, on per-round progress. The default is Discard.
//
// Implementations:
//   - Discard: drops everything.
//   - Func: adapts a plain function.
//   - NewLogrus: forwards to a logrus.FieldLogger (what the CLI uses).
//   - Recorder: keeps entries in memory (tests, embedding hosts).
//
// All implementations in this package are safe for concurrent use, provided
// that the function handed to Func is.
package diag

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// Level is the severity of a diagnostic message.
type Level int

const (
	// LevelDebug carries tracing detail.
	LevelDebug Level = iota
	// LevelInfo carries progress information.
	LevelInfo
	// LevelWarning flags a suspicious but non-fatal condition.
	LevelWarning
	// LevelError accompanies a failed call; the error is also returned.
	LevelError
)

// String returns the lower-case level name.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	}

	return fmt.Sprintf("level(%d)", int(l))
}

// Reporter receives diagnostic messages. Report must not block for long.
type Reporter interface {
	Report(msg string, level Level)
}

// Func adapts an ordinary function to the Reporter interface.
type Func func(msg string, level Level)

// Report calls f(msg, level).
func (f Func) Report(msg string, level Level) { f(msg, level) }

type discard struct{}

func (discard) Report(string, Level) {}

// Discard is a Reporter that drops every message.
var Discard Reporter = discard{}

// OrDiscard returns r, or Discard when r is nil.
func OrDiscard(r Reporter) Reporter {
	if r == nil {
		return Discard
	}

	return r
}

// Reportf formats and reports a message; a nil Reporter is a no-op.
func Reportf(r Reporter, level Level, format string, args ...any) {
	if r == nil {
		return
	}
	r.Report(fmt.Sprintf(format, args...), level)
}

// Fail reports err at LevelError and returns it unchanged, so validation
// sites can write `return nil, diag.Fail(r, err)`.
func Fail(r Reporter, err error) error {
	if err != nil && r != nil {
		r.Report(err.Error(), LevelError)
	}

	return err
}

// logrusReporter forwards to a logrus logger.
type logrusReporter struct {
	log logrus.FieldLogger
}

// NewLogrus returns a Reporter writing to l (logrus.StandardLogger() when nil).
func NewLogrus(l logrus.FieldLogger) Reporter {
	if l == nil {
		l = logrus.StandardLogger()
	}

	return &logrusReporter{log: l}
}

func (r *logrusReporter) Report(msg string, level Level) {
	switch level {
	case LevelDebug:
		r.log.Debug(msg)
	case LevelInfo:
		r.log.Info(msg)
	case LevelWarning:
		r.log.Warn(msg)
	default:
		r.log.Error(msg)
	}
}

// Entry is one recorded diagnostic.
type Entry struct {
	Message string
	Level   Level
}

// Recorder stores every reported message in order.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// Report appends the message.
func (r *Recorder) Report(msg string, level Level) {
	r.mu.Lock()
	r.entries = append(r.entries, Entry{Message: msg, Level: level})
	r.mu.Unlock()
}

// Entries returns a copy of the recorded messages.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Entry(nil), r.entries...)
}

// Count returns how many messages were recorded at the given level.
func (r *Recorder) Count(level Level) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.entries {
		if e.Level == level {
			n++
		}
	}

	return n
}
