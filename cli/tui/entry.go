package tui

import (
	"fmt"
	"strings"
	"time"
)

// Entry is one executed command line in the console scrollback.
type Entry struct {
	Line     string
	Output   string
	Code     int
	Err      error
	Duration time.Duration
}

// Failed reports whether the command was rejected or exited non-zero.
func (e *Entry) Failed() bool {
	return e.Err != nil || e.Code != 0
}

// DisplayStatus returns the exit code and duration, e.g. "[0] 1.2ms".
func (e *Entry) DisplayStatus() string {
	return fmt.Sprintf("[%d] %s", e.Code, e.Duration.Round(100*time.Microsecond))
}

// DisplayOutput returns the output without its trailing newline, followed by
// the error if there is one.
func (e *Entry) DisplayOutput() string {
	out := strings.TrimRight(e.Output, "\n")
	if e.Err == nil {
		return out
	}
	if out == "" {
		return "error: " + e.Err.Error()
	}
	return out + "\nerror: " + e.Err.Error()
}

// Icon returns a marker for the outcome
func (e *Entry) Icon() string {
	if e.Failed() {
		return "✗"
	}
	return "✓"
}
