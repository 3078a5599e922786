// Package log wraps klog so the rest of the code shares a single leveled
// logging surface and does not import klog directly.
package log

import (
	"fmt"

	"k8s.io/klog/v2"
)

// StderrLog logs to stderr.
var StderrLog = Logger{}

// Logger provides leveled logging backed by klog.
type Logger struct{}

// Verbose is a boolean guard for a given verbosity level.
type Verbose bool

// V returns a Verbose guard that only logs when the configured verbosity is
// at least level.
func (l Logger) V(level int32) Verbose {
	return Verbose(bool(klog.V(klog.Level(level)).Enabled()))
}

// Is returns true when logging at the given level is enabled.
func (l Logger) Is(level int32) bool {
	return bool(l.V(level))
}

// Info logs at the default level.
func (l Logger) Info(args ...interface{}) {
	klog.InfoDepth(1, args...)
}

// Infof logs at the default level.
func (l Logger) Infof(format string, args ...interface{}) {
	klog.InfoDepth(1, fmt.Sprintf(format, args...))
}

// Warning logs a warning.
func (l Logger) Warning(args ...interface{}) {
	klog.WarningDepth(1, args...)
}

// Warningf logs a warning.
func (l Logger) Warningf(format string, args ...interface{}) {
	klog.WarningDepth(1, fmt.Sprintf(format, args...))
}

// Error logs an error.
func (l Logger) Error(args ...interface{}) {
	klog.ErrorDepth(1, args...)
}

// Errorf logs an error.
func (l Logger) Errorf(format string, args ...interface{}) {
	klog.ErrorDepth(1, fmt.Sprintf(format, args...))
}

// Fatal logs and exits.
func (l Logger) Fatal(args ...interface{}) {
	klog.FatalDepth(1, args...)
}

// Fatalf logs and exits.
func (l Logger) Fatalf(format string, args ...interface{}) {
	klog.FatalDepth(1, fmt.Sprintf(format, args...))
}

// Info logs at the guarded level.
func (v Verbose) Info(args ...interface{}) {
	if v {
		klog.InfoDepth(1, args...)
	}
}

// Infof logs at the guarded level.
func (v Verbose) Infof(format string, args ...interface{}) {
	if v {
		klog.InfoDepth(1, fmt.Sprintf(format, args...))
	}
}
