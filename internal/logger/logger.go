// Package logger provides verbose logging for the Ladle CLI.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to stderr so users can follow the request pipeline:
// debounce decisions, catalog calls, and how responses were applied.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
)

var verbose atomic.Bool

var (
	mu  sync.Mutex
	out io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	verbose.Store(v)
}

// IsVerbose reports whether verbose mode is enabled.
func IsVerbose() bool {
	return verbose.Load()
}

// SetOutput redirects verbose logs away from os.Stderr. Tests use it
// to capture output.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

// logf prints one prefixed line when verbose mode is enabled.
// All level helpers funnel through here so the output format
// stays uniform.
func logf(prefix, format string, args ...any) {
	if !verbose.Load() {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, prefix+format+"\n", args...)
}

// Debug prints a debug message if verbose mode is enabled.
func Debug(format string, args ...any) {
	logf("[DEBUG] ", format, args...)
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	logf("[INFO] ", format, args...)
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	logf("[WARN] ", format, args...)
}

// Section prints a section header if verbose mode is enabled.
// Used to group the debug output of one pipeline stage.
func Section(name string) {
	if !verbose.Load() {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "\n=== %s ===\n", name)
}
