// Package zhlog provides the process-wide structured logger shared by
// every package in the engine, wrapping zerolog the way the wider example
// corpus wires up structured logging for service-style code.
package zhlog

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.Mutex
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
)

// SetLogger replaces the global logger, e.g. to redirect output to a file
// or switch to JSON output for the daemon.
func SetLogger(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// Logger returns the current global logger, or a no-op logger when the
// lock is held elsewhere, so a contended log line is dropped.
func Logger() zerolog.Logger {
	if !mu.TryLock() {
		return zerolog.Nop()
	}
	defer mu.Unlock()
	return logger
}
