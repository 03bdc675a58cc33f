// Package logging wraps charmbracelet/log for glyphedit.
//
// The editor core has no user-facing error channel. Problems found while
// loading language definitions or configuration are reported here and the
// core carries on with whatever was valid.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	defaultMu     sync.Mutex
	defaultLogger *log.Logger
)

// Field names shared by log call sites.
const (
	FieldError    = "err"
	FieldLanguage = "language"
	FieldPattern  = "pattern"
	FieldPath     = "path"
	FieldLines    = "lines"
	FieldFrom     = "from"
	FieldTo       = "to"
	FieldCommand  = "command"
	FieldScript   = "script"
	FieldSteps    = "steps"
	FieldVersion  = "version"
	FieldCommit   = "commit"
	FieldBuilt    = "built"
)

// New creates a logger writing to stderr at the given level.
// Valid levels: "debug", "info", "warn", "error". Anything else means info.
func New(level string) *log.Logger {
	return NewWriter(os.Stderr, level)
}

// NewWriter creates a logger writing to w.
func NewWriter(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
		Prefix:          "glyphedit",
	})
	logger.SetLevel(ParseLevel(level))
	return logger
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return NewWriter(io.Discard, "error")
}

// ParseLevel converts a level name to a log.Level.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// Default returns the package-level logger.
func Default() *log.Logger {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		defaultLogger = New("info")
	}
	return defaultLogger
}

// SetDefault replaces the package-level logger.
func SetDefault(logger *log.Logger) {
	defaultMu.Lock()
	defaultLogger = logger
	defaultMu.Unlock()
}

// SetLevel updates the level of the package-level logger.
func SetLevel(level string) {
	Default().SetLevel(ParseLevel(level))
}

// OrDefault returns logger, or the package-level logger when it is nil.
func OrDefault(logger *log.Logger) *log.Logger {
	if logger != nil {
		return logger
	}
	return Default()
}
