// FILE: lixenwraith/colog/compat/fasthttp.go
// Package compat adapts colog.Logger to the logging interfaces expected by
// unrelated networking libraries, grounded on the teacher's compat package.
package compat

import (
	"fmt"
	"strings"

	"github.com/valyala/fasthttp"

	"github.com/lixenwraith/colog"
)

// Compile-time assertion that FastHTTPAdapter satisfies fasthttp's own
// Logger interface, not just a structurally identical one.
var _ fasthttp.Logger = (*FastHTTPAdapter)(nil)

// FastHTTPAdapter satisfies fasthttp's Logger interface (a single
// Printf(string, ...any) method) atop a colog.Logger.
type FastHTTPAdapter struct {
	logger        *colog.Logger
	defaultLevel  colog.Level
	levelDetector func(string) colog.Level
}

// FastHTTPOption customizes a FastHTTPAdapter at construction.
type FastHTTPOption func(*FastHTTPAdapter)

// NewFastHTTPAdapter wraps logger for use as a fasthttp.Logger.
func NewFastHTTPAdapter(logger *colog.Logger, opts ...FastHTTPOption) *FastHTTPAdapter {
	a := &FastHTTPAdapter{
		logger:        logger,
		defaultLevel:  colog.LevelInfo,
		levelDetector: DetectLogLevel,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// WithDefaultLevel sets the level used when the detector finds no match,
// that is, when it returns LevelInfo (DetectLogLevel's result for a message
// with no level keyword).
func WithDefaultLevel(level colog.Level) FastHTTPOption {
	return func(a *FastHTTPAdapter) { a.defaultLevel = level }
}

// WithLevelDetector overrides the message-content level heuristic.
func WithLevelDetector(detector func(string) colog.Level) FastHTTPOption {
	return func(a *FastHTTPAdapter) { a.levelDetector = detector }
}

// Printf implements fasthttp's Logger interface.
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	level := a.defaultLevel
	if a.levelDetector != nil {
		if detected := a.levelDetector(msg); detected != colog.LevelInfo {
			level = detected
		}
	}

	fl := a.logger.WithFields(map[string]any{"source": "fasthttp"})
	switch level {
	case colog.LevelDebug:
		fl.Debug(msg)
	case colog.LevelWarn:
		fl.Warn(msg)
	case colog.LevelError:
		fl.Error(msg)
	default:
		fl.Info(msg)
	}
}

// DetectLogLevel guesses a severity from fasthttp's free-form message text.
func DetectLogLevel(msg string) colog.Level {
	lower := strings.ToLower(msg)

	switch {
	case strings.Contains(lower, "error") || strings.Contains(lower, "failed") ||
		strings.Contains(lower, "fatal") || strings.Contains(lower, "panic"):
		return colog.LevelError
	case strings.Contains(lower, "warn") || strings.Contains(lower, "deprecated"):
		return colog.LevelWarn
	case strings.Contains(lower, "debug") || strings.Contains(lower, "trace"):
		return colog.LevelDebug
	default:
		return colog.LevelInfo
	}
}
