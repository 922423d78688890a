// FILE: lixenwraith/colog/logger.go
package colog

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/colog/async"
)

// asyncSubmitter is the subset of async.Backend a Logger needs, kept as an
// interface so tests can substitute a fake without depending on the async
// package's concrete type.
type asyncSubmitter interface {
	Submit(item async.Item) bool
}

// Logger is the synchronous, named front-end of spec.md's external
// collaborators: a level, an ordered sink list, a formatter, and a mutex
// guarding sink dispatch — grounded on original_source/.../logger.h/.cpp
// and the teacher's Logger type.
type Logger struct {
	name  string
	level atomic.Int32 // holds a Level

	mu        sync.Mutex
	sinks     []Sink
	formatter Formatter

	// backend, when non-nil, redirects the write path from direct
	// synchronous sink dispatch to Submit on the async core — the seam
	// between the thin glue and the rigorously specified backend.
	backend asyncSubmitter
}

// NewLogger constructs a Logger from a validated Config. name identifies
// the logger in Record.LoggerName and in a Registry.
func NewLogger(name string, cfg *Config) (*Logger, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	l := &Logger{name: name}
	l.level.Store(int32(level))

	if cfg.Format == "json" {
		jf := NewJSONFormatter()
		jf.TimestampFormat = cfg.TimestampFormat
		l.formatter = jf
	} else {
		tf := NewTextFormatter()
		tf.TimestampFormat = cfg.TimestampFormat
		l.formatter = tf
	}

	if cfg.EnableConsole {
		target := os.Stdout
		if cfg.ConsoleTarget == "stderr" {
			target = os.Stderr
		}
		l.sinks = append(l.sinks, NewConsoleSink(target))
	}
	if cfg.EnableFile {
		l.sinks = append(l.sinks, NewFileSink(FileSinkConfig{
			Directory:  cfg.Directory,
			Name:       cfg.Name,
			Extension:  cfg.Extension,
			MaxSizeMB:  cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAgeDays: cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		}))
	}

	return l, nil
}

// Name returns the logger's registry name.
func (l *Logger) Name() string { return l.name }

// Level returns the current minimum dispatch level.
func (l *Logger) Level() Level { return Level(l.level.Load()) }

// SetLevel changes the minimum dispatch level at runtime.
func (l *Logger) SetLevel(level Level) { l.level.Store(int32(level)) }

// AddSink appends a sink to the dispatch list. Safe to call concurrently
// with logging.
func (l *Logger) AddSink(s Sink) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sinks = append(l.sinks, s)
}

// SetFormatter replaces the active formatter.
func (l *Logger) SetFormatter(f Formatter) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.formatter = f
}

// EnableAsync switches the Logger's write path to submit through backend
// instead of dispatching to sinks directly on the calling goroutine. The
// Logger's own sinks and formatter are carried into every async.Item it
// submits, so the backend's worker still writes through them — only the
// dispatch point moves off the caller's goroutine.
func (l *Logger) EnableAsync(backend *async.Backend) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.backend = backend
	internalLog("async dispatch enabled", "logger", l.name)
}

// DisableAsync reverts to direct, synchronous sink dispatch.
func (l *Logger) DisableAsync() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.backend = nil
}

// WithFields returns a lightweight logging handle that attaches fields to
// every record it produces. It shares this Logger's sinks, formatter and
// backend — it is not an independent Logger and carries no registry entry.
func (l *Logger) WithFields(fields map[string]any) *FieldLogger {
	return &FieldLogger{logger: l, fields: fields}
}

func (l *Logger) log(level Level, skip int, message string, fields map[string]any) {
	if level < l.Level() {
		return
	}
	r := newRecord(level, l.name, message, skip+1)
	r.Fields = fields
	l.dispatch(r)
}

func (l *Logger) dispatch(r Record) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.backend != nil {
		item := async.Item{
			Record:    toAsyncRecord(r),
			Formatter: asyncFormatterAdapter{l.formatter},
			Sinks:     toAsyncSinks(l.sinks),
		}
		if !l.backend.Submit(item) {
			internalWarn("record dropped: async queue full or backend stopped", "logger", l.name)
		}
		return
	}

	// l.mu stays held through format and write, not just the backend/sinks
	// read above: the formatter's Sanitizer reuses a mutable buffer across
	// calls, so concurrent Format calls on the same Logger would race on it
	// otherwise. The original locks the same way around format_() and the
	// sink writes (logger.cpp:22-27).
	text := l.formatter.Format(r)
	for _, s := range l.sinks {
		if err := s.Write(text); err != nil {
			internalWarn("sink write failed", "logger", l.name, "error", err)
		}
	}
}

// Flush synchronously flushes every attached sink, matching the original's
// Logger::flush.
func (l *Logger) Flush() error {
	l.mu.Lock()
	sinks := append([]Sink(nil), l.sinks...)
	l.mu.Unlock()

	var err error
	for _, s := range sinks {
		if ferr := s.Flush(); ferr != nil {
			err = combineErrors(err, ferr)
		}
	}
	return err
}

// Trace logs at LevelTrace.
func (l *Logger) Trace(args ...any) { l.log(LevelTrace, 1, fmt.Sprint(args...), nil) }

// Debug logs at LevelDebug.
func (l *Logger) Debug(args ...any) { l.log(LevelDebug, 1, fmt.Sprint(args...), nil) }

// Info logs at LevelInfo.
func (l *Logger) Info(args ...any) { l.log(LevelInfo, 1, fmt.Sprint(args...), nil) }

// Warn logs at LevelWarn.
func (l *Logger) Warn(args ...any) { l.log(LevelWarn, 1, fmt.Sprint(args...), nil) }

// Error logs at LevelError.
func (l *Logger) Error(args ...any) { l.log(LevelError, 1, fmt.Sprint(args...), nil) }

// Critical logs at LevelCritical.
func (l *Logger) Critical(args ...any) { l.log(LevelCritical, 1, fmt.Sprint(args...), nil) }

// Tracef logs a printf-style message at LevelTrace.
func (l *Logger) Tracef(format string, args ...any) { l.log(LevelTrace, 1, fmt.Sprintf(format, args...), nil) }

// Debugf logs a printf-style message at LevelDebug.
func (l *Logger) Debugf(format string, args ...any) { l.log(LevelDebug, 1, fmt.Sprintf(format, args...), nil) }

// Infof logs a printf-style message at LevelInfo.
func (l *Logger) Infof(format string, args ...any) { l.log(LevelInfo, 1, fmt.Sprintf(format, args...), nil) }

// Warnf logs a printf-style message at LevelWarn.
func (l *Logger) Warnf(format string, args ...any) { l.log(LevelWarn, 1, fmt.Sprintf(format, args...), nil) }

// Errorf logs a printf-style message at LevelError.
func (l *Logger) Errorf(format string, args ...any) { l.log(LevelError, 1, fmt.Sprintf(format, args...), nil) }

// Criticalf logs a printf-style message at LevelCritical.
func (l *Logger) Criticalf(format string, args ...any) {
	l.log(LevelCritical, 1, fmt.Sprintf(format, args...), nil)
}

// FieldLogger attaches a fixed set of structured fields to every record it
// produces, supplementing the teacher's dropped LogStructured feature.
type FieldLogger struct {
	logger *Logger
	fields map[string]any
}

func (fl *FieldLogger) log(level Level, message string) {
	// skip is 2, not 1: FieldLogger.log sits one frame deeper than a direct
	// Logger.Trace/.../Critical call (Logger.log -> FieldLogger.log ->
	// FieldLogger.Trace/.../Critical -> caller), so newRecord needs one more
	// frame skipped to land File/Line/Func on the real call site.
	fl.logger.log(level, 2, message, fl.fields)
}

// Trace logs at LevelTrace with the attached fields.
func (fl *FieldLogger) Trace(message string) { fl.log(LevelTrace, message) }

// Debug logs at LevelDebug with the attached fields.
func (fl *FieldLogger) Debug(message string) { fl.log(LevelDebug, message) }

// Info logs at LevelInfo with the attached fields.
func (fl *FieldLogger) Info(message string) { fl.log(LevelInfo, message) }

// Warn logs at LevelWarn with the attached fields.
func (fl *FieldLogger) Warn(message string) { fl.log(LevelWarn, message) }

// Error logs at LevelError with the attached fields.
func (fl *FieldLogger) Error(message string) { fl.log(LevelError, message) }

// Critical logs at LevelCritical with the attached fields.
func (fl *FieldLogger) Critical(message string) { fl.log(LevelCritical, message) }
