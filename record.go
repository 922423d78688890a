// FILE: lixenwraith/colog/record.go
package colog

import (
	"path/filepath"
	"runtime"
	"time"
)

// Record is the value type produced on the hot path of every log call.
//
// LoggerName is always an owned copy, never a borrow into transient
// storage: a Record crosses goroutines through the async queue, and a
// non-owning view (e.g. a slice of a reused buffer) would dangle or race
// once the originating call frame returns.
type Record struct {
	Timestamp  time.Time
	Level      Level
	Message    string
	LoggerName string
	File       string
	Line       int
	Func       string

	// Fields carries structured key/value context attached via
	// Logger.WithFields, supplementing the plain
	// Message the way the teacher's LogStructured does.
	Fields map[string]any
}

// newRecord captures a Record at the call site, skip frames up from its
// own caller. skip follows runtime.Caller semantics: 0 means "the caller
// of newRecord".
func newRecord(level Level, loggerName, message string, skip int) Record {
	r := Record{
		Timestamp:  time.Now(),
		Level:      level,
		Message:    message,
		LoggerName: loggerName,
	}
	if pc, file, line, ok := runtime.Caller(skip + 1); ok {
		r.File = filepath.Base(file)
		r.Line = line
		if fn := runtime.FuncForPC(pc); fn != nil {
			r.Func = shortFuncName(fn.Name())
		}
	}
	return r
}

// shortFuncName strips the package path prefix a runtime function name
// carries, keeping only the last dotted component, the way the teacher's
// getTrace collapses a frame to its bare function name.
func shortFuncName(full string) string {
	base := filepath.Base(full)
	for i := len(base) - 1; i >= 0; i-- {
		if base[i] == '.' {
			return base[i+1:]
		}
	}
	return base
}
