// FILE: lixenwraith/colog/sink.go
package colog

import (
	"errors"
	"io"
	"sync"
	"syscall"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Sink is an output endpoint with write and flush capabilities. Sinks must
// be safe to call from the async backend's worker goroutine concurrently
// with any other goroutine that might hold a reference; that is the sink's
// responsibility, not the caller's.
type Sink interface {
	Write(text string) error
	Flush() error
}

// ConsoleSink writes to an io.Writer (typically os.Stdout/os.Stderr) under
// a mutex, grounded on original_source/.../console_sink.cpp and the
// teacher's stdout-writer handling in logger.go.
type ConsoleSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsoleSink wraps w as a Sink.
func NewConsoleSink(w io.Writer) *ConsoleSink {
	return &ConsoleSink{w: w}
}

func (c *ConsoleSink) Write(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := io.WriteString(c.w, text)
	return err
}

func (c *ConsoleSink) Flush() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if f, ok := c.w.(interface{ Sync() error }); ok {
		// A pipe or terminal rejects fsync with EINVAL; there is nothing
		// buffered to flush in that case, so it is not reported.
		if err := f.Sync(); err != nil && !errors.Is(err, syscall.EINVAL) {
			return err
		}
	}
	return nil
}

// FileSink writes to a rotating log file. Rotation, age- and size-based
// retention are delegated to gopkg.in/natefinch/lumberjack.v2 rather than
// hand-rolled (the teacher's storage.go implements this by hand; lumberjack
// is the ecosystem library built for exactly that job, and was already an
// indirect dependency of the teacher's own go.mod).
type FileSink struct {
	mu sync.Mutex
	lj *lumberjack.Logger
}

// FileSinkConfig mirrors the subset of the teacher's storage-related Config
// fields that govern a single rotating file.
type FileSinkConfig struct {
	Directory  string // destination directory
	Name       string // base file name, without extension
	Extension  string // file extension, without leading dot
	MaxSizeMB  int    // rotate once the active file reaches this size
	MaxBackups int    // number of rotated files to retain
	MaxAgeDays int    // days to retain rotated files, 0 = forever
	Compress   bool   // gzip rotated files
}

// NewFileSink configures the rotating log file. The file is opened (or
// created) lazily by lumberjack on first write and is always appended to;
// there is no option to truncate an existing file. The core sees only
// constructed sinks, never an open-failure.
func NewFileSink(cfg FileSinkConfig) *FileSink {
	ext := cfg.Extension
	if ext == "" {
		ext = "log"
	}
	name := cfg.Name
	if name == "" {
		name = "colog"
	}
	return &FileSink{
		lj: &lumberjack.Logger{
			Filename:   cfg.Directory + "/" + name + "." + ext,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		},
	}
}

func (f *FileSink) Write(text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, err := f.lj.Write([]byte(text))
	return err
}

func (f *FileSink) Flush() error {
	// lumberjack has no explicit fsync; Close+reopen is destructive, so
	// flush is a no-op here. The OS write buffer is as durable as the
	// underlying *os.File already provides on every Write.
	return nil
}

// Close closes the active file handle. Safe to call even if the file was
// never opened (e.g. the sink never received a write).
func (f *FileSink) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lj.Close()
}

// Rotate forces an immediate rotation, exposed for retention-policy callers
// that want to roll the file outside of the size-triggered path.
func (f *FileSink) Rotate() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lj.Rotate()
}

// NullSink discards everything written to it, grounded on
// original_source/.../null_sink.h.
type NullSink struct{}

// NewNullSink returns a Sink that discards all writes.
func NewNullSink() *NullSink { return &NullSink{} }

func (NullSink) Write(string) error { return nil }
func (NullSink) Flush() error       { return nil }
