// FILE: lixenwraith/colog/async_adapter.go
package colog

import "github.com/lixenwraith/colog/async"

// toAsyncRecord copies a Record's fields into async's independent Record
// shape for submission across the queue boundary.
func toAsyncRecord(r Record) async.Record {
	return async.Record{
		Timestamp:  r.Timestamp,
		Level:      int8(r.Level),
		Message:    r.Message,
		LoggerName: r.LoggerName,
		File:       r.File,
		Line:       r.Line,
		Func:       r.Func,
		Fields:     r.Fields,
	}
}

// asyncFormatterAdapter satisfies async.Formatter by delegating to a
// colog.Formatter, translating the async.Record it receives back into a
// colog.Record first.
type asyncFormatterAdapter struct {
	f Formatter
}

func (a asyncFormatterAdapter) Format(r async.Record) string {
	return a.f.Format(Record{
		Timestamp:  r.Timestamp,
		Level:      Level(r.Level),
		Message:    r.Message,
		LoggerName: r.LoggerName,
		File:       r.File,
		Line:       r.Line,
		Func:       r.Func,
		Fields:     r.Fields,
	})
}

// asyncSinkAdapter satisfies async.Sink by delegating to a colog.Sink.
type asyncSinkAdapter struct {
	s Sink
}

func (a asyncSinkAdapter) Write(text string) error { return a.s.Write(text) }
func (a asyncSinkAdapter) Flush() error            { return a.s.Flush() }

// toAsyncSinks wraps each colog.Sink so the resulting slice satisfies
// async.Sink, preserving order.
func toAsyncSinks(sinks []Sink) []async.Sink {
	out := make([]async.Sink, len(sinks))
	for i, s := range sinks {
		out[i] = asyncSinkAdapter{s}
	}
	return out
}
