// FILE: lixenwraith/colog/async/record.go
package async

import "time"

// Record is the value type carried through the queue, produced on a
// producer's hot path. Timestamp is captured at submission, not at
// processing. LoggerName must always be an owned copy — never a borrow
// into transient storage — because a Record crosses goroutines through
// the queue and outlives the producer's call frame.
type Record struct {
	Timestamp  time.Time
	Level      int8
	Message    string
	LoggerName string
	File       string
	Line       int
	Func       string
	Fields     map[string]any
}

// Formatter turns a Record into text. It must be safe to invoke
// concurrently with other Formatters, but the Backend only ever calls it
// from its own single worker goroutine, exactly once per Item.
type Formatter interface {
	Format(r Record) string
}

// Sink is an output endpoint. Write is called once per Item for every
// sink in the Item's sink list, in list order; Flush is called once per
// batch for each sink written to in that batch, and after every write
// during the shutdown drain. A Sink must be safe to call from the
// Backend's worker goroutine concurrently with any other goroutine that
// might hold a reference to it — that is the Sink's own responsibility.
type Sink interface {
	Write(text string) error
	Flush() error
}

// FormatterFunc adapts a plain function to the Formatter interface.
type FormatterFunc func(r Record) string

func (f FormatterFunc) Format(r Record) string { return f(r) }
