// FILE: lixenwraith/colog/formatter.go
package colog

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/davecgh/go-spew/spew"

	"github.com/lixenwraith/colog/internal/sanitize"
)

// Formatter turns a Record into the text a Sink writes, once per record. A
// Logger calls it on the logging goroutine while holding its own mutex, or,
// after EnableAsync, from the async backend's single worker goroutine. It
// must be safe to invoke concurrently with other Formatters.
type Formatter interface {
	Format(r Record) string
}

// dumpConfig is the shared go-spew configuration used whenever a formatter
// meets a value it cannot render directly, mirroring the teacher's
// writeRawValue fallback in format.go.
var dumpConfig = &spew.ConfigState{
	Indent:                  " ",
	MaxDepth:                10,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func dumpValue(v any) string {
	var b bytes.Buffer
	dumpConfig.Fdump(&b, v)
	return string(bytes.TrimSpace(b.Bytes()))
}

func formatFieldValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	case error:
		return val.Error()
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", val)
	case float32, float64:
		return fmt.Sprintf("%v", val)
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		return val.Format(time.RFC3339Nano)
	case nil:
		return "nil"
	default:
		return dumpValue(val)
	}
}

// sortedFieldKeys returns Fields' keys in a stable order so formatted output
// is deterministic across runs — tests and diffable logs both depend on it.
func sortedFieldKeys(fields map[string]any) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// TextFormatter renders "[time] [LEVEL] [logger] message key=value ..." the
// way the original pattern formatter does (original_source/.../
// pattern_formatter.cpp), with the teacher's timestamp-format knob.
type TextFormatter struct {
	TimestampFormat string
	ShowTimestamp   bool
	ShowLevel       bool

	san *sanitize.Sanitizer
}

// NewTextFormatter creates a TextFormatter with sensible defaults.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{
		TimestampFormat: time.RFC3339Nano,
		ShowTimestamp:   true,
		ShowLevel:       true,
		san:             sanitize.New(sanitize.PolicyText),
	}
}

func (f *TextFormatter) Format(r Record) string {
	var buf bytes.Buffer
	if f.ShowTimestamp {
		buf.WriteByte('[')
		buf.WriteString(r.Timestamp.Format(f.TimestampFormat))
		buf.WriteString("] ")
	}
	if f.ShowLevel {
		buf.WriteByte('[')
		buf.WriteString(r.Level.String())
		buf.WriteString("] ")
	}
	if r.LoggerName != "" {
		buf.WriteByte('[')
		buf.WriteString(r.LoggerName)
		buf.WriteString("] ")
	}
	buf.WriteString(f.san.Sanitize(r.Message))
	for _, k := range sortedFieldKeys(r.Fields) {
		buf.WriteByte(' ')
		buf.WriteString(k)
		buf.WriteByte('=')
		buf.WriteString(f.san.Sanitize(formatFieldValue(r.Fields[k])))
	}
	if r.Func != "" {
		fmt.Fprintf(&buf, " (%s:%d:%s)", r.File, r.Line, r.Func)
	}
	buf.WriteByte('\n')
	return buf.String()
}

// JSONFormatter renders a Record as a single JSON object per line.
type JSONFormatter struct {
	TimestampFormat string
	san             *sanitize.Sanitizer
}

// NewJSONFormatter creates a JSONFormatter with sensible defaults.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
		san:             sanitize.New(sanitize.PolicyJSON),
	}
}

func (f *JSONFormatter) writeString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	buf.WriteString(f.san.Sanitize(s))
	buf.WriteByte('"')
}

// Format renders r as a single JSON object. Field values are always
// emitted as JSON strings, even when the underlying value is numeric or
// boolean (e.g. "count":"42") — this keeps every field's quoting uniform
// regardless of its Go type, at the cost of requiring a consuming parser
// to convert back; it is intentional, not a missed type switch.
func (f *JSONFormatter) Format(r Record) string {
	var buf bytes.Buffer
	buf.WriteByte('{')
	buf.WriteString(`"time":`)
	f.writeString(&buf, r.Timestamp.Format(f.TimestampFormat))
	buf.WriteString(`,"level":`)
	f.writeString(&buf, r.Level.String())
	if r.LoggerName != "" {
		buf.WriteString(`,"logger":`)
		f.writeString(&buf, r.LoggerName)
	}
	buf.WriteString(`,"message":`)
	f.writeString(&buf, r.Message)
	if r.Func != "" {
		buf.WriteString(`,"source":`)
		f.writeString(&buf, fmt.Sprintf("%s:%d:%s", r.File, r.Line, r.Func))
	}
	for _, k := range sortedFieldKeys(r.Fields) {
		buf.WriteByte(',')
		f.writeString(&buf, k)
		buf.WriteByte(':')
		f.writeString(&buf, formatFieldValue(r.Fields[k]))
	}
	buf.WriteString("}\n")
	return buf.String()
}
