// FILE: lixenwraith/colog/formatter_test.go
package colog

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func sampleRecord() Record {
	return Record{
		Timestamp:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Level:      LevelWarn,
		Message:    "disk usage high",
		LoggerName: "svc",
		Fields:     map[string]any{"pct": 91, "host": "node-1"},
	}
}

func TestTextFormatterOrdersFieldsDeterministically(t *testing.T) {
	f := NewTextFormatter()
	out := f.Format(sampleRecord())

	if !strings.Contains(out, "[WARN]") {
		t.Fatalf("output missing level: %q", out)
	}
	if !strings.Contains(out, "[svc]") {
		t.Fatalf("output missing logger name: %q", out)
	}
	hostIdx := strings.Index(out, "host=node-1")
	pctIdx := strings.Index(out, "pct=91")
	if hostIdx == -1 || pctIdx == -1 || hostIdx > pctIdx {
		t.Fatalf("fields not rendered in sorted order: %q", out)
	}
}

func TestJSONFormatterProducesValidObject(t *testing.T) {
	f := NewJSONFormatter()
	out := f.Format(sampleRecord())

	var decoded map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if decoded["level"] != "WARN" {
		t.Fatalf("level = %v, want WARN", decoded["level"])
	}
	if decoded["message"] != "disk usage high" {
		t.Fatalf("message = %v", decoded["message"])
	}
}

func TestJSONFormatterSanitizesControlCharacters(t *testing.T) {
	f := NewJSONFormatter()
	r := sampleRecord()
	r.Message = "line one\nline two\ttabbed"
	out := f.Format(r)

	var decoded map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &decoded); err != nil {
		t.Fatalf("sanitized output still isn't valid JSON: %v\n%s", err, out)
	}
}
