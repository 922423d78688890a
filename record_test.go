// FILE: lixenwraith/colog/record_test.go
package colog

import "testing"

func TestNewRecordCapturesCaller(t *testing.T) {
	r := newRecord(LevelInfo, "test-logger", "hello", 0)

	if r.Message != "hello" {
		t.Fatalf("Message = %q, want hello", r.Message)
	}
	if r.LoggerName != "test-logger" {
		t.Fatalf("LoggerName = %q, want test-logger", r.LoggerName)
	}
	if r.File != "record_test.go" {
		t.Fatalf("File = %q, want record_test.go", r.File)
	}
	if r.Func != "TestNewRecordCapturesCaller" {
		t.Fatalf("Func = %q, want TestNewRecordCapturesCaller", r.Func)
	}
	if r.Timestamp.IsZero() {
		t.Fatal("Timestamp must be set")
	}
}

func TestShortFuncName(t *testing.T) {
	cases := map[string]string{
		"github.com/lixenwraith/colog.(*Logger).Info": "Info",
		"main.main":                                    "main",
		"justaname":                                    "justaname",
	}
	for in, want := range cases {
		if got := shortFuncName(in); got != want {
			t.Fatalf("shortFuncName(%q) = %q, want %q", in, got, want)
		}
	}
}
