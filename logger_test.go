// FILE: lixenwraith/colog/logger_test.go
package colog

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/lixenwraith/colog/async"
)

func newTestLoggerWithBuffer(t *testing.T) (*Logger, *bytes.Buffer) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.EnableConsole = false
	cfg.EnableFile = false
	cfg.Level = "trace"

	l, err := NewLogger("test", cfg)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}

	var buf bytes.Buffer
	l.AddSink(NewConsoleSink(&buf))
	return l, &buf
}

func TestLoggerRespectsLevelFilter(t *testing.T) {
	l, buf := newTestLoggerWithBuffer(t)
	l.SetLevel(LevelWarn)

	l.Info("should be filtered")
	l.Error("should appear")

	out := buf.String()
	if strings.Contains(out, "should be filtered") {
		t.Fatalf("Info below the level floor should not have been written: %q", out)
	}
	if !strings.Contains(out, "should appear") {
		t.Fatalf("Error at or above the level floor should have been written: %q", out)
	}
}

func TestLoggerSyncDispatchWritesEverySink(t *testing.T) {
	l, buf := newTestLoggerWithBuffer(t)
	var second bytes.Buffer
	l.AddSink(NewConsoleSink(&second))

	l.Info("fan out")

	if !strings.Contains(buf.String(), "fan out") {
		t.Fatalf("first sink missing write: %q", buf.String())
	}
	if !strings.Contains(second.String(), "fan out") {
		t.Fatalf("second sink missing write: %q", second.String())
	}
}

func TestFieldLoggerAttachesFields(t *testing.T) {
	l, buf := newTestLoggerWithBuffer(t)
	fl := l.WithFields(map[string]any{"request_id": "abc123"})

	fl.Info("handled request")

	if !strings.Contains(buf.String(), "request_id=abc123") {
		t.Fatalf("expected field in output: %q", buf.String())
	}
}

func TestLoggerEnableAsyncRoutesThroughBackend(t *testing.T) {
	l, buf := newTestLoggerWithBuffer(t)

	backend := async.NewBackend()
	backend.Start(async.DefaultConfig())
	defer backend.Stop(0)

	l.EnableAsync(backend)
	l.Info("async path")

	if !backend.WaitForDrain(0) {
		t.Fatal("drain never completed")
	}

	if !strings.Contains(buf.String(), "async path") {
		t.Fatalf("expected record written via backend: %q", buf.String())
	}
}

func TestLoggerDisableAsyncRevertsToSyncDispatch(t *testing.T) {
	l, buf := newTestLoggerWithBuffer(t)

	backend := async.NewBackend()
	backend.Start(async.DefaultConfig())
	l.EnableAsync(backend)
	l.DisableAsync()
	backend.Stop(0)

	l.Info("sync again")
	if !strings.Contains(buf.String(), "sync again") {
		t.Fatalf("expected direct sink write after DisableAsync: %q", buf.String())
	}
}

func TestLoggerConcurrentLogging(t *testing.T) {
	l, _ := newTestLoggerWithBuffer(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			l.Infof("worker %d", n)
		}(i)
	}
	wg.Wait()
}
