// FILE: lixenwraith/colog/compat/compat_test.go
package compat

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/colog"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) (*colog.Logger, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := colog.DefaultConfig()
	cfg.EnableConsole = false
	cfg.EnableFile = true
	cfg.Directory = dir
	cfg.Name = "compat"
	cfg.Format = "json"
	cfg.Level = "trace"

	l, err := colog.NewLogger("compat", cfg)
	require.NoError(t, err)
	return l, dir
}

func readLogLines(t *testing.T, dir string) []map[string]any {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	f, err := os.Open(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	defer f.Close()

	var out []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		out = append(out, entry)
	}
	return out
}

func TestFastHTTPAdapterPrintf(t *testing.T) {
	logger, dir := newTestLogger(t)
	adapter := NewFastHTTPAdapter(logger)

	adapter.Printf("an error occurred while processing id=%d", 7)
	require.NoError(t, logger.Flush())

	lines := readLogLines(t, dir)
	require.Len(t, lines, 1)
	require.Equal(t, "ERROR", lines[0]["level"])
	require.Equal(t, "an error occurred while processing id=7", lines[0]["message"])

	require.Equal(t, "fasthttp", lines[0]["source"])
}

func TestDetectLogLevel(t *testing.T) {
	require.Equal(t, colog.LevelError, DetectLogLevel("request failed unexpectedly"))
	require.Equal(t, colog.LevelWarn, DetectLogLevel("deprecated handler in use"))
	require.Equal(t, colog.LevelDebug, DetectLogLevel("trace: entering handler"))
	require.Equal(t, colog.LevelInfo, DetectLogLevel("listening on :8080"))
}

func TestGnetAdapterLevels(t *testing.T) {
	logger, dir := newTestLogger(t)
	adapter := NewGnetAdapter(logger)

	adapter.Debugf("gnet debug id=%d", 1)
	adapter.Infof("gnet info id=%d", 2)
	adapter.Warnf("gnet warn id=%d", 3)
	adapter.Errorf("gnet error id=%d", 4)
	require.NoError(t, logger.Flush())

	lines := readLogLines(t, dir)
	require.Len(t, lines, 4)

	expected := []string{"DEBUG", "INFO", "WARN", "ERROR"}
	for i, line := range lines {
		require.Equal(t, expected[i], line["level"])
		require.Equal(t, "gnet", line["source"])
	}
}

func TestGnetAdapterFatalInvokesHandler(t *testing.T) {
	logger, dir := newTestLogger(t)

	var fatalMsg string
	adapter := NewGnetAdapter(logger, WithFatalHandler(func(msg string) {
		fatalMsg = msg
	}))

	adapter.Fatalf("gnet fatal id=%d", 5)

	lines := readLogLines(t, dir)
	require.Len(t, lines, 1)
	require.Equal(t, "ERROR", lines[0]["level"])
	require.Equal(t, "gnet fatal id=5", fatalMsg)
}
