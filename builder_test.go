// FILE: lixenwraith/colog/builder_test.go
package colog

import "testing"

func TestBuilderBuildsLogger(t *testing.T) {
	dir := t.TempDir()
	l, err := NewBuilder().
		Name("builder-test").
		Level("debug").
		Format("json").
		File(dir, "app", "log").
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if l.Name() != "builder-test" {
		t.Fatalf("Name() = %q, want builder-test", l.Name())
	}
	if l.Level() != LevelDebug {
		t.Fatalf("Level() = %v, want LevelDebug", l.Level())
	}
}

func TestBuilderPropagatesInvalidLevel(t *testing.T) {
	_, err := NewBuilder().Level("not-a-level").Build()
	if err == nil {
		t.Fatal("expected error for invalid level")
	}
}
